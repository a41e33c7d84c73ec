package xmetric

import (
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"xfec/xlog"
)

const unknown = "unknown"

type labelConfig struct {
	host    string
	alias   string
	program string
}

// Gather 性能收集器. 独立registry + 拉/推两段式采集:
// prometheus抓取线程把job塞进pullChan, 宿主线程在自己的
// 节拍里Pull(读热路径计数器), 结果经pushChan还给抓取线程.
// 这样采样动作始终发生在拥有数据的线程上.
type Gather struct {
	labelConfig
	registry   *prometheus.Registry
	pullChan   chan MetricJob
	pushChan   chan MetricJob
	closeChan  chan struct{}
	newJob     func() MetricJob
	mux        *http.ServeMux
	httpAddr   string
	httpPort   int
	dummyDescs map[string]*prometheus.Desc
}

// NewGather newJob构造每轮采集用的job实例
func NewGather(newJob func() MetricJob, smux *http.ServeMux, addr string, port int) *Gather {
	g := &Gather{
		registry: prometheus.NewRegistry(),
		newJob:   newJob,
		mux:      smux,
		httpAddr: addr,
		httpPort: port,
	}
	g.defaultLabels()
	return g
}

func (g *Gather) Init() bool {
	g.mux.Handle("/metrics", promhttp.HandlerFor(g.registry, promhttp.HandlerOpts{}))
	xlog.InfoF("http metric url: http://%s:%d/metrics", g.httpAddr, g.httpPort)

	g.closeChan = make(chan struct{})
	g.pullChan = make(chan MetricJob)
	g.pushChan = make(chan MetricJob, 4)
	g.dummyDescs = make(map[string]*prometheus.Desc)
	g.registry.MustRegister(newJobCollector(g))
	g.registry.MustRegister(newGoCollector(g))
	return true
}

func (g *Gather) Destroy() {
	close(g.closeChan)
}

// Run 宿主线程节拍调用, 服务一次采集请求
func (g *Gather) Run(delta int64) {
	select {
	case job := <-g.pullChan:
		job.Pull()
		select {
		case g.pushChan <- job:
		default:
			return
		}
	default:
		return
	}
}

func (g *Gather) modGetDesc(name string, labels []string) *prometheus.Desc {
	nameKey := name
	for _, v := range labels {
		nameKey += "_" + v
	}
	desc, ok := g.dummyDescs[nameKey]
	if ok {
		return desc
	}
	desc = prometheus.NewDesc(name, name, labels, g.defaultLabels())
	g.dummyDescs[nameKey] = desc
	return desc
}

func (g *Gather) PushGaugeMetric(ch chan<- prometheus.Metric, name string, value float64, labels []string, labelValues ...string) {
	desc := g.modGetDesc(name, labels)
	metric, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, value, labelValues...)
	if err != nil {
		xlog.Errorf("PushGaugeMetric, NewConstMetric err=%v", err)
		return
	}
	ch <- metric
}

func (g *Gather) PushCounterMetric(ch chan<- prometheus.Metric, name string, value float64, labels []string, labelValues ...string) {
	desc := g.modGetDesc(name, labels)
	metric, err := prometheus.NewConstMetric(desc, prometheus.CounterValue, value, labelValues...)
	if err != nil {
		xlog.Errorf("PushCounterMetric, NewConstMetric err=%v", err)
		return
	}
	ch <- metric
}

// SetNewJob 采集job构造器. 需要gather自身引用时用这个后置设置
func (g *Gather) SetNewJob(newJob func() MetricJob) *Gather {
	g.newJob = newJob
	return g
}

func (g *Gather) Host(host string) *Gather {
	g.host = host
	return g
}

func (g *Gather) Alias(alias string) *Gather {
	g.alias = alias
	return g
}

func (g *Gather) Program(program string) *Gather {
	g.program = program
	return g
}

func (g *Gather) defaultLabels() map[string]string {
	if len(g.program) == 0 {
		g.program = filepath.Base(os.Args[0])
	}
	if len(g.host) == 0 {
		g.host = getLocalAddr()
		if g.host == unknown {
			g.host = getHostName()
		}
	}
	if len(g.alias) == 0 {
		g.alias = unknown
	}
	return map[string]string{"host": g.host, "alias": g.alias, "program": g.program}
}

func getLocalAddr() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return unknown
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok {
			if ipnet.IP.IsLoopback() {
				continue
			}
			if ipnet.IP.To4() == nil {
				continue
			}
			return ipnet.IP.String()
		}
	}
	return unknown
}

func getHostName() string {
	host, err := os.Hostname()
	if err != nil {
		return unknown
	}
	return host
}

// collectTimeout 抓取线程等宿主线程Pull的上限
const collectTimeout = 2 * time.Second
