package xutil

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/bmizerany/pat"
	"go.uber.org/zap/zapcore"

	"xfec/fec"
	"xfec/xlog"
	"xfec/xmetric"
)

/*
	调试宿主. 库本身无进程表面, 接入方进程用Host拿到:
	1).日志初始化 + feckit日志钩子接线
	2).prometheus /metrics + go pprof的http调试口
	3).pid文件, 退出信号保底
	不是必须用, 直接用fec包也行.
*/

var (
	versionFlag    bool
	httpListenAddr string
	configPath     string
	pidFile        string
)

const (
	maxPortRange = 64 // 最大端口偏移. 被占用就往后试
	unknown      = "unknown"
)

// 构建信息, ldflags注入
var (
	Version   = "0.0.0"
	GitCommit = unknown
	BuildTime = unknown
)

type HttpCmdFunc func(args []string) string

type Host struct {
	exit       bool
	cfg        *Config
	serveMux   *http.ServeMux
	pattern    *pat.PatternServeMux
	httpAddr   string
	httpPort   int
	http2main  chan func()
	main2http  chan string
	httpCmds   []string
	gather     *xmetric.Gather
	InitOKTime time.Time
}

func NewHost() *Host {
	return &Host{
		serveMux:  http.NewServeMux(),
		pattern:   pat.New(),
		http2main: make(chan func(), 1024),
		main2http: make(chan string, 1),
	}
}

func init() {
	flag.BoolVar(&versionFlag, "v", false, "version")
	flag.StringVar(&httpListenAddr, "http.listen", "", "debug http listen addr, override config")
	flag.StringVar(&configPath, "config", "", "toml config path")
	exe, _ := os.Executable()
	exeNameOnly := strings.TrimSuffix(filepath.Base(exe), ".exe")
	flag.StringVar(&pidFile, "pid", exeNameOnly+".pid", "pid file name")
}

func splitAddr(addr string) (string, int) {
	arr := strings.Split(addr, ":")
	if len(arr) != 2 {
		return "", 0
	}
	port, err := strconv.Atoi(arr[1])
	if err != nil {
		return "", 0
	}
	return arr[0], port
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

// 监听调试http. 从配置端口往后探测可用端口
func (h *Host) serveHTTP() bool {
	listen := h.cfg.Metric.Listen
	if httpListenAddr != "" {
		listen = httpListenAddr
	}
	var err error
	h.httpAddr, h.httpPort = splitAddr(listen)
	if h.httpAddr == "" {
		xlog.Errorf("http listen address wrong %s", listen)
		return false
	}
	if h.httpAddr == "0.0.0.0" {
		h.httpAddr = getLocalAddr()
	}
	find := false
	var l net.Listener
	for i := h.httpPort; i < h.httpPort+maxPortRange; i++ {
		ipaddr := fmt.Sprintf("%s:%d", h.httpAddr, i)
		l, err = net.Listen("tcp", ipaddr)
		if err == nil {
			find = true
			h.httpPort = i
			xlog.InfoF("http listen address: http://%s", ipaddr)
			break
		}
	}
	if !find {
		xlog.Errorf("http listen address error")
		return false
	}

	h.pattern.Get("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintln(w, "ok")
	}))
	h.serveMux.Handle("/", h.pattern)
	go func() {
		if err := http.Serve(l, h.serveMux); err != nil {
			xlog.Errorf("serveHTTP, http.Serve err=%v", err)
		}
	}()
	return true
}

// Init f是接入方自己的初始化, 可为nil
func (h *Host) Init(f func(cfg *Config) bool) bool {
	flag.Parse()
	if versionFlag {
		fmt.Printf("version   : %s\n", Version)
		fmt.Printf("gitCommit : %s\n", GitCommit)
		fmt.Printf("buildTime : %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Printf("load config err=%v\n", err)
		return false
	}
	h.cfg = cfg

	xlog.LogLevel = cfg.Log.Level
	if err := xlog.Init(xlog.Options{
		Dir:        cfg.Log.Dir,
		Name:       cfg.Log.Name,
		MaxSize:    cfg.Log.MaxSize,
		MaxAge:     cfg.Log.MaxAge,
		MaxBackups: cfg.Log.MaxBackups,
		Console:    cfg.Log.Console,
	}); err != nil {
		fmt.Printf("init xlog err=%v\n", err)
		return false
	}

	if cfg.Log.ZapFile != "" {
		xlog.NewZapLogger(cfg.Log.ZapFile, zapcore.InfoLevel)
	}

	// fec包的日志钩子接到xlog
	feckit.SetDebugLogger(xlog.Debugf)
	feckit.SetInfoLogger(xlog.InfoF)
	feckit.SetErrorLogger(xlog.Errorf)

	if _, err := NewFlock(pidFile); err != nil {
		xlog.Errorf("Host Init NewFlock err=%v", err)
		return false
	}

	if !h.serveHTTP() {
		return false
	}
	defaultCmd(h)

	if h.cfg.Metric.Enable {
		h.gather = xmetric.NewGather(nil, h.serveMux, h.httpAddr, h.httpPort).
			Alias(h.cfg.Metric.Alias)
		h.gather.SetNewJob(func() xmetric.MetricJob { return xmetric.NewFecJob(h.gather) })
		h.gather.Init()
	}

	// 保底退出: 收到信号后1分钟没停就打全栈强杀
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		xlog.InfoF("caught signal: %v", <-c)
		h.exit = true
		time.Sleep(1 * time.Minute)
		var buf [65536]byte
		n := runtime.Stack(buf[:], true)
		xlog.Errorf("host not stopped in 1 minute, all stack is:\n%s", string(buf[:n]))
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}()

	if f != nil && !f(cfg) {
		xlog.Sync()
		xlog.ZapSync()
		return false
	}

	fmt.Println("start: ", time.Now())
	h.InitOKTime = time.Now()
	return true
}

// Run 宿主线程循环. 服务metric采集和http命令, 直到Exit
func (h *Host) Run() {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
mainLoop:
	for {
		select {
		case <-ticker.C:
			if h.exit {
				break mainLoop
			}
			if h.gather != nil {
				h.gather.Run(0)
			}
		case httpfn := <-h.http2main:
			httpfn()
		httpfor:
			for {
				select {
				case httpfn := <-h.http2main:
					httpfn()
				default:
					break httpfor
				}
			}
		}
	}
}

func (h *Host) Destroy(f func()) {
	if f != nil {
		f()
	}
	if h.gather != nil {
		h.gather.Destroy()
	}
	xlog.Sync()
	xlog.ZapSync()
	xlog.Close()
}

func (h *Host) Exit() {
	h.exit = true
}

func (h *Host) Config() *Config {
	return h.cfg
}

// HandleHttpCmd 注册http命令, 回调在宿主线程执行
func (h *Host) HandleHttpCmd(pattern string, cmdfunc HttpCmdFunc) {
	h.httpCmds = append(h.httpCmds, pattern)
	h.pattern.Get(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xlog.InfoF("httpcmd:%s", r.RequestURI)
		args := strings.FieldsFunc(r.RequestURI, func(r rune) bool {
			return uint32(r) == '/'
		})
		timer := time.NewTimer(2 * time.Second)
		defer timer.Stop()
		select {
		case h.http2main <- func() {
			h.main2http <- cmdfunc(args)
		}:
		case <-timer.C:
			_, _ = fmt.Fprintln(w, "main thread timeout")
			return
		}
		ret := <-h.main2http
		_, _ = fmt.Fprintln(w, ret)
	}))
}
