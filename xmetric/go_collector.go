package xmetric

import (
	"runtime"
	"runtime/debug"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// goCollector go运行时指标. 只挑跟分配压力相关的一小撮,
// 这个库存在的意义就是压分配, 得看得见效果.
type goCollector struct {
	goroutinesDesc *prometheus.Desc
	gcDesc         *prometheus.Desc
	msMetrics      []memStatsMetric
}

type memStatsMetric struct {
	desc    *prometheus.Desc
	eval    func(ms *runtime.MemStats) float64
	valType prometheus.ValueType
}

func memstatNamespace(s string) string {
	return "go_memstats_" + s
}

func newGoCollector(g *Gather) *goCollector {
	labels := g.defaultLabels()
	newMs := func(name, help string, eval func(ms *runtime.MemStats) float64, vt prometheus.ValueType) memStatsMetric {
		return memStatsMetric{
			desc:    prometheus.NewDesc(memstatNamespace(name), help, nil, labels),
			eval:    eval,
			valType: vt,
		}
	}
	return &goCollector{
		goroutinesDesc: prometheus.NewDesc(
			"go_goroutines",
			"Number of goroutines that currently exist.",
			nil, labels),
		gcDesc: prometheus.NewDesc(
			"go_gc_duration_seconds",
			"A summary of the pause duration of garbage collection cycles.",
			nil, labels),
		msMetrics: []memStatsMetric{
			newMs("sys_bytes", "Number of bytes obtained from system.",
				func(ms *runtime.MemStats) float64 { return float64(ms.Sys) }, prometheus.GaugeValue),
			newMs("heap_inuse_bytes", "Number of heap bytes that are in use.",
				func(ms *runtime.MemStats) float64 { return float64(ms.HeapInuse) }, prometheus.GaugeValue),
			newMs("heap_objects", "Number of allocated objects.",
				func(ms *runtime.MemStats) float64 { return float64(ms.HeapObjects) }, prometheus.GaugeValue),
			newMs("mallocs_total", "Total number of mallocs.",
				func(ms *runtime.MemStats) float64 { return float64(ms.Mallocs) }, prometheus.CounterValue),
			newMs("frees_total", "Total number of frees.",
				func(ms *runtime.MemStats) float64 { return float64(ms.Frees) }, prometheus.CounterValue),
			newMs("next_gc_bytes", "Number of heap bytes when next garbage collection will take place.",
				func(ms *runtime.MemStats) float64 { return float64(ms.NextGC) }, prometheus.GaugeValue),
		},
	}
}

func (c *goCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.goroutinesDesc
	ch <- c.gcDesc
	for _, m := range c.msMetrics {
		ch <- m.desc
	}
}

func (c *goCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.goroutinesDesc, prometheus.GaugeValue, float64(runtime.NumGoroutine()))

	var stats debug.GCStats
	stats.PauseQuantiles = make([]time.Duration, 5)
	debug.ReadGCStats(&stats)

	quantiles := make(map[float64]float64)
	for idx, pq := range stats.PauseQuantiles[1:] {
		quantiles[float64(idx+1)/float64(len(stats.PauseQuantiles)-1)] = pq.Seconds()
	}
	quantiles[0.0] = stats.PauseQuantiles[0].Seconds()
	ch <- prometheus.MustNewConstSummary(c.gcDesc, uint64(stats.NumGC), stats.PauseTotal.Seconds(), quantiles)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	for _, m := range c.msMetrics {
		ch <- prometheus.MustNewConstMetric(m.desc, m.valType, m.eval(&ms))
	}
}
