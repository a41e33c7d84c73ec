package xmetric

import (
	"github.com/prometheus/client_golang/prometheus"

	"xfec/fec"
)

// FecJob 采集feckit包计数器
type FecJob struct {
	gather *Gather
	m      feckit.Metric
}

func NewFecJob(g *Gather) *FecJob {
	return &FecJob{gather: g}
}

func (j *FecJob) Pull() {
	j.m.Pull()
}

func (j *FecJob) Push(ch chan<- prometheus.Metric) {
	g := j.gather
	g.PushCounterMetric(ch, "xfec_lightvec_grow_allocs", float64(j.m.VecGrowAlloc), nil)
	g.PushCounterMetric(ch, "xfec_lightvec_alloc_fails", float64(j.m.VecAllocFail), nil)
	g.PushCounterMetric(ch, "xfec_lightvec_copied_elements", float64(j.m.VecCopyElems), nil)
	g.PushCounterMetric(ch, "xfec_window_resets", float64(j.m.WindowReset), nil)
	g.PushCounterMetric(ch, "xfec_window_best_expires", float64(j.m.WindowExpire), nil)
	g.PushCounterMetric(ch, "xfec_window_tie_collapses", float64(j.m.WindowCollapse), nil)
}
