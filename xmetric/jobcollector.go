package xmetric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// jobCollector 把prometheus的Collect转成一次MetricJob往返.
// 宿主线程不在节拍里(超时)就放弃本轮, 不卡抓取.
type jobCollector struct {
	gather *Gather
}

func newJobCollector(g *Gather) *jobCollector {
	return &jobCollector{gather: g}
}

func (c *jobCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- prometheus.NewDesc("job_desc", "job_desc", nil, c.gather.defaultLabels())
}

func (c *jobCollector) Collect(ch chan<- prometheus.Metric) {
	if c.gather.newJob == nil {
		return
	}
	job := c.gather.newJob()
	select {
	case c.gather.pullChan <- job:
		retJob := <-c.gather.pushChan
		retJob.Push(ch)
	case <-time.After(collectTimeout):
		return
	}
}
