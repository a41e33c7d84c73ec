package xmetric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricJob 一轮采集: Pull在宿主线程取数, Push在抓取线程上报
type MetricJob interface {
	Pull()
	Push(ch chan<- prometheus.Metric)
}
