package feckit

import (
	"sync/atomic"
)

var metrics Metric

type Metric struct {
	// 容器增长
	VecGrowAlloc uint64 // 越过容量触发的堆分配次数
	VecAllocFail uint64 // 分配失败次数
	VecCopyElems uint64 // 增长时搬运的元素总数

	// 窗口极值
	WindowReset    uint64 // 全量重置次数
	WindowExpire   uint64 // 最优值过期晋升次数
	WindowCollapse uint64 // 1/4窗口加速淘汰次数
}

func (m *Metric) Pull() {
	*m = Metric{
		VecGrowAlloc: atomic.LoadUint64(&metrics.VecGrowAlloc),
		VecAllocFail: atomic.LoadUint64(&metrics.VecAllocFail),
		VecCopyElems: atomic.LoadUint64(&metrics.VecCopyElems),

		WindowReset:    atomic.LoadUint64(&metrics.WindowReset),
		WindowExpire:   atomic.LoadUint64(&metrics.WindowExpire),
		WindowCollapse: atomic.LoadUint64(&metrics.WindowCollapse),
	}
}
