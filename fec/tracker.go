package feckit

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Clock 极值跟踪用的时钟源. 只需Now, 方便测试注入
type Clock interface {
	Now() time.Time
}

// RealClock 默认时钟
var RealClock Clock = clockz.RealClock

// ExtremumTracker 把WindowedMinMax绑定到时钟源,
// 调用方只喂值, 时间戳(usec)由跟踪器打.
// 典型用法: 追踪平滑RTT下界或带宽上界.
type ExtremumTracker struct {
	win   WindowedMinMax
	clock Clock
	epoch time.Time
}

// NewExtremumTracker clock传nil则使用RealClock
func NewExtremumTracker(dir Direction, window time.Duration, clock Clock) *ExtremumTracker {
	if clock == nil {
		clock = RealClock
	}
	return &ExtremumTracker{
		win: WindowedMinMax{
			dir:    dir,
			window: uint64(window / time.Microsecond),
		},
		clock: clock,
		epoch: clock.Now(),
	}
}

// nowUsec 自跟踪器创建起的微秒数
func (t *ExtremumTracker) nowUsec() uint64 {
	return uint64(t.clock.Now().Sub(t.epoch) / time.Microsecond)
}

// Observe 记录一个观测值, 时间戳取自时钟源
func (t *ExtremumTracker) Observe(value int64) {
	t.win.Update(value, t.nowUsec())
}

// Best 当前极值估计
func (t *ExtremumTracker) Best() int64 {
	return t.win.Best()
}

func (t *ExtremumTracker) IsValid() bool {
	return t.win.IsValid()
}

// Reset 用当前时刻的value重置
func (t *ExtremumTracker) Reset(value int64) {
	t.win.Reset(Sample{Value: value, Timestamp: t.nowUsec()})
}
