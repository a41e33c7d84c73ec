package feckit

import (
	"sync/atomic"
)

// Direction 极值方向
type Direction int

const (
	SeekMin Direction = iota // 追踪窗口内最小值 (如RTT下界)
	SeekMax                  // 追踪窗口内最大值 (如带宽上界)
)

// Sample 一次采样: 值 + 采集时间戳.
// 时间戳单位由调用方决定, 与窗口长度一致即可(通常usec).
type Sample struct {
	Value     int64
	Timestamp uint64
}

// 无符号减法有意回绕. 要求同一实例内时间戳单调不减
func (s Sample) expired(now, timeout uint64) bool {
	return now-s.Timestamp > timeout
}

// WindowedMinMax 固定内存的滑动窗口极值估计.
// 只保留3个按极值排序的检查点, 近似真实窗口极值:
// samples[0]是目前最优, [1][2]依次是备选.
// O(1)更新, 不存历史. 估计值可能比精确算法多保留
// 最多一个窗口长度的陈旧值, 调用方按此容差使用.
//
// 非线程安全, 写访问由调用方串行化.
type WindowedMinMax struct {
	dir     Direction
	window  uint64 // 窗口长度, 与时间戳同单位
	samples [extremumSamples]Sample
}

func NewWindowedMinMax(dir Direction, windowLength uint64) *WindowedMinMax {
	return &WindowedMinMax{dir: dir, window: windowLength}
}

// better 按配置方向比较. 相等视为更优, 以刷新时间戳
func (w *WindowedMinMax) better(x, y int64) bool {
	if w.dir == SeekMax {
		return x >= y
	}
	return x <= y
}

// IsValid 是否已有真实采样.
// 注意: 以0值为哨兵, 真实的0采样与未初始化不可区分
func (w *WindowedMinMax) IsValid() bool {
	return w.samples[0].Value != 0 // ish
}

// Best 当前极值估计
func (w *WindowedMinMax) Best() int64 {
	return w.samples[0].Value
}

// WindowLength 配置的窗口长度
func (w *WindowedMinMax) WindowLength() uint64 {
	return w.window
}

// Reset 三个检查点全部置为同一采样
func (w *WindowedMinMax) Reset(sample Sample) {
	w.samples[0] = sample
	w.samples[1] = sample
	w.samples[2] = sample
}

// Update 喂入一个采样. 时间戳必须单调不减
func (w *WindowedMinMax) Update(value int64, timestamp uint64) {
	sample := Sample{Value: value, Timestamp: timestamp}

	// 首个采样 / 新的最优值 / 整个窗口已过期: 全部重置
	if !w.IsValid() ||
		w.better(value, w.samples[0].Value) ||
		w.samples[2].expired(timestamp, w.window) {
		w.Reset(sample)
		atomic.AddUint64(&metrics.WindowReset, 1)
		return
	}

	// 插入排序位置
	if w.better(value, w.samples[1].Value) {
		w.samples[1] = sample
		w.samples[2] = sample
	} else if w.better(value, w.samples[2].Value) {
		w.samples[2] = sample
	}

	// 最优值占位超过一个窗口: 过期, 备选顶上
	if w.samples[0].expired(timestamp, w.window) {
		if w.samples[1].expired(timestamp, w.window) {
			w.samples[0] = w.samples[2]
			w.samples[1] = sample
		} else {
			w.samples[0] = w.samples[1]
			w.samples[1] = w.samples[2]
		}
		w.samples[2] = sample
		atomic.AddUint64(&metrics.WindowExpire, 1)
		return
	}

	// 1/4窗口内没出现更优值: 次优与最优同值, 加速淘汰
	if w.samples[1].Value == w.samples[0].Value &&
		w.samples[1].expired(timestamp, w.window/4) {
		w.samples[1] = sample
		w.samples[2] = sample
		atomic.AddUint64(&metrics.WindowCollapse, 1)
		return
	}

	// 1/2窗口同理, 淘汰第三检查点
	if w.samples[2].Value == w.samples[1].Value &&
		w.samples[2].expired(timestamp, w.window/2) {
		w.samples[2] = sample
	}
}
