package feckit

import (
	"time"
)

// 进程启动为纪元. time.Since走单调时钟, 保证不回退
var processEpoch = time.Now()

// TimeUsec 自任意纪元起的微秒数, 单调不减
func TimeUsec() uint64 {
	return uint64(time.Since(processEpoch) / time.Microsecond)
}

// TimeMsec 自任意纪元起的毫秒数, 单调不减
func TimeMsec() uint64 {
	return uint64(time.Since(processEpoch) / time.Millisecond)
}
