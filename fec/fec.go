package feckit

/***
		feckit - FEC transport support kit
一、概述
	前向纠错/冗余传输层的底层工具包。
	1).LightVector: 小缓冲优化的可增长容器, 分配失败可恢复
	2).WindowedMinMax: 固定内存的滑动窗口极值估计 (如RTT下界, 带宽上界)
	3).PCGRandom: 确定性伪随机数 (用于上层抖动/退避决策)
	4).TimeUsec/TimeMsec: 单调时钟

二、约定
	1).热路径零防御检查: 越界访问、非单调时间戳属于调用方契约
	2).无内部锁: 调用方串行化写访问
	3).分配失败返回false, 容器保持原状, 由调用方决策
*/

const (
	// 推荐值, 尽量别改
	vecPreallocated = 25 // LightVector 内联预分配个数
	extremumSamples = 3  // WindowedMinMax 保留的检查点个数
)
