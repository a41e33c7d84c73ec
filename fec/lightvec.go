package feckit

import (
	"sync/atomic"
)

// LightVector 轻量可增长容器. 替代通用slice的场景:
// 短生命周期 + 小个数为主, 内联预分配避免堆分配.
//
// 1).容量只增不减
// 2).增长不清零新元素
// 3).分配失败返回false, 容器不变
// 4).无越界检查, 由调用方保证 0 <= i < Size()
type LightVector[T any] struct {
	prealloc [vecPreallocated]T

	// active storage, aliases prealloc until first spill
	data []T

	size      int
	allocated int
	spilled   bool

	// growth allocation source. nil means make()
	alloc func(n int) []T
}

// 零值可用: 首次操作时挂接内联存储
func (v *LightVector[T]) lazyInit() {
	if v.data == nil {
		v.data = v.prealloc[:]
		v.allocated = vecPreallocated
	}
}

// SetAllocator 设置增长用的分配源. 返回nil视为分配失败.
// 默认make, 永不失败. 测试或有硬内存预算的调用方使用.
func (v *LightVector[T]) SetAllocator(alloc func(n int) []T) {
	v.alloc = alloc
}

func (v *LightVector[T]) allocate(n int) []T {
	if v.alloc == nil {
		return make([]T, n)
	}
	data := v.alloc(n)
	if data != nil && len(data) < n {
		return nil
	}
	return data
}

// grow 增长到至少elements个容量. 新容量固定为请求值的1.5倍(向下取整).
func (v *LightVector[T]) grow(elements int, keep bool) bool {
	newAllocated := elements * 3 / 2
	newData := v.allocate(newAllocated)
	if newData == nil {
		atomic.AddUint64(&metrics.VecAllocFail, 1)
		errorF("lightvec: grow to %d elements failed", newAllocated)
		return false
	}
	if keep {
		copy(newData, v.data[:v.size])
		atomic.AddUint64(&metrics.VecCopyElems, uint64(v.size))
	}
	// 一旦外溢, 不再回退到内联存储
	v.data = newData
	v.allocated = newAllocated
	v.spilled = true
	atomic.AddUint64(&metrics.VecGrowAlloc, 1)
	return true
}

// SetSizeNoCopy 调整元素个数, 不保留旧值.
// 调用后所有元素内容视为未定义.
func (v *LightVector[T]) SetSizeNoCopy(elements int) bool {
	v.lazyInit()
	assertTrue(v.size <= v.allocated, "lightvec: size exceeds allocated")

	if elements > v.allocated {
		if !v.grow(elements, false) {
			return false
		}
	}
	v.size = elements
	return true
}

// SetSizeCopy 调整元素个数. 缩小则截断(不释放内存);
// 增长越过容量时搬运原有元素, 新增元素内容未定义.
func (v *LightVector[T]) SetSizeCopy(elements int) bool {
	v.lazyInit()
	assertTrue(v.size <= v.allocated, "lightvec: size exceeds allocated")

	if elements > v.allocated {
		if !v.grow(elements, true) {
			return false
		}
	}
	v.size = elements
	return true
}

// Append 尾部追加一个元素
func (v *LightVector[T]) Append(value T) bool {
	newSize := v.size + 1
	if !v.SetSizeCopy(newSize) {
		return false
	}
	v.data[newSize-1] = value
	return true
}

// Clear 置空. 不释放内存, 不清零
func (v *LightVector[T]) Clear() {
	v.size = 0
}

func (v *LightVector[T]) Size() int {
	return v.size
}

// Capacity 当前已分配元素个数
func (v *LightVector[T]) Capacity() int {
	v.lazyInit()
	return v.allocated
}

// HeapBacked 是否已外溢到堆. 外溢后不再回退内联存储
func (v *LightVector[T]) HeapBacked() bool {
	return v.spilled
}

// Get 读下标元素. 越界为未定义行为
func (v *LightVector[T]) Get(i int) T {
	return v.data[i]
}

// Set 写下标元素. 越界为未定义行为
func (v *LightVector[T]) Set(i int, value T) {
	v.data[i] = value
}

// Ref 返回下标元素的指针, 指向活动存储.
// 下一次增长后失效
func (v *LightVector[T]) Ref(i int) *T {
	return &v.data[i]
}

// Slice 返回活动存储的 [0, Size()) 视图.
// 下一次增长后失效
func (v *LightVector[T]) Slice() []T {
	v.lazyInit()
	return v.data[:v.size]
}
