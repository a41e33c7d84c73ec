package feckit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xfec/xmemory"
)

// 计数分配器: 统计增长分配次数
func countingAlloc[T any](count *int) func(n int) []T {
	return func(n int) []T {
		*count++
		return make([]T, n)
	}
}

func TestLightVectorAppend(t *testing.T) {
	var v LightVector[int]
	const total = 100 // 远超内联容量, 强制多次增长
	for i := 0; i < total; i++ {
		require.True(t, v.Append(i*7))
		require.Equal(t, i+1, v.Size())
	}
	for i := 0; i < total; i++ {
		assert.Equal(t, i*7, v.Get(i))
	}
}

func TestLightVectorInlineNoAlloc(t *testing.T) {
	var v LightVector[byte]
	allocs := 0
	v.SetAllocator(countingAlloc[byte](&allocs))

	// 内联容量内的操作零堆分配
	for i := 0; i < vecPreallocated; i++ {
		require.True(t, v.Append(byte(i)))
	}
	assert.Equal(t, 0, allocs)
	assert.Equal(t, vecPreallocated, v.Capacity())
	assert.False(t, v.HeapBacked())

	// 越界一次才分配
	require.True(t, v.Append(0xFF))
	assert.Equal(t, 1, allocs)
	assert.True(t, v.HeapBacked())
}

func TestLightVectorGrowthFactor(t *testing.T) {
	var v LightVector[int]
	require.True(t, v.SetSizeNoCopy(40))
	// 新容量固定为请求值的1.5倍(向下取整), 不是旧容量的倍数
	assert.Equal(t, 40*3/2, v.Capacity())

	require.True(t, v.SetSizeNoCopy(41))
	// 容量内调整不重新分配
	assert.Equal(t, 60, v.Capacity())

	require.True(t, v.SetSizeNoCopy(61))
	assert.Equal(t, 61*3/2, v.Capacity())
}

func TestLightVectorNoReallocWithinCapacity(t *testing.T) {
	var v LightVector[int]
	allocs := 0
	v.SetAllocator(countingAlloc[int](&allocs))

	require.True(t, v.SetSizeNoCopy(40)) // 容量60
	require.Equal(t, 1, allocs)

	// 容量内连续Append不触发分配
	require.True(t, v.Append(1))
	require.True(t, v.Append(2))
	assert.Equal(t, 1, allocs)
}

func TestLightVectorSetSizeCopyPreserves(t *testing.T) {
	var v LightVector[int]
	for i := 0; i < 30; i++ {
		require.True(t, v.Append(i))
	}
	require.True(t, v.SetSizeCopy(200)) // 再次强制增长
	for i := 0; i < 30; i++ {
		assert.Equal(t, i, v.Get(i))
	}
	assert.Equal(t, 200, v.Size())
}

func TestLightVectorSetSizeCopyTruncate(t *testing.T) {
	var v LightVector[int]
	for i := 0; i < 50; i++ {
		require.True(t, v.Append(i))
	}
	oldCap := v.Capacity()
	require.True(t, v.SetSizeCopy(10))
	assert.Equal(t, 10, v.Size())
	// 截断不释放内存
	assert.Equal(t, oldCap, v.Capacity())
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, v.Get(i))
	}
}

func TestLightVectorClear(t *testing.T) {
	var v LightVector[int]
	for i := 0; i < 50; i++ {
		require.True(t, v.Append(i))
	}
	oldCap := v.Capacity()
	v.Clear()
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, oldCap, v.Capacity())

	// 清空后再装, 还是堆存储, 不回退内联
	require.True(t, v.HeapBacked())
	require.True(t, v.Append(1))
	assert.True(t, v.HeapBacked())
	assert.Equal(t, oldCap, v.Capacity())
}

func TestLightVectorAllocFail(t *testing.T) {
	var v LightVector[byte]
	// 预算只够第一次增长: Append到26要分配39个
	lim := &xmemory.LimitCreator[byte]{Budget: 39}
	v.SetAllocator(lim.Alloc)

	for i := 0; i < 26; i++ {
		require.True(t, v.Append(byte(i)))
	}
	require.Equal(t, 39, v.Capacity())

	// 填满后再增长超预算, 失败且容器不变
	for i := 26; i < 39; i++ {
		require.True(t, v.Append(byte(i)))
	}
	require.False(t, v.Append(0xFF))
	assert.Equal(t, 39, v.Size())
	assert.Equal(t, 39, v.Capacity())
	for i := 0; i < 39; i++ {
		assert.Equal(t, byte(i), v.Get(i))
	}

	// 失败可恢复: 换能成功的分配源继续用
	v.SetAllocator(nil)
	require.True(t, v.Append(0xFF))
	assert.Equal(t, byte(0xFF), v.Get(39))
}

func TestLightVectorRefSetSlice(t *testing.T) {
	var v LightVector[int]
	require.True(t, v.SetSizeNoCopy(3))
	v.Set(0, 10)
	v.Set(1, 20)
	*v.Ref(2) = 30
	assert.Equal(t, []int{10, 20, 30}, v.Slice())
}
