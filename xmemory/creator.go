package xmemory

// 分配源. 用大块预分配摊薄小分配的开销,
// 切出的子slice都带容量上限, 互不越界.

// SliceCreator 块摊薄分配器.
// 超过块大小的请求直接make, 其余从当前块切出
type SliceCreator[T any] struct {
	buf []T
	idx int
}

func (cr *SliceCreator[T]) Create(slen, scap, chunk int) []T {
	if scap > chunk {
		return make([]T, slen, scap)
	}
	if cr.idx+scap > len(cr.buf) {
		cr.buf = make([]T, chunk)
		cr.idx = 0
	}
	current := cr.buf[cr.idx : cr.idx+slen : cr.idx+scap]
	cr.idx += scap
	return current
}

// FixedCreator 单块复用分配器. 每次都返回同一块的前缀,
// 只适合用完即弃的临时buffer
type FixedCreator[T any] struct {
	fixed []T
}

func (cr *FixedCreator[T]) Create(slen, scap, chunk int) []T {
	if scap > chunk {
		return make([]T, slen, scap)
	}
	if cr.fixed == nil {
		cr.fixed = make([]T, chunk)
	}
	return cr.fixed[:slen:scap]
}

// LimitCreator 带元素总预算的分配器.
// 超预算返回nil, 与LightVector.SetAllocator对接,
// 给分配失败路径一个真实的生产者.
type LimitCreator[T any] struct {
	Budget int // 可分配元素总数
	used   int
}

// Alloc 申请n个元素. 超预算返回nil
func (cr *LimitCreator[T]) Alloc(n int) []T {
	if cr.used+n > cr.Budget {
		return nil
	}
	cr.used += n
	return make([]T, n)
}

// Used 已消耗的预算
func (cr *LimitCreator[T]) Used() int {
	return cr.used
}

// Reset 预算归零重计
func (cr *LimitCreator[T]) Reset() {
	cr.used = 0
}
