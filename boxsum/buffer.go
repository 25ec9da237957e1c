package boxsum

import "sync"

// resize returns s with length n, reusing its backing array when the
// capacity allows. Contents are not preserved; every caller overwrites all
// n elements.
func resize[T uint16 | uint32 | float64](s []T, n int) []T {
	if n <= cap(s) {
		return s[:n]
	}
	return make([]T, n)
}

// prefixPool recycles prefix scratch for the one-shot entry points.
var prefixPool = sync.Pool{
	New: func() any {
		return new([]uint32)
	},
}

func getPrefix(n int) *[]uint32 {
	p := prefixPool.Get().(*[]uint32)
	*p = resize(*p, n)
	return p
}

func putPrefix(p *[]uint32) {
	if p == nil {
		return
	}
	prefixPool.Put(p)
}

// reciprocalPool recycles the reciprocal window widths used by the mean paths.
var reciprocalPool = sync.Pool{
	New: func() any {
		return new([]float64)
	},
}

func getReciprocals(n int) *[]float64 {
	p := reciprocalPool.Get().(*[]float64)
	*p = resize(*p, n)
	return p
}

func putReciprocals(p *[]float64) {
	if p == nil {
		return
	}
	reciprocalPool.Put(p)
}
