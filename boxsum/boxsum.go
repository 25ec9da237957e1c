package boxsum

import "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"

// Evaluate returns the box sums of input with the given radius, computed with
// the kernel selected for this CPU. out is reused when its capacity allows
// and resized to len(input); nil allocates.
func Evaluate(input []uint8, radius uint8, out []uint16) []uint16 {
	n := len(input)
	out = resize(out, n)
	if n == 0 {
		return out
	}

	k := activeKernel()

	p := getPrefix(n)
	k.Prefix(*p, input)
	evaluateRegions(k.Interior, *p, int(radius), out)
	putPrefix(p)

	return out
}

// EvaluatePrefix derives box sums from a prefix array built by [PrefixSum].
// The output has len(prefix) elements.
func EvaluatePrefix(prefix []uint32, radius uint8, out []uint16) []uint16 {
	n := len(prefix)
	out = resize(out, n)
	if n == 0 {
		return out
	}

	evaluateRegions(activeKernel().Interior, prefix, int(radius), out)
	return out
}

// evaluateRegions fills out from prefix in three regions:
//
//	left border  [0, min(r,last)]      window starts at 0
//	interior     [r+1, n-r)            full 2r+1 window, delegated to interior
//	right border [max(n-r, r+1), last] window ends at last
//
// The interior is empty when n <= 2r+1.
func evaluateRegions(interior registry.InteriorFn, prefix []uint32, r int, out []uint16) {
	n := len(prefix)
	last := n - 1
	out = out[:n]

	leftEnd := min(r, last)
	for pos := 0; pos <= leftEnd; pos++ {
		out[pos] = uint16(prefix[min(last, pos+r)])
	}

	mainStart := r + 1
	mainEnd := n - r
	if mainStart < mainEnd {
		interior(out, prefix, mainStart, mainEnd, r)
	}

	total := prefix[last]
	for pos := max(mainEnd, leftEnd+1); pos < n; pos++ {
		left := max(0, pos-r)

		var before uint32
		if left > 0 {
			before = prefix[left-1]
		}
		out[pos] = uint16(total - before)
	}
}
