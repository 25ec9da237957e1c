package boxsum

import vecmath "github.com/cwbudde/algo-vecmath"

// Means returns the box-blur average of input: each window's exact sum
// divided by the number of samples in the clipped window. Unlike [Evaluate]
// the sums are not truncated to 16 bits. dst is resized to len(input).
//
// Means uses the kernel selected for this CPU; use [Filter.Means] to pin one.
func Means(dst []float64, input []uint8, radius uint8) []float64 {
	n := len(input)
	dst = resize(dst, n)
	if n == 0 {
		return dst
	}

	p := getPrefix(n)
	defer putPrefix(p)

	activeKernel().Prefix(*p, input)
	return meansFromPrefix(dst, *p, int(radius))
}

// meansFromPrefix fills dst (len(dst) == len(prefix)) with the window means.
func meansFromPrefix(dst []float64, prefix []uint32, r int) []float64 {
	p := getReciprocals(len(prefix))
	defer putReciprocals(p)

	inv := *p
	last := len(prefix) - 1

	for pos := range dst {
		lo := max(0, pos-r)
		hi := min(last, pos+r)

		sum := prefix[hi]
		if lo > 0 {
			sum -= prefix[lo-1]
		}

		dst[pos] = float64(sum)
		inv[pos] = 1 / float64(hi-lo+1)
	}

	vecmath.MulBlockInPlace(dst, inv)
	return dst
}
