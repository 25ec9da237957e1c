// Package generic provides the scalar box-sum kernels.
package generic

// Prefix writes the inclusive running sum of src into dst.
func Prefix(dst []uint32, src []uint8) {
	dst = dst[:len(src)]

	var carry uint32
	for i, v := range src {
		carry += uint32(v)
		dst[i] = carry
	}
}

// Interior writes the unclipped window sums for positions [start, end).
// The 32-bit difference is truncated to 16 bits.
func Interior(dst []uint16, prefix []uint32, start, end, r int) {
	if start >= end {
		return
	}

	plus := prefix[start+r : end+r]
	minus := prefix[start-r-1 : end-r-1]
	out := dst[start:end]

	for i := range out {
		out[i] = uint16(plus[i] - minus[i])
	}
}
