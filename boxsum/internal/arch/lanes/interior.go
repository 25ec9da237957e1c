package lanes

// group is one 8-lane group of 32-bit accumulators.
type group [halfSize]uint32

// Interior writes uint16(prefix[pos+r] - prefix[pos-r-1]) for pos in
// [start, end), BlockSize positions per iteration as two 8-lane groups.
// Narrowing truncates, matching the scalar kernels bit for bit.
func Interior(dst []uint16, prefix []uint32, start, end, r int) {
	pos := start
	for ; pos+BlockSize <= end; pos += BlockSize {
		plus := prefix[pos+r : pos+r+BlockSize : pos+r+BlockSize]
		minus := prefix[pos-r-1 : pos-r-1+BlockSize : pos-r-1+BlockSize]
		out := dst[pos : pos+BlockSize : pos+BlockSize]

		var d0, d1 group
		sub(&d0, plus[:halfSize], minus[:halfSize])
		sub(&d1, plus[halfSize:], minus[halfSize:])

		narrow(out[:halfSize], &d0)
		narrow(out[halfSize:], &d1)
	}

	for ; pos < end; pos++ {
		sum := prefix[pos+r] - prefix[pos-r-1]
		dst[pos] = uint16(sum)
	}
}

func sub(d *group, a, b []uint32) {
	a = a[:halfSize]
	b = b[:halfSize]
	for l := range d {
		d[l] = a[l] - b[l]
	}
}

// narrow keeps the low 16 bits of each lane.
func narrow(dst []uint16, d *group) {
	dst = dst[:halfSize]
	for l := range d {
		dst[l] = uint16(d[l])
	}
}
