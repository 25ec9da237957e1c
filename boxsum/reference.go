package boxsum

// EvaluateScalar returns the same box sums as [Evaluate] using a running
// window sum instead of a prefix array: the incoming right-edge sample is
// added and the expired left-edge sample subtracted at each step. It serves
// as the reference the kernels are tested against.
func EvaluateScalar(input []uint8, radius uint8, out []uint16) []uint16 {
	n := len(input)
	out = resize(out, n)
	if n == 0 {
		return out
	}

	r := int(radius)

	// Pre-fill with input[0 .. r-1], the window of pos = -1.
	var sum uint32
	for i := range min(n, r) {
		sum += uint32(input[i])
	}

	pos := 0

	// Ramp-up: right edge advances, left edge pinned at 0.
	limit := min(r+1, n-r)
	for ; pos < limit; pos++ {
		sum += uint32(input[pos+r])
		out[pos] = uint16(sum)
	}

	// Steady state: full window slides.
	limit = n - r
	for ; pos < limit; pos++ {
		sum += uint32(input[pos+r])
		sum -= uint32(input[pos-r-1])
		out[pos] = uint16(sum)
	}

	// Plateau: both edges clipped, the window is the whole sequence.
	limit = min(r+1, n)
	for ; pos < limit; pos++ {
		out[pos] = uint16(sum)
	}

	// Ramp-down: right edge pinned at n-1, left edge advances.
	for ; pos < n; pos++ {
		sum -= uint32(input[pos-r-1])
		out[pos] = uint16(sum)
	}

	return out
}
