package testutil

import "math/rand"

// DeterministicSamples generates uniformly distributed samples with a fixed
// seed for reproducibility.
func DeterministicSamples(seed int64, length int) []uint8 {
	out := make([]uint8, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = uint8(rng.Intn(256))
	}
	return out
}

// Ramp generates 0, 1, 2, ... wrapping at 256.
func Ramp(length int) []uint8 {
	out := make([]uint8, length)
	for i := range out {
		out[i] = uint8(i)
	}
	return out
}

// Impulse generates a single sample of the given value at pos.
func Impulse(length, pos int, value uint8) []uint8 {
	out := make([]uint8, length)
	if pos >= 0 && pos < length {
		out[pos] = value
	}
	return out
}

// Constant generates a constant-valued sequence.
func Constant(value uint8, length int) []uint8 {
	out := make([]uint8, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// WindowSum returns the exact sum of input[max(0,pos-r) .. min(n-1,pos+r)].
func WindowSum(input []uint8, pos, r int) uint32 {
	lo := max(0, pos-r)
	hi := min(len(input)-1, pos+r)

	var sum uint32
	for k := lo; k <= hi; k++ {
		sum += uint32(input[k])
	}
	return sum
}

// DirectBoxSum evaluates every window by direct summation and keeps the low
// 16 bits. It is O(n*r) and only meant as a test oracle.
func DirectBoxSum(input []uint8, r int) []uint16 {
	out := make([]uint16, len(input))
	for pos := range out {
		out[pos] = uint16(WindowSum(input, pos, r))
	}
	return out
}
