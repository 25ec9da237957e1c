package boxsum

import "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/generic"

// PrefixSum writes the inclusive running sum of input into dst and returns
// it: dst[i] = input[0] + ... + input[i]. dst is resized to len(input),
// reusing its capacity. 32-bit accumulators hold any sequence shorter than
// 16 843 009 samples without wrapping.
func PrefixSum(dst []uint32, input []uint8) []uint32 {
	dst = resize(dst, len(input))
	if len(input) == 0 {
		return dst
	}

	activeKernel().Prefix(dst, input)
	return dst
}

// PrefixSumScalar is [PrefixSum] restricted to the generic kernel.
func PrefixSumScalar(dst []uint32, input []uint8) []uint32 {
	dst = resize(dst, len(input))
	generic.Prefix(dst, input)
	return dst
}
