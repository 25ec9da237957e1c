// Package boxsum computes fixed-radius box sums over 8-bit sample sequences.
//
// For every position pos, the output holds the sum of all samples within
// radius r of pos, clipped to the sequence bounds:
//
//	out[pos] = input[max(0,pos-r)] + ... + input[min(n-1,pos+r)]
//
// Sums are accumulated in 32 bits through an inclusive prefix array and
// stored as the low 16 bits of the exact value. Every path (lane kernels,
// scalar kernels and the sliding-window reference) truncates the same way,
// so outputs are bit-identical even when a window sum exceeds 65535.
//
// [Evaluate] is the fast entry point. It builds the prefix array with the
// best kernel registered for the current CPU and splits the index range
// into a left border, an unclipped interior and a right border. Only the
// interior is handed to the kernel; borders are short and use scalar code.
// [EvaluateScalar] is an independently structured running-sum reference with
// the same contract. Use [Filter] to reuse scratch buffers or to pin a kernel.
//
// Kernels are selected at build time and at first use: build with the
// purego tag to compile only the generic kernels.
package boxsum
