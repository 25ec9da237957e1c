package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-boxsum/boxsum"
	"github.com/cwbudde/algo-boxsum/internal/testutil"
)

var compareRadii = []uint8{0, 1, 3, 7, 16, 255}

// runCompare evaluates every registered kernel against the scalar reference
// on seeded random input and reports one row per kernel and radius.
// It returns false if any output differs.
func runCompare(w io.Writer, size int, seed int64) bool {
	rng := rand.New(rand.NewSource(seed))
	input := make([]uint8, size)
	for i := range input {
		input[i] = uint8(rng.Intn(256))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tRadius\tSize\tResult\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return false
	}

	ok := true
	var got, want []uint16

	for _, r := range compareRadii {
		want = boxsum.EvaluateScalar(input, r, want)

		for _, name := range boxsum.Kernels() {
			f, err := boxsum.NewFilter(r, boxsum.WithKernel(name))
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return false
			}

			got = f.Process(input, got)

			result := "ok"
			if pos := testutil.FirstMismatch(got, want); pos >= 0 {
				ok = false
				result = mismatchResult(got, want, pos)
			}

			if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", name, r, size, result); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return false
			}
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return false
	}
	return ok
}

func mismatchResult(got, want []uint16, pos int) string {
	if pos >= len(got) || pos >= len(want) {
		return fmt.Sprintf("MISMATCH: length %d, want %d", len(got), len(want))
	}
	return fmt.Sprintf("MISMATCH at %d: got %d, want %d", pos, got[pos], want[pos])
}
