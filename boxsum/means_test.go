package boxsum

import (
	"testing"

	"github.com/cwbudde/algo-boxsum/internal/testutil"
)

func TestMeans(t *testing.T) {
	got := Means(nil, []uint8{1, 2, 3, 4, 5}, 1)
	want := []float64{1.5, 2, 3, 4, 4.5}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestMeansMatchesExactSums(t *testing.T) {
	// r=255 over 255s: sums exceed 16 bits but means stay exact.
	input := testutil.Constant(255, 600)
	got := Means(nil, input, 255)

	for pos, v := range got {
		if v < 254.999999 || v > 255.000001 {
			t.Fatalf("mean[%d] = %v, want 255", pos, v)
		}
	}

	input = testutil.DeterministicSamples(4, 80)
	for _, r := range testRadii {
		got = Means(got, input, r)

		want := make([]float64, len(input))
		for pos := range want {
			lo := max(0, pos-int(r))
			hi := min(len(input)-1, pos+int(r))
			want[pos] = float64(testutil.WindowSum(input, pos, int(r))) / float64(hi-lo+1)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestMeansEmpty(t *testing.T) {
	if got := Means(make([]float64, 4), nil, 3); len(got) != 0 {
		t.Fatalf("Means(empty) has %d elements", len(got))
	}
}

func TestFilterMeansEveryKernel(t *testing.T) {
	input := testutil.DeterministicSamples(12, 150)
	want := Means(nil, input, 6)

	opts := [][]Option{{WithScalarReference()}}
	for _, name := range Kernels() {
		opts = append(opts, []Option{WithKernel(name)})
	}

	for _, o := range opts {
		f, err := NewFilter(6, o...)
		if err != nil {
			t.Fatalf("NewFilter: %v", err)
		}
		t.Run(f.Kernel(), func(t *testing.T) {
			var got []float64
			for range 2 {
				got = f.Means(input, got)
				testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
			}
			if got := f.Means(nil, got); len(got) != 0 {
				t.Fatalf("Means(empty) has %d elements", len(got))
			}
		})
	}
}

func TestMeansReusesOutput(t *testing.T) {
	input := testutil.DeterministicSamples(13, 33)
	dst := make([]float64, 64)

	got := Means(dst, input, 2)
	if len(got) != len(input) || &got[0] != &dst[0] {
		t.Fatalf("Means did not reuse dst: len %d", len(got))
	}

	// Shorter follow-up calls must not see stale reciprocal widths.
	short := Means(nil, []uint8{6, 6}, 2)
	testutil.RequireSliceNearlyEqual(t, short, []float64{6, 6}, 1e-12)
}
