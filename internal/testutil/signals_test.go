package testutil

import "testing"

func TestDeterministicSamplesReproducible(t *testing.T) {
	a := DeterministicSamples(42, 100)
	b := DeterministicSamples(42, 100)
	if len(a) != 100 {
		t.Fatalf("len = %d, want 100", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(300)
	if r[0] != 0 || r[255] != 255 || r[256] != 0 || r[299] != 43 {
		t.Fatalf("unexpected ramp values: %d %d %d %d", r[0], r[255], r[256], r[299])
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(8, 3, 9)
	for i, v := range x {
		want := uint8(0)
		if i == 3 {
			want = 9
		}
		if v != want {
			t.Fatalf("x[%d] = %d, want %d", i, v, want)
		}
	}

	if got := Impulse(4, 10, 1); got[0]|got[1]|got[2]|got[3] != 0 {
		t.Fatalf("out-of-range impulse wrote a sample: %v", got)
	}
}

func TestWindowSum(t *testing.T) {
	x := []uint8{1, 2, 3, 4, 5}
	cases := []struct {
		pos, r int
		want   uint32
	}{
		{pos: 0, r: 1, want: 3},
		{pos: 2, r: 1, want: 9},
		{pos: 4, r: 1, want: 9},
		{pos: 2, r: 0, want: 3},
		{pos: 1, r: 10, want: 15},
	}

	for _, tc := range cases {
		if got := WindowSum(x, tc.pos, tc.r); got != tc.want {
			t.Fatalf("WindowSum(pos=%d, r=%d) = %d, want %d", tc.pos, tc.r, got, tc.want)
		}
	}
}

func TestDirectBoxSum(t *testing.T) {
	got := DirectBoxSum([]uint8{1, 2, 3, 4, 5}, 1)
	RequireEqual(t, got, []uint16{3, 6, 9, 12, 9})
}
