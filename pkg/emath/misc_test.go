package emath

import(
	"math"
	"testing"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct{
		a, b, want int
	}{
		{7, 2, 3},
		{6, 2, 3},
		{0, 255, 0},
		{-1, 255, -1},
		{-255, 255, -1},
		{-256, 255, -2},
		{-7, 2, -4},
	}
	for _, test := range tests {
		if got := FloorDiv(test.a, test.b); got != test.want {
			t.Errorf("FloorDiv(%d,%d) = %d, wanted %d", test.a, test.b, got, test.want)
		}
	}
}

func TestClip(t *testing.T) {
	if Clip(-3, 0, 255) != 0 || Clip(300, 0, 255) != 255 || Clip(17, 0, 255) != 17 {
		t.Errorf("Clip is broken")
	}
	if ClipF64(math.NaN(), 0, 1) != 0 || ClipF64(2, 0, 1) != 1 || ClipF64(0.5, 0, 1) != 0.5 {
		t.Errorf("ClipF64 is broken")
	}
}

func TestGammaRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 0.001, 0.04, 0.2, 0.5, 0.9, 1.0} {
		if got := GammaCompress_F64(GammaExpand_F64(f)); math.Abs(got - f) > 1e-9 {
			t.Errorf("round trip of %v gave %v", f, got)
		}
	}
}
