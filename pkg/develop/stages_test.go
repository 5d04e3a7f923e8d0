package develop

import(
	"errors"
	"math"
	"testing"

	"github.com/abworrall/rawdev/pkg/emath"
	"github.com/abworrall/rawdev/pkg/raw"
)

func TestLinearize(t *testing.T) {
	m := raw.Gradient(8, 4, 4000)

	// Identity hands back the same buffer
	for _, curve := range [][]uint16{nil, raw.IdentityCurve()} {
		out, err := Linearize(m, curve)
		if err != nil {
			t.Fatal(err)
		}
		if out != m {
			t.Errorf("identity curve made a new mosaic")
		}
	}

	halve := raw.IdentityCurve()
	for i := range halve {
		halve[i] = uint16(i / 2)
	}
	out, err := Linearize(m, halve)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range m.Pix {
		if out.Pix[i] != s/2 {
			t.Errorf("[%d] %d -> %d, wanted %d", i, s, out.Pix[i], s/2)
		}
	}

	if _, err := Linearize(m, make([]uint16, 100)); !errors.Is(err, raw.ErrPrecondition) {
		t.Errorf("short curve: got %v", err)
	}
}

func TestNormalizeLevels(t *testing.T) {
	if s := LevelScale(1000, 5000); s != 4 {
		t.Errorf("LevelScale(1000,5000) = %d, wanted 4", s)
	}
	if s := LevelScale(0, 65535); s != 0 {
		t.Errorf("LevelScale(0,65535) = %d, wanted 0", s)
	}

	m, _ := raw.NewMosaicFrom(2, 2, []uint16{999, 1000, 3000, 6000})
	out, err := NormalizeLevels(m, 1000, 5000)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0, 0, 8000, FullRange}
	for i := range want {
		if out.Pix[i] != want[i] {
			t.Errorf("[%d] %d -> %d, wanted %d", i, m.Pix[i], out.Pix[i], want[i])
		}
	}

	if _, err := NormalizeLevels(m, 5000, 5000); !errors.Is(err, raw.ErrConfiguration) {
		t.Errorf("sat==black: got %v", err)
	}
}

func TestWhiteBalance(t *testing.T) {
	// R, G1 / G2, B
	m := raw.Synthetic(4, 4, 1000, 5000, 20000, 1001)
	m.Set(2, 2, 10000) // an R that will clip

	out, err := WhiteBalance(m, raw.CFA_RGBG, [4]float64{2.0, 1.0, 1.5, 1.0})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct{
		x, y int
		want uint16
	}{
		{0, 0, 2000},      // R * 2
		{1, 0, 5000},      // G1 untouched
		{0, 1, FullRange}, // G2 only clipped
		{1, 1, 1501},      // B * 1.5, floored
		{2, 2, FullRange}, // R clipped
	}
	for _, test := range tests {
		if got := out.Get(test.x, test.y); got != test.want {
			t.Errorf("(%d,%d) = %d, wanted %d", test.x, test.y, got, test.want)
		}
	}

	// The multipliers are relative to G1
	out, _ = WhiteBalance(m, raw.CFA_RGBG, [4]float64{4.0, 2.0, 3.0, 2.0})
	if out.Get(0, 0) != 2000 || out.Get(1, 1) != 1501 {
		t.Errorf("unnormalized multipliers gave R=%d B=%d", out.Get(0, 0), out.Get(1, 1))
	}

	for _, s := range out.Pix {
		if s > FullRange {
			t.Errorf("sample %d is out of range", s)
		}
	}

	if _, err := WhiteBalance(m, "GRBG", [4]float64{1, 1, 1, 1}); !errors.Is(err, raw.ErrUnsupportedCFA) {
		t.Errorf("GRBG: got %v", err)
	}
	if _, err := WhiteBalance(m, raw.CFA_RGBG, [4]float64{1, 0, 1, 1}); !errors.Is(err, raw.ErrConfiguration) {
		t.Errorf("zero G1: got %v", err)
	}
}

func TestGreenOf(t *testing.T) {
	if g := greenOf(10, 20); g != 15 {
		t.Errorf("greenOf(10,20) = %d", g)
	}
	if g := greenOf(11, 21); g != 16 {
		t.Errorf("greenOf(11,21) = %d", g)
	}
	// Expanded samples are multiples of 4, so halving first would agree
	if g := greenOf(44, 84); g != 64 {
		t.Errorf("greenOf(44,84) = %d", g)
	}
	if g := greenOf(0xFFFC, 0xFFFC); g != 0xFFFC {
		t.Errorf("greenOf at full scale = %d", g)
	}
}

func TestHalfSize(t *testing.T) {
	m, _ := raw.NewMosaicFrom(4, 4, []uint16{
		100, 200, 300, 400,
		500, 600, 700, 800,
		  0,   0,   0,   0,
		  0,   0,   0, 16383,
	})

	img, err := HalfSize{}.Demosaic(m)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("got %s, wanted 2x2", img)
	}

	tests := []struct{
		x, y    int
		r, g, b uint16
	}{
		{0, 0, 400, 1400, 2400},
		{1, 0, 1200, 2200, 3200},
		{0, 1, 0, 0, 0},
		{1, 1, 0, 0, 65532},
	}
	for _, test := range tests {
		r, g, b := img.RGBAt(test.x, test.y)
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("(%d,%d) = [%d %d %d], wanted [%d %d %d]", test.x, test.y, r, g, b, test.r, test.g, test.b)
		}
	}

	if _, err := (HalfSize{}).Demosaic(raw.NewMosaic(3, 4)); !errors.Is(err, raw.ErrPrecondition) {
		t.Errorf("odd width: got %v", err)
	}
}

func TestBilinear(t *testing.T) {
	m := raw.Synthetic(6, 4, 100, 200, 200, 300)
	img, err := Bilinear{}.Demosaic(m)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 6 || img.Height != 4 {
		t.Fatalf("got %s, wanted 6x4", img)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if r, g, b := img.RGBAt(x, y); r != 400 || g != 800 || b != 1200 {
				t.Errorf("(%d,%d) = [%d %d %d]", x, y, r, g, b)
			}
		}
	}
}

func TestColorMatrix(t *testing.T) {
	img := raw.NewRGB16(2, 1)
	img.SetRGB(0, 0, 0x8000, 0x4000, 0xFFFF)
	img.SetRGB(1, 0, 10<<8, 20<<8, 0)

	out, err := ColorMatrix(img, emath.Identity3())
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b := out.RGBAt(0, 0); r != 128 || g != 64 || b != 255 {
		t.Errorf("identity gave [%d %d %d]", r, g, b)
	}

	// Negative results clip to zero, big ones to 255
	m := emath.Mat3{
		1, -1, 0,
		0,  0, 20,
		0,  1, 0,
	}
	out, err = ColorMatrix(img, m)
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b := out.RGBAt(1, 0); r != 0 || g != 0 || b != 20 {
		t.Errorf("got [%d %d %d], wanted [0 0 20]", r, g, b)
	}
	if _, g, _ := out.RGBAt(0, 0); g != 255 {
		t.Errorf("got g=%d, wanted 255", g)
	}

	m[4] = math.NaN()
	if _, err := ColorMatrix(img, m); !errors.Is(err, raw.ErrConfiguration) {
		t.Errorf("NaN coefficient: got %v", err)
	}
}

func TestParallelRows(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 7, 100} {
		seen := make([]int, 37)
		parallelRows(len(seen), workers, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				seen[i]++
			}
		})
		for i, n := range seen {
			if n != 1 {
				t.Errorf("workers=%d: row %d visited %d times", workers, i, n)
			}
		}
	}
}
