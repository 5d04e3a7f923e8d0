package ecolor

import(
	"math"
	"testing"
)

func TestGammaCurve(t *testing.T) {
	for _, g := range []float64{1.0, 1.8, 2.2, 2.4} {
		c, err := Gamma(g)
		if err != nil {
			t.Fatal(err)
		}
		if c.LUT[0] != 0 || c.LUT[255] != 255 {
			t.Errorf("%s: endpoints are wrong", c)
		}
		for i := 1; i < 256; i++ {
			if c.LUT[i] < c.LUT[i-1] {
				t.Errorf("%s: not monotonic at %d", c, i)
			}
		}
	}

	c, _ := Gamma(1.0)
	for i := 0; i < 256; i++ {
		if int(c.LUT[i]) != i {
			t.Errorf("gamma 1.0 is not identity at %d: %d", i, c.LUT[i])
		}
	}

	// Spot values, round((i/255)^(1/2.2) * 255)
	c, _ = Gamma(2.2)
	if c.LUT[1] != 21 || c.LUT[128] != 186 {
		t.Errorf("gamma 2.2: LUT[1]=%d LUT[128]=%d", c.LUT[1], c.LUT[128])
	}
}

func TestGammaCache(t *testing.T) {
	c1, _ := Gamma(2.2)
	c2, _ := Gamma(2.2)
	if c1 != c2 {
		t.Errorf("gamma curves were not cached")
	}
	if SRGB() != SRGB() {
		t.Errorf("srgb curve was not cached")
	}
}

func TestGammaErrors(t *testing.T) {
	for _, g := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Gamma(g); err == nil {
			t.Errorf("Gamma(%v) did not fail", g)
		}
	}
}

func TestCurveInverse(t *testing.T) {
	for _, c := range []*Curve{SRGB(), mustGamma(t, 2.2)} {
		inv := c.Inverse()
		for i := 0; i < 256; i++ {
			if d := int(inv.Apply(c.Apply(uint8(i)))) - i; d < -2 || d > 2 {
				t.Errorf("%s: round trip of %d is off by %d", c.Name, i, d)
			}
		}
	}
}

func mustGamma(t *testing.T, g float64) *Curve {
	c, err := Gamma(g)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
