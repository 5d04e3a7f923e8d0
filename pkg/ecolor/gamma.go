package ecolor

import(
	"fmt"
	"math"
	"sync"

	"github.com/abworrall/rawdev/pkg/emath"
)

const(
	DefaultGamma = 2.2
)

// A Curve is a 256 entry lookup table from 8bit linear values to 8bit
// perceptual values. Both domain and range are exactly [0,255], so a
// lookup never needs clipping.
type Curve struct {
	Name string
	LUT  [256]uint8

	fwd  func(float64) float64 // over [0,1]
	inv  func(float64) float64
}

var(
	curvesMu sync.Mutex
	curves = map[float64]*Curve{}  // keyed by gamma exponent; built once, then read-only

	srgbOnce  sync.Once
	srgbCurve *Curve
)

// Gamma returns the power law curve: LUT[i] = round((i/255)^(1/g) * 255).
// Curves are cached per exponent, so every frame shares the same table.
func Gamma(g float64) (*Curve, error) {
	if math.IsNaN(g) || math.IsInf(g, 0) || g <= 0 {
		return nil, fmt.Errorf("gamma exponent %v must be positive", g)
	}

	curvesMu.Lock()
	defer curvesMu.Unlock()

	if c, exists := curves[g]; exists {
		return c, nil
	}

	c := newCurve(fmt.Sprintf("gamma%.2f", g),
		func(f float64) float64 { return math.Pow(f, 1.0/g) },
		func(f float64) float64 { return math.Pow(f, g) })
	curves[g] = c
	return c, nil
}

// SRGB returns the piecewise sRGB transfer curve (a linear toe, then a
// 1/2.4 power), as an alternative to a plain gamma exponent.
func SRGB() *Curve {
	srgbOnce.Do(func() {
		srgbCurve = newCurve("srgb", emath.GammaExpand_F64, emath.GammaCompress_F64)
	})
	return srgbCurve
}

func newCurve(name string, fwd, inv func(float64) float64) *Curve {
	c := &Curve{Name:name, fwd:fwd, inv:inv}
	for i := 0; i < 256; i++ {
		c.LUT[i] = lookupValue(fwd, i)
	}
	return c
}

func lookupValue(f func(float64) float64, i int) uint8 {
	v := math.Round(f(float64(i) / 255.0) * 255.0)
	return uint8(emath.ClipF64(v, 0, 255))
}

func (c *Curve)Apply(v uint8) uint8 { return c.LUT[v] }

// Inverse is the curve that maps perceptual values back to linear ones.
// Where the forward curve merged several inputs into one output, the
// round trip is only good to within that quantization.
func (c *Curve)Inverse() *Curve {
	return newCurve(c.Name+"-inverse", c.inv, c.fwd)
}

func (c *Curve)String() string {
	return fmt.Sprintf("curve[%s: 0->%d 64->%d 128->%d 192->%d 255->%d]",
		c.Name, c.LUT[0], c.LUT[64], c.LUT[128], c.LUT[192], c.LUT[255])
}
