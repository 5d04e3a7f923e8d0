package raw

import(
	"fmt"
	"math"

	"github.com/abworrall/rawdev/pkg/emath"
)

const(
	CurveLength = 0x10000 // one entry for every possible uint16 sample
)

// Calibration is the per-shot data that comes alongside a mosaic. It is
// treated as read-only for the whole development run.
type Calibration struct {
	Camera            string      // informational only, e.g. "NIKON Df"

	Curve             []uint16    // linearization LUT, raw code -> linear code. nil means identity.
	BlackLevel        *int        // nil means use the min sample in the (linearized) frame
	SaturationLevel   int         // the max sample value

	CameraMultipliers [4]float64  // white balance gains, ordered R, G1, B, G2
	CameraToOutput    emath.Mat3  // camera native RGB to a standard RGB space (rgb_cam)
	CDesc             CFA
}

// A CalibrationSource is anything that can supply the calibration for a
// frame; e.g. a YAML sidecar file, or a sensor decoder.
type CalibrationSource interface {
	CalibrationData() (Calibration, error)
}

// A Calibration is trivially its own source.
func (c Calibration)CalibrationData() (Calibration, error) {
	return c, c.Validate()
}

func IdentityCurve() []uint16 {
	c := make([]uint16, CurveLength)
	for i := range c {
		c[i] = uint16(i)
	}
	return c
}

func IsIdentityCurve(c []uint16) bool {
	if c == nil {
		return true
	}
	if len(c) != CurveLength {
		return false
	}
	for i, v := range c {
		if int(v) != i { return false }
	}
	return true
}

func IntPtr(i int) *int { return &i }

func (c Calibration)String() string {
	black := "min-of-frame"
	if c.BlackLevel != nil {
		black = fmt.Sprintf("%d", *c.BlackLevel)
	}
	return fmt.Sprintf("calibration[%q %s black=%s sat=%d mul=%v identity-curve=%v]",
		c.Camera, c.CDesc, black, c.SaturationLevel, c.CameraMultipliers, IsIdentityCurve(c.Curve))
}

// Validate does all the checks that can be done without seeing a frame.
func (c Calibration)Validate() error {
	if err := c.CDesc.Check(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}

	if c.Curve != nil && len(c.Curve) != CurveLength {
		return fmt.Errorf("calibration: curve has %d entries, need %d: %w", len(c.Curve), CurveLength, ErrPrecondition)
	}

	if c.SaturationLevel <= 0 || c.SaturationLevel > math.MaxUint16 {
		return fmt.Errorf("calibration: saturation level %d outside (0, 65535]: %w", c.SaturationLevel, ErrConfiguration)
	}
	if c.BlackLevel != nil {
		if *c.BlackLevel < 0 {
			return fmt.Errorf("calibration: black level %d is negative: %w", *c.BlackLevel, ErrConfiguration)
		}
		if c.SaturationLevel <= *c.BlackLevel {
			return fmt.Errorf("calibration: saturation %d <= black %d: %w", c.SaturationLevel, *c.BlackLevel, ErrConfiguration)
		}
	}

	for i, m := range c.CameraMultipliers {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return fmt.Errorf("calibration: multiplier[%d] is %v: %w", i, m, ErrConfiguration)
		}
	}
	if c.CameraMultipliers[1] <= 0 {
		return fmt.Errorf("calibration: G1 multiplier %v must be positive: %w", c.CameraMultipliers[1], ErrConfiguration)
	}

	for i, v := range c.CameraToOutput {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("calibration: matrix[%d] is %v: %w", i, v, ErrConfiguration)
		}
	}

	return nil
}

// WhiteBalanceRatios returns the red and blue gains, relative to G1
// (which is thus normalized to 1.0).
func (c Calibration)WhiteBalanceRatios() (float64, float64) {
	g := c.CameraMultipliers[1]
	return c.CameraMultipliers[0] / g, c.CameraMultipliers[2] / g
}

// NormalizedMultipliers is the R, G, B multipliers scaled so G1 == 1.
func (c Calibration)NormalizedMultipliers() [3]float64 {
	r, b := c.WhiteBalanceRatios()
	return [3]float64{r, 1.0, b}
}

// BlackLevelFor returns the explicit black level, or failing that the
// smallest value the frame will have once it's been linearized.
func (c Calibration)BlackLevelFor(m *Mosaic) int {
	if c.BlackLevel != nil {
		return *c.BlackLevel
	}

	min := math.MaxUint16
	for _, s := range m.Pix {
		v := int(s)
		if c.Curve != nil {
			v = int(c.Curve[s])
		}
		if v < min { min = v }
	}
	return min
}

// CheckLevels is the fail-fast guard for the level normalization range.
func CheckLevels(black, saturation int) error {
	if saturation <= black {
		return fmt.Errorf("saturation %d <= black %d, no usable range: %w", saturation, black, ErrConfiguration)
	}
	return nil
}
