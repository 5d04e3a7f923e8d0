package develop

import(
	"fmt"

	"github.com/abworrall/rawdev/pkg/raw"
)

// Linearize maps every sample `s` through the calibration curve, to
// undo any non-linear response baked in by the sensor. A nil curve
// is the identity.
//
// The input is consumed. If the curve is the identity then the input
// buffer is handed straight back, since the output would be identical.
func Linearize(m *raw.Mosaic, curve []uint16) (*raw.Mosaic, error) {
	return linearize(m, curve, 0)
}

func linearize(m *raw.Mosaic, curve []uint16, workers int) (*raw.Mosaic, error) {
	if curve != nil && len(curve) != raw.CurveLength {
		return nil, fmt.Errorf("linearize: curve has %d entries, need %d: %w", len(curve), raw.CurveLength, raw.ErrPrecondition)
	}
	if raw.IsIdentityCurve(curve) {
		return m, nil
	}

	// uint16 samples can always index a 65536 entry curve
	out := m.NewFromThis()
	parallelRows(m.Height, workers, func(lo, hi int) {
		for i := lo*m.Width; i < hi*m.Width; i++ {
			out.Pix[i] = curve[m.Pix[i]]
		}
	})
	return out, nil
}
