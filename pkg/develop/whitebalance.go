package develop

import(
	"fmt"
	"math"

	"github.com/abworrall/rawdev/pkg/emath"
	"github.com/abworrall/rawdev/pkg/raw"
)

// WhiteBalance scales the red and blue photosites by their multipliers
// relative to G1; the greens are left as they are. The result is
// clipped to [0, FullRange]. Only RGGB mosaics are supported, anything
// else is an error rather than a mis-colored image.
func WhiteBalance(m *raw.Mosaic, cdesc raw.CFA, multipliers [4]float64) (*raw.Mosaic, error) {
	return whiteBalance(m, cdesc, multipliers, 0)
}

func whiteBalance(m *raw.Mosaic, cdesc raw.CFA, multipliers [4]float64, workers int) (*raw.Mosaic, error) {
	if err := cdesc.Check(); err != nil {
		return nil, fmt.Errorf("white balance: %w", err)
	}
	if g := multipliers[1]; g <= 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return nil, fmt.Errorf("white balance: G1 multiplier %v: %w", g, raw.ErrConfiguration)
	}

	rRatio := multipliers[0] / multipliers[1]
	bRatio := multipliers[2] / multipliers[1]

	scale := func(s uint16, ratio float64) uint16 {
		return uint16(emath.ClipF64(math.Floor(float64(s) * ratio), 0, FullRange))
	}

	out := m.NewFromThis()
	parallelRows(m.Height, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			in, row := m.Row(y), out.Row(y)
			for x, s := range in {
				switch {
				case y%2 == 0 && x%2 == 0: row[x] = scale(s, rRatio)
				case y%2 == 1 && x%2 == 1: row[x] = scale(s, bRatio)
				default:                   row[x] = uint16(emath.Clip(int(s), 0, FullRange))
				}
			}
		}
	})
	return out, nil
}
