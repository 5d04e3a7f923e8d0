package develop

import(
	"github.com/abworrall/rawdev/pkg/emath"
	"github.com/abworrall/rawdev/pkg/raw"
)

const(
	// FullRange is the working range for the mosaic stages: 14 bits,
	// leaving two bits of headroom that the demosaic stage expands into.
	FullRange = 1<<14 - 1
)

// LevelScale is the integer gain that maps [black, saturation] onto
// [0, FullRange]. It is floor(FullRange / (saturation - black)), and so
// it is zero if the sensor range is wider than 14 bits.
func LevelScale(black, saturation int) int {
	return FullRange / (saturation - black)
}

// NormalizeLevels subtracts the black level, scales up to the working
// range, and clips to [0, FullRange]. It fails if the saturation level
// is not above the black level.
func NormalizeLevels(m *raw.Mosaic, black, saturation int) (*raw.Mosaic, error) {
	return normalizeLevels(m, black, saturation, 0)
}

func normalizeLevels(m *raw.Mosaic, black, saturation, workers int) (*raw.Mosaic, error) {
	if err := raw.CheckLevels(black, saturation); err != nil {
		return nil, err
	}
	scale := LevelScale(black, saturation)

	out := m.NewFromThis()
	parallelRows(m.Height, workers, func(lo, hi int) {
		for i := lo*m.Width; i < hi*m.Width; i++ {
			v := (int(m.Pix[i]) - black) * scale  // may go -ve, int is wide enough
			out.Pix[i] = uint16(emath.Clip(v, 0, FullRange))
		}
	})
	return out, nil
}
