package develop

import(
	"fmt"
	"math"

	"github.com/abworrall/rawdev/pkg/ecolor"
	"github.com/abworrall/rawdev/pkg/emath"
	"github.com/abworrall/rawdev/pkg/raw"
)

// ColorMatrix maps camera native RGB into the output color space. It
// works in 8 bit fixed point, to give exactly reproducible output:
//
//  1. each channel drops to 8 bits (v >> 8)
//  2. the matrix is quantized to round(coef * 255)
//  3. out = (M . [r,g,b]) // 255, using floor division
//  4. each channel is clipped to [0,255]
func ColorMatrix(img *raw.RGB16, m emath.Mat3) (*raw.RGB8, error) {
	return colorMatrix(img, m, 0)
}

func colorMatrix(img *raw.RGB16, m emath.Mat3, workers int) (*raw.RGB8, error) {
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("color matrix: coefficient[%d] is %v: %w", i, v, raw.ErrConfiguration)
		}
	}
	q := ecolor.QuantizeMatrix(m)

	out := raw.NewRGB8(img.Width, img.Height)
	parallelRows(img.Height, workers, func(lo, hi int) {
		for i := 3*lo*img.Width; i < 3*hi*img.Width; i += 3 {
			r, g, b := q.Apply(int(img.Pix[i]>>8), int(img.Pix[i+1]>>8), int(img.Pix[i+2]>>8))
			out.Pix[i]   = uint8(emath.Clip(r, 0, 255))
			out.Pix[i+1] = uint8(emath.Clip(g, 0, 255))
			out.Pix[i+2] = uint8(emath.Clip(b, 0, 255))
		}
	})
	return out, nil
}
