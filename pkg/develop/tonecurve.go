package develop

import(
	"github.com/abworrall/rawdev/pkg/ecolor"
	"github.com/abworrall/rawdev/pkg/raw"
)

// ApplyToneCurve looks up every channel of every pixel in the curve. The
// curve's domain and range are both [0,255], so there is nothing to clip.
func ApplyToneCurve(img *raw.RGB8, c *ecolor.Curve) *raw.RGB8 {
	return applyToneCurve(img, c, 0)
}

func applyToneCurve(img *raw.RGB8, c *ecolor.Curve, workers int) *raw.RGB8 {
	out := raw.NewRGB8(img.Width, img.Height)
	parallelRows(img.Height, workers, func(lo, hi int) {
		for i := 3*lo*img.Width; i < 3*hi*img.Width; i++ {
			out.Pix[i] = c.LUT[img.Pix[i]]
		}
	})
	return out
}
