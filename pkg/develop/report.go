package develop

import(
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/skypies/util/histogram"

	"github.com/abworrall/rawdev/pkg/raw"
)

// A Report is the informational output that goes alongside a developed
// image: which version did the work, the white balance that was applied,
// and some numbers about the input and output. Nothing downstream reads it.
type Report struct {
	Version      string
	Camera       string
	Multipliers  [3]float64              // R, G, B; normalized so G == 1.0
	Levels       raw.LevelStats           // of the input mosaic
	MeanColor    colorful.Color           // of the output image, as sRGB [0,1]
	Histograms   [3]histogram.Histogram   // per output channel, one bucket per 8bit value
}

func NewReport(cal raw.Calibration, levels raw.LevelStats) Report {
	r := Report{
		Version:     Version,
		Camera:      cal.Camera,
		Multipliers: cal.NormalizedMultipliers(),
		Levels:      levels,
	}
	for i := range r.Histograms {
		r.Histograms[i] = histogram.Histogram{NumBuckets:256, ValMin:0, ValMax:256}
	}
	return r
}

// AddOutput accumulates the per channel histograms and mean color.
func (r *Report)AddOutput(img *raw.RGB8) {
	var sum [3]float64
	for i := 0; i < len(img.Pix); i += 3 {
		for c := 0; c < 3; c++ {
			sum[c] += float64(img.Pix[i+c])
			r.Histograms[c].Add(histogram.ScalarVal(int(img.Pix[i+c])))
		}
	}

	if n := float64(img.Width * img.Height); n > 0 {
		r.MeanColor = colorful.Color{
			R: sum[0] / n / 255.0,
			G: sum[1] / n / 255.0,
			B: sum[2] / n / 255.0,
		}
	}
}

func (r Report)String() string {
	str := fmt.Sprintf("version             : %s\n", r.Version)
	if r.Camera != "" {
		str += fmt.Sprintf("camera              : %s\n", r.Camera)
	}
	str += fmt.Sprintf("white balance mults : [%.4f, %.4f, %.4f]\n", r.Multipliers[0], r.Multipliers[1], r.Multipliers[2])
	str += fmt.Sprintf("input levels        : %s\n", r.Levels)
	str += fmt.Sprintf("output mean color   : %s\n", r.MeanColor.Clamped().Hex())
	return str
}

// HistogramString dumps the output channel histograms, for verbose logging.
func (r Report)HistogramString() string {
	str := ""
	for i, name := range []string{"R", "G", "B"} {
		str += fmt.Sprintf("%s: %v\n", name, r.Histograms[i])
	}
	return str
}
