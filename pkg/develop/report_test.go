package develop

import(
	"strings"
	"testing"

	"github.com/abworrall/rawdev/pkg/raw"
)

func TestReport(t *testing.T) {
	cal := neutralCalibration()
	cal.CameraMultipliers = [4]float64{4, 2, 3, 2}

	r := NewReport(cal, raw.MosaicStats(raw.Flat(4, 4, 100)))
	if r.Multipliers != [3]float64{2, 1, 1.5} {
		t.Errorf("multipliers: %v", r.Multipliers)
	}

	img := raw.NewRGB8(2, 1)
	img.SetRGB(0, 0, 255, 0, 0)
	img.SetRGB(1, 0, 255, 0, 0)
	r.AddOutput(img)

	if hex := r.MeanColor.Hex(); hex != "#ff0000" {
		t.Errorf("mean color %s, wanted #ff0000", hex)
	}

	str := r.String()
	for _, want := range []string{Version, "test", "#ff0000", "min=100"} {
		if !strings.Contains(str, want) {
			t.Errorf("report missing %q:\n%s", want, str)
		}
	}
}
