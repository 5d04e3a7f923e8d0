package develop

import(
	"fmt"
	"image"

	"github.com/abworrall/rawdev/pkg/raw"
)

// A PixelTrace follows one output pixel through every stage of the
// pipeline, for debugging. The mosaic stages record the 2x2 RGGB block
// that the pixel sits in.
type PixelTrace struct {
	OutputPos  image.Point   // In output coords
	BlockPos   image.Point   // Top left photosite of the RGGB block, in mosaic coords
	Steps    []string
}

func newTraces(pts []image.Point, factor int) []*PixelTrace {
	traces := []*PixelTrace{}
	for _, pt := range pts {
		traces = append(traces, &PixelTrace{
			OutputPos: pt,
			BlockPos:  image.Point{(pt.X * factor) &^ 1, (pt.Y * factor) &^ 1},
		})
	}
	return traces
}

func (t *PixelTrace)add(stage, vals string) {
	t.Steps = append(t.Steps, fmt.Sprintf("%-12s: %s", stage, vals))
}

func traceMosaic(traces []*PixelTrace, stage string, m *raw.Mosaic) {
	for _, t := range traces {
		x, y := t.BlockPos.X, t.BlockPos.Y
		if !t.BlockPos.In(m.Bounds()) { continue }
		t.add(stage, fmt.Sprintf("[R %6d, G1 %6d, G2 %6d, B %6d]",
			m.Get(x, y), m.Get(x+1, y), m.Get(x, y+1), m.Get(x+1, y+1)))
	}
}

func traceRGB16(traces []*PixelTrace, stage string, img *raw.RGB16) {
	for _, t := range traces {
		if !t.OutputPos.In(img.Bounds()) { continue }
		r, g, b := img.RGBAt(t.OutputPos.X, t.OutputPos.Y)
		t.add(stage, fmt.Sprintf("[      0x%04X,       0x%04X,       0x%04X]", r, g, b))
	}
}

func traceRGB8(traces []*PixelTrace, stage string, img *raw.RGB8) {
	for _, t := range traces {
		if !t.OutputPos.In(img.Bounds()) { continue }
		r, g, b := img.RGBAt(t.OutputPos.X, t.OutputPos.Y)
		t.add(stage, fmt.Sprintf("[%12d, %12d, %12d]", r, g, b))
	}
}

func (t PixelTrace)String() string {
	str := fmt.Sprintf("----- Pixel @(%d,%d), block @(%d,%d) -----\n",
		t.OutputPos.X, t.OutputPos.Y, t.BlockPos.X, t.BlockPos.Y)
	for _, s := range t.Steps {
		str += s + "\n"
	}
	return str
}
