package raw

import(
	"fmt"

	"github.com/codahale/hdrhistogram"
)

// LevelStats summarizes the sample values in a mosaic. It is purely
// informational (it helps pick a black/saturation level by eye); the
// pipeline never reads it.
type LevelStats struct {
	Min, Max     int
	Mean         float64
	P01, P50, P99 int
	Count        int64
}

func (ls LevelStats)String() string {
	return fmt.Sprintf("levels[n=%d min=%d p01=%d p50=%d p99=%d max=%d mean=%.1f]",
		ls.Count, ls.Min, ls.P01, ls.P50, ls.P99, ls.Max, ls.Mean)
}

func MosaicStats(m *Mosaic) LevelStats {
	// Five significant figures keeps every uint16 value in its own bucket.
	h := hdrhistogram.New(0, 0xFFFF, 5)
	for _, s := range m.Pix {
		h.RecordValue(int64(s))
	}

	return LevelStats{
		Min:   int(h.Min()),
		Max:   int(h.Max()),
		Mean:  h.Mean(),
		P01:   int(h.ValueAtQuantile(1)),
		P50:   int(h.ValueAtQuantile(50)),
		P99:   int(h.ValueAtQuantile(99)),
		Count: h.TotalCount(),
	}
}
