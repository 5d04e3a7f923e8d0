package develop

import(
	"fmt"
	"log"
	"path/filepath"

	"github.com/abworrall/rawdev/pkg/ecolor"
	"github.com/abworrall/rawdev/pkg/raw"
)

// A Developer turns mosaics into displayable 8bit RGB images. All its
// inputs are checked when it is built, so that a bad calibration fails
// before any stage runs. It holds no per-frame state, and can develop
// any number of frames.
type Developer struct {
	Config
	Calibration raw.Calibration

	demosaicer  Demosaicer
	toneCurve  *ecolor.Curve
}

func NewDeveloper(cfg Config, src raw.CalibrationSource) (*Developer, error) {
	cal, err := src.CalibrationData()
	if err != nil {
		return nil, err
	}
	if err := cal.Validate(); err != nil {
		return nil, err
	}

	d := Developer{Config:cfg, Calibration:cal}

	if d.demosaicer, err = cfg.GetDemosaicer(); err != nil {
		return nil, fmt.Errorf("developer: %w", err)
	}
	if d.toneCurve, err = cfg.GetToneCurve(); err != nil {
		return nil, fmt.Errorf("developer: %w", err)
	}

	if cfg.BlackLevel != nil {
		if err := raw.CheckLevels(*cfg.BlackLevel, cal.SaturationLevel); err != nil {
			return nil, fmt.Errorf("developer: black level override: %w", err)
		}
	}

	return &d, nil
}

func (d *Developer)String() string {
	curve := "linear"
	if d.toneCurve != nil { curve = d.toneCurve.String() }
	return fmt.Sprintf("developer[%s, demosaic=%s, tone=%s]", d.Calibration, d.demosaicer.Name(), curve)
}

// BlackLevelFor picks the black level for a frame: the config override,
// then the calibration's value, then the smallest linearized sample.
func (d *Developer)BlackLevelFor(m *raw.Mosaic) int {
	if d.Config.BlackLevel != nil {
		return *d.Config.BlackLevel
	}
	return d.Calibration.BlackLevelFor(m)
}

// Develop runs all the stages over the mosaic, which it takes ownership of:
//
//   mosaic -> linearized -> normalized -> balanced
//          -> RGB16 (demosaic) -> RGB8 (color matrix) -> RGB8 (tone curve)
//
// Any failure means no image at all. Develop is safe to call from many
// goroutines at once.
func (d *Developer)Develop(m *raw.Mosaic) (*raw.RGB8, error) {
	img, traces, err := d.develop(m)
	if err != nil {
		return nil, err
	}
	if d.Verbosity > 0 {
		for _, t := range traces {
			log.Printf("%s", t)
		}
	}
	return img, nil
}

// develop also returns the traces for Config.DebugPixels, if any.
func (d *Developer)develop(m *raw.Mosaic) (*raw.RGB8, []*PixelTrace, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, fmt.Errorf("develop: %w", err)
	}

	if d.Config.Crop {
		cropped, err := m.Crop()
		if err != nil {
			return nil, nil, fmt.Errorf("develop: %w", err)
		}
		m = cropped
	}

	cal := d.Calibration
	black := d.BlackLevelFor(m)
	if err := raw.CheckLevels(black, cal.SaturationLevel); err != nil {
		return nil, nil, fmt.Errorf("develop: %w", err)
	}
	if LevelScale(black, cal.SaturationLevel) == 0 {
		log.Printf("develop: levels [%d,%d] are wider than 14 bits, output will be black\n", black, cal.SaturationLevel)
	}

	traces := newTraces(d.Config.DebugPixels, d.demosaicer.Factor())
	traceMosaic(traces, "raw", m)
	if d.Verbosity > 0 {
		log.Printf("Developing %s with %s, black=%d\n", m, d, black)
	}

	m, err := linearize(m, cal.Curve, d.Workers)
	if err != nil {
		return nil, nil, err
	}
	traceMosaic(traces, "linearized", m)
	d.dumpMosaic(m, "1-linearized")

	if m, err = normalizeLevels(m, black, cal.SaturationLevel, d.Workers); err != nil {
		return nil, nil, err
	}
	traceMosaic(traces, "normalized", m)
	d.dumpMosaic(m, "2-normalized")

	if m, err = whiteBalance(m, cal.CDesc, cal.CameraMultipliers, d.Workers); err != nil {
		return nil, nil, err
	}
	traceMosaic(traces, "balanced", m)
	d.dumpMosaic(m, "3-balanced")

	rgb16, err := d.demosaicer.Demosaic(m)
	if err != nil {
		return nil, nil, err
	}
	traceRGB16(traces, "demosaiced", rgb16)
	d.dumpHDR(rgb16, "4-demosaiced")

	img, err := colorMatrix(rgb16, cal.CameraToOutput, d.Workers)
	if err != nil {
		return nil, nil, err
	}
	traceRGB8(traces, "colormatrix", img)

	if d.toneCurve != nil {
		img = applyToneCurve(img, d.toneCurve, d.Workers)
		traceRGB8(traces, "tonecurve", img)
	}

	return img, traces, nil
}

func (d *Developer)dumpMosaic(m *raw.Mosaic, name string) {
	if d.DumpDir == "" { return }
	filename := filepath.Join(d.DumpDir, name+".png")
	if err := raw.DumpMosaic(m, name, filename); err != nil {
		log.Printf("dump: %v\n", err)
	}
}

func (d *Developer)dumpHDR(img *raw.RGB16, name string) {
	if d.DumpDir == "" { return }
	filename := filepath.Join(d.DumpDir, name+".hdr")
	if err := raw.DumpHDR(img, filename); err != nil {
		log.Printf("dump: %v\n", err)
	}
}
