package main

import(
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"

	"github.com/abworrall/rawdev/pkg/develop"
	"github.com/abworrall/rawdev/pkg/emath"
	"github.com/abworrall/rawdev/pkg/raw"
	"github.com/abworrall/rawdev/pkg/rawio"
)

var(
	k = koanf.New(".")

	fConfigFile      string
	fOutputFilename  string
	fVerbosity       int
	fGamma           float64
	fToneCurve       string
	fDemosaic        string
	fWorkers         int
	fBlackLevel      int
	fCrop            bool
	fDumpDir         string
	fPrintConf       bool
	fSynthetic       bool
)

func init() {
	flag.StringVar(&fConfigFile, "config", "rawdev.yaml", "config file (missing is fine)")
	flag.StringVar(&fOutputFilename, "o", "out.png", "name of output image file (.png or .tif)")
	flag.IntVar(&fVerbosity, "v", -1, "how verbose to get")
	flag.Float64Var(&fGamma, "gamma", 0, "exponent for the power tone curve")
	flag.StringVar(&fToneCurve, "tonecurve", "", "tone curve: "+strings.Join(develop.ToneCurves, ", "))
	flag.StringVar(&fDemosaic, "demosaic", "", "demosaic algorithm: "+strings.Join(develop.Demosaicers, ", "))
	flag.IntVar(&fWorkers, "workers", -1, "goroutines per stage (0 means one per CPU)")
	flag.IntVar(&fBlackLevel, "black", -1, "override the black level")
	flag.BoolVar(&fCrop, "crop", false, "trim the mosaic to the visible area in the sidecar")
	flag.StringVar(&fDumpDir, "dumpdir", "", "write intermediate buffers into this dir")
	flag.BoolVar(&fPrintConf, "conf", false, "print the final configuration, and exit")
	flag.BoolVar(&fSynthetic, "synthetic", false, "develop a generated flat gray RGGB scene")
}

// loadConfigFile layers the YAML file over whatever is already loaded. A
// missing file is fine; one that can't be parsed is not.
func loadConfigFile(filename string) error {
	if err := k.Load(file.Provider(filename), yaml.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading config '%s': %w", filename, err)
	}
	return nil
}

func setupconfig() develop.Config {
	k.Load(structs.Provider(develop.NewConfig(), "koanf"), nil)
	if err := loadConfigFile(fConfigFile); err != nil {
		log.Fatal(err)
	}

	c := develop.NewConfig()
	if err := k.Unmarshal("", &c); err != nil {
		log.Fatalf("error unmarshaling config: %v", err)
	}

	// Override the config file with command line args, if relevant
	if fVerbosity >= 0 {
		c.Verbosity = fVerbosity
	}
	if fGamma > 0 {
		c.Gamma = fGamma
	}
	if fToneCurve != "" {
		c.ToneCurve = fToneCurve
	}
	if fDemosaic != "" {
		c.Demosaic = fDemosaic
	}
	if fWorkers >= 0 {
		c.Workers = fWorkers
	}
	if fBlackLevel >= 0 {
		c.BlackLevel = raw.IntPtr(fBlackLevel)
	}
	if fCrop {
		c.Crop = true
	}
	if fDumpDir != "" {
		c.DumpDir = fDumpDir
	}

	return c
}

// sidecarFor finds the calibration for a mosaic: the 2nd arg if there is
// one, else a .yaml file with the same basename.
func sidecarFor(args []string) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	guess := strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".yaml"
	if _, err := os.Stat(guess); err != nil {
		return "", fmt.Errorf("no calibration given, and no '%s'", guess)
	}
	return guess, nil
}

func load(args []string) (*raw.Mosaic, raw.CalibrationSource, error) {
	if fSynthetic {
		cal := raw.Calibration{
			Camera:            "synthetic",
			BlackLevel:        raw.IntPtr(0),
			SaturationLevel:   develop.FullRange,
			CameraMultipliers: [4]float64{1, 1, 1, 1},
			CameraToOutput:    emath.Identity3(),
			CDesc:             raw.CFA_RGBG,
		}
		return raw.Flat(64, 64, 8192), cal, nil
	}

	if len(args) == 0 {
		return nil, nil, fmt.Errorf("usage: rawdev [flags] mosaic.tif [calibration.yaml]")
	}

	m, err := rawio.LoadMosaic(args[0])
	if err != nil {
		return nil, nil, err
	}

	sidecarFile, err := sidecarFor(args)
	if err != nil {
		return nil, nil, err
	}
	sidecar, err := rawio.LoadSidecar(sidecarFile)
	if err != nil {
		return nil, nil, err
	}
	m.Visible = sidecar.VisibleRect()

	if si, err := rawio.LoadShotInfo(args[0]); err == nil {
		log.Printf("Shot info: %s\n", si)
		if sidecar.Camera == "" {
			sidecar.Camera = si.Camera()
		}
	}

	return m, sidecar, nil
}

func main() {
	flag.Parse()
	log.Printf("rawdev starting (%s)\n", develop.Version)

	cfg := setupconfig()
	if fPrintConf {
		fmt.Print(cfg.AsYaml())
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	m, src, err := load(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	d, err := develop.NewDeveloper(cfg, src)
	if err != nil {
		log.Fatalf("calibration: %v", err)
	}

	report := develop.NewReport(d.Calibration, raw.MosaicStats(m))
	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	img, err := d.Develop(m)
	if err != nil {
		log.Fatalf("develop failed: %v", err)
	}
	report.AddOutput(img)

	log.Printf("Developed %s:-\n%s", img, report)
	if cfg.Verbosity > 1 {
		log.Printf("Output histograms:-\n%s", report.HistogramString())
	}

	if err := rawio.WriteImage(img, fOutputFilename); err != nil {
		log.Fatal(err)
	}
	log.Printf("output file written '%s'\n", fOutputFilename)
}
