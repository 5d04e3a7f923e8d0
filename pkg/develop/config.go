package develop

import(
	"fmt"
	"image"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/rawdev/pkg/ecolor"
)

/* Example config file ...

gamma: 2.2
tonecurve: power
demosaic: halfsize
workers: 0
verbosity: 1
crop: false
debugpixels:
  - x: 10
    y: 20

*/

type Config struct {
	Verbosity    int            `yaml:"verbosity"   koanf:"verbosity"`

	Gamma        float64        `yaml:"gamma"       koanf:"gamma"`      // exponent for the "power" tone curve
	ToneCurve    string         `yaml:"tonecurve"   koanf:"tonecurve"`  // "power", "srgb", or "linear"
	Demosaic     string         `yaml:"demosaic"    koanf:"demosaic"`   // "halfsize", or "bilinear"
	Workers      int            `yaml:"workers"     koanf:"workers"`    // goroutines per stage; 0 means one per CPU

	BlackLevel  *int            `yaml:"blacklevel,omitempty" koanf:"blacklevel"` // overrides the calibration
	Crop         bool           `yaml:"crop"        koanf:"crop"`       // trim the mosaic to its visible area first

	DebugPixels []image.Point   `yaml:"debugpixels" koanf:"debugpixels"` // in output coords; traced at Verbosity>0
	DumpDir      string         `yaml:"dumpdir"     koanf:"dumpdir"`     // if set, intermediate buffers are written here
}

func NewConfig() Config {
	return Config{
		Gamma:       ecolor.DefaultGamma,
		ToneCurve:   "power",
		Demosaic:    "halfsize",
		DebugPixels: []image.Point{},
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func LoadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	c, err := newConfigFromYaml(contents)
	if err != nil {
		return c, fmt.Errorf("config parse %s: %v", filename, err)
	}
	return c, c.Validate()
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("# can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// Validate makes sure all the named strategies exist.
func (c Config)Validate() error {
	if _, err := c.GetDemosaicer(); err != nil {
		return err
	}
	if _, err := c.GetToneCurve(); err != nil {
		return err
	}
	return nil
}

var(
	Demosaicers = []string{"halfsize", "bilinear"}
	ToneCurves  = []string{"power", "srgb", "linear"}
)

func (c Config)GetDemosaicer() (Demosaicer, error) {
	switch c.Demosaic {
	case "halfsize", "": return HalfSize{Workers: c.Workers}, nil
	case "bilinear":     return Bilinear{Workers: c.Workers}, nil
	default:
		return nil, fmt.Errorf("no demosaic algorithm named '%s', wanted %v", c.Demosaic, Demosaicers)
	}
}

// GetToneCurve returns nil for "linear", meaning skip the stage.
func (c Config)GetToneCurve() (*ecolor.Curve, error) {
	switch c.ToneCurve {
	case "power", "": return ecolor.Gamma(c.Gamma)
	case "srgb":      return ecolor.SRGB(), nil
	case "linear":    return nil, nil
	default:
		return nil, fmt.Errorf("no tone curve named '%s', wanted %v", c.ToneCurve, ToneCurves)
	}
}
