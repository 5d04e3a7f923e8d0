package rawio

import(
	"fmt"
	"image"
	"io/ioutil"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/rawdev/pkg/ecolor"
	"github.com/abworrall/rawdev/pkg/emath"
	"github.com/abworrall/rawdev/pkg/raw"
)

/* Example calibration sidecar, with the values libraw reports for a
   Nikon Df NEF (`color.black`, `color.maximum`, etc.)

camera: NIKON Df
cdesc: RGBG
black: 600
maximum: 15892
cam_mul: [2.0117, 1.0, 1.4258, 1.0]
rgb_cam:
  - [ 1.7244, -0.6325, -0.0919, 0]
  - [-0.1671,  1.4938, -0.3267, 0]
  - [ 0.0375, -0.4813,  1.4438, 0]
visible:
  x: 0
  y: 0
  width: 4936
  height: 3288

Instead of rgb_cam, either `cam_xyz` (libraw's, or a DNG ColorMatrix) or
`forward_matrix` (a DNG ForwardMatrix) can be given, as 3 rows of 3.

If there is no `black`, the smallest value in the frame is used. If
there is no `curve`, it is the identity; otherwise it is a list of
[in, out] control points, joined by straight lines.

*/

// A Sidecar is a YAML file holding the calibration for one or more
// mosaics, plus the visible (uncropped) area of the sensor.
type Sidecar struct {
	Camera         string        `yaml:"camera"`
	CDesc          string        `yaml:"cdesc"`
	Black         *int           `yaml:"black,omitempty"`
	Maximum        int           `yaml:"maximum"`
	CamMul         []float64     `yaml:"cam_mul,flow"`
	RGBCam      [][]float64      `yaml:"rgb_cam,omitempty"`
	CamXYZ      [][]float64      `yaml:"cam_xyz,omitempty"`
	ForwardMatrix [][]float64    `yaml:"forward_matrix,omitempty"`
	Curve       [][]int          `yaml:"curve,omitempty"`
	Visible       *VisibleArea   `yaml:"visible,omitempty"`
}

type VisibleArea struct {
	X, Y          int
	Width, Height int
}

func LoadSidecar(filename string) (Sidecar, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Sidecar{}, fmt.Errorf("sidecar read %s: %v", filename, err)
	}
	return NewSidecarFromYaml(contents)
}

func NewSidecarFromYaml(b []byte) (Sidecar, error) {
	s := Sidecar{CDesc: string(raw.CFA_RGBG), CamMul: []float64{1, 1, 1, 1}}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("sidecar parse: %v", err)
	}
	return s, nil
}

func (s Sidecar)AsYaml() string {
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("# can't marshal sidecar yaml: %v\n", err)
	}
	return string(b)
}

// VisibleRect is empty if the sidecar doesn't say.
func (s Sidecar)VisibleRect() image.Rectangle {
	if s.Visible == nil {
		return image.Rectangle{}
	}
	v := s.Visible
	return image.Rect(v.X, v.Y, v.X+v.Width, v.Y+v.Height)
}

// CalibrationData implements raw.CalibrationSource.
func (s Sidecar)CalibrationData() (raw.Calibration, error) {
	cal := raw.Calibration{
		Camera:          s.Camera,
		BlackLevel:      s.Black,
		SaturationLevel: s.Maximum,
	}

	cdesc, err := raw.ParseCFA(s.CDesc)
	if err != nil {
		return cal, fmt.Errorf("sidecar: %w", err)
	}
	cal.CDesc = cdesc

	switch len(s.CamMul) {
	case 3: // no G2 given, assume it matches G1
		cal.CameraMultipliers = [4]float64{s.CamMul[0], s.CamMul[1], s.CamMul[2], s.CamMul[1]}
	case 4:
		copy(cal.CameraMultipliers[:], s.CamMul)
	default:
		return cal, fmt.Errorf("sidecar: cam_mul has %d values, want 3 or 4: %w", len(s.CamMul), raw.ErrConfiguration)
	}

	if cal.CameraToOutput, err = s.cameraToOutput(); err != nil {
		return cal, fmt.Errorf("sidecar: %w", err)
	}

	if len(s.Curve) > 0 {
		if cal.Curve, err = CurveFromPoints(s.Curve); err != nil {
			return cal, fmt.Errorf("sidecar: %w", err)
		}
	}

	return cal, cal.Validate()
}

func (s Sidecar)cameraToOutput() (emath.Mat3, error) {
	switch {
	case s.RGBCam != nil:
		return mat3FromRows("rgb_cam", s.RGBCam)

	case s.ForwardMatrix != nil:
		fm, err := mat3FromRows("forward_matrix", s.ForwardMatrix)
		if err != nil {
			return fm, err
		}
		return ecolor.CameraToSRGBFromForwardMatrix(fm), nil

	case s.CamXYZ != nil:
		camXYZ, err := mat3FromRows("cam_xyz", s.CamXYZ)
		if err != nil {
			return camXYZ, err
		}
		m, err := ecolor.CameraToSRGB(camXYZ)
		if err != nil {
			return m, fmt.Errorf("%v: %w", err, raw.ErrConfiguration)
		}
		return m, nil
	}

	return emath.Identity3(), nil
}

// mat3FromRows takes 3 rows of 3 or 4 values; a 4th column (the G2
// channel in libraw's layout) is ignored.
func mat3FromRows(name string, rows [][]float64) (emath.Mat3, error) {
	m := emath.Mat3{}
	if len(rows) != 3 {
		return m, fmt.Errorf("%s has %d rows, want 3: %w", name, len(rows), raw.ErrConfiguration)
	}
	for r, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return m, fmt.Errorf("%s row %d has %d values, want 3 or 4: %w", name, r, len(row), raw.ErrConfiguration)
		}
		for c := 0; c < 3; c++ {
			m[3*r+c] = row[c]
		}
	}
	return m, nil
}

// CurveFromPoints builds a full 65536 entry linearization curve from a
// few control points, interpolating linearly between them. Before the
// first point and after the last, the curve is flat.
func CurveFromPoints(pts [][]int) ([]uint16, error) {
	if len(pts) == 0 {
		return raw.IdentityCurve(), nil
	}

	sorted := [][2]int{}
	for _, p := range pts {
		if len(p) != 2 {
			return nil, fmt.Errorf("curve point %v is not [in, out]: %w", p, raw.ErrPrecondition)
		}
		sorted = append(sorted, [2]int{p[0], p[1]})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })
	for i, p := range sorted {
		if p[0] < 0 || p[0] > 0xFFFF || p[1] < 0 || p[1] > 0xFFFF {
			return nil, fmt.Errorf("curve point %v out of range: %w", p, raw.ErrPrecondition)
		}
		if i > 0 && p[0] == sorted[i-1][0] {
			return nil, fmt.Errorf("curve has two points at input %d: %w", p[0], raw.ErrPrecondition)
		}
	}

	curve := make([]uint16, raw.CurveLength)
	j := 0
	for i := range curve {
		for j < len(sorted)-1 && sorted[j+1][0] <= i {
			j++
		}
		p0 := sorted[j]
		switch {
		case i <= sorted[0][0]:
			curve[i] = uint16(sorted[0][1])
		case j == len(sorted)-1:
			curve[i] = uint16(p0[1])
		default:
			p1 := sorted[j+1]
			curve[i] = uint16(p0[1] + (p1[1]-p0[1]) * (i-p0[0]) / (p1[0]-p0[0]))
		}
	}
	return curve, nil
}
