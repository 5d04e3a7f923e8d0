package ecolor

import(
	"math"
	"testing"

	"github.com/abworrall/rawdev/pkg/emath"
)

func TestCameraToSRGBKeepsNeutral(t *testing.T) {
	// Roughly a NIKON D700's cam_xyz
	camXYZ := emath.Mat3{
		 0.7201, -0.2047, -0.0860,
		-0.4504,  1.2089,  0.2656,
		-0.0591,  0.1208,  0.7437,
	}
	rgbCam, err := CameraToSRGB(camXYZ)
	if err != nil {
		t.Fatal(err)
	}

	white := rgbCam.Apply(emath.Vec3{1, 1, 1})
	for i := 0; i < 3; i++ {
		if math.Abs(white[i] - 1.0) > 1e-9 {
			t.Errorf("white came out as %s", white)
		}
	}

	if _, err := CameraToSRGB(emath.Mat3{}); err == nil {
		t.Errorf("zero matrix did not fail")
	}
}

func TestCameraToSRGBFromForwardMatrix(t *testing.T) {
	// An identity ForwardMatrix means camera RGB is XYZ(D50); so the D50
	// white point should land on sRGB white.
	m := CameraToSRGBFromForwardMatrix(emath.Identity3())
	white := m.Apply(emath.Vec3{0.9642, 1.0, 0.8249})
	for i := 0; i < 3; i++ {
		if math.Abs(white[i] - 1.0) > 1e-3 {
			t.Errorf("D50 white came out as %s", white)
		}
	}
}

func TestQuantizeMatrix(t *testing.T) {
	q := QuantizeMatrix(emath.Identity3())
	if q.Scale != MatrixScale || q.M[0] != 255 || q.M[1] != 0 || q.M[8] != 255 {
		t.Errorf("got %s", q)
	}
}
