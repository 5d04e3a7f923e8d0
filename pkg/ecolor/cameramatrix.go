package ecolor

import(
	"fmt"

	"github.com/abworrall/rawdev/pkg/emath"
)

// The fixed point scale for quantized color matrices; coefficients are
// multiplied by this and rounded, so the per-pixel multiply can stay in
// integer arithmetic.
const MatrixScale = 255

var(
	// Translates linear sRGB(D65) to XYZ(D65). This is the `xyz_rgb`
	// table that dcraw & libraw build `rgb_cam` from.
	LinearSRGBD65_to_XYZD65 = emath.Mat3{
		0.412453, 0.357580, 0.180423,
		0.212671, 0.715160, 0.072169,
		0.019334, 0.119193, 0.950227,
	}

	// Translates XYZ(D50) to sRGB(D65)
	//
	// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
	//
	// This is the second table on Bruce Lindblooms's site; it bundles in
	// the chromatic adaptation transform that we need to move from D50
	// to D65 reference whites.
	XYZD50_to_linear_sRGBD65 = emath.Mat3{
		 3.1338561, -1.6168667, -0.4906146,
		-0.9787684,  1.9161415,  0.0334540,
		 0.0719453, -0.2289914,  1.4052427,
	}
)

// QuantizeMatrix gets the fixed point version of a camera-to-output
// matrix, i.e. round(coef * 255).
func QuantizeMatrix(m emath.Mat3) emath.IMat3 {
	return m.Quantize(MatrixScale)
}

// CameraToSRGB derives a camera-to-sRGB matrix (rgb_cam) from an
// XYZ-to-camera matrix (cam_xyz, or a DNG ColorMatrix), the way dcraw
// does: map sRGB into camera space, normalize each row so that white
// stays white, then invert.
func CameraToSRGB(camXYZ emath.Mat3) (emath.Mat3, error) {
	camRGB := camXYZ.Mult(LinearSRGBD65_to_XYZD65).NormalizeRows()

	rgbCam, err := camRGB.Invert()
	if err != nil {
		return emath.Mat3{}, fmt.Errorf("cam_xyz to rgb_cam: %v", err)
	}
	return rgbCam, nil
}

// CameraToSRGBFromForwardMatrix combines a DNG ForwardMatrix (white
// balanced camera native RGB to XYZ(D50)) with the XYZ(D50) to sRGB(D65)
// transform, so that it can be used as a single camera-to-output matrix.
func CameraToSRGBFromForwardMatrix(forwardMatrix emath.Mat3) emath.Mat3 {
	return XYZD50_to_linear_sRGBD65.Mult(forwardMatrix)
}
