package emath

// 3x3 matrices, used for the color transforms

import(
	"fmt"
	"math"

	"golang.org/x/image/math/f64"  // Will be "image/math/f64" at some point, hopefully make this file redundant
	"gonum.org/v1/gonum/mat"
)

// Use local types so we can hang methods off them. Row major.
type Vec3 f64.Vec3
type Mat3 f64.Mat3

func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// FromRows3x4 takes a 3x4 matrix (e.g. libraw's rgb_cam, whose fourth
// column is for the second green) and keeps the first three columns.
func FromRows3x4(m [3][4]float64) Mat3 {
	return Mat3{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}

func (a Mat3)Mult(b Mat3) Mat3 {
	return Mat3{
		a[3*0+0]*b[3*0+0] + a[3*0+1]*b[3*1+0] + a[3*0+2]*b[3*2+0],
		a[3*0+0]*b[3*0+1] + a[3*0+1]*b[3*1+1] + a[3*0+2]*b[3*2+1],
		a[3*0+0]*b[3*0+2] + a[3*0+1]*b[3*1+2] + a[3*0+2]*b[3*2+2],

		a[3*1+0]*b[3*0+0] + a[3*1+1]*b[3*1+0] + a[3*1+2]*b[3*2+0],
		a[3*1+0]*b[3*0+1] + a[3*1+1]*b[3*1+1] + a[3*1+2]*b[3*2+1],
		a[3*1+0]*b[3*0+2] + a[3*1+1]*b[3*1+2] + a[3*1+2]*b[3*2+2],

		a[3*2+0]*b[3*0+0] + a[3*2+1]*b[3*1+0] + a[3*2+2]*b[3*2+0],
		a[3*2+0]*b[3*0+1] + a[3*2+1]*b[3*1+1] + a[3*2+2]*b[3*2+1],
		a[3*2+0]*b[3*0+2] + a[3*2+1]*b[3*1+2] + a[3*2+2]*b[3*2+2],
	}
}

func (m Mat3)Apply(v Vec3) Vec3 {
	return Vec3{
		(m[3*0+0]*v[0] + m[3*0+1]*v[1] + m[3*0+2]*v[2]),
		(m[3*1+0]*v[0] + m[3*1+1]*v[1] + m[3*1+2]*v[2]),
		(m[3*2+0]*v[0] + m[3*2+1]*v[1] + m[3*2+2]*v[2]),
	}
}

func (m Mat3)dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]})
}

func (m Mat3)Det() float64 {
	return mat.Det(m.dense())
}

// Invert uses gonum; it fails if the matrix is singular, or so near to
// it that the inverse is junk.
func (m Mat3)Invert() (Mat3, error) {
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		return Mat3{}, fmt.Errorf("invert %v: %v", [9]float64(m), err)
	}

	ret := Mat3{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			ret[3*r+c] = inv.At(r, c)
		}
	}
	return ret, nil
}

// NormalizeRows scales each row so it sums to 1.0, which makes a
// neutral input come out neutral.
func (m Mat3)NormalizeRows() Mat3 {
	for r := 0; r < 3; r++ {
		sum := m[3*r+0] + m[3*r+1] + m[3*r+2]
		if sum == 0 { continue }
		for c := 0; c < 3; c++ {
			m[3*r+c] /= sum
		}
	}
	return m
}

func (m Mat3)String() string {
	str := fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*0+0], m[3*0+1], m[3*0+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*1+0], m[3*1+1], m[3*1+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*2+0], m[3*2+1], m[3*2+2])
	return str
}
func (v Vec3)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f]", v[0], v[1], v[2])
}

// IMat3 is a fixed point 3x3 matrix: every coefficient has been scaled
// up by Scale and rounded to an int.
type IMat3 struct {
	M     [9]int
	Scale int
}

// Quantize converts to fixed point, rounding half to even (as numpy's
// round() does).
func (m Mat3)Quantize(scale int) IMat3 {
	q := IMat3{Scale:scale}
	for i, v := range m {
		q.M[i] = int(math.RoundToEven(v * float64(scale)))
	}
	return q
}

// Apply multiplies the column vector [a,b,c], and floor-divides the
// result back down by Scale. The result is not clipped.
func (q IMat3)Apply(a, b, c int) (int, int, int) {
	return FloorDiv(q.M[0]*a + q.M[1]*b + q.M[2]*c, q.Scale),
	       FloorDiv(q.M[3]*a + q.M[4]*b + q.M[5]*c, q.Scale),
	       FloorDiv(q.M[6]*a + q.M[7]*b + q.M[8]*c, q.Scale)
}

func (q IMat3)String() string {
	return fmt.Sprintf("[%5d %5d %5d | %5d %5d %5d | %5d %5d %5d]/%d",
		q.M[0], q.M[1], q.M[2], q.M[3], q.M[4], q.M[5], q.M[6], q.M[7], q.M[8], q.Scale)
}
