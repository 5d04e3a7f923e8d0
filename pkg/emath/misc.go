package emath

import "math"

// Some functions that only operate on basic types, that are useful

// FloorDiv rounds towards -inf, unlike golang's `/` which truncates
// towards zero. The two differ for negative numerators, which matters
// when a color matrix has negative coefficients. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if (a % b) < 0 {
		q--
	}
	return q
}

func Clip(v, lo, hi int) int {
	if v < lo { return lo }
	if v > hi { return hi }
	return v
}

// ClipF64 also maps NaN to lo.
func ClipF64(v, lo, hi float64) float64 {
	if v > hi { return hi }
	if v >= lo { return v }
	return lo
}

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
// f is assumed to be in the range [0,1]
func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

// GammaCompress_F64 is the inverse of GammaExpand_F64.
func GammaCompress_F64(f float64) float64 {
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f + 0.055) / 1.055, 2.4)
}
