package raw

// Synthetic generates an RGGB mosaic where every 2x2 block carries the
// same four samples. Useful for tests, and for checking a calibration
// without a real capture to hand.
func Synthetic(w, h int, r, g1, g2, b uint16) *Mosaic {
	m := NewMosaic(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch CFA_RGGB.Color(x, y) {
			case "R":  m.Set(x, y, r)
			case "G1": m.Set(x, y, g1)
			case "G2": m.Set(x, y, g2)
			case "B":  m.Set(x, y, b)
			}
		}
	}
	return m
}

// Flat is a mosaic of a flat neutral scene.
func Flat(w, h int, v uint16) *Mosaic {
	return Synthetic(w, h, v, v, v, v)
}

// Gradient is a horizontal ramp from 0 to max, the same on every channel.
func Gradient(w, h int, max uint16) *Mosaic {
	m := NewMosaic(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, uint16(int(max) * x / (w-1)))
		}
	}
	return m
}
