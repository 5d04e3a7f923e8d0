package raw

import(
	"fmt"
	"image"
	"image/color"
)

// A Mosaic is the single channel sensor readout: one uint16 sample per
// photosite, laid out under a Bayer color filter. It is sized to the
// full raw buffer (raw_width x raw_height); Visible is the part of it
// the sensor decoder considers to be the picture, once the masked
// border pixels are trimmed.
type Mosaic struct {
	Width, Height int              // raw_width, raw_height
	Pix           []uint16         // row major, Pix[y*Width + x]

	Visible       image.Rectangle  // may be empty, meaning all of it
}

func NewMosaic(w, h int) *Mosaic {
	return &Mosaic{
		Width:  w,
		Height: h,
		Pix:    make([]uint16, w*h),
	}
}

// NewMosaicFrom wraps an existing sample buffer, without copying.
func NewMosaicFrom(w, h int, pix []uint16) (*Mosaic, error) {
	m := &Mosaic{Width:w, Height:h, Pix:pix}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Implement image.Image, so a mosaic can be handed to golang's image
// encoders as a 16bit grayscale.
func (m *Mosaic)ColorModel() color.Model  { return color.Gray16Model }
func (m *Mosaic)Bounds() image.Rectangle  { return image.Rect(0, 0, m.Width, m.Height) }
func (m *Mosaic)At(x, y int) color.Color  { return color.Gray16{m.Get(x, y)} }

func (m *Mosaic)Get(x, y int) uint16      { return m.Pix[y*m.Width + x] }
func (m *Mosaic)Set(x, y int, v uint16)   { m.Pix[y*m.Width + x] = v }
func (m *Mosaic)Row(y int) []uint16       { return m.Pix[y*m.Width : (y+1)*m.Width] }

func (m *Mosaic)String() string {
	return fmt.Sprintf("mosaic[%dx%d, visible %s]", m.Width, m.Height, m.Visible)
}

// NewFromThis returns an empty mosaic of the same shape.
func (m *Mosaic)NewFromThis() *Mosaic {
	m2 := NewMosaic(m.Width, m.Height)
	m2.Visible = m.Visible
	return m2
}

func (m *Mosaic)Clone() *Mosaic {
	m2 := m.NewFromThis()
	copy(m2.Pix, m.Pix)
	return m2
}

// Validate checks the mosaic can be cut into whole 2x2 Bayer blocks.
func (m *Mosaic)Validate() error {
	switch {
	case m.Width <= 0 || m.Height <= 0:
		return fmt.Errorf("mosaic %dx%d is empty: %w", m.Width, m.Height, ErrPrecondition)
	case m.Width%2 != 0 || m.Height%2 != 0:
		return fmt.Errorf("mosaic %dx%d not even in both axes: %w", m.Width, m.Height, ErrPrecondition)
	case len(m.Pix) != m.Width*m.Height:
		return fmt.Errorf("mosaic %dx%d has %d samples: %w", m.Width, m.Height, len(m.Pix), ErrPrecondition)
	}
	return nil
}

// Crop trims the mosaic down to the Visible area. The corner is rounded
// down to even coords, and the size down to even dims, so that the
// result keeps the same RGGB phase.
func (m *Mosaic)Crop() (*Mosaic, error) {
	if m.Visible.Empty() || m.Visible == m.Bounds() {
		return m, nil
	}
	r := m.Visible.Intersect(m.Bounds())
	r.Min.X &^= 1
	r.Min.Y &^= 1
	r.Max.X = r.Min.X + (r.Dx() &^ 1)
	r.Max.Y = r.Min.Y + (r.Dy() &^ 1)
	if r.Empty() {
		return nil, fmt.Errorf("crop %s of %s leaves nothing: %w", m.Visible, m.Bounds(), ErrPrecondition)
	}

	m2 := NewMosaic(r.Dx(), r.Dy())
	for y := 0; y < r.Dy(); y++ {
		copy(m2.Row(y), m.Row(y + r.Min.Y)[r.Min.X:r.Max.X])
	}
	return m2, nil
}
