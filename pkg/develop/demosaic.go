package develop

import(
	"fmt"

	"github.com/abworrall/rawdev/pkg/emath"
	"github.com/abworrall/rawdev/pkg/raw"
)

// A Demosaicer reconstructs RGB pixels from an RGGB mosaic that has
// already been white balanced into [0, FullRange].
type Demosaicer interface {
	Name() string

	// Factor is how many photosites, per axis, go into one output pixel.
	Factor() int

	Demosaic(m *raw.Mosaic) (*raw.RGB16, error)
}

// ExpansionBits is how far samples are shifted up before demosaicing,
// to take the 14 bit working range up to the full 16 bits.
const ExpansionBits = 2

func expand(s uint16) int {
	return emath.Clip(int(s) << ExpansionBits, 0, 0xFFFF)
}

func checkBlocks(m *raw.Mosaic) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("demosaic: %w", err)
	}
	return nil
}

// HalfSize turns each 2x2 RGGB block into a single pixel: the R and B
// samples are taken as they are, and G is the floor-average of the two
// greens. The output is half the width and half the height of the
// mosaic.
type HalfSize struct {
	Workers int
}

func (HalfSize)Name() string { return "halfsize" }
func (HalfSize)Factor() int  { return 2 }

func (d HalfSize)Demosaic(m *raw.Mosaic) (*raw.RGB16, error) {
	if err := checkBlocks(m); err != nil {
		return nil, err
	}

	img := raw.NewRGB16(m.Width/2, m.Height/2)
	parallelRows(img.Height, d.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			top, bot := m.Row(2*i), m.Row(2*i+1)
			for j := 0; j < img.Width; j++ {
				r := expand(top[2*j])
				g := greenOf(expand(top[2*j+1]), expand(bot[2*j]))
				b := expand(bot[2*j+1])
				img.SetRGB(j, i, uint16(r), uint16(g), uint16(b))
			}
		}
	})
	return img, nil
}

// greenOf is the floor-average of the two greens.
func greenOf(g1, g2 int) int {
	return emath.Clip((g1 + g2) / 2, 0, 0xFFFF)
}

// Bilinear produces a full resolution image. At each photosite the
// color it recorded is kept, and the two missing colors are the
// floor-average of the nearest photosites of that color. Photosites
// beyond the edge are replaced by the nearest one of the same color.
type Bilinear struct {
	Workers int
}

func (Bilinear)Name() string { return "bilinear" }
func (Bilinear)Factor() int  { return 1 }

func (d Bilinear)Demosaic(m *raw.Mosaic) (*raw.RGB16, error) {
	if err := checkBlocks(m); err != nil {
		return nil, err
	}

	w, h := m.Width, m.Height

	// Out of bounds neighbors reflect back two photosites, which lands
	// on the same color in a Bayer layout.
	px := func(x, y int) int {
		if x < 0  { x += 2 }
		if x >= w { x -= 2 }
		if y < 0  { y += 2 }
		if y >= h { y -= 2 }
		return expand(m.Get(x, y))
	}
	cross := func(x, y int) int { return (px(x-1, y) + px(x+1, y) + px(x, y-1) + px(x, y+1)) / 4 }
	diag  := func(x, y int) int { return (px(x-1, y-1) + px(x+1, y-1) + px(x-1, y+1) + px(x+1, y+1)) / 4 }
	horiz := func(x, y int) int { return (px(x-1, y) + px(x+1, y)) / 2 }
	vert  := func(x, y int) int { return (px(x, y-1) + px(x, y+1)) / 2 }

	img := raw.NewRGB16(w, h)
	parallelRows(h, d.Workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < w; x++ {
				var r, g, b int
				switch raw.CFA_RGGB.Color(x, y) {
				case "R":
					r, g, b = px(x, y), cross(x, y), diag(x, y)
				case "G1": // on a red row
					r, g, b = horiz(x, y), px(x, y), vert(x, y)
				case "G2": // on a blue row
					r, g, b = vert(x, y), px(x, y), horiz(x, y)
				case "B":
					r, g, b = diag(x, y), cross(x, y), px(x, y)
				}
				img.SetRGB(x, y, uint16(r), uint16(g), uint16(b))
			}
		}
	})
	return img, nil
}
