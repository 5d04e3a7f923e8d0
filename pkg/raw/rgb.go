package raw

import(
	"fmt"
	"image"
	"image/color"

	"github.com/mdouchement/hdr/hdrcolor"
)

// RGB16 is the demosaiced image: three uint16 channels per pixel,
// always ordered R, G, B. Implements image.Image and hdr.Image.
type RGB16 struct {
	Width, Height int
	Pix           []uint16  // Pix[3*(y*Width + x) + c]
}

// RGB8 is the 8bit image that comes out of the color matrix and gamma
// stages. Implements image.Image, so can be passed straight to png.Encode.
type RGB8 struct {
	Width, Height int
	Pix           []uint8   // Pix[3*(y*Width + x) + c]
}

func NewRGB16(w, h int) *RGB16 { return &RGB16{Width:w, Height:h, Pix:make([]uint16, 3*w*h)} }
func NewRGB8(w, h int) *RGB8   { return &RGB8{Width:w, Height:h, Pix:make([]uint8, 3*w*h)} }

func (img *RGB16)Offset(x, y int) int { return 3 * (y*img.Width + x) }
func (img *RGB8)Offset(x, y int) int  { return 3 * (y*img.Width + x) }

func (img *RGB16)RGBAt(x, y int) (uint16, uint16, uint16) {
	i := img.Offset(x, y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}
func (img *RGB16)SetRGB(x, y int, r, g, b uint16) {
	i := img.Offset(x, y)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}

func (img *RGB8)RGBAt(x, y int) (uint8, uint8, uint8) {
	i := img.Offset(x, y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}
func (img *RGB8)SetRGB(x, y int, r, g, b uint8) {
	i := img.Offset(x, y)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}

func (img *RGB16)String() string { return fmt.Sprintf("rgb16[%dx%d]", img.Width, img.Height) }
func (img *RGB8)String() string  { return fmt.Sprintf("rgb8[%dx%d]", img.Width, img.Height) }

// Implement image.Image
func (img *RGB8)ColorModel() color.Model { return color.RGBAModel }
func (img *RGB8)Bounds() image.Rectangle { return image.Rect(0, 0, img.Width, img.Height) }
func (img *RGB8)At(x, y int) color.Color {
	r, g, b := img.RGBAt(x, y)
	return color.RGBA{r, g, b, 0xFF}
}

// Implement image.Image, via the HDR color
func (img *RGB16)ColorModel() color.Model { return hdrcolor.RGBModel }
func (img *RGB16)Bounds() image.Rectangle { return image.Rect(0, 0, img.Width, img.Height) }
func (img *RGB16)At(x, y int) color.Color { return img.HDRAt(x, y) }

// Implement hdr.Image; channels are mapped from [0, 0xFFFF] to [0.0, 1.0]
func (img *RGB16)HDRAt(x, y int) hdrcolor.Color {
	r, g, b := img.RGBAt(x, y)
	return hdrcolor.RGB{
		R: float64(r) / float64(0xFFFF),
		G: float64(g) / float64(0xFFFF),
		B: float64(b) / float64(0xFFFF),
	}
}
func (img *RGB16)Size() int { return img.Width * img.Height }

// Equal is handy for tests, and for checking two runs are bit exact.
func (img *RGB8)Equal(other *RGB8) bool {
	if other == nil || img.Width != other.Width || img.Height != other.Height {
		return false
	}
	for i := range img.Pix {
		if img.Pix[i] != other.Pix[i] { return false }
	}
	return true
}
