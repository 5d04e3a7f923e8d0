package rawio

import(
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/abworrall/rawdev/pkg/raw"
)

// LoadMosaic reads a single channel 16bit image (TIFF or PNG), and
// treats it as an undemosaiced RGGB sensor readout. Decoding camera
// specific raw containers is left to other tools (e.g. `dcraw -D -4 -T`
// writes exactly this kind of file).
func LoadMosaic(filename string) (*raw.Mosaic, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r '%s': %v", filename, err)
	}
	defer reader.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".tif", ".tiff":
		img, err = tiff.Decode(reader)
	case ".png":
		img, err = png.Decode(reader)
	default:
		return nil, fmt.Errorf("load '%s': unhandled file type '%s'", filename, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode '%s': %v", filename, err)
	}

	return MosaicFromImage(img), nil
}

// MosaicFromImage copies the image's gray value into a mosaic.
func MosaicFromImage(img image.Image) *raw.Mosaic {
	b := img.Bounds()
	m := raw.NewMosaic(b.Dx(), b.Dy())

	if g16, ok := img.(*image.Gray16); ok {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				m.Set(x, y, g16.Gray16At(b.Min.X + x, b.Min.Y + y).Y)
			}
		}
		return m
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.Set(x, y, color.Gray16Model.Convert(img.At(b.Min.X + x, b.Min.Y + y)).(color.Gray16).Y)
		}
	}
	return m
}
