package raw

// Helpers for writing intermediate buffers out while debugging.

import(
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/mdouchement/hdr/codec/rgbe"
)

// DumpMosaic saves a grayscale version of the mosaic, stretched over
// the range of values present, with a title written on it.
func DumpMosaic(m *Mosaic, title, filename string) error {
	min, max := 0xFFFF, 0
	for _, s := range m.Pix {
		if int(s) > max { max = int(s) }
		if int(s) < min { min = int(s) }
	}
	if max == min { max = min+1 }

	img := image.NewGray16(m.Bounds())
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := (int(m.Get(x, y)) - min) * 0xFFFF / (max - min)
			img.SetGray16(x, y, color.Gray16{uint16(v)})
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(title, 10, 20)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("dump mosaic '%s': %v", filename, err)
	}
	return nil
}

// DumpHDR writes the 16bit RGB image as a Radiance RGBE file, so it can be
// poked at in an HDR viewer before it gets squashed down to 8 bits.
func DumpHDR(img *RGB16, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return rgbe.Encode(writer, img)
	}
}
