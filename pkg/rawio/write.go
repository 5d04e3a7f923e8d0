package rawio

import(
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}

func WriteTIFF(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return tiff.Encode(writer, img, &tiff.Options{Compression: tiff.Deflate})
	}
}

// WriteImage picks the encoder from the filename extension.
func WriteImage(img image.Image, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":          return WritePNG(img, filename)
	case ".tif", ".tiff": return WriteTIFF(img, filename)
	default:
		return fmt.Errorf("write '%s': unhandled file type '%s'", filename, ext)
	}
}
