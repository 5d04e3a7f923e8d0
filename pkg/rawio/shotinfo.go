package rawio

import(
	"fmt"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

type rat64 [2]int64

// ShotInfo is the EXIF data that describes how the mosaic was
// captured. It is only ever reported, never used in the development.
type ShotInfo struct {
	Make, Model   string
	ISO           int64   // 100, 800, etc.
	ApertureX10   int64   // f/5.6 is the integer 56.
	ShutterSpeed  rat64   // 1/500, 1/1000, etc.
}

func (si ShotInfo)Camera() string {
	return strings.TrimSpace(si.Make + " " + si.Model)
}

func (si ShotInfo)String() string {
	s := fmt.Sprintf("%s, f/%.1f", si.Camera(), float32(si.ApertureX10)/10.0)
	if si.ShutterSpeed[1] != 1 {
		s += fmt.Sprintf(", %d/%d", si.ShutterSpeed[0], si.ShutterSpeed[1])
	} else {
		s += fmt.Sprintf(", %d", si.ShutterSpeed[0])
	}
	return s + fmt.Sprintf(", ISO%d", si.ISO)
}

// LoadShotInfo reads whatever EXIF is present. Missing tags are left
// zero; only a file without any EXIF at all is an error.
func LoadShotInfo(filename string) (ShotInfo, error) {
	si := ShotInfo{}

	reader, err := os.Open(filename)
	if err != nil {
		return si, fmt.Errorf("open+r exif '%s': %v", filename, err)
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return si, fmt.Errorf("exif parsing '%s': %v", filename, err)
	}

	if tag, err := ex.Get(exif.Make); err == nil {
		si.Make, _ = tag.StringVal()
	}
	if tag, err := ex.Get(exif.Model); err == nil {
		si.Model, _ = tag.StringVal()
	}

	if tag, err := ex.Get(exif.ISOSpeedRatings); err == nil {
		if val, err := tag.Int64(0); err == nil {
			si.ISO = val
		}
	}

	if tag, err := ex.Get(exif.FNumber); err == nil {
		if num, denom, err := tag.Rat2(0); err == nil && denom != 0 {
			si.ApertureX10 = num * 10 / denom
		}
	}

	if tag, err := ex.Get(exif.ExposureTime); err == nil {
		if num, denom, err := tag.Rat2(0); err == nil {
			si.ShutterSpeed = rat64{num, denom}
		}
	}

	return si, nil
}
