package rawio

import(
	"path/filepath"
	"testing"

	"github.com/abworrall/rawdev/pkg/raw"
)

func TestMosaicRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := raw.Synthetic(6, 4, 600, 4000, 4100, 15892)

	for _, name := range []string{"m.png", "m.tif"} {
		filename := filepath.Join(dir, name)
		if err := WriteImage(m, filename); err != nil {
			t.Fatal(err)
		}

		m2, err := LoadMosaic(filename)
		if err != nil {
			t.Fatal(err)
		}
		if m2.Width != m.Width || m2.Height != m.Height {
			t.Fatalf("%s: got %s", name, m2)
		}
		for i := range m.Pix {
			if m.Pix[i] != m2.Pix[i] {
				t.Errorf("%s: Pix[%d] = %d, wanted %d", name, i, m2.Pix[i], m.Pix[i])
				break
			}
		}
	}
}

func TestWriteRGB8(t *testing.T) {
	img := raw.NewRGB8(2, 2)
	img.SetRGB(1, 1, 10, 20, 30)

	filename := filepath.Join(t.TempDir(), "out.png")
	if err := WriteImage(img, filename); err != nil {
		t.Fatal(err)
	}

	if err := WriteImage(img, filepath.Join(t.TempDir(), "out.jpg")); err == nil {
		t.Errorf("jpg should not be supported")
	}
	if _, err := LoadMosaic(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Errorf("missing file should fail")
	}
}

func TestShotInfo(t *testing.T) {
	si := ShotInfo{Make:"NIKON CORPORATION", Model:"NIKON Df", ISO:800, ApertureX10:56, ShutterSpeed:rat64{1, 500}}
	if s := si.String(); s != "NIKON CORPORATION NIKON Df, f/5.6, 1/500, ISO800" {
		t.Errorf("got %q", s)
	}

	// A PNG we wrote ourselves has no EXIF
	filename := filepath.Join(t.TempDir(), "m.png")
	if err := WriteImage(raw.Flat(2, 2, 100), filename); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShotInfo(filename); err == nil {
		t.Errorf("expected an error for a file with no EXIF")
	}
}
