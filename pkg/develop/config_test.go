package develop

import(
	"image"
	"testing"
)

func TestConfigFromYaml(t *testing.T) {
	c, err := newConfigFromYaml([]byte(`
gamma: 1.8
demosaic: bilinear
blacklevel: 64
debugpixels:
  - x: 10
    y: 20
`))
	if err != nil {
		t.Fatal(err)
	}

	if c.Gamma != 1.8 || c.Demosaic != "bilinear" || c.ToneCurve != "power" {
		t.Errorf("unexpected config:\n%s", c.AsYaml())
	}
	if c.BlackLevel == nil || *c.BlackLevel != 64 {
		t.Errorf("blacklevel not parsed")
	}
	if len(c.DebugPixels) != 1 || c.DebugPixels[0] != (image.Point{10, 20}) {
		t.Errorf("debugpixels: %v", c.DebugPixels)
	}
	if err := c.Validate(); err != nil {
		t.Error(err)
	}

	// Round trip
	c2, err := newConfigFromYaml([]byte(c.AsYaml()))
	if err != nil {
		t.Fatal(err)
	}
	if c2.AsYaml() != c.AsYaml() {
		t.Errorf("round trip changed the config:\n%s\n%s", c.AsYaml(), c2.AsYaml())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct{
		tweak   func(*Config)
		wantErr bool
	}{
		{func(c *Config){}, false},
		{func(c *Config){ c.ToneCurve = "srgb" }, false},
		{func(c *Config){ c.ToneCurve = "linear" }, false},
		{func(c *Config){ c.ToneCurve = "filmic" }, true},
		{func(c *Config){ c.Demosaic = "vng" }, true},
		{func(c *Config){ c.Gamma = 0 }, true},
		{func(c *Config){ c.Gamma = 0; c.ToneCurve = "srgb" }, false},
	}

	for i, test := range tests {
		c := NewConfig()
		test.tweak(&c)
		if err := c.Validate(); (err != nil) != test.wantErr {
			t.Errorf("[%d] wantErr=%v, got %v", i, test.wantErr, err)
		}
	}
}
