package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Canvas.Width != 1920 || cfg.Canvas.Height != 1080 {
		t.Errorf("canvas = %dx%d, want 1920x1080", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Background.Blur != 25.0 {
		t.Errorf("blur = %v, want 25", cfg.Background.Blur)
	}
	if cfg.Text.MaxWidthRatio != 0.8 {
		t.Errorf("max width ratio = %v, want 0.8", cfg.Text.MaxWidthRatio)
	}
	if cfg.Output.Quality != 95 {
		t.Errorf("quality = %d, want 95", cfg.Output.Quality)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFromFile_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
canvas:
  width: 1280
  height: 720
text:
  max_lines: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Canvas.Width != 1280 || cfg.Canvas.Height != 720 {
		t.Errorf("canvas = %dx%d, want 1280x720", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Text.MaxLines != 2 {
		t.Errorf("max lines = %d, want 2", cfg.Text.MaxLines)
	}
	// Values absent from the file keep their defaults.
	if cfg.Text.StartSize != 160 {
		t.Errorf("start size = %v, want default 160", cfg.Text.StartSize)
	}
	if cfg.Layout.IconGap != 30 {
		t.Errorf("icon gap = %d, want default 30", cfg.Layout.IconGap)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected an error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Canvas.Height = -1 }, false},
		{"negative blur", func(c *Config) { c.Background.Blur = -1 }, false},
		{"ratio zero", func(c *Config) { c.Text.MaxWidthRatio = 0 }, false},
		{"ratio above one", func(c *Config) { c.Text.MaxWidthRatio = 1.5 }, false},
		{"ratio exactly one", func(c *Config) { c.Text.MaxWidthRatio = 1 }, true},
		{"start below min", func(c *Config) { c.Text.StartSize = 10 }, false},
		{"zero max lines", func(c *Config) { c.Text.MaxLines = 0 }, false},
		{"quality above 100", func(c *Config) { c.Output.Quality = 101 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#ffffff", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#000000", color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{"4a90d9", color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 255}},
	}

	for _, tt := range tests {
		got := ParseColor(tt.hex)
		r, g, b, a := got.RGBA()
		want := tt.want
		if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B || uint8(a>>8) != want.A {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.hex, got, want)
		}
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Canvas.Width = 1280
	cfg.Icons.Workers = 8

	oc := cfg.ToOrchestratorConfig()
	if oc.CanvasWidth != 1280 {
		t.Errorf("canvas width = %d, want 1280", oc.CanvasWidth)
	}
	if oc.IconWorkers != 8 {
		t.Errorf("icon workers = %d, want 8", oc.IconWorkers)
	}
	if oc.TextOffsetY != -80 || oc.IconsOffsetY != 40 {
		t.Errorf("offsets = (%d, %d), want (-80, 40)", oc.TextOffsetY, oc.IconsOffsetY)
	}
}
