package thumbforge

import "testing"

func TestNewConfigBuilder_FullHDDefaults(t *testing.T) {
	cfg := NewConfigBuilder().Build()

	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("size = %dx%d, want 1920x1080", cfg.Width, cfg.Height)
	}
	if cfg.Quality != 95 {
		t.Errorf("quality = %d, want 95", cfg.Quality)
	}
	if cfg.TextOffsetY != -80 || cfg.IconsOffsetY != 40 {
		t.Errorf("offsets = (%d, %d), want (-80, 40)", cfg.TextOffsetY, cfg.IconsOffsetY)
	}
}

func TestNewHDConfigBuilder(t *testing.T) {
	cfg := NewHDConfigBuilder().Build()

	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
}

func TestConfigBuilder_Overrides(t *testing.T) {
	cfg := NewConfigBuilder().
		WithWidth(800).
		WithHeight(600).
		WithBackgroundBlur(0).
		WithIconGap(12).
		WithQuality(80).
		Build()

	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.BackgroundBlur != 0 {
		t.Errorf("blur = %v, want 0", cfg.BackgroundBlur)
	}
	if cfg.IconGap != 12 {
		t.Errorf("gap = %d, want 12", cfg.IconGap)
	}
	if cfg.Quality != 80 {
		t.Errorf("quality = %d, want 80", cfg.Quality)
	}
}

func TestConfigBuilder_BuildConstraints(t *testing.T) {
	cfg := NewConfigBuilder().
		WithWidth(1).
		WithHeight(-5).
		WithTextMaxWidthRatio(3).
		WithQuality(150).
		Build()

	if cfg.Width < 16 || cfg.Height < 16 {
		t.Errorf("size = %dx%d, want minimum 16x16", cfg.Width, cfg.Height)
	}
	if cfg.TextMaxWidthRatio != 0.8 {
		t.Errorf("ratio = %v, want reset to 0.8", cfg.TextMaxWidthRatio)
	}
	if cfg.Quality != 100 {
		t.Errorf("quality = %d, want clamped to 100", cfg.Quality)
	}
}

func TestEnsureExtension(t *testing.T) {
	tests := []struct {
		path   string
		format string
		want   string
	}{
		{"thumbnail", "png", "thumbnail.png"},
		{"thumbnail.png", "png", "thumbnail.png"},
		{"thumbnail.PNG", "png", "thumbnail.PNG"},
		{"imagen.jpg", "png", "imagen.png"},
		{"archivo.txt", "psd", "archivo.psd"},
		{"out/thumb", "PNG", "out/thumb.png"},
		{"thumb", ".png", "thumb.png"},
		{"thumb", "", "thumb.png"},
		{"", "psd", "thumbnail.psd"},
	}

	for _, tt := range tests {
		if got := EnsureExtension(tt.path, tt.format); got != tt.want {
			t.Errorf("EnsureExtension(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
		}
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := NewConfigBuilder().WithTimeoutSec(3).Build()
	oc := cfg.ToOrchestratorConfig("My Title", "bg.png", []string{"go", "redis"}, "out.png")

	if oc.Title != "My Title" {
		t.Errorf("title = %q", oc.Title)
	}
	if oc.BackgroundPath != "bg.png" || oc.OutputPath != "out.png" {
		t.Errorf("paths = (%q, %q)", oc.BackgroundPath, oc.OutputPath)
	}
	if len(oc.IconQueries) != 2 {
		t.Errorf("queries = %v", oc.IconQueries)
	}
	if oc.IconTimeoutMs != 3000 {
		t.Errorf("timeout = %d ms, want 3000", oc.IconTimeoutMs)
	}
}
