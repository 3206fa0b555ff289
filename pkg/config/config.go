// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/user/thumbforge/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for thumbforge.
type Config struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Background BackgroundConfig `yaml:"background"`
	Text       TextConfig       `yaml:"text"`
	Icons      IconsConfig      `yaml:"icons"`
	Layout     LayoutConfig     `yaml:"layout"`
	Output     OutputConfig     `yaml:"output"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// CanvasConfig represents canvas dimensions.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BackgroundConfig represents background preparation settings.
type BackgroundConfig struct {
	Blur float64 `yaml:"blur"`
}

// TextConfig represents title layout settings.
type TextConfig struct {
	Color         string  `yaml:"color"`
	StartSize     float64 `yaml:"start_size"`
	MinSize       float64 `yaml:"min_size"`
	SizeStep      float64 `yaml:"size_step"`
	MaxLines      int     `yaml:"max_lines"`
	LineSpacing   float64 `yaml:"line_spacing"`
	MaxWidthRatio float64 `yaml:"max_width_ratio"`
}

// IconsConfig represents icon resolution settings.
type IconsConfig struct {
	MaxWidth  int    `yaml:"max_width"`
	TimeoutMs int    `yaml:"timeout_ms"`
	Workers   int    `yaml:"workers"`
	CDNBase   string `yaml:"cdn_base"`
}

// LayoutConfig represents element placement settings.
type LayoutConfig struct {
	TextOffsetY  int `yaml:"text_offset_y"`
	IconsOffsetY int `yaml:"icons_offset_y"`
	IconGap      int `yaml:"icon_gap"`
}

// OutputConfig represents output encoding settings.
type OutputConfig struct {
	Quality int `yaml:"quality"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  1920,
			Height: 1080,
		},
		Background: BackgroundConfig{
			Blur: 25.0,
		},
		Text: TextConfig{
			Color:         "#ffffff",
			StartSize:     160,
			MinSize:       20,
			SizeStep:      10,
			MaxLines:      3,
			LineSpacing:   1.1,
			MaxWidthRatio: 0.8,
		},
		Icons: IconsConfig{
			MaxWidth:  200,
			TimeoutMs: 8000,
			Workers:   4,
		},
		Layout: LayoutConfig{
			TextOffsetY:  -80,
			IconsOffsetY: 40,
			IconGap:      30,
		},
		Output: OutputConfig{
			Quality: 95,
		},
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file. Values present in the
// file override the defaults section by section; absent values keep their
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Background.Blur < 0 {
		return fmt.Errorf("background blur must not be negative, got %v", c.Background.Blur)
	}
	if c.Text.MaxWidthRatio <= 0 || c.Text.MaxWidthRatio > 1 {
		return fmt.Errorf("text max width ratio must be in (0, 1], got %v", c.Text.MaxWidthRatio)
	}
	if c.Text.MinSize <= 0 || c.Text.StartSize < c.Text.MinSize {
		return fmt.Errorf("text sizes must satisfy 0 < min <= start, got start %v min %v", c.Text.StartSize, c.Text.MinSize)
	}
	if c.Text.MaxLines <= 0 {
		return fmt.Errorf("text max lines must be positive, got %d", c.Text.MaxLines)
	}
	if c.Output.Quality < 0 || c.Output.Quality > 100 {
		return fmt.Errorf("output quality must be in [0, 100], got %d", c.Output.Quality)
	}
	return nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.White
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.White
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config. Inputs and
// output paths come from the caller, not the file.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		CanvasWidth:  c.Canvas.Width,
		CanvasHeight: c.Canvas.Height,

		BackgroundBlur: c.Background.Blur,

		TextColor:         ParseColor(c.Text.Color),
		TextMaxWidthRatio: c.Text.MaxWidthRatio,
		TextStartSize:     c.Text.StartSize,
		TextMinSize:       c.Text.MinSize,
		TextSizeStep:      c.Text.SizeStep,
		TextMaxLines:      c.Text.MaxLines,
		TextLineSpacing:   c.Text.LineSpacing,
		TextOffsetY:       c.Layout.TextOffsetY,

		IconMaxWidth:   c.Icons.MaxWidth,
		IconGap:        c.Layout.IconGap,
		IconsOffsetY:   c.Layout.IconsOffsetY,
		IconTimeoutMs:  c.Icons.TimeoutMs,
		IconWorkers:    c.Icons.Workers,
		IconCDNBaseURL: c.Icons.CDNBase,

		Quality: c.Output.Quality,
	}
}
