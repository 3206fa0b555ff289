// Package thumbforge provides a high-level API for composing thumbnails.
package thumbforge

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/user/thumbforge/pkg/orchestrator"
)

// SizePreset represents a canvas size preset name.
type SizePreset string

const (
	SizeFullHD SizePreset = "fullhd"
	SizeHD     SizePreset = "hd"
)

// SizeSettings contains canvas dimensions for a preset.
type SizeSettings struct {
	Width  int
	Height int
}

// GetSizeSettings returns canvas dimensions for the given preset.
func GetSizeSettings(preset SizePreset) SizeSettings {
	switch preset {
	case SizeHD:
		return SizeSettings{Width: 1280, Height: 720}
	default: // fullhd
		return SizeSettings{Width: 1920, Height: 1080}
	}
}

// Config represents the configuration for thumbnail generation.
type Config struct {
	// Canvas size
	Width  int // Output width (default: 1920)
	Height int // Output height (default: 1080)

	// Background
	BackgroundBlur float64 // Gaussian blur radius (0 = no blur)

	// Text
	TextColor         color.Color // Title color
	TextMaxWidthRatio float64     // Fraction of canvas width a line may use
	TextStartSize     float64     // Initial candidate font size
	TextMinSize       float64     // Floor font size before truncation
	TextMaxLines      int         // Maximum wrapped line count
	TextOffsetY       int         // Vertical offset from canvas center

	// Icons
	IconMaxWidth int // Maximum placed icon width in pixels
	IconGap      int // Horizontal gap between icons
	IconsOffsetY int // Vertical offset below canvas center
	IconWorkers  int // Concurrent icon resolutions (0 = one per query)
	TimeoutSec   int // Per network attempt, in seconds

	// Encoding
	Quality int // Output quality (0-100)
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with full HD preset defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: presetDefaults(SizeFullHD),
	}
}

// NewHDConfigBuilder creates a new ConfigBuilder with HD preset defaults.
func NewHDConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: presetDefaults(SizeHD),
	}
}

func presetDefaults(preset SizePreset) Config {
	size := GetSizeSettings(preset)
	return Config{
		Width:  size.Width,
		Height: size.Height,

		BackgroundBlur: 25.0,

		TextColor:         color.White,
		TextMaxWidthRatio: 0.8,
		TextStartSize:     160,
		TextMinSize:       20,
		TextMaxLines:      3,
		TextOffsetY:       -80,

		IconMaxWidth: 200,
		IconGap:      30,
		IconsOffsetY: 40,
		TimeoutSec:   8,

		Quality: 95,
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if cfg.Width < 16 {
		cfg.Width = 16
	}
	if cfg.Height < 16 {
		cfg.Height = 16
	}
	if cfg.TextMaxWidthRatio <= 0 || cfg.TextMaxWidthRatio > 1 {
		cfg.TextMaxWidthRatio = 0.8
	}
	if cfg.Quality < 0 {
		cfg.Quality = 0
	}
	if cfg.Quality > 100 {
		cfg.Quality = 100
	}

	return cfg
}

// WithWidth sets the output width.
func (b *ConfigBuilder) WithWidth(width int) *ConfigBuilder {
	b.config.Width = width
	return b
}

// WithHeight sets the output height.
func (b *ConfigBuilder) WithHeight(height int) *ConfigBuilder {
	b.config.Height = height
	return b
}

// WithSizePreset applies a canvas size preset.
func (b *ConfigBuilder) WithSizePreset(preset SizePreset) *ConfigBuilder {
	size := GetSizeSettings(preset)
	b.config.Width = size.Width
	b.config.Height = size.Height
	return b
}

// WithBackgroundBlur sets the background blur radius. Use 0 to disable.
func (b *ConfigBuilder) WithBackgroundBlur(radius float64) *ConfigBuilder {
	b.config.BackgroundBlur = radius
	return b
}

// WithTextColor sets the title color.
func (b *ConfigBuilder) WithTextColor(c color.Color) *ConfigBuilder {
	b.config.TextColor = c
	return b
}

// WithTextMaxWidthRatio sets the fraction of canvas width a line may use.
func (b *ConfigBuilder) WithTextMaxWidthRatio(ratio float64) *ConfigBuilder {
	b.config.TextMaxWidthRatio = ratio
	return b
}

// WithTextSizes sets the candidate font size range.
func (b *ConfigBuilder) WithTextSizes(start, min float64) *ConfigBuilder {
	b.config.TextStartSize = start
	b.config.TextMinSize = min
	return b
}

// WithTextMaxLines sets the maximum wrapped line count.
func (b *ConfigBuilder) WithTextMaxLines(lines int) *ConfigBuilder {
	b.config.TextMaxLines = lines
	return b
}

// WithTextOffsetY sets the text block's vertical offset from canvas center.
func (b *ConfigBuilder) WithTextOffsetY(offset int) *ConfigBuilder {
	b.config.TextOffsetY = offset
	return b
}

// WithIconMaxWidth sets the maximum placed icon width in pixels.
func (b *ConfigBuilder) WithIconMaxWidth(width int) *ConfigBuilder {
	b.config.IconMaxWidth = width
	return b
}

// WithIconGap sets the horizontal gap between icons.
func (b *ConfigBuilder) WithIconGap(gap int) *ConfigBuilder {
	b.config.IconGap = gap
	return b
}

// WithIconsOffsetY sets the icon row's vertical offset below canvas center.
func (b *ConfigBuilder) WithIconsOffsetY(offset int) *ConfigBuilder {
	b.config.IconsOffsetY = offset
	return b
}

// WithIconWorkers sets the number of concurrent icon resolutions.
func (b *ConfigBuilder) WithIconWorkers(workers int) *ConfigBuilder {
	b.config.IconWorkers = workers
	return b
}

// WithTimeoutSec sets the per-attempt network timeout in seconds.
func (b *ConfigBuilder) WithTimeoutSec(sec int) *ConfigBuilder {
	b.config.TimeoutSec = sec
	return b
}

// WithQuality sets the output quality (0-100).
func (b *ConfigBuilder) WithQuality(quality int) *ConfigBuilder {
	b.config.Quality = quality
	return b
}

// EnsureExtension forces the canonical extension for the given format onto
// the path: a missing extension is appended, a mismatching one is replaced.
// An empty path falls back to "thumbnail" with the format's extension.
func EnsureExtension(path, format string) string {
	ext := strings.ToLower(strings.TrimPrefix(format, "."))
	if ext == "" {
		ext = "png"
	}
	if path == "" {
		return "thumbnail." + ext
	}
	current := filepath.Ext(path)
	if strings.EqualFold(current, "."+ext) {
		return path
	}
	return strings.TrimSuffix(path, current) + "." + ext
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(title, backgroundPath string, iconQueries []string, outputPath string) orchestrator.Config {
	return orchestrator.Config{
		Title:          title,
		BackgroundPath: backgroundPath,
		IconQueries:    iconQueries,
		OutputPath:     outputPath,

		CanvasWidth:  c.Width,
		CanvasHeight: c.Height,

		BackgroundBlur: c.BackgroundBlur,

		TextColor:         c.TextColor,
		TextMaxWidthRatio: c.TextMaxWidthRatio,
		TextStartSize:     c.TextStartSize,
		TextMinSize:       c.TextMinSize,
		TextMaxLines:      c.TextMaxLines,
		TextOffsetY:       c.TextOffsetY,

		IconMaxWidth:  c.IconMaxWidth,
		IconGap:       c.IconGap,
		IconsOffsetY:  c.IconsOffsetY,
		IconTimeoutMs: c.TimeoutSec * 1000,
		IconWorkers:   c.IconWorkers,

		Quality: c.Quality,
	}
}
