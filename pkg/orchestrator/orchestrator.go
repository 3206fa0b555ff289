// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/thumbforge/pkg/pipeline"
	"github.com/user/thumbforge/pkg/ports"
)

// LayerExporter turns the composed layer stack into a layered document.
type LayerExporter interface {
	Export(width, height int, layers []pipeline.Layer, composite image.Image) ([]byte, error)
}

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	Title          string
	BackgroundPath string
	IconQueries    []string

	// Output
	OutputPath        string
	LayeredOutputPath string // Optional layered document alongside the raster

	// Canvas
	CanvasWidth  int
	CanvasHeight int

	// Background
	BackgroundBlur float64

	// Text
	TextColor         color.Color // nil means the default white
	TextMaxWidthRatio float64     // Fraction of canvas width available to a line
	TextStartSize     float64
	TextMinSize       float64
	TextSizeStep      float64
	TextMaxLines      int
	TextLineSpacing   float64
	TextOffsetY       int

	// Icons
	IconMaxWidth   int
	IconGap        int
	IconsOffsetY   int
	IconTimeoutMs  int
	IconWorkers    int
	IconCDNBaseURL string // Empty means the built-in vector CDN

	// Encoding
	Quality int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:  1920,
		CanvasHeight: 1080,

		BackgroundBlur: 25.0,

		TextMaxWidthRatio: 0.8,
		TextStartSize:     160,
		TextMinSize:       20,
		TextSizeStep:      10,
		TextMaxLines:      3,
		TextLineSpacing:   1.1,
		TextOffsetY:       -80,

		IconMaxWidth:  200,
		IconGap:       30,
		IconsOffsetY:  40,
		IconTimeoutMs: 8000,

		Quality: 95,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	backgroundStage pipeline.Stage[pipeline.BackgroundInput, pipeline.BackgroundResult]
	textStage       pipeline.Stage[pipeline.TextInput, pipeline.TextResult]
	iconsStage      pipeline.Stage[pipeline.IconsInput, pipeline.IconsResult]
	composeStage    pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	encodeStage     pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	exporter        LayerExporter
	fs              ports.FileSystem
	sink            ports.DebugSink
	logger          ports.Logger
}

// New creates a new Orchestrator.
func New(
	backgroundStage pipeline.Stage[pipeline.BackgroundInput, pipeline.BackgroundResult],
	textStage pipeline.Stage[pipeline.TextInput, pipeline.TextResult],
	iconsStage pipeline.Stage[pipeline.IconsInput, pipeline.IconsResult],
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	exporter LayerExporter,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		backgroundStage: backgroundStage,
		textStage:       textStage,
		iconsStage:      iconsStage,
		composeStage:    composeStage,
		encodeStage:     encodeStage,
		exporter:        exporter,
		fs:              fs,
		sink:            sink,
		logger:          logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	started := time.Now()
	o.logger.Info(l10n.T("Starting pipeline"))

	// 1. Prepare background
	o.logger.Info(l10n.T("Preparing background"))
	bgData, err := o.fs.ReadFile(config.BackgroundPath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to read background: %s", err))
		return RunResult{}, fmt.Errorf("read background: %w", err)
	}
	background, err := o.backgroundStage.Execute(ctx, o.buildBackgroundInput(config, bgData))
	if err != nil {
		o.logger.Error(l10n.F("Failed to prepare background: %s", err))
		return RunResult{}, fmt.Errorf("background stage: %w", err)
	}
	o.logger.Info(l10n.F("Background prepared: %dx%d", config.CanvasWidth, config.CanvasHeight))

	// 2. Lay out and render title
	o.logger.Info(l10n.F("Rendering title %q", config.Title))
	text, err := o.textStage.Execute(ctx, o.buildTextInput(config))
	if err != nil {
		o.logger.Error(l10n.F("Failed to render title: %s", err))
		return RunResult{}, fmt.Errorf("text stage: %w", err)
	}
	o.logger.Info(l10n.F("Title set at %.0fpt across %d lines", text.FontSize, len(text.Lines)))

	// 3. Resolve icons
	icons := pipeline.IconsResult{}
	if len(config.IconQueries) > 0 {
		o.logger.Info(l10n.F("Resolving %d icons", len(config.IconQueries)))
		icons, err = o.iconsStage.Execute(ctx, o.buildIconsInput(config))
		if err != nil {
			o.logger.Error(l10n.F("Failed to resolve icons: %s", err))
			return RunResult{}, fmt.Errorf("icons stage: %w", err)
		}
	}

	// 4. Compose layers
	o.logger.Info(l10n.T("Compositing layers"))
	composed, err := o.composeStage.Execute(ctx, o.buildComposeInput(config, background, text, icons))
	if err != nil {
		o.logger.Error(l10n.F("Failed to composite layers: %s", err))
		return RunResult{}, fmt.Errorf("compose stage: %w", err)
	}

	// 5. Encode output
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Image:   composed.Image,
		Quality: config.Quality,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode output: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info(l10n.F("Output encoded: %d bytes", len(encoded.Data)))

	// 6. Write output file
	if err := o.fs.WriteFile(config.OutputPath, encoded.Data); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	// 7. Export layered document. Failure here does not void the raster;
	// the composite on disk is already complete.
	layeredPath := ""
	if config.LayeredOutputPath != "" && o.exporter != nil {
		if data, err := o.exporter.Export(config.CanvasWidth, config.CanvasHeight, composed.Layers, composed.Image); err != nil {
			o.logger.Warn(l10n.F("Layered export failed: %s", err))
		} else if err := o.fs.WriteFile(config.LayeredOutputPath, data); err != nil {
			o.logger.Warn(l10n.F("Failed to write layered output: %s", err))
		} else {
			layeredPath = config.LayeredOutputPath
			o.logger.Info(l10n.F("Layered document written: %d bytes", len(data)))
		}
	}

	result := buildRunResult(config, text, icons, composed, encoded, layeredPath, time.Since(started))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(result, "", "  "); err == nil {
			o.sink.SaveReportJSON(data)
		}
	}

	o.logger.Info(l10n.T("Pipeline completed successfully"))
	return result, nil
}

func (o *Orchestrator) buildBackgroundInput(config Config, data []byte) pipeline.BackgroundInput {
	return pipeline.BackgroundInput{
		Data:         data,
		CanvasWidth:  config.CanvasWidth,
		CanvasHeight: config.CanvasHeight,
		BlurRadius:   config.BackgroundBlur,
	}
}

func (o *Orchestrator) buildTextInput(config Config) pipeline.TextInput {
	input := pipeline.DefaultTextInput()
	input.Title = config.Title
	input.MaxWidthPx = int(float64(config.CanvasWidth) * config.TextMaxWidthRatio)
	if config.TextStartSize > 0 {
		input.StartSize = config.TextStartSize
	}
	if config.TextMinSize > 0 {
		input.MinSize = config.TextMinSize
	}
	if config.TextSizeStep > 0 {
		input.SizeStep = config.TextSizeStep
	}
	if config.TextMaxLines > 0 {
		input.MaxLines = config.TextMaxLines
	}
	if config.TextLineSpacing > 0 {
		input.LineSpacing = config.TextLineSpacing
	}
	if config.TextColor != nil {
		input.Color = config.TextColor
	}
	return input
}

func (o *Orchestrator) buildIconsInput(config Config) pipeline.IconsInput {
	input := pipeline.DefaultIconsInput()
	input.Queries = config.IconQueries
	if config.IconMaxWidth > 0 {
		input.MaxWidth = config.IconMaxWidth
	}
	if config.IconTimeoutMs > 0 {
		input.Timeout = time.Duration(config.IconTimeoutMs) * time.Millisecond
	}
	input.Workers = config.IconWorkers
	input.CDNBase = config.IconCDNBaseURL
	return input
}

func (o *Orchestrator) buildComposeInput(
	config Config,
	background pipeline.BackgroundResult,
	text pipeline.TextResult,
	icons pipeline.IconsResult,
) pipeline.ComposeInput {
	return pipeline.ComposeInput{
		Background:   background.Image,
		Text:         text,
		Icons:        icons.Assets,
		CanvasWidth:  config.CanvasWidth,
		CanvasHeight: config.CanvasHeight,
		TextOffsetY:  config.TextOffsetY,
		IconsOffsetY: config.IconsOffsetY,
		IconGap:      config.IconGap,
	}
}

func buildRunResult(
	config Config,
	text pipeline.TextResult,
	icons pipeline.IconsResult,
	composed pipeline.ComposeResult,
	encoded pipeline.EncodeResult,
	layeredPath string,
	elapsed time.Duration,
) RunResult {
	provenance := make([]IconReport, 0, len(icons.Assets))
	for _, asset := range icons.Assets {
		provenance = append(provenance, IconReport{
			Query:      asset.Query,
			Provenance: string(asset.Provenance),
			Detail:     asset.Detail,
		})
	}
	return RunResult{
		Title:         config.Title,
		Lines:         text.Lines,
		FontSize:      text.FontSize,
		Truncated:     text.Truncated,
		Icons:         provenance,
		CanvasWidth:   config.CanvasWidth,
		CanvasHeight:  config.CanvasHeight,
		LayerCount:    len(composed.Layers),
		OutputPath:    config.OutputPath,
		OutputSize:    int64(len(encoded.Data)),
		LayeredPath:   layeredPath,
		ElapsedMillis: elapsed.Milliseconds(),
	}
}

// IconReport records how a single icon query was satisfied.
type IconReport struct {
	Query      string `json:"query"`
	Provenance string `json:"provenance"`
	Detail     string `json:"detail,omitempty"`
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Text information
	Title     string   `json:"title"`
	Lines     []string `json:"lines"`
	FontSize  float64  `json:"fontSize"`
	Truncated bool     `json:"truncated"`

	// Icon provenance in query order
	Icons []IconReport `json:"icons"`

	// Canvas information
	CanvasWidth  int `json:"canvasWidth"`
	CanvasHeight int `json:"canvasHeight"`
	LayerCount   int `json:"layerCount"`

	// Output information
	OutputPath  string `json:"outputPath"`
	OutputSize  int64  `json:"outputSize"`
	LayeredPath string `json:"layeredPath,omitempty"`

	ElapsedMillis int64 `json:"elapsedMillis"`
}
