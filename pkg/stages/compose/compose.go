// Package compose places the prepared background, text block and icon row
// onto a single canvas and records the placement as named layers.
package compose

import (
	"context"
	"fmt"
	"image/color"

	"github.com/user/thumbforge/pkg/pipeline"
	"github.com/user/thumbforge/pkg/ports"
)

// Stage composites all prepared elements.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new compose stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("compose"),
	}
}

// Execute flattens the background, text and icons onto the canvas. The
// returned layers are ordered bottom to top and carry the same positions
// used for flattening, so a layered export reproduces the composite.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	if input.Background == nil {
		return pipeline.ComposeResult{}, fmt.Errorf("background image is required")
	}
	w := input.CanvasWidth
	h := input.CanvasHeight
	if w <= 0 || h <= 0 {
		return pipeline.ComposeResult{}, fmt.Errorf("invalid canvas size %dx%d", w, h)
	}

	canvas := s.renderer.CreateCanvas(w, h, color.Black)
	layers := make([]pipeline.Layer, 0, len(input.Icons)+2)

	canvas.DrawImage(input.Background, 0, 0)
	layers = append(layers, pipeline.Layer{Name: "Background", Image: input.Background})

	if input.Text.Image != nil {
		tb := input.Text.Image.Bounds()
		tx := (w - tb.Dx()) / 2
		ty := (h-tb.Dy())/2 + input.TextOffsetY
		canvas.DrawImage(input.Text.Image, tx, ty)
		layers = append(layers, pipeline.Layer{Name: "Text", X: tx, Y: ty, Image: input.Text.Image})
	}

	layers = append(layers, s.placeIcons(canvas, input)...)

	s.logger.Debug("Composited %d layers onto %dx%d canvas", len(layers), w, h)

	result := pipeline.ComposeResult{
		Image:  canvas.ToImage(),
		Layers: layers,
	}
	if s.sink.Enabled() {
		s.sink.SaveComposite(result.Image)
	}
	return result, nil
}

// placeIcons lays the icon row out centered horizontally. Icons are
// top-aligned on a common row origin below the canvas center, so shadows of
// differing heights do not shift their neighbors.
func (s *Stage) placeIcons(canvas ports.Canvas, input pipeline.ComposeInput) []pipeline.Layer {
	if len(input.Icons) == 0 {
		return nil
	}

	total := 0
	for i, asset := range input.Icons {
		total += asset.Image.Bounds().Dx()
		if i > 0 {
			total += input.IconGap
		}
	}

	x := (input.CanvasWidth - total) / 2
	y := input.CanvasHeight/2 + input.IconsOffsetY

	layers := make([]pipeline.Layer, 0, len(input.Icons))
	for i, asset := range input.Icons {
		canvas.DrawImage(asset.Image, x, y)
		layers = append(layers, pipeline.Layer{
			Name:  fmt.Sprintf("Icon_%d_%s", i+1, asset.Query),
			X:     x,
			Y:     y,
			Image: asset.Image,
		})
		x += asset.Image.Bounds().Dx() + input.IconGap
	}
	return layers
}
