// Package encode flattens the composite onto an opaque canvas and produces
// the final output bytes.
package encode

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/user/thumbforge/pkg/pipeline"
	"github.com/user/thumbforge/pkg/ports"
)

// Stage encodes the flattened composite.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute flattens any residual transparency onto black and encodes the
// result as PNG at the requested quality.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	if input.Image == nil {
		return pipeline.EncodeResult{}, fmt.Errorf("image is required")
	}

	flat := flatten(input.Image)

	data, err := s.renderer.EncodeImage(flat, ports.FormatPNG, input.Quality)
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("encode output: %w", err)
	}

	s.logger.Debug("Encoded %dx%d output: %d bytes", flat.Bounds().Dx(), flat.Bounds().Dy(), len(data))
	return pipeline.EncodeResult{Data: data}, nil
}

// flatten composites the image over an opaque black backdrop.
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
