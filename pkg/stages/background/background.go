// Package background implements background preparation: decode, scale to
// cover, center-crop and blur.
package background

import (
	"context"
	"fmt"
	"image"

	"github.com/user/thumbforge/pkg/pipeline"
	"github.com/user/thumbforge/pkg/ports"
)

// Stage prepares the background image for composition.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new background stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("background"),
	}
}

// Execute decodes the background, scales it to cover the canvas preserving
// aspect ratio, center-crops the excess and applies the configured blur.
// A background that cannot be decoded is fatal for the render.
func (s *Stage) Execute(ctx context.Context, input pipeline.BackgroundInput) (pipeline.BackgroundResult, error) {
	if input.CanvasWidth <= 0 || input.CanvasHeight <= 0 {
		return pipeline.BackgroundResult{}, fmt.Errorf("invalid canvas size %dx%d", input.CanvasWidth, input.CanvasHeight)
	}
	if len(input.Data) == 0 {
		return pipeline.BackgroundResult{}, fmt.Errorf("empty background data")
	}

	img, err := s.renderer.DecodeImage(input.Data)
	if err != nil {
		return pipeline.BackgroundResult{}, fmt.Errorf("decode background: %w", err)
	}

	img = s.coverCrop(img, input.CanvasWidth, input.CanvasHeight)

	if input.BlurRadius > 0 {
		img = s.renderer.BlurImage(img, input.BlurRadius)
	}
	s.logger.Debug("Background prepared: %dx%d, blur %v", input.CanvasWidth, input.CanvasHeight, input.BlurRadius)

	if s.sink.Enabled() {
		s.sink.SaveBackground(img)
	}

	return pipeline.BackgroundResult{Image: img}, nil
}

// coverCrop scales the image so it covers the target completely, then crops
// the overflow symmetrically. Wider sources lose width, taller sources lose
// height; no letterboxing and no aspect distortion.
func (s *Stage) coverCrop(img image.Image, targetW, targetH int) image.Image {
	b := img.Bounds()
	srcW := b.Dx()
	srcH := b.Dy()
	if srcW == targetW && srcH == targetH {
		return img
	}

	srcRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(targetW) / float64(targetH)

	var scaledW, scaledH int
	if srcRatio > targetRatio {
		// Source is wider: match height, crop width.
		scaledH = targetH
		scaledW = int(srcRatio * float64(scaledH))
	} else {
		// Source is taller or equal: match width, crop height.
		scaledW = targetW
		scaledH = int(float64(scaledW) / srcRatio)
	}
	if scaledW < targetW {
		scaledW = targetW
	}
	if scaledH < targetH {
		scaledH = targetH
	}

	scaled := s.renderer.ResizeImage(img, scaledW, scaledH)

	left := (scaledW - targetW) / 2
	top := (scaledH - targetH) / 2
	return cropRect(scaled, left, top, targetW, targetH)
}

// cropRect extracts a region into a new image with origin (0,0).
func cropRect(img image.Image, x, y, width, height int) image.Image {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	b := img.Bounds()
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			out.Set(dx, dy, img.At(b.Min.X+x+dx, b.Min.Y+y+dy))
		}
	}
	return out
}
