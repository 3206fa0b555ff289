// Package textblock implements title layout: deterministic font fitting
// with greedy multi-line wrap, rendering and shadow application.
package textblock

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"

	"github.com/user/thumbforge/pkg/pipeline"
	"github.com/user/thumbforge/pkg/ports"
	"github.com/user/thumbforge/pkg/shadow"
)

// Stage lays out and renders the title text block.
type Stage struct {
	fonts    ports.FontSource
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new text stage.
func NewStage(fonts ports.FontSource, renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		fonts:    fonts,
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("text"),
	}
}

// fit holds one accepted layout candidate.
type fit struct {
	face      font.Face
	size      float64
	lines     []string
	truncated bool
}

// Execute fits the title into the allowed width and line count, renders it
// and applies the configured shadows.
func (s *Stage) Execute(ctx context.Context, input pipeline.TextInput) (pipeline.TextResult, error) {
	if strings.TrimSpace(input.Title) == "" {
		return pipeline.TextResult{}, fmt.Errorf("empty title")
	}
	if input.MaxWidthPx <= 0 {
		return pipeline.TextResult{}, fmt.Errorf("non-positive max width")
	}

	chosen := s.fitTitle(input)
	if chosen.truncated {
		s.logger.Debug("Title truncated to %d lines at floor size", len(chosen.lines))
	} else {
		s.logger.Debug("Title fitted: size %v, %d lines", chosen.size, len(chosen.lines))
	}

	img := s.render(chosen, input)

	if input.InnerShadow.Enabled {
		img = shadow.Inner(img,
			image.Pt(input.InnerShadow.Offset.X, input.InnerShadow.Offset.Y),
			input.InnerShadow.Blur,
			input.InnerShadow.Color,
		)
	}
	if input.OuterShadow.Enabled {
		img = shadow.Drop(img,
			image.Pt(input.OuterShadow.Offset.X, input.OuterShadow.Offset.Y),
			input.OuterShadow.Blur,
			input.OuterShadow.Color,
		)
	}

	if s.sink.Enabled() {
		s.sink.SaveTextBlock(img)
	}

	return pipeline.TextResult{
		Lines:     chosen.lines,
		FontSize:  chosen.size,
		Truncated: chosen.truncated,
		Image:     img,
	}, nil
}

// fitTitle walks candidate sizes downward until the wrapped line count fits,
// falling back to floor-size truncation. Font-load failures degrade to the
// fallback face rather than propagating.
func (s *Stage) fitTitle(input pipeline.TextInput) fit {
	for size := input.StartSize; size >= input.MinSize; size -= input.SizeStep {
		face, err := s.fonts.Face(size)
		if err != nil {
			s.logger.Warn("Font face unavailable, using fallback")
			break
		}
		lines := wrapAll(face, input.Title, input.MaxWidthPx)
		if len(lines) <= input.MaxLines {
			return fit{face: face, size: size, lines: lines}
		}
	}

	// Floor size, lossy but deterministic: truncate to the line maximum.
	size := input.MinSize
	face, err := s.fonts.Face(size)
	if err != nil {
		face = s.fonts.FallbackFace()
	}
	lines := wrapAll(face, input.Title, input.MaxWidthPx)
	truncated := false
	if len(lines) > input.MaxLines {
		lines = lines[:input.MaxLines]
		truncated = true
	}
	return fit{face: face, size: size, lines: lines, truncated: truncated}
}

// render draws the fitted lines, each horizontally centered, stacked with
// the configured line spacing, then crops the buffer to the ink bounds.
func (s *Stage) render(chosen fit, input pipeline.TextInput) image.Image {
	metrics := chosen.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineAdvance := int(chosen.size * input.LineSpacing)
	if lineAdvance <= 0 {
		lineAdvance = metrics.Height.Ceil()
	}

	blockW := 0
	for _, line := range chosen.lines {
		if w := measureWidth(chosen.face, line); w > blockW {
			blockW = w
		}
	}
	if blockW == 0 {
		blockW = 1
	}
	blockH := lineAdvance*(len(chosen.lines)-1) + ascent + metrics.Descent.Ceil()

	canvas := s.renderer.CreateCanvas(blockW, blockH, color.Transparent)
	style := ports.TextStyle{
		Face:  chosen.face,
		Color: input.Color,
		Align: ports.AlignCenter,
	}
	for i, line := range chosen.lines {
		baseline := float64(i*lineAdvance + ascent)
		canvas.DrawText(line, float64(blockW)/2, baseline, style)
	}

	return cropToInk(canvas.ToImage())
}

// cropToInk trims fully transparent rows and columns from the edges.
func cropToInk(img image.Image) image.Image {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if minX > maxX || minY > maxY {
		return img
	}

	w := maxX - minX + 1
	h := maxY - minY + 1
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, img.At(minX+x, minY+y))
		}
	}
	return out
}
