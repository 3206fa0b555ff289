// Package svgrasterizer converts SVG data to raster images using oksvg.
package svgrasterizer

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/user/thumbforge/pkg/ports"
)

// Rasterizer implements ports.VectorRasterizer using oksvg and rasterx.
type Rasterizer struct{}

// New creates a new Rasterizer.
func New() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize renders SVG data into a raster of at most width x height pixels,
// preserving the source aspect ratio.
func (r *Rasterizer) Rasterize(data []byte, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse SVG: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("SVG has empty view box")
	}

	iconAspect := icon.ViewBox.W / icon.ViewBox.H
	viewAspect := float64(width) / float64(height)
	imgW, imgH := width, height
	if viewAspect > iconAspect {
		imgW = int(float64(height) * iconAspect)
	} else if viewAspect < iconAspect {
		imgH = int(float64(width) / iconAspect)
	}
	if imgW < 1 {
		imgW = 1
	}
	if imgH < 1 {
		imgH = 1
	}

	icon.SetTarget(0, 0, float64(imgW), float64(imgH))

	out := image.NewNRGBA(image.Rect(0, 0, imgW, imgH))
	scanner := rasterx.NewScannerGV(imgW, imgH, out, out.Bounds())
	raster := rasterx.NewDasher(imgW, imgH, scanner)
	icon.Draw(raster, 1)

	return out, nil
}

var _ ports.VectorRasterizer = (*Rasterizer)(nil)
