package mocks

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/user/thumbforge/pkg/ports"
)

// Rasterizer is a mock implementation of ports.VectorRasterizer. By default
// it returns an opaque square for any input that looks like SVG.
type Rasterizer struct {
	RasterizeFunc func(data []byte, width, height int) (image.Image, error)
}

func (m *Rasterizer) Rasterize(data []byte, width, height int) (image.Image, error) {
	if m.RasterizeFunc != nil {
		return m.RasterizeFunc(data, width, height)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty vector data")
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{R: 30, G: 30, B: 30, A: 255}), image.Point{}, draw.Src)
	return img, nil
}

var _ ports.VectorRasterizer = (*Rasterizer)(nil)
