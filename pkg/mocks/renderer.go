package mocks

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/user/thumbforge/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
	BlurImageFunc    func(img image.Image, radius float64) image.Image
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return NewCanvas(width, height)
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewNRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) BlurImage(img image.Image, radius float64) image.Image {
	if m.BlurImageFunc != nil {
		return m.BlurImageFunc(img, radius)
	}
	return img
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas. It records draw calls so
// tests can assert placement without rasterizing anything real.
type Canvas struct {
	width  int
	height int
	img    *image.NRGBA

	// DrawCalls records every DrawImage position in call order.
	DrawCalls []DrawCall
	// TextCalls records every DrawText invocation in call order.
	TextCalls []string
}

// DrawCall records one DrawImage invocation.
type DrawCall struct {
	X int
	Y int
	W int
	H int
}

// NewCanvas creates a mock Canvas backed by a real buffer.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	m.DrawCalls = append(m.DrawCalls, DrawCall{X: x, Y: y, W: b.Dx(), H: b.Dy()})
	draw.Draw(m.img, image.Rect(x, y, x+b.Dx(), y+b.Dy()), img, b.Min, draw.Over)
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	draw.Draw(m.img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Over)
}

func (m *Canvas) DrawCircle(cx, cy, r float64, c color.Color) {}

func (m *Canvas) StrokeCircle(cx, cy, r float64, c color.Color, strokeWidth float64) {}

func (m *Canvas) DrawText(text string, x, y float64, style ports.TextStyle) {
	m.TextCalls = append(m.TextCalls, text)
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	// 10px per rune keeps measurement deterministic for layout tests.
	return float64(len([]rune(text)) * 10), 10
}

func (m *Canvas) ToImage() image.Image {
	return m.img
}

var _ ports.Canvas = (*Canvas)(nil)
