package mocks

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/user/thumbforge/pkg/ports"
)

// FontSource is a mock implementation of ports.FontSource that serves the
// fixed bitmap face for every request.
type FontSource struct {
	FaceFunc     func(size float64) (font.Face, error)
	BoldFaceFunc func(size float64) (font.Face, error)
}

func (m *FontSource) Face(size float64) (font.Face, error) {
	if m.FaceFunc != nil {
		return m.FaceFunc(size)
	}
	return basicfont.Face7x13, nil
}

func (m *FontSource) BoldFace(size float64) (font.Face, error) {
	if m.BoldFaceFunc != nil {
		return m.BoldFaceFunc(size)
	}
	return basicfont.Face7x13, nil
}

func (m *FontSource) FallbackFace() font.Face {
	return basicfont.Face7x13
}

var _ ports.FontSource = (*FontSource)(nil)
