// Package gofontsource provides font faces backed by the embedded Go fonts,
// with a minimal bitmap face as the ultimate fallback.
package gofontsource

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/thumbforge/pkg/ports"
)

// Source implements ports.FontSource using embedded TTF data. Fonts are
// parsed once; faces are constructed fresh on every call because an
// opentype.Face carries mutable rasterizer state and must not be shared
// between goroutines.
type Source struct {
	regular   *opentype.Font
	bold      *opentype.Font
	regErr    error
	boldErr   error
	parseOnce sync.Once
}

// New creates a Source backed by the Go Regular and Go Bold fonts.
func New() *Source {
	return &Source{}
}

func (s *Source) parse() {
	s.parseOnce.Do(func() {
		s.regular, s.regErr = opentype.Parse(goregular.TTF)
		s.bold, s.boldErr = opentype.Parse(gobold.TTF)
	})
}

// Face returns a regular font face at the given point size. The returned
// face is owned by the caller and must not be used from other goroutines.
func (s *Source) Face(size float64) (font.Face, error) {
	return s.face(size, false)
}

// BoldFace returns a bold font face at the given point size. The returned
// face is owned by the caller and must not be used from other goroutines.
func (s *Source) BoldFace(size float64) (font.Face, error) {
	return s.face(size, true)
}

func (s *Source) face(size float64, bold bool) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	s.parse()

	fnt, parseErr := s.regular, s.regErr
	if bold {
		fnt, parseErr = s.bold, s.boldErr
	}
	if parseErr != nil {
		return nil, fmt.Errorf("parse embedded font: %w", parseErr)
	}

	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face at %v: %w", size, err)
	}
	return f, nil
}

// FallbackFace returns a fixed 7x13 bitmap face that never fails to load.
// The bitmap face holds no mutable state and is safe to share.
func (s *Source) FallbackFace() font.Face {
	return basicfont.Face7x13
}

var _ ports.FontSource = (*Source)(nil)
