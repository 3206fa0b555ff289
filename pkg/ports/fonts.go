package ports

import (
	"golang.org/x/image/font"
)

// FontSource provides font faces for text measurement and rendering.
type FontSource interface {
	// Face returns a font face at the given point size.
	Face(size float64) (font.Face, error)

	// BoldFace returns a bold font face at the given point size.
	BoldFace(size float64) (font.Face, error)

	// FallbackFace returns a minimal fixed-size face that is always
	// available, even when no real font could be loaded.
	FallbackFace() font.Face
}
