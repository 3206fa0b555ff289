package icons

import (
	"image"
	"image/color"
	"strings"
	"unicode"

	"github.com/user/thumbforge/pkg/ports"
)

var (
	badgeFill = color.NRGBA{R: 70, G: 130, B: 180, A: 255}
	badgeRing = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	badgeInk  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// initials derives at most two uppercase initials from the query's
// whitespace-split tokens. An empty query yields "?".
func initials(query string) string {
	tokens := strings.Fields(query)
	var b strings.Builder
	for _, tok := range tokens {
		for _, r := range tok {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// GenerateBadge renders the circular fallback badge for a query and returns
// the image with the label drawn on it. Exposed for preview tooling.
func GenerateBadge(renderer ports.Renderer, fonts ports.FontSource, query string, size int) (image.Image, string) {
	return generateBadge(renderer, fonts, query, size)
}

// generateBadge renders the circular fallback badge for a query. It cannot
// fail: when no real font face is available the fixed bitmap fallback face
// is used instead.
func generateBadge(renderer ports.Renderer, fonts ports.FontSource, query string, size int) (image.Image, string) {
	if size <= 0 {
		size = 512
	}
	label := initials(query)

	canvas := renderer.CreateCanvas(size, size, color.Transparent)

	margin := float64(size) / 8
	center := float64(size) / 2
	radius := center - margin
	canvas.DrawCircle(center, center, radius, badgeFill)
	canvas.StrokeCircle(center, center, radius, badgeRing, float64(size)/64)

	style := ports.TextStyle{
		Color: badgeInk,
		Align: ports.AlignCenter,
	}
	face, err := fonts.BoldFace(float64(size) / 3)
	if err != nil {
		face = fonts.FallbackFace()
	}
	style.Face = face

	_, h := canvas.MeasureText(label, style)
	baseline := center + h/2
	canvas.DrawText(label, center, baseline, style)

	return canvas.ToImage(), label
}
