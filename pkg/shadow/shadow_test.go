package shadow

import (
	"image"
	"image/color"
	"testing"
)

// square returns a transparent image with an opaque white square inside.
func square(size, inset int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := inset; y < size-inset; y++ {
		for x := inset; x < size-inset; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func TestDrop_OutputDimensions(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		offset image.Point
		blur   int
	}{
		{name: "positive offset", size: 20, offset: image.Pt(4, 4), blur: 8},
		{name: "negative offset", size: 20, offset: image.Pt(-3, -5), blur: 2},
		{name: "no blur", size: 10, offset: image.Pt(2, 0), blur: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Drop(square(tt.size, 2), tt.offset, tt.blur, color.RGBA{A: 180})

			wantW := tt.size + 2*Pad(tt.offset.X, tt.blur)
			wantH := tt.size + 2*Pad(tt.offset.Y, tt.blur)
			if out.Bounds().Dx() != wantW || out.Bounds().Dy() != wantH {
				t.Errorf("dimensions: expected %dx%d, got %dx%d",
					wantW, wantH, out.Bounds().Dx(), out.Bounds().Dy())
			}
			if out.Bounds().Dx() <= tt.size {
				t.Errorf("output width must strictly exceed input width")
			}
		})
	}
}

func TestDrop_TransparentOutsideInk(t *testing.T) {
	// A single opaque pixel at the center. Everything beyond the shadow's
	// reach must stay fully transparent.
	src := image.NewNRGBA(image.Rect(0, 0, 9, 9))
	src.SetNRGBA(4, 4, color.NRGBA{A: 255})

	offset := image.Pt(2, 2)
	blur := 2
	out := Drop(src, offset, blur, color.RGBA{A: 255})

	// Corner opposite the offset direction is outside ink + shadow reach.
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner pixel alpha: expected 0, got %d", a)
	}

	// The source pixel position must remain opaque.
	padX := Pad(offset.X, blur)
	padY := Pad(offset.Y, blur)
	if a := out.NRGBAAt(padX+4, padY+4).A; a != 255 {
		t.Errorf("source pixel alpha: expected 255, got %d", a)
	}
}

func TestDrop_ShadowBeneathSource(t *testing.T) {
	src := square(16, 0)
	out := Drop(src, image.Pt(4, 4), 0, color.RGBA{R: 10, G: 10, B: 10, A: 255})

	// With zero blur the shadow silhouette extends exactly offset pixels
	// past the source's bottom-right edge.
	padX := Pad(4, 0)
	padY := Pad(4, 0)
	px := out.NRGBAAt(padX+16+3, padY+16+3)
	if px.A == 0 {
		t.Errorf("expected shadow ink past the source edge, got transparent pixel")
	}
	if px.R != 10 || px.G != 10 || px.B != 10 {
		t.Errorf("shadow color: expected (10,10,10), got (%d,%d,%d)", px.R, px.G, px.B)
	}
}

func TestInner_OutputDimensionsEqualInput(t *testing.T) {
	src := square(32, 4)
	out := Inner(src, image.Pt(3, 3), 6, color.RGBA{A: 120})

	if out.Bounds() != src.Bounds() {
		t.Errorf("bounds: expected %v, got %v", src.Bounds(), out.Bounds())
	}
}

func TestInner_ShadowOnlyInsideInk(t *testing.T) {
	src := square(32, 8)
	out := Inner(src, image.Pt(3, 3), 4, color.RGBA{A: 200})

	// Outside the square there was no ink, so there must be none now.
	if a := out.NRGBAAt(1, 1).A; a != 0 {
		t.Errorf("outside ink: expected alpha 0, got %d", a)
	}

	// The top-left inner edge faces the shadow offset and must darken.
	edge := out.NRGBAAt(8, 8)
	center := out.NRGBAAt(16, 16)
	if edge.R >= center.R {
		t.Errorf("expected darkened inner edge: edge R=%d, center R=%d", edge.R, center.R)
	}
}

func TestInner_PureFunction(t *testing.T) {
	src := square(16, 2)
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)
	_ = Inner(src, image.Pt(2, 2), 2, color.RGBA{A: 120})

	for i := range src.Pix {
		if src.Pix[i] != before[i] {
			t.Fatalf("input image mutated at pix[%d]", i)
		}
	}
}
