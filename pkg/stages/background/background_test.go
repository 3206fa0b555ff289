package background

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/thumbforge/pkg/adapters/ggrenderer"
	"github.com/user/thumbforge/pkg/adapters/logger"
	"github.com/user/thumbforge/pkg/mocks"
	"github.com/user/thumbforge/pkg/pipeline"
)

// encodePNG builds a solid test image of the given size.
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func newTestStage() *Stage {
	return NewStage(ggrenderer.New(), mocks.NewSink(), logger.NewNoop())
}

func TestStage_Execute_OutputMatchesCanvas(t *testing.T) {
	stage := newTestStage()

	tests := []struct {
		name       string
		srcW, srcH int
		canW, canH int
	}{
		{"exact size", 192, 108, 192, 108},
		{"wider source cropped", 400, 100, 192, 108},
		{"taller source cropped", 100, 400, 192, 108},
		{"upscaled source", 50, 50, 192, 108},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := pipeline.BackgroundInput{
				Data:         encodePNG(t, tt.srcW, tt.srcH, color.NRGBA{R: 10, G: 120, B: 200, A: 255}),
				CanvasWidth:  tt.canW,
				CanvasHeight: tt.canH,
			}
			result, err := stage.Execute(context.Background(), input)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			b := result.Image.Bounds()
			if b.Dx() != tt.canW || b.Dy() != tt.canH {
				t.Errorf("output = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.canW, tt.canH)
			}
		})
	}
}

func TestStage_Execute_BlurKeepsDimensions(t *testing.T) {
	stage := newTestStage()
	input := pipeline.BackgroundInput{
		Data:         encodePNG(t, 200, 200, color.NRGBA{R: 200, G: 50, B: 50, A: 255}),
		CanvasWidth:  100,
		CanvasHeight: 100,
		BlurRadius:   8,
	}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	b := result.Image.Bounds()
	if b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("output = %dx%d, want 100x100", b.Dx(), b.Dy())
	}
}

func TestStage_Execute_UndecodableIsFatal(t *testing.T) {
	stage := newTestStage()
	input := pipeline.BackgroundInput{
		Data:         []byte("not an image"),
		CanvasWidth:  100,
		CanvasHeight: 100,
	}

	if _, err := stage.Execute(context.Background(), input); err == nil {
		t.Error("expected an error for undecodable background")
	}
}

func TestStage_Execute_EmptyData(t *testing.T) {
	stage := newTestStage()
	input := pipeline.BackgroundInput{
		CanvasWidth:  100,
		CanvasHeight: 100,
	}

	if _, err := stage.Execute(context.Background(), input); err == nil {
		t.Error("expected an error for empty background data")
	}
}

func TestStage_Execute_InvalidCanvas(t *testing.T) {
	stage := newTestStage()
	input := pipeline.BackgroundInput{
		Data:        encodePNG(t, 10, 10, color.White),
		CanvasWidth: 0,
	}

	if _, err := stage.Execute(context.Background(), input); err == nil {
		t.Error("expected an error for invalid canvas size")
	}
}

func TestStage_Execute_PreservesColor(t *testing.T) {
	stage := newTestStage()
	want := color.NRGBA{R: 10, G: 120, B: 200, A: 255}
	input := pipeline.BackgroundInput{
		Data:         encodePNG(t, 100, 100, want),
		CanvasWidth:  50,
		CanvasHeight: 50,
	}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	r, g, b, _ := result.Image.At(25, 25).RGBA()
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("center pixel = (%d, %d, %d), want (%d, %d, %d)",
			r>>8, g>>8, b>>8, want.R, want.G, want.B)
	}
}
