package integration

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/thumbforge/pkg/adapters/gofontsource"
	"github.com/user/thumbforge/pkg/adapters/ggrenderer"
	"github.com/user/thumbforge/pkg/adapters/logger"
	"github.com/user/thumbforge/pkg/adapters/nullsink"
	"github.com/user/thumbforge/pkg/adapters/psdwriter"
	"github.com/user/thumbforge/pkg/mocks"
	"github.com/user/thumbforge/pkg/orchestrator"
	"github.com/user/thumbforge/pkg/pipeline"
	"github.com/user/thumbforge/pkg/stages/background"
	"github.com/user/thumbforge/pkg/stages/compose"
	"github.com/user/thumbforge/pkg/stages/encode"
	"github.com/user/thumbforge/pkg/stages/icons"
	"github.com/user/thumbforge/pkg/stages/textblock"
)

const cdnBase = "https://cdn.jsdelivr.net/npm/simple-icons@latest/icons"

// pngBytes encodes a solid-color PNG of the given size.
func pngBytes(t *testing.T, width, height int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode background: %v", err)
	}
	return buf.Bytes()
}

// newOrchestrator wires real stages with a mock fetcher and rasterizer so
// the full pipeline runs without network access.
func newOrchestrator(fetcher *mocks.Fetcher, fs *mocks.FileSystem) *orchestrator.Orchestrator {
	renderer := ggrenderer.New()
	fonts := gofontsource.New()
	sink := nullsink.New()
	log := logger.NewNoop()

	return orchestrator.New(
		background.NewStage(renderer, sink, log),
		textblock.NewStage(fonts, renderer, sink, log),
		icons.NewStage(fetcher, &mocks.Rasterizer{}, renderer, fonts, sink, log),
		compose.NewStage(renderer, sink, log),
		encode.NewStage(renderer, log),
		psdwriter.New(),
		fs,
		sink,
		log,
	)
}

func baseConfig() orchestrator.Config {
	cfg := orchestrator.DefaultConfig()
	cfg.CanvasWidth = 640
	cfg.CanvasHeight = 360
	cfg.BackgroundBlur = 10
	cfg.BackgroundPath = "bg.png"
	cfg.OutputPath = "out.png"
	return cfg
}

func TestPipeline_EndToEnd(t *testing.T) {
	fetcher := mocks.NewFetcher(map[string][]byte{
		fmt.Sprintf("%s/python.svg", cdnBase): []byte(`<svg viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`),
	})
	fs := mocks.NewFileSystem()
	fs.WriteFile("bg.png", pngBytes(t, 320, 320, color.NRGBA{R: 200, G: 80, B: 40, A: 255}))

	cfg := baseConfig()
	cfg.Title = "Go Tips"
	cfg.IconQueries = []string{"python", "nonexistent-xyz"}
	cfg.LayeredOutputPath = "out.psd"

	result, err := newOrchestrator(fetcher, fs).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Raster output decodes to the canvas size.
	data, ok := fs.GetFile("out.png")
	if !ok {
		t.Fatal("raster output missing")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 360 {
		t.Errorf("output size = %dx%d, want 640x360", b.Dx(), b.Dy())
	}

	// Provenance reflects the resolution chain in query order.
	if len(result.Icons) != 2 {
		t.Fatalf("got %d icon reports, want 2", len(result.Icons))
	}
	if result.Icons[0].Provenance != string(pipeline.ProvenanceVectorCDN) {
		t.Errorf("python provenance = %q", result.Icons[0].Provenance)
	}
	if result.Icons[1].Provenance != string(pipeline.ProvenanceGenerated) {
		t.Errorf("fallback provenance = %q", result.Icons[1].Provenance)
	}
	if result.Icons[1].Detail != "N" {
		t.Errorf("badge label = %q, want N", result.Icons[1].Detail)
	}

	// Background, Text and two icon layers.
	if result.LayerCount != 4 {
		t.Errorf("layer count = %d, want 4", result.LayerCount)
	}

	// Layered document begins with the PSD signature and carries all layers.
	psd, ok := fs.GetFile("out.psd")
	if !ok {
		t.Fatal("layered output missing")
	}
	if string(psd[:4]) != "8BPS" {
		t.Errorf("layered signature = %q", psd[:4])
	}
	if count := int16(binary.BigEndian.Uint16(psd[42:44])); count != 4 {
		t.Errorf("layered layer count = %d, want 4", count)
	}
	if result.LayeredPath != "out.psd" {
		t.Errorf("layered path = %q", result.LayeredPath)
	}

	if result.FontSize < cfg.TextMinSize {
		t.Errorf("font size = %v below floor", result.FontSize)
	}
	if len(result.Lines) == 0 {
		t.Error("no rendered lines reported")
	}
}

func TestPipeline_NoIcons(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("bg.png", pngBytes(t, 100, 100, color.NRGBA{R: 20, G: 90, B: 160, A: 255}))

	cfg := baseConfig()
	cfg.Title = "Plain"

	result, err := newOrchestrator(mocks.NewFetcher(nil), fs).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Icons) != 0 {
		t.Errorf("got %d icon reports, want 0", len(result.Icons))
	}
	// Background and Text only.
	if result.LayerCount != 2 {
		t.Errorf("layer count = %d, want 2", result.LayerCount)
	}
	if _, ok := fs.GetFile("out.png"); !ok {
		t.Error("raster output missing")
	}
}

func TestPipeline_LongTitleWraps(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("bg.png", pngBytes(t, 100, 100, color.NRGBA{R: 60, G: 60, B: 60, A: 255}))

	cfg := baseConfig()
	cfg.CanvasWidth = 400
	cfg.CanvasHeight = 225
	cfg.Title = "Continuous Integration Deployment Pipeline"

	result, err := newOrchestrator(mocks.NewFetcher(nil), fs).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Lines) < 2 {
		t.Errorf("long title produced %d lines, want at least 2", len(result.Lines))
	}
	if len(result.Lines) > cfg.TextMaxLines {
		t.Errorf("line count %d exceeds maximum %d", len(result.Lines), cfg.TextMaxLines)
	}
}
