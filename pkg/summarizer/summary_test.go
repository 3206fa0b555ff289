package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt = %v, want between %v and %v", summary.GeneratedAt, before, after)
	}
}

func TestBuilder_WithText(t *testing.T) {
	summary := NewBuilder().
		WithText(TextInfo{
			Title:     "My Title",
			Lines:     []string{"My", "Title"},
			FontSize:  90,
			Truncated: true,
		}).
		Build()

	if summary.Text.Title != "My Title" {
		t.Errorf("title = %q", summary.Text.Title)
	}
	if len(summary.Text.Lines) != 2 {
		t.Errorf("lines = %d, want 2", len(summary.Text.Lines))
	}
	if !summary.Text.Truncated {
		t.Error("truncated flag lost")
	}
}

func TestBuilder_WithIcon(t *testing.T) {
	summary := NewBuilder().
		WithIcon("python", "vector-cdn", "python").
		WithIcon("mytool", "generated", "M").
		Build()

	if len(summary.Icons) != 2 {
		t.Fatalf("icons = %d, want 2", len(summary.Icons))
	}
	if summary.Icons[0].Query != "python" || summary.Icons[0].Provenance != "vector-cdn" {
		t.Errorf("first icon = %+v", summary.Icons[0])
	}
	if summary.Icons[1].Detail != "M" {
		t.Errorf("second icon detail = %q", summary.Icons[1].Detail)
	}
}

func TestBuilder_WithOutput(t *testing.T) {
	summary := NewBuilder().
		WithOutput(OutputInfo{
			Path:         "thumb.png",
			FileSize:     4096,
			CanvasWidth:  1280,
			CanvasHeight: 720,
			ElapsedMs:    42,
		}).
		Build()

	if summary.Output.Path != "thumb.png" {
		t.Errorf("path = %q", summary.Output.Path)
	}
	if summary.Output.FileSize != 4096 {
		t.Errorf("file size = %d", summary.Output.FileSize)
	}
	if summary.Output.CanvasWidth != 1280 || summary.Output.CanvasHeight != 720 {
		t.Errorf("canvas = %dx%d", summary.Output.CanvasWidth, summary.Output.CanvasHeight)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	summary := NewBuilder().
		WithText(TextInfo{Title: "Chained"}).
		WithIcon("go", "catalog", "go").
		WithOutput(OutputInfo{Path: "out.png"}).
		Build()

	if summary.Text.Title != "Chained" {
		t.Errorf("title = %q", summary.Text.Title)
	}
	if len(summary.Icons) != 1 {
		t.Errorf("icons = %d, want 1", len(summary.Icons))
	}
	if summary.Output.Path != "out.png" {
		t.Errorf("path = %q", summary.Output.Path)
	}
}
