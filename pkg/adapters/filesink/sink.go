// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/thumbforge/pkg/ports"
)

// Sink saves intermediate pipeline results to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink writing under baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveBackground saves the prepared background image.
func (s *Sink) SaveBackground(img image.Image) error {
	return s.savePNG("background.png", img)
}

// SaveTextBlock saves the rendered text block.
func (s *Sink) SaveTextBlock(img image.Image) error {
	return s.savePNG("text.png", img)
}

// SaveIcon saves a resolved icon asset.
func (s *Sink) SaveIcon(index int, query string, img image.Image) error {
	name := fmt.Sprintf("icon_%d_%s.png", index+1, sanitize(query))
	return s.savePNG(name, img)
}

// SaveComposite saves the final flattened composite.
func (s *Sink) SaveComposite(img image.Image) error {
	return s.savePNG("composite.png", img)
}

// SaveReportJSON saves the render report as JSON.
func (s *Sink) SaveReportJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "report.json"), data)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 100)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// sanitize makes a query string safe for use in a file name.
func sanitize(query string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(query) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "query"
	}
	return b.String()
}

var _ ports.DebugSink = (*Sink)(nil)
