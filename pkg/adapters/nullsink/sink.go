// Package nullsink provides a no-op debug sink.
package nullsink

import (
	"image"

	"github.com/user/thumbforge/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new no-op Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false; callers may skip preparing debug data.
func (s *Sink) Enabled() bool { return false }

// SaveBackground discards the image.
func (s *Sink) SaveBackground(image.Image) error { return nil }

// SaveTextBlock discards the image.
func (s *Sink) SaveTextBlock(image.Image) error { return nil }

// SaveIcon discards the image.
func (s *Sink) SaveIcon(int, string, image.Image) error { return nil }

// SaveComposite discards the image.
func (s *Sink) SaveComposite(image.Image) error { return nil }

// SaveReportJSON discards the data.
func (s *Sink) SaveReportJSON([]byte) error { return nil }

var _ ports.DebugSink = (*Sink)(nil)
