package mocks

import (
	"image"
	"sync"

	"github.com/user/thumbforge/pkg/ports"
)

// Sink is a mock implementation of ports.DebugSink that records saves.
type Sink struct {
	mu sync.Mutex

	EnabledValue bool

	Backgrounds []image.Image
	TextBlocks  []image.Image
	Icons       map[int]string
	Composites  []image.Image
	Reports     [][]byte
}

// NewSink creates an enabled mock Sink.
func NewSink() *Sink {
	return &Sink{
		EnabledValue: true,
		Icons:        make(map[int]string),
	}
}

func (m *Sink) Enabled() bool {
	return m.EnabledValue
}

func (m *Sink) SaveBackground(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Backgrounds = append(m.Backgrounds, img)
	return nil
}

func (m *Sink) SaveTextBlock(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TextBlocks = append(m.TextBlocks, img)
	return nil
}

func (m *Sink) SaveIcon(index int, query string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Icons[index] = query
	return nil
}

func (m *Sink) SaveComposite(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Composites = append(m.Composites, img)
	return nil
}

func (m *Sink) SaveReportJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reports = append(m.Reports, data)
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
