// Package summarizer provides summary generation for render results.
package summarizer

import "time"

// Summary contains all data collected during a render.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Title layout results
	Text TextInfo

	// Icon resolution results in query order
	Icons []IconInfo

	// Output details
	Output OutputInfo
}

// TextInfo contains the title layout outcome.
type TextInfo struct {
	Title     string
	Lines     []string
	FontSize  float64
	Truncated bool
}

// IconInfo records how a single icon query was satisfied.
type IconInfo struct {
	Query      string
	Provenance string
	Detail     string
}

// OutputInfo contains information about the written files.
type OutputInfo struct {
	Path         string
	FileSize     int64
	LayeredPath  string
	LayerCount   int
	CanvasWidth  int
	CanvasHeight int
	ElapsedMs    int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithText sets title layout information.
func (b *Builder) WithText(text TextInfo) *Builder {
	b.summary.Text = text
	return b
}

// WithIcon appends one icon resolution record.
func (b *Builder) WithIcon(query, provenance, detail string) *Builder {
	b.summary.Icons = append(b.summary.Icons, IconInfo{
		Query:      query,
		Provenance: provenance,
		Detail:     detail,
	})
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
