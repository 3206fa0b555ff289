package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveBackground saves the prepared (blurred) background image.
	SaveBackground(img image.Image) error

	// SaveTextBlock saves the rendered text block.
	SaveTextBlock(img image.Image) error

	// SaveIcon saves a resolved icon asset.
	SaveIcon(index int, query string, img image.Image) error

	// SaveComposite saves the final flattened composite.
	SaveComposite(img image.Image) error

	// SaveReportJSON saves the render report as JSON.
	SaveReportJSON(data []byte) error
}
