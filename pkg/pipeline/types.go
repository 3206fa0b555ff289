package pipeline

import (
	"image"
	"image/color"
	"time"
)

// =============================================================================
// Common Types
// =============================================================================

// Offset represents a displacement in pixels.
type Offset struct {
	X int
	Y int
}

// ShadowSpec describes a synthetic shadow.
type ShadowSpec struct {
	Enabled bool
	Offset  Offset
	Blur    int
	Color   color.RGBA
}

// DefaultOuterShadow returns the standard drop shadow used for text and icons.
func DefaultOuterShadow() ShadowSpec {
	return ShadowSpec{
		Enabled: true,
		Offset:  Offset{X: 4, Y: 4},
		Blur:    8,
		Color:   color.RGBA{A: 180},
	}
}

// DefaultInnerShadow returns the standard inner shadow used for text.
func DefaultInnerShadow() ShadowSpec {
	return ShadowSpec{
		Enabled: true,
		Offset:  Offset{X: 3, Y: 3},
		Blur:    6,
		Color:   color.RGBA{A: 120},
	}
}

// Layer is a named buffer anchored on the canvas. Layers are created during
// composition and consumed once by the layered exporter.
type Layer struct {
	Name  string
	X     int
	Y     int
	Image image.Image
}

// =============================================================================
// Background Stage Types
// =============================================================================

// BackgroundInput contains parameters for background preparation.
type BackgroundInput struct {
	Data         []byte  // Encoded background image bytes
	CanvasWidth  int     // Target canvas width
	CanvasHeight int     // Target canvas height
	BlurRadius   float64 // Gaussian blur radius (0 disables blur)
}

// BackgroundResult contains the prepared background.
type BackgroundResult struct {
	Image image.Image // Exactly CanvasWidth x CanvasHeight
}

// =============================================================================
// Text Stage Types
// =============================================================================

// TextInput contains parameters for title layout and rendering.
type TextInput struct {
	Title       string
	MaxWidthPx  int     // Maximum line width in pixels
	StartSize   float64 // Initial candidate font size
	MinSize     float64 // Floor font size before truncation kicks in
	SizeStep    float64 // Decrement between candidate sizes
	MaxLines    int     // Maximum wrapped line count
	LineSpacing float64 // Line advance multiplier
	Color       color.Color
	OuterShadow ShadowSpec
	InnerShadow ShadowSpec
}

// DefaultTextInput returns TextInput with default values.
func DefaultTextInput() TextInput {
	return TextInput{
		StartSize:   160,
		MinSize:     20,
		SizeStep:    10,
		MaxLines:    3,
		LineSpacing: 1.1,
		Color:       color.White,
		OuterShadow: DefaultOuterShadow(),
		InnerShadow: DefaultInnerShadow(),
	}
}

// TextResult contains the rendered text block.
type TextResult struct {
	Lines     []string    // Wrapped lines in display order
	FontSize  float64     // The chosen font size
	Truncated bool        // True when floor-size truncation was applied
	Image     image.Image // Shadowed block, cropped to ink plus shadow padding
}

// =============================================================================
// Icon Stage Types
// =============================================================================

// Provenance records which resolution step produced an icon asset.
type Provenance string

const (
	// ProvenanceVectorCDN means a slug variant matched the vector icon CDN.
	ProvenanceVectorCDN Provenance = "vector-cdn"
	// ProvenanceVectorGeneric means a generic glyph from the vector CDN was used.
	ProvenanceVectorGeneric Provenance = "vector-generic"
	// ProvenanceCatalog means the curated raster catalog matched the query.
	ProvenanceCatalog Provenance = "catalog"
	// ProvenanceCatalogDefault means the catalog's designated default entry was used.
	ProvenanceCatalogDefault Provenance = "catalog-default"
	// ProvenanceGenerated means a fallback initials badge was generated locally.
	ProvenanceGenerated Provenance = "generated"
)

// IconsInput contains parameters for icon resolution.
type IconsInput struct {
	Queries      []string
	MaxDimension int           // Raster size for vector sources (e.g. 512)
	MaxWidth     int           // Maximum placed icon width in pixels
	Timeout      time.Duration // Per network attempt
	Workers      int           // Concurrent query resolutions (0 = len(Queries))
	CDNBase      string        // Vector CDN base URL (empty = built-in)
	Shadow       ShadowSpec
}

// DefaultIconsInput returns IconsInput with default values.
func DefaultIconsInput() IconsInput {
	return IconsInput{
		MaxDimension: 512,
		MaxWidth:     200,
		Timeout:      8 * time.Second,
		Shadow:       DefaultOuterShadow(),
	}
}

// IconAsset is a resolved icon with its provenance.
type IconAsset struct {
	Query      string
	Provenance Provenance
	Detail     string      // Slug, catalog key or initials that satisfied the query
	Image      image.Image // Resized and shadowed, ready for placement
}

// IconsResult contains resolved icons in input query order.
type IconsResult struct {
	Assets []IconAsset
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput contains all elements to place on the canvas.
type ComposeInput struct {
	Background   image.Image
	Text         TextResult
	Icons        []IconAsset
	CanvasWidth  int
	CanvasHeight int
	TextOffsetY  int // Vertical offset of the text block from canvas center
	IconsOffsetY int // Vertical offset of the icon row below canvas center
	IconGap      int // Horizontal gap between icons
}

// ComposeResult contains the flattened canvas and the individual layers
// in bottom-to-top order for the layered exporter.
type ComposeResult struct {
	Image  image.Image
	Layers []Layer
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for output encoding.
type EncodeInput struct {
	Image   image.Image
	Quality int // 0-100, mapped to the encoder's compression settings
}

// EncodeResult contains the encoded output raster.
type EncodeResult struct {
	Data []byte
}
