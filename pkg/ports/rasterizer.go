package ports

import (
	"image"
)

// VectorRasterizer converts vector image data (SVG) into a raster image.
type VectorRasterizer interface {
	// Rasterize renders the vector data into a raster of at most
	// width x height pixels, preserving the source aspect ratio.
	Rasterize(data []byte, width, height int) (image.Image, error)
}
