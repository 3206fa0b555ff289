// Package psdwriter encodes a simplified layered Photoshop document.
//
// The output is a minimal but well-formed PSD: 8-bit RGB with alpha, one
// raw-data (uncompressed) layer per input layer, plus the flattened
// composite as the merged image data section. It is intended for layered
// handoff, not full Photoshop feature fidelity.
package psdwriter

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/draw"

	"github.com/user/thumbforge/pkg/pipeline"
)

const (
	signature      = "8BPS"
	blendSignature = "8BIM"
	blendNormal    = "norm"
	colorModeRGB   = 3
	depth          = 8
	channelCount   = 4 // RGBA
	compressionRaw = 0
)

// Writer encodes layered PSD documents.
type Writer struct{}

// New creates a new Writer.
func New() *Writer {
	return &Writer{}
}

// Export encodes the layers bottom-to-top into a PSD document of the given
// canvas size, with the flattened composite as the merged preview.
func (w *Writer) Export(width, height int, layers []pipeline.Layer, composite image.Image) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers to export")
	}

	var buf bytes.Buffer

	// File header.
	buf.WriteString(signature)
	binary.Write(&buf, binary.BigEndian, uint16(1)) // version
	buf.Write(make([]byte, 6))                      // reserved
	binary.Write(&buf, binary.BigEndian, uint16(channelCount))
	binary.Write(&buf, binary.BigEndian, uint32(height))
	binary.Write(&buf, binary.BigEndian, uint32(width))
	binary.Write(&buf, binary.BigEndian, uint16(depth))
	binary.Write(&buf, binary.BigEndian, uint16(colorModeRGB))

	// Color mode data and image resources: empty.
	binary.Write(&buf, binary.BigEndian, uint32(0))
	binary.Write(&buf, binary.BigEndian, uint32(0))

	layerInfo, err := encodeLayerInfo(layers)
	if err != nil {
		return nil, err
	}

	// Layer and mask information section: layer info + empty global mask.
	binary.Write(&buf, binary.BigEndian, uint32(len(layerInfo)+4))
	buf.Write(layerInfo)
	binary.Write(&buf, binary.BigEndian, uint32(0))

	// Merged image data: raw planar RGBA.
	binary.Write(&buf, binary.BigEndian, uint16(compressionRaw))
	writePlanes(&buf, toNRGBA(composite, width, height))

	return buf.Bytes(), nil
}

// encodeLayerInfo builds the layer info block: count, records, channel data.
func encodeLayerInfo(layers []pipeline.Layer) ([]byte, error) {
	var records bytes.Buffer
	var channels bytes.Buffer

	binary.Write(&records, binary.BigEndian, int16(len(layers)))

	for _, layer := range layers {
		b := layer.Image.Bounds()
		lw := b.Dx()
		lh := b.Dy()
		if lw <= 0 || lh <= 0 {
			return nil, fmt.Errorf("layer %q has empty bounds", layer.Name)
		}
		planes := planeData(toNRGBA(layer.Image, lw, lh))

		// Rectangle: top, left, bottom, right.
		binary.Write(&records, binary.BigEndian, int32(layer.Y))
		binary.Write(&records, binary.BigEndian, int32(layer.X))
		binary.Write(&records, binary.BigEndian, int32(layer.Y+lh))
		binary.Write(&records, binary.BigEndian, int32(layer.X+lw))

		// Channels: id + data length (compression marker + raw plane).
		binary.Write(&records, binary.BigEndian, uint16(channelCount))
		for _, id := range []int16{0, 1, 2, -1} {
			binary.Write(&records, binary.BigEndian, id)
			binary.Write(&records, binary.BigEndian, uint32(2+lw*lh))
		}

		records.WriteString(blendSignature)
		records.WriteString(blendNormal)
		records.WriteByte(255) // opacity
		records.WriteByte(0)   // clipping: base
		records.WriteByte(0)   // flags
		records.WriteByte(0)   // filler

		name := pascalName(layer.Name)
		binary.Write(&records, binary.BigEndian, uint32(4+4+len(name)))
		binary.Write(&records, binary.BigEndian, uint32(0)) // layer mask data
		binary.Write(&records, binary.BigEndian, uint32(0)) // blending ranges
		records.Write(name)

		// Channel image data follows all records, in record order.
		for plane := 0; plane < channelCount; plane++ {
			binary.Write(&channels, binary.BigEndian, uint16(compressionRaw))
			channels.Write(planes[plane])
		}
	}

	var info bytes.Buffer
	total := records.Len() + channels.Len()
	if total%2 != 0 {
		channels.WriteByte(0)
		total++
	}
	binary.Write(&info, binary.BigEndian, uint32(total))
	info.Write(records.Bytes())
	info.Write(channels.Bytes())
	return info.Bytes(), nil
}

// pascalName encodes a layer name as a Pascal string padded to a multiple
// of 4 bytes. Names longer than 255 bytes are truncated.
func pascalName(name string) []byte {
	raw := []byte(name)
	if len(raw) > 255 {
		raw = raw[:255]
	}
	out := append([]byte{byte(len(raw))}, raw...)
	for len(out)%4 != 0 {
		out = append(out, 0)
	}
	return out
}

// planeData splits an image into R, G, B, A planes.
func planeData(img *image.NRGBA) [4][]byte {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	var planes [4][]byte
	for i := range planes {
		planes[i] = make([]byte, n)
	}

	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			planes[0][idx] = px.R
			planes[1][idx] = px.G
			planes[2][idx] = px.B
			planes[3][idx] = px.A
			idx++
		}
	}
	return planes
}

func writePlanes(buf *bytes.Buffer, img *image.NRGBA) {
	planes := planeData(img)
	for _, plane := range planes {
		buf.Write(plane)
	}
}

// toNRGBA converts and, if needed, letterboxes the image into a w x h buffer
// anchored at the origin.
func toNRGBA(img image.Image, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if img != nil {
		draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	return out
}
