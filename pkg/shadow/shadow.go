// Package shadow implements synthetic drop and inner shadows as pure
// pixel-buffer transforms.
package shadow

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Pad returns the padding added on each side of a drop shadow for the
// given offset component and blur radius.
func Pad(offset, blur int) int {
	return abs(offset) + 2*blur
}

// Drop renders a blurred, offset, solid-color silhouette beneath the image's
// opaque regions. The returned image is padded by Pad(offset, blur) on both
// sides of each axis; callers must use the returned bounds for placement.
func Drop(img image.Image, offset image.Point, blur int, col color.RGBA) *image.NRGBA {
	src := toNRGBA(img)
	b := src.Bounds()
	padX := Pad(offset.X, blur)
	padY := Pad(offset.Y, blur)

	w := b.Dx() + 2*padX
	h := b.Dy() + 2*padY

	// Solid-color copy of the alpha mask at the offset position.
	mask := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			a := src.NRGBAAt(b.Min.X+x, b.Min.Y+y).A
			if a == 0 {
				continue
			}
			mask.SetNRGBA(x+padX+offset.X, y+padY+offset.Y, color.NRGBA{
				R: col.R,
				G: col.G,
				B: col.B,
				A: uint8(int(a) * int(col.A) / 255),
			})
		}
	}

	blurred := gaussian(mask, blur)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), blurred, image.Point{}, draw.Over)
	draw.Draw(out, image.Rect(padX, padY, padX+b.Dx(), padY+b.Dy()), src, b.Min, draw.Over)
	return out
}

// Inner renders a shadow clipped to the image's existing opaque regions,
// simulating depth. The returned image has the same bounds as the input.
func Inner(img image.Image, offset image.Point, blur int, col color.RGBA) *image.NRGBA {
	src := toNRGBA(img)
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()

	// Inverted alpha mask shifted by the offset. Pixels outside the source
	// count as fully transparent, so their inversion is fully opaque.
	inv := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := x - offset.X
			sy := y - offset.Y
			var a uint8
			if sx >= 0 && sx < w && sy >= 0 && sy < h {
				a = src.NRGBAAt(b.Min.X+sx, b.Min.Y+sy).A
			}
			inv.SetNRGBA(x, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: 255 - a})
		}
	}

	blurred := gaussian(inv, blur)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)

	// Clip the blurred mask back to the original ink and composite on top.
	clipped := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcA := src.NRGBAAt(b.Min.X+x, b.Min.Y+y).A
			if srcA == 0 {
				continue
			}
			shadowA := blurred.NRGBAAt(x, y).A
			a := int(shadowA) * int(srcA) / 255 * int(col.A) / 255
			if a == 0 {
				continue
			}
			clipped.SetNRGBA(x, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(a)})
		}
	}
	draw.Draw(out, out.Bounds(), clipped, image.Point{}, draw.Over)
	return out
}

// gaussian blurs all four channels. A zero radius is a no-op.
func gaussian(img *image.NRGBA, radius int) *image.NRGBA {
	if radius <= 0 {
		return img
	}
	return imaging.Blur(img, float64(radius)/2)
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
