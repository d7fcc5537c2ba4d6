package frame

import (
	"image"
	"image/color"
)

// Buffer is the pixel grid a frame is rendered into.
//
// Pix in the underlying image is row-major, top row first, with four bytes
// (R, G, B, A) per pixel: the layout canvases and image encoders expect.
type Buffer struct {
	img *image.RGBA
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (b *Buffer) Width() int  { return b.img.Rect.Dx() }
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// SetRGBA colors the pixel at (x, y). Coordinates outside the buffer are
// logged and otherwise ignored.
func (b *Buffer) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(b.img.Rect)) {
		Logger().Warn("invalid coordinates", "x", x, "y", y)
		return
	}
	b.img.SetRGBA(x, y, c)
}

// Row returns the bytes of row y. The slice aliases the buffer.
func (b *Buffer) Row(y int) []byte {
	start := b.img.PixOffset(0, y)
	return b.img.Pix[start : start+b.img.Stride]
}

// Pix returns the whole buffer as a flat RGBA slice. The slice aliases the
// buffer.
func (b *Buffer) Pix() []byte {
	return b.img.Pix
}

// Image exposes the buffer as an image for encoders.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}
