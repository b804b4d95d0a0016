package renderer

import (
	"fmt"
	"image"
	"image/color"
)

// bytesPerPixel is the B, G, R layout used by the TGA encoder
const bytesPerPixel = 3

// FrameBuffer is a row-major 8-bit image, top row first, with pixels stored
// as B, G, R. It implements image.Image so standard encoders accept it.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrameBuffer allocates a black buffer; it panics on a zero-size frame
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: invalid frame size %dx%d", width, height))
	}
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*bytesPerPixel),
	}
}

// Stride returns the number of bytes in one row
func (fb *FrameBuffer) Stride() int {
	return fb.Width * bytesPerPixel
}

// PixOffset returns the index of the first byte of pixel (x, y)
func (fb *FrameBuffer) PixOffset(x, y int) int {
	return y*fb.Stride() + x*bytesPerPixel
}

// Span returns the bytes of row y for columns [x0, x1). Spans of different
// segments never overlap, so workers write them without locking.
func (fb *FrameBuffer) Span(y, x0, x1 int) []byte {
	return fb.Pix[fb.PixOffset(x0, y):fb.PixOffset(x1, y)]
}

// SetBGR stores a pixel
func (fb *FrameBuffer) SetBGR(x, y int, b, g, r byte) {
	i := fb.PixOffset(x, y)
	fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = b, g, r
}

// ColorModel implements image.Image
func (fb *FrameBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements image.Image
func (fb *FrameBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(fb.Bounds())) {
		return color.RGBA{}
	}
	i := fb.PixOffset(x, y)
	return color.RGBA{R: fb.Pix[i+2], G: fb.Pix[i+1], B: fb.Pix[i], A: 255}
}
