package render

import (
	"image"
	"image/color"
)

// PixelBuffer is a locked RGB565 surface buffer lent to the renderer for one frame
// Stride is measured in pixels and may exceed Width; columns [Width, Stride) are padding
// A PixelBuffer obtained from a surface lock must not be retained after unlocking
type PixelBuffer struct {
	Width  int
	Height int
	Stride int
	Format PixelFormat
	Pix    []uint16
}

// NewPixelBuffer allocates a zeroed RGB565 buffer; stride below width is raised to width
func NewPixelBuffer(width, height, stride int) *PixelBuffer {
	if stride < width {
		stride = width
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Format: FormatRGB565,
		Pix:    make([]uint16, stride*height),
	}
}

// Valid reports whether geometry and backing storage are consistent
func (b *PixelBuffer) Valid() bool {
	if b == nil || b.Width < 0 || b.Height < 0 || b.Stride < b.Width {
		return false
	}
	if b.Height == 0 {
		return true
	}
	// Last row only needs Width pixels
	return len(b.Pix) >= (b.Height-1)*b.Stride+b.Width
}

// Row returns the visible pixels of row y
func (b *PixelBuffer) Row(y int) []uint16 {
	start := y * b.Stride
	return b.Pix[start : start+b.Width]
}

// PixelAt returns the pixel at (x, y) without bounds checks beyond slice indexing
func (b *PixelBuffer) PixelAt(x, y int) Color {
	return Color(b.Pix[y*b.Stride+x])
}

// ColorModel implements image.Image
func (b *PixelBuffer) ColorModel() color.Model {
	return RGB565Model
}

// Bounds implements image.Image
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image
func (b *PixelBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return Color(0)
	}
	return b.PixelAt(x, y)
}
