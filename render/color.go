package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 16-bit pixel: 5 bits red, 6 bits green, 5 bits blue
type Color uint16

// PaletteSize is the number of entries in the fill palette
const PaletteSize = 4

// paletteMask selects an index in [0, PaletteSize) from two random bits
const paletteMask = PaletteSize - 1

// palette holds the fill colors in selection order: red, green, blue, yellow
var palette = [PaletteSize]Color{
	Make565(255, 0, 0),
	Make565(0, 255, 0),
	Make565(0, 0, 255),
	Make565(255, 255, 0),
}

// Make565 truncates 8-bit channels into a packed RGB565 color
func Make565(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Palette returns a copy of the fixed fill palette
func Palette() [PaletteSize]Color {
	return palette
}

// PaletteColor returns the palette entry at index masked into range
func PaletteColor(index int) Color {
	return palette[index&paletteMask]
}

// RGB expands the packed channels to 8 bits, replicating high bits into the low ones
// so that full-scale channels map back to 255
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Colorful converts to a go-colorful color for distance and hex operations
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// String returns the expanded color as #rrggbb
func (c Color) String() string {
	return c.Colorful().Hex()
}

// RGB565Model converts arbitrary colors to Color
var RGB565Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Make565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
