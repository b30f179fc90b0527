package render

// Filler paints whole buffers with a randomly selected palette color
type Filler struct {
	rng *FastRand
}

// NewFiller creates a filler with its own generator
func NewFiller(seed uint64) *Filler {
	return &Filler{rng: NewFastRand(seed)}
}

// PickIndex returns a palette index in [0, PaletteSize) from the top two bits of the generator
// xorshift low bits are weaker than the high ones
func (f *Filler) PickIndex() int {
	return int(f.rng.Next()>>62) & paletteMask
}

// Fill paints the visible region of buf with one palette color and returns it
// Padding columns beyond Width are left untouched
func (f *Filler) Fill(buf *PixelBuffer) Color {
	c := palette[f.PickIndex()]
	FillColor(buf, c)
	return c
}

// FillColor writes c to every visible pixel of buf
// The first row is filled by doubling copies and then copied into the remaining rows
func FillColor(buf *PixelBuffer, c Color) {
	if buf.Width <= 0 || buf.Height <= 0 {
		return
	}

	first := buf.Row(0)
	first[0] = uint16(c)
	for n := 1; n < len(first); n *= 2 {
		copy(first[n:], first[:n])
	}

	for y := 1; y < buf.Height; y++ {
		copy(buf.Row(y), first)
	}
}
