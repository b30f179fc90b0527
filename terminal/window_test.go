package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plasma/render"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

// cellColors returns the fg/bg of cell (x, y) on the shown screen
func cellColors(t *testing.T, s tcell.SimulationScreen, x, y int) (tcell.Color, tcell.Color) {
	t.Helper()
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 || c.Runes[0] != halfBlock {
		t.Fatalf("Expected half block at (%d,%d), got %q", x, y, c.Runes)
	}
	fg, bg, _ := c.Style.Decompose()
	return fg, bg
}

func rgb(c render.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func TestWindowGeometry(t *testing.T) {
	s := newSimScreen(t, 10, 4)
	w := NewWindow(s, ColorModeTrueColor, 1)

	if w.Width() != 10 || w.Height() != 8 {
		t.Errorf("Expected 10x8 pixel grid, got %dx%d", w.Width(), w.Height())
	}
	if w.Format() != render.FormatRGBX8888 {
		t.Errorf("Expected native RGBX_8888, got %s", w.Format())
	}

	dense := NewWindow(s, ColorModeTrueColor, 3)
	if dense.Width() != 30 || dense.Height() != 24 {
		t.Errorf("Expected 30x24 at density 3, got %dx%d", dense.Width(), dense.Height())
	}
}

func TestWindowLockRequiresRGB565(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	w := NewWindow(s, ColorModeTrueColor, 1)

	if _, err := w.Lock(); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat in native format, got %v", err)
	}

	if err := w.SetBuffersGeometry(0, 0, render.FormatRGB565); err != nil {
		t.Fatalf("SetBuffersGeometry failed: %v", err)
	}
	buf, err := w.Lock()
	if err != nil {
		t.Fatalf("Expected lock to succeed, got %v", err)
	}
	if buf.Width != 4 || buf.Height != 4 {
		t.Errorf("Expected buffer tracking window 4x4, got %dx%d", buf.Width, buf.Height)
	}
	if buf.Stride != 8 {
		t.Errorf("Expected stride padded to 8, got %d", buf.Stride)
	}

	if _, err := w.Lock(); !errors.Is(err, ErrBufferLocked) {
		t.Errorf("Expected ErrBufferLocked on second lock, got %v", err)
	}
	if err := w.UnlockAndPost(); err != nil {
		t.Errorf("Expected post to succeed, got %v", err)
	}
	if err := w.UnlockAndPost(); !errors.Is(err, ErrNotLocked) {
		t.Errorf("Expected ErrNotLocked, got %v", err)
	}
}

func TestWindowGeometryValidation(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	w := NewWindow(s, ColorModeTrueColor, 1)

	if err := w.SetBuffersGeometry(-1, 2, render.FormatRGB565); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry, got %v", err)
	}
	if err := w.SetBuffersGeometry(2, 2, render.PixelFormat(3)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if w.Format() != render.FormatRGBX8888 {
		t.Errorf("Expected format unchanged after rejected calls, got %s", w.Format())
	}
}

func TestWindowEmptyGeometry(t *testing.T) {
	s := newSimScreen(t, 0, 0)
	w := NewWindow(s, ColorModeTrueColor, 1)
	_ = w.SetBuffersGeometry(0, 0, render.FormatRGB565)
	if _, err := w.Lock(); !errors.Is(err, ErrEmptyGeometry) {
		t.Errorf("Expected ErrEmptyGeometry, got %v", err)
	}
}

func TestWindowPresentsHalfBlocks(t *testing.T) {
	s := newSimScreen(t, 3, 2)
	w := NewWindow(s, ColorModeTrueColor, 1)
	_ = w.SetBuffersGeometry(w.Width(), w.Height(), render.FormatRGB565)

	buf, err := w.Lock()
	if err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	red, blue := render.PaletteColor(0), render.PaletteColor(2)
	render.FillColor(buf, red)
	// Odd pixel rows blue
	for y := 1; y < buf.Height; y += 2 {
		row := buf.Row(y)
		for x := range row {
			row[x] = uint16(blue)
		}
	}
	if err := w.UnlockAndPost(); err != nil {
		t.Fatalf("UnlockAndPost failed: %v", err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			fg, bg := cellColors(t, s, x, y)
			if fg != rgb(red) || bg != rgb(blue) {
				t.Errorf("Expected cell (%d,%d) red over blue, got fg=%v bg=%v", x, y, fg, bg)
			}
		}
	}
	if w.Posts() != 1 {
		t.Errorf("Expected 1 post, got %d", w.Posts())
	}
}

func TestWindowScalesFixedGeometry(t *testing.T) {
	s := newSimScreen(t, 4, 3)
	w := NewWindow(s, ColorModeTrueColor, 1)
	if err := w.SetBuffersGeometry(2, 2, render.FormatRGB565); err != nil {
		t.Fatalf("SetBuffersGeometry failed: %v", err)
	}

	buf, err := w.Lock()
	if err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	red, blue := render.PaletteColor(0), render.PaletteColor(2)
	buf.Row(0)[0], buf.Row(0)[1] = uint16(red), uint16(red)
	buf.Row(1)[0], buf.Row(1)[1] = uint16(blue), uint16(blue)
	if err := w.UnlockAndPost(); err != nil {
		t.Fatalf("UnlockAndPost failed: %v", err)
	}

	// Pixel rows 0-2 come from buffer row 0, rows 3-5 from row 1
	want := []struct{ fg, bg render.Color }{
		{red, red},
		{red, blue},
		{blue, blue},
	}
	for y, c := range want {
		for x := 0; x < 4; x++ {
			fg, bg := cellColors(t, s, x, y)
			if fg != rgb(c.fg) || bg != rgb(c.bg) {
				t.Errorf("Expected cell (%d,%d) fg=%s bg=%s, got fg=%v bg=%v", x, y, c.fg, c.bg, fg, bg)
			}
		}
	}
}

func TestWindowClosed(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	w := NewWindow(s, ColorModeTrueColor, 1)
	_ = w.SetBuffersGeometry(0, 0, render.FormatRGB565)
	w.Close()

	if _, err := w.Lock(); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("Expected ErrWindowClosed on lock, got %v", err)
	}
	if err := w.SetBuffersGeometry(0, 0, render.FormatRGBX8888); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("Expected ErrWindowClosed on geometry, got %v", err)
	}
}

func TestAlignStride(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{1, 8}, {8, 8}, {9, 16}, {80, 80}, {81, 88}} {
		if got := alignStride(tc.in); got != tc.want {
			t.Errorf("alignStride(%d): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
