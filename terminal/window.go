package terminal

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/plasma/render"
)

// halfBlock shows the upper pixel as foreground and the lower pixel as background
const halfBlock = '▀'

// strideAlign is the pixel alignment of buffer rows
const strideAlign = 8

func alignStride(width int) int {
	return (width + strideAlign - 1) &^ (strideAlign - 1)
}

// Window is a drawable surface over a tcell screen
// A screen of cols x rows cells is a cols x 2*rows pixel grid, multiplied by the density
type Window struct {
	screen  tcell.Screen
	mode    ColorMode
	density int

	format render.PixelFormat
	bufW   int // 0 tracks the window width
	bufH   int // 0 tracks the window height

	back    *render.PixelBuffer
	staging *image.RGBA
	locked  bool
	closed  bool
	posts   uint64
}

// NewWindow creates a window in the native RGBX_8888 format
// density scales the reported pixel size; values below 1 are treated as 1
func NewWindow(screen tcell.Screen, mode ColorMode, density int) *Window {
	if density < 1 {
		density = 1
	}
	return &Window{
		screen:  screen,
		mode:    mode,
		density: density,
		format:  render.FormatRGBX8888,
	}
}

// Format returns the current buffer pixel format
func (w *Window) Format() render.PixelFormat {
	return w.format
}

// Width returns the window width in pixels, scaled by the density
func (w *Window) Width() int {
	cols, _ := w.screen.Size()
	return cols * w.density
}

// Height returns the window height in pixels, two per cell row, scaled by the density
func (w *Window) Height() int {
	_, rows := w.screen.Size()
	return rows * 2 * w.density
}

// Posts returns the number of presented frames
func (w *Window) Posts() uint64 {
	return w.posts
}

// Closed reports whether the window has been torn down
func (w *Window) Closed() bool {
	return w.closed
}

// SetBuffersGeometry implements engine.Surface
func (w *Window) SetBuffersGeometry(width, height int, format render.PixelFormat) error {
	if w.closed {
		return ErrWindowClosed
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	if !format.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	w.bufW, w.bufH, w.format = width, height, format
	return nil
}

func (w *Window) bufferSize() (int, int) {
	width, height := w.bufW, w.bufH
	if width == 0 {
		width = w.Width()
	}
	if height == 0 {
		height = w.Height()
	}
	return width, height
}

// Lock implements engine.Surface; only RGB_565 buffers are drawable
func (w *Window) Lock() (*render.PixelBuffer, error) {
	if w.closed {
		return nil, ErrWindowClosed
	}
	if w.locked {
		return nil, ErrBufferLocked
	}
	if w.format != render.FormatRGB565 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, w.format)
	}

	width, height := w.bufferSize()
	if width == 0 || height == 0 {
		return nil, ErrEmptyGeometry
	}

	if w.back == nil || w.back.Width != width || w.back.Height != height {
		w.back = render.NewPixelBuffer(width, height, alignStride(width))
	}
	w.locked = true
	return w.back, nil
}

// UnlockAndPost implements engine.Surface
func (w *Window) UnlockAndPost() error {
	if !w.locked {
		return ErrNotLocked
	}
	w.locked = false
	if w.closed {
		return ErrWindowClosed
	}

	w.present()
	w.posts++
	return nil
}

// Close tears the window down; later locks fail
func (w *Window) Close() {
	w.closed = true
	w.locked = false
}

// present draws the back buffer onto the cell grid and shows it
func (w *Window) present() {
	cols, rows := w.screen.Size()
	gw, gh := cols, rows*2
	if gw == 0 || gh == 0 {
		return
	}

	pixel := w.back.PixelAt
	if w.back.Width != gw || w.back.Height != gh {
		pixel = w.scaled(gw, gh)
	}

	style := tcell.StyleDefault
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			fg := w.mode.cellColor(pixel(x, 2*y))
			bg := w.mode.cellColor(pixel(x, 2*y+1))
			w.screen.SetContent(x, y, halfBlock, nil, style.Foreground(fg).Background(bg))
		}
	}
	w.screen.Show()
}

// scaled resamples the back buffer to the grid size and returns a pixel reader over it
func (w *Window) scaled(gw, gh int) func(x, y int) render.Color {
	if w.staging == nil || w.staging.Rect.Dx() != gw || w.staging.Rect.Dy() != gh {
		w.staging = image.NewRGBA(image.Rect(0, 0, gw, gh))
	}
	draw.NearestNeighbor.Scale(w.staging, w.staging.Rect, w.back, w.back.Bounds(), draw.Src, nil)

	return func(x, y int) render.Color {
		i := w.staging.PixOffset(x, y)
		p := w.staging.Pix[i : i+3 : i+3]
		return render.Make565(p[0], p[1], p[2])
	}
}
