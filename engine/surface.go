package engine

import "github.com/lixenwraith/plasma/render"

// Surface is the drawable window supplied by the host
// All methods are called from the polling goroutine only
type Surface interface {
	// Format returns the current buffer pixel format
	Format() render.PixelFormat

	// Width and Height return the window size in pixels
	Width() int
	Height() int

	// SetBuffersGeometry changes buffer size and format; zero width or height tracks the window size
	SetBuffersGeometry(width, height int, format render.PixelFormat) error

	// Lock acquires the next buffer for exclusive writing
	Lock() (*render.PixelBuffer, error)

	// UnlockAndPost releases the locked buffer and presents it
	UnlockAndPost() error
}
