package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/plasma/core"
	"github.com/lixenwraith/plasma/render"
)

var errInvalidBuffer = errors.New("locked buffer geometry is inconsistent")

// State is the animation state derived from surface binding and the animating flag
type State uint8

const (
	StateNoSurface State = iota
	StateSurfaceIdle
	StateSurfaceAnimating
)

func (s State) String() string {
	switch s {
	case StateNoSurface:
		return "NoSurface"
	case StateSurfaceIdle:
		return "SurfaceIdle"
	case StateSurfaceAnimating:
		return "SurfaceAnimating"
	default:
		return "Unknown"
	}
}

// Stats is a snapshot of frame counters
type Stats struct {
	Frames      uint64        // frames filled and posted
	Dropped     uint64        // render requests skipped for a missing surface or failed lock
	LastElapsed time.Duration // fill+post duration of the latest frame
	Average     time.Duration // latest rolling average, updated on each window wrap
}

// Engine owns animation state, the bound surface and frame latency tracking
// Not safe for concurrent use; every method runs on the polling goroutine
type Engine struct {
	surface       Surface
	animating     bool
	initialFormat render.PixelFormat

	filler  *render.Filler
	latency render.LatencyRing
	clock   Clock
	log     core.Logger

	stats Stats
}

// NewEngine creates an engine with no surface and animation off
// Nil arguments select the discard logger, the monotonic clock and a time-seeded filler
func NewEngine(logger core.Logger, clock Clock, filler *render.Filler) *Engine {
	if logger == nil {
		logger = core.Discard
	}
	if clock == nil {
		clock = NewMonotonicClock()
	}
	if filler == nil {
		filler = render.NewFiller(uint64(time.Now().UnixNano()))
	}
	return &Engine{
		log:    logger,
		clock:  clock,
		filler: filler,
	}
}

// State returns the current animation state
func (e *Engine) State() State {
	switch {
	case e.surface == nil:
		return StateNoSurface
	case e.animating:
		return StateSurfaceAnimating
	default:
		return StateSurfaceIdle
	}
}

// Animating reports whether frames are rendered on every loop tick
func (e *Engine) Animating() bool {
	return e.animating
}

// HasSurface reports whether a surface is bound
func (e *Engine) HasSurface() bool {
	return e.surface != nil
}

// InitialFormat returns the surface format captured at the last surface creation
func (e *Engine) InitialFormat() render.PixelFormat {
	return e.initialFormat
}

// Stats returns a snapshot of the frame counters
func (e *Engine) Stats() Stats {
	return e.stats
}

// Latency returns a copy of the latency window
func (e *Engine) Latency() render.LatencyRing {
	return e.latency
}

// OnSurfaceCreated binds s, switches it to RGB565 and paints one frame regardless of the animating flag
func (e *Engine) OnSurfaceCreated(s Surface) {
	if s == nil {
		e.log.Logf(core.LevelWarn, "window created without a surface, ignoring")
		return
	}
	if old := e.surface; old != nil {
		e.log.Logf(core.LevelWarn, "replacing bound surface")
		if err := old.SetBuffersGeometry(old.Width(), old.Height(), e.initialFormat); err != nil {
			e.log.Logf(core.LevelWarn, "could not restore buffer format %s: %v", e.initialFormat, err)
		}
	}

	e.surface = s
	e.initialFormat = s.Format()

	if err := s.SetBuffersGeometry(s.Width(), s.Height(), render.FormatRGB565); err != nil {
		e.log.Logf(core.LevelWarn, "could not set buffer geometry: %v", err)
	}
	e.log.Logf(core.LevelInfo, "surface %dx%d bound, initial format %s", s.Width(), s.Height(), e.initialFormat)

	e.RenderFrame()
}

// OnSurfaceDestroyed restores the initial pixel format, stops animation and unbinds the surface
func (e *Engine) OnSurfaceDestroyed() {
	e.animating = false

	s := e.surface
	if s == nil {
		e.log.Logf(core.LevelWarn, "surface destroyed while none is bound")
		return
	}

	if err := s.SetBuffersGeometry(s.Width(), s.Height(), e.initialFormat); err != nil {
		e.log.Logf(core.LevelWarn, "could not restore buffer format %s: %v", e.initialFormat, err)
	}
	e.surface = nil
	e.log.Logf(core.LevelInfo, "surface released after %d frames (%d dropped)", e.stats.Frames, e.stats.Dropped)
}

// OnMotionInput turns animation on; the event is always consumed
func (e *Engine) OnMotionInput() bool {
	if !e.animating {
		e.log.Logf(core.LevelDebug, "motion input, animation on")
	}
	e.animating = true
	return true
}

// OnKeyInput logs the key and leaves it unconsumed
func (e *Engine) OnKeyInput(k KeyEvent) bool {
	e.log.Logf(core.LevelInfo, "Key event: action=%d keyCode=%d rune=%q metaState=0x%x",
		k.Action, k.Code, k.Rune, k.Meta)
	return false
}

// OnFocusLost stops animation and presents one settled frame
func (e *Engine) OnFocusLost() {
	e.animating = false
	e.RenderFrame()
}

// Terminate ends animation on process shutdown
func (e *Engine) Terminate() {
	e.animating = false
}

// Tick renders a frame when animating; called once per idle loop iteration
func (e *Engine) Tick() {
	if e.animating {
		e.RenderFrame()
	}
}

// RenderFrame fills and posts one frame and records its duration
// A missing surface or a failed lock drops the frame with a warning
func (e *Engine) RenderFrame() {
	if e.surface == nil {
		e.stats.Dropped++
		e.log.Logf(core.LevelWarn, "the engine doesn't have a surface")
		return
	}

	elapsed, err := e.paint(e.surface)
	if err != nil {
		e.stats.Dropped++
		e.log.Logf(core.LevelWarn, "could not lock the surface: %v", err)
		return
	}

	e.stats.Frames++
	e.stats.LastElapsed = elapsed
	e.latency.Record(elapsed)
	if e.latency.HasWrapped() {
		e.stats.Average = e.latency.Average()
		e.log.Logf(core.LevelInfo, "Average : %d", int64(e.stats.Average))
	}
}

// paint holds the buffer lock for the fill and releases it on every exit path
func (e *Engine) paint(s Surface) (time.Duration, error) {
	buf, err := s.Lock()
	if err != nil {
		return 0, err
	}

	// Surface has no release without posting, so an early exit presents the unfilled buffer
	locked := true
	defer func() {
		if locked {
			_ = s.UnlockAndPost()
		}
	}()

	if !buf.Valid() {
		return 0, errInvalidBuffer
	}
	w, h, stride := buf.Width, buf.Height, buf.Stride

	before := e.clock.Now()
	c := e.filler.Fill(buf)

	locked = false
	if err := s.UnlockAndPost(); err != nil {
		e.log.Logf(core.LevelWarn, "could not post the buffer: %v", err)
	}
	after := e.clock.Now()

	e.log.Logf(core.LevelDebug, "filled %dx%d (stride %d) with %s", w, h, stride, c)
	return SubsecondElapsed(before.Nsec, after.Nsec), nil
}
