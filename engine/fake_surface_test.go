package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lixenwraith/plasma/core"
	"github.com/lixenwraith/plasma/render"
)

var errLockRefused = errors.New("lock refused")

type geometryCall struct {
	width, height int
	format        render.PixelFormat
}

// fakeSurface records every provider call
type fakeSurface struct {
	width, height int
	format        render.PixelFormat

	geometry []geometryCall
	locks    int
	posts    int
	failLock bool
	shortBuf bool
	locked   bool
	last     *render.PixelBuffer
}

func newFakeSurface(w, h int, format render.PixelFormat) *fakeSurface {
	return &fakeSurface{width: w, height: h, format: format}
}

func (f *fakeSurface) Format() render.PixelFormat { return f.format }
func (f *fakeSurface) Width() int                 { return f.width }
func (f *fakeSurface) Height() int                { return f.height }

func (f *fakeSurface) SetBuffersGeometry(w, h int, format render.PixelFormat) error {
	f.geometry = append(f.geometry, geometryCall{w, h, format})
	f.format = format
	return nil
}

func (f *fakeSurface) Lock() (*render.PixelBuffer, error) {
	f.locks++
	if f.failLock {
		return nil, errLockRefused
	}
	if f.locked {
		return nil, errors.New("already locked")
	}
	f.locked = true
	f.last = render.NewPixelBuffer(f.width, f.height, (f.width+7)&^7)
	if f.shortBuf {
		f.last.Pix = f.last.Pix[:len(f.last.Pix)/2]
	}
	return f.last, nil
}

func (f *fakeSurface) UnlockAndPost() error {
	if !f.locked {
		return errors.New("not locked")
	}
	f.locked = false
	f.posts++
	return nil
}

func (f *fakeSurface) calls() int {
	return len(f.geometry) + f.locks + f.posts
}

type logEntry struct {
	level core.Level
	msg   string
}

// recordingLogger keeps formatted messages for assertions
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) Logf(level core.Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level, fmt.Sprintf(format, args...)})
}

func (l *recordingLogger) count(level core.Level) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}
