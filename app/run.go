// Package app runs the single-threaded event loop that drives an engine from a host looper.
package app

import (
	"github.com/lixenwraith/plasma/core"
	"github.com/lixenwraith/plasma/engine"
)

// Source is a pending event source returned by a poll
type Source interface {
	// Process delivers the pending event to the registered handler
	Process()
}

// Looper is the host event pump
type Looper interface {
	// PollOnce waits for the next source when block is true, otherwise returns immediately
	// ok is false only when a non-blocking poll found nothing; a blocking poll always returns ok
	// A nil source with ok set means the wakeup carried nothing to process
	PollOnce(block bool) (src Source, ok bool)

	// DestroyRequested reports whether the process has been asked to exit
	DestroyRequested() bool
}

// Run pumps events into the engine until destruction is requested
// While idle the poll blocks; while animating all pending sources are drained before each frame
func Run(l Looper, e *engine.Engine, log core.Logger) {
	if log == nil {
		log = core.Discard
	}

	for {
		for {
			src, ok := l.PollOnce(!e.Animating())
			if !ok {
				break
			}
			if src != nil {
				src.Process()
			}

			if l.DestroyRequested() {
				log.Logf(core.LevelInfo, "engine destroy requested")
				e.Terminate()
				return
			}
		}

		e.Tick()
	}
}
