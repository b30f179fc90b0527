package main

import (
	"os"

	"github.com/lixenwraith/plasma/core"
)

// watchSignals calls interrupt on the first signal from sigCh
// The watcher exits without calling interrupt once done is closed
func watchSignals(sigCh <-chan os.Signal, done <-chan struct{}, interrupt func()) {
	core.Go(func() {
		select {
		case <-sigCh:
			interrupt()
		case <-done:
		}
	})
}
