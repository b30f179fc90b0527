package terminal

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plasma/app"
	"github.com/lixenwraith/plasma/core"
	"github.com/lixenwraith/plasma/engine"
)

// destroyToken is the interrupt payload that requests process exit
type destroyToken struct{}

// App pumps tcell events and delivers them to an engine.Handler
// It implements app.Looper
type App struct {
	screen  tcell.Screen
	window  *Window
	handler engine.Handler
	log     core.Logger
	mouse   bool

	events  chan tcell.Event
	quit    chan struct{}
	pending []engine.Command

	interrupted      atomic.Bool
	windowBound      bool
	destroyRequested bool
	started          bool
	stopped          bool
}

// NewApp creates an app over screen; window must draw on the same screen
func NewApp(screen tcell.Screen, window *Window, logger core.Logger) *App {
	if logger == nil {
		logger = core.Discard
	}
	return &App{
		screen: screen,
		window: window,
		log:    logger,
		mouse:  true,
		events: make(chan tcell.Event, 256),
		quit:   make(chan struct{}),
	}
}

// SetHandler registers the command and input callbacks
func (a *App) SetHandler(h engine.Handler) {
	a.handler = h
}

// SetMouse selects whether pointer motion is reported; must be called before Start
func (a *App) SetMouse(enabled bool) {
	a.mouse = enabled
}

// Window returns the app's surface
func (a *App) Window() *Window {
	return a.window
}

// Start initializes the screen, starts the event pump and queues the startup commands
func (a *App) Start() error {
	if a.started {
		return nil
	}
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	a.started = true
	core.SetCrashCleanup(a.screen.Fini)

	a.screen.HideCursor()
	a.screen.EnableFocus()
	if a.mouse {
		a.screen.EnableMouse(tcell.MouseMotionEvents)
	}
	a.screen.Clear()

	core.Go(func() {
		a.screen.ChannelEvents(a.events, a.quit)
	})

	a.pending = append(a.pending,
		engine.Command{Kind: engine.CmdStart},
		engine.Command{Kind: engine.CmdResume},
		engine.Command{Kind: engine.CmdInitWindow, Surface: a.window},
		engine.Command{Kind: engine.CmdGainedFocus, Surface: a.window},
	)
	return nil
}

// Stop ends the event pump and restores the terminal; safe to call more than once
func (a *App) Stop() {
	if !a.started || a.stopped {
		return
	}
	a.stopped = true
	close(a.quit)
	a.screen.Fini()
	core.SetCrashCleanup(nil)
}

// Interrupt asks the polling goroutine to exit; safe from any goroutine
func (a *App) Interrupt() {
	a.interrupted.Store(true)
	// A full queue will still wake the poll, which checks the flag
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(destroyToken{}))
}

// DestroyRequested implements app.Looper
func (a *App) DestroyRequested() bool {
	return a.destroyRequested
}

// PollOnce implements app.Looper
func (a *App) PollOnce(block bool) (app.Source, bool) {
	if len(a.pending) > 0 {
		cmd := a.pending[0]
		a.pending = a.pending[1:]
		return commandSource{app: a, cmd: cmd}, true
	}

	if block {
		ev, ok := <-a.events
		return a.sourceFor(ev, ok), true
	}

	select {
	case ev, ok := <-a.events:
		return a.sourceFor(ev, ok), true
	default:
		return nil, false
	}
}

func (a *App) sourceFor(ev tcell.Event, ok bool) app.Source {
	if !ok || a.interrupted.Load() {
		// Pump closed or exit signalled
		return destroySource{app: a}
	}
	if ev == nil {
		return nil
	}
	return eventSource{app: a, ev: ev}
}

// RequestDestroy tears down the bound window and delivers the destroy command
func (a *App) RequestDestroy() {
	if a.destroyRequested {
		return
	}
	a.pending = nil

	if a.windowBound {
		a.dispatch(engine.Command{Kind: engine.CmdTermWindow, Surface: a.window})
		a.window.Close()
		a.windowBound = false
	}
	a.dispatch(engine.Command{Kind: engine.CmdDestroy})
	a.destroyRequested = true
}

func (a *App) dispatch(cmd engine.Command) {
	a.log.Logf(core.LevelDebug, "command %s", cmd.Kind)
	if a.handler != nil {
		a.handler.OnCommand(cmd)
	}
}

func (a *App) deliverInput(ev engine.InputEvent) bool {
	if a.handler == nil {
		return false
	}
	return a.handler.OnInputEvent(ev)
}

// handleEvent translates one tcell event
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		if a.windowBound {
			a.dispatch(engine.Command{Kind: engine.CmdWindowResized, Surface: a.window})
		}

	case *tcell.EventFocus:
		kind := engine.CmdLostFocus
		if ev.Focused {
			kind = engine.CmdGainedFocus
		}
		a.dispatch(engine.Command{Kind: kind, Surface: a.window})

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.deliverInput(engine.InputEvent{
			Kind:    engine.InputMotion,
			X:       x,
			Y:       y,
			Buttons: uint32(ev.Buttons()),
		})

	case *tcell.EventKey:
		consumed := a.deliverInput(engine.InputEvent{
			Kind: engine.InputKey,
			Key: engine.KeyEvent{
				Action: engine.KeyActionDown,
				Code:   int(ev.Key()),
				Rune:   ev.Rune(),
				Meta:   uint32(ev.Modifiers()),
			},
		})
		if !consumed {
			a.defaultKey(ev)
		}

	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(destroyToken); ok {
			a.RequestDestroy()
		}

	case *tcell.EventError:
		a.log.Logf(core.LevelWarn, "terminal event error: %v", ev)
	}
}

// defaultKey handles keys the handler left unconsumed
func (a *App) defaultKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.RequestDestroy()
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'q' || r == 'Q' {
			a.RequestDestroy()
		}
	}
}

type commandSource struct {
	app *App
	cmd engine.Command
}

func (s commandSource) Process() {
	if s.cmd.Kind == engine.CmdInitWindow {
		s.app.windowBound = true
	}
	s.app.dispatch(s.cmd)
}

type eventSource struct {
	app *App
	ev  tcell.Event
}

func (s eventSource) Process() {
	s.app.handleEvent(s.ev)
}

type destroySource struct {
	app *App
}

func (s destroySource) Process() {
	s.app.RequestDestroy()
}
