package engine

// EventRouter maps host commands and input events onto Engine transitions
// It holds no state besides the engine reference
type EventRouter struct {
	engine *Engine
}

// NewEventRouter creates a router for e
func NewEventRouter(e *Engine) *EventRouter {
	return &EventRouter{engine: e}
}

// OnCommand implements Handler
func (r *EventRouter) OnCommand(cmd Command) {
	switch cmd.Kind {
	case CmdInitWindow:
		r.engine.OnSurfaceCreated(cmd.Surface)
	case CmdTermWindow:
		r.engine.OnSurfaceDestroyed()
	case CmdLostFocus:
		r.engine.OnFocusLost()
	}
}

// OnInputEvent implements Handler
func (r *EventRouter) OnInputEvent(ev InputEvent) bool {
	switch ev.Kind {
	case InputMotion:
		return r.engine.OnMotionInput()
	case InputKey:
		return r.engine.OnKeyInput(ev.Key)
	}
	return false
}
