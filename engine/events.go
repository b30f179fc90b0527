package engine

import "fmt"

// CommandKind identifies a window or application lifecycle command
type CommandKind uint8

const (
	CmdInputChanged CommandKind = iota
	CmdInitWindow
	CmdTermWindow
	CmdWindowResized
	CmdWindowRedrawNeeded
	CmdContentRectChanged
	CmdGainedFocus
	CmdLostFocus
	CmdConfigChanged
	CmdLowMemory
	CmdStart
	CmdResume
	CmdSaveState
	CmdPause
	CmdStop
	CmdDestroy
)

var commandNames = [...]string{
	CmdInputChanged:       "InputChanged",
	CmdInitWindow:         "InitWindow",
	CmdTermWindow:         "TermWindow",
	CmdWindowResized:      "WindowResized",
	CmdWindowRedrawNeeded: "WindowRedrawNeeded",
	CmdContentRectChanged: "ContentRectChanged",
	CmdGainedFocus:        "GainedFocus",
	CmdLostFocus:          "LostFocus",
	CmdConfigChanged:      "ConfigChanged",
	CmdLowMemory:          "LowMemory",
	CmdStart:              "Start",
	CmdResume:             "Resume",
	CmdSaveState:          "SaveState",
	CmdPause:              "Pause",
	CmdStop:               "Stop",
	CmdDestroy:            "Destroy",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("Cmd(%d)", uint8(k))
}

// Command is a lifecycle notification; Surface is the window bound at the time of the command
type Command struct {
	Kind    CommandKind
	Surface Surface
}

// InputKind identifies the class of an input event
type InputKind uint8

const (
	InputUnknown InputKind = iota
	InputKey
	InputMotion
)

func (k InputKind) String() string {
	switch k {
	case InputKey:
		return "Key"
	case InputMotion:
		return "Motion"
	default:
		return "Unknown"
	}
}

// KeyAction is the phase of a key event
type KeyAction uint8

const (
	KeyActionDown KeyAction = iota
	KeyActionUp
	KeyActionMultiple
)

// KeyEvent carries key details for diagnostics and default handling
type KeyEvent struct {
	Action KeyAction
	Code   int
	Rune   rune
	Meta   uint32
}

// InputEvent is a pointer or key event
// X, Y and Buttons are set for motion events, Key for key events
type InputEvent struct {
	Kind    InputKind
	X, Y    int
	Buttons uint32
	Key     KeyEvent
}

// Handler receives events from the host event source synchronously on the polling goroutine
type Handler interface {
	// OnCommand handles a lifecycle command
	OnCommand(cmd Command)

	// OnInputEvent handles an input event and reports whether it was consumed
	// Unconsumed events fall through to the host's default handling
	OnInputEvent(ev InputEvent) bool
}
