package core

import (
	"fmt"
	"log"
	"strings"
)

// Level is the severity of a diagnostic message
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", uint8(l))
	}
}

// ParseLevel maps a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is a fire-and-forget diagnostic sink
// Implementations must not block the caller for long and must swallow their own failures
type Logger interface {
	Logf(level Level, format string, args ...any)
}

// StdLogger writes leveled messages through a stdlib *log.Logger
type StdLogger struct {
	out *log.Logger
	min Level
}

// NewStdLogger wraps out; a nil out uses the standard logger so log.SetOutput redirection applies
func NewStdLogger(out *log.Logger, min Level) *StdLogger {
	if out == nil {
		out = log.Default()
	}
	return &StdLogger{out: out, min: min}
}

// Logf implements Logger
func (l *StdLogger) Logf(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	// calldepth 2 attributes file:line to the Logf caller
	_ = l.out.Output(2, level.String()+" "+fmt.Sprintf(format, args...))
}

type discardLogger struct{}

func (discardLogger) Logf(Level, string, ...any) {}

// Discard drops every message
var Discard Logger = discardLogger{}
