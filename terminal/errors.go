package terminal

import "errors"

var (
	ErrWindowClosed      = errors.New("terminal: window closed")
	ErrBufferLocked      = errors.New("terminal: buffer already locked")
	ErrNotLocked         = errors.New("terminal: buffer not locked")
	ErrUnsupportedFormat = errors.New("terminal: unsupported pixel format")
	ErrEmptyGeometry     = errors.New("terminal: empty buffer geometry")
	ErrInvalidGeometry   = errors.New("terminal: invalid buffer geometry")
)
