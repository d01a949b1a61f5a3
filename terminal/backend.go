package terminal

import (
	"errors"
	"time"
)

var (
	ErrNotInteractive  = errors.New("stdin or stdout is not a terminal")
	ErrUnsupportedTerm = errors.New("unsupported terminal type")
	ErrSizeUnavailable = errors.New("terminal size unavailable")
)

// Backend abstracts the platform tty the console session runs on
type Backend interface {
	// Interactive reports whether both input and output are terminals
	Interactive() bool

	// Size returns the output grid in character cells
	Size() (cols, rows int, err error)

	// Save snapshots the current input mode for Restore
	Save() error
	// EnterCbreak disables line buffering and echo with a non-blocking read posture
	EnterCbreak() error
	// Restore reapplies the snapshot taken by Save; no-op without one
	Restore() error

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// WaitInput blocks up to timeout and reports whether input became readable
	WaitInput(timeout time.Duration) (bool, error)
}
