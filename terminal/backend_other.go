//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"os"
	"time"
)

// otherBackend reports a non-interactive terminal so the console session never engages
type otherBackend struct{}

// NewBackend returns the backend for the process standard streams
func NewBackend() Backend {
	return otherBackend{}
}

func (otherBackend) Interactive() bool                     { return false }
func (otherBackend) Size() (int, int, error)               { return 0, 0, ErrSizeUnavailable }
func (otherBackend) Save() error                           { return ErrNotInteractive }
func (otherBackend) EnterCbreak() error                    { return ErrNotInteractive }
func (otherBackend) Restore() error                        { return nil }
func (otherBackend) Write(p []byte) (int, error)           { return os.Stdout.Write(p) }
func (otherBackend) WaitInput(time.Duration) (bool, error) { return false, ErrNotInteractive }

func resetTerminalMode() {}
