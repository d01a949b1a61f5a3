package terminal

import (
	"bufio"
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// SupportedTerm is the only TERM value the console session accepts
const SupportedTerm = "linux"

// Session drives the Linux console directly
// Acquire/Release bracket its lifetime; drawing methods are for the single frame goroutine
type Session struct {
	backend Backend
	palette []string
	getenv  func(string) string
	writer  *bufio.Writer

	// engaged is set once the environment gates pass and keeps Acquire from running twice
	// saved is set once the mode snapshot exists; Release is a no-op before that
	engaged  atomic.Bool
	saved    atomic.Bool
	released atomic.Bool
}

// SessionOption customizes a Session
type SessionOption func(*Session)

// WithEnv replaces the environment lookup used for the TERM gate
func WithEnv(getenv func(string) string) SessionOption {
	return func(s *Session) { s.getenv = getenv }
}

// NewSession creates a console session drawing palette entries through backend
func NewSession(backend Backend, palette []string, opts ...SessionOption) *Session {
	s := &Session{
		backend: backend,
		palette: palette,
		getenv:  os.Getenv,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.writer = bufio.NewWriterSize(backend, 131072) // 128KB buffer
	return s
}

// Size returns the output grid in character cells
func (s *Session) Size() (int, int, error) {
	return s.backend.Size()
}

// Acquire switches the console into drawing posture
// Fails without touching the terminal when streams are not interactive or TERM is not supported
func (s *Session) Acquire() error {
	if !s.backend.Interactive() {
		return ErrNotInteractive
	}
	if t := s.getenv("TERM"); t != SupportedTerm {
		return fmt.Errorf("%w: %q", ErrUnsupportedTerm, t)
	}
	if !s.engaged.CompareAndSwap(false, true) {
		return nil
	}

	if err := s.backend.Save(); err != nil {
		return fmt.Errorf("save terminal mode: %w", err)
	}
	s.saved.Store(true)

	if err := s.backend.EnterCbreak(); err != nil {
		return fmt.Errorf("enter cbreak mode: %w", err)
	}

	if _, err := s.backend.Write(seqSetupScreen); err != nil {
		return fmt.Errorf("setup screen: %w", err)
	}
	return nil
}

// Release shows the cursor, leaves glyph mode and restores the saved input mode
// Runs at most once; later calls and calls before a mode snapshot exists are no-ops
// Writes bypass the frame buffer so a watcher goroutine can call it mid-frame
func (s *Session) Release() {
	if !s.saved.Load() {
		return
	}
	if !s.released.CompareAndSwap(false, true) {
		return
	}

	s.backend.Write(seqRestore)
	s.backend.Restore()
}

// Home moves the cursor to the top-left cell without clearing
func (s *Session) Home() {
	if s.released.Load() {
		return
	}
	s.writer.Write(seqHome)
}

// Put emits the palette entry for index; the console advances the cursor itself so x and y are unused
// Nothing is buffered after Release, so a frame cut short cannot land behind the restore sequence
func (s *Session) Put(_, _ int, index int) {
	if index < 0 || index >= len(s.palette) || s.released.Load() {
		return
	}
	s.writer.WriteString(s.palette[index])
}

// Flush writes the buffered frame to the terminal; after Release the pending frame is discarded
func (s *Session) Flush() error {
	if s.released.Load() {
		s.writer.Reset(s.backend)
		return nil
	}
	return s.writer.Flush()
}

// WaitInput blocks up to timeout and reports whether a key is pending
func (s *Session) WaitInput(timeout time.Duration) (bool, error) {
	return s.backend.WaitInput(timeout)
}
