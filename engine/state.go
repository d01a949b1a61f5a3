package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/rhotate/vmath"
)

// Phase is a stage of the frame driver lifecycle
type Phase uint32

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	}
	return "unknown"
}

// SessionState centralizes the animation's mutable state
type SessionState struct {
	// ===== FRAME GOROUTINE ONLY =====

	Angle vmath.Angle // Current rotation
	Step  int         // Angle units advanced per frame

	// ===== SHARED WITH SIGNAL WATCHER (lock-free atomics) =====

	phase   atomic.Uint32
	aborted atomic.Bool
}

// NewSessionState creates state starting at angle zero
func NewSessionState(step int) *SessionState {
	return &SessionState{Step: step}
}

// Phase returns the current lifecycle phase
func (s *SessionState) Phase() Phase {
	return Phase(s.phase.Load())
}

func (s *SessionState) setPhase(p Phase) {
	s.phase.Store(uint32(p))
}

// Abort requests the frame loop to stop at the next row boundary
func (s *SessionState) Abort() {
	s.aborted.Store(true)
}

// Aborted reports whether Abort was called
func (s *SessionState) Aborted() bool {
	return s.aborted.Load()
}

// Advance moves the angle by Step and reports whether it wrapped a full turn
func (s *SessionState) Advance() bool {
	var wrapped bool
	s.Angle, wrapped = s.Angle.Advance(s.Step)
	return wrapped
}
