package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rhotate/render"
)

// DefaultFrameUnit is the per-step frame wait; the loop waits FrameUnit×Step for input each frame
const DefaultFrameUnit = 40 * time.Millisecond

// statsEvery is how many frames pass between frame statistics log lines
const statsEvery = 256

// ErrAborted is returned by Run when a termination signal cut the animation short
var ErrAborted = errors.New("animation aborted")

// Display is an output grid the driver can draw palette indices on
type Display interface {
	// Size returns the grid in character cells
	Size() (cols, rows int, err error)

	// Acquire puts the terminal into drawing posture
	Acquire() error
	// Release restores the terminal; idempotent and safe from another goroutine
	Release()

	// Home starts a frame at the top-left cell
	Home()
	// Put draws palette entry index at cell (x, y)
	Put(x, y, index int)
	// Flush pushes the frame to the terminal
	Flush() error

	// WaitInput blocks up to timeout and reports whether input is pending
	WaitInput(timeout time.Duration) (bool, error)
}

// Stats counts driver progress
type Stats struct {
	Frames      uint64
	Revolutions uint64
	LastFrame   time.Duration // Render and flush time of the latest frame
}

// Driver runs the frame loop: render, flush, wait for input, advance
type Driver struct {
	display Display
	rotator *render.Rotator
	state   *SessionState

	frameUnit    time.Duration
	logger       zerolog.Logger
	onRevolution func()
	onSignal     func(os.Signal)

	stats Stats
}

// Option customizes a Driver
type Option func(*Driver)

// WithLogger sets the driver logger
func WithLogger(l zerolog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithFrameUnit overrides DefaultFrameUnit
func WithFrameUnit(unit time.Duration) Option {
	return func(d *Driver) {
		if unit > 0 {
			d.frameUnit = unit
		}
	}
}

// WithRevolutionHook calls fn each time the angle completes a full turn
func WithRevolutionHook(fn func()) Option {
	return func(d *Driver) { d.onRevolution = fn }
}

// WithSignalHandler watches TerminationSignals while running
// On a signal the display is released before fn is called; fn normally exits the process
func WithSignalHandler(fn func(os.Signal)) Option {
	return func(d *Driver) { d.onSignal = fn }
}

// NewDriver creates a frame driver
func NewDriver(display Display, rotator *render.Rotator, state *SessionState, opts ...Option) *Driver {
	d := &Driver{
		display:   display,
		rotator:   rotator,
		state:     state,
		frameUnit: DefaultFrameUnit,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Stats returns a copy of the driver counters
func (d *Driver) Stats() Stats {
	return d.stats
}

// FrameWait returns how long each frame waits for input
func (d *Driver) FrameWait() time.Duration {
	return d.frameUnit * time.Duration(d.state.Step)
}

// Run initializes the display and animates until input arrives, the context ends or a signal aborts
// Returns nil on the input-driven stop
func (d *Driver) Run(ctx context.Context) error {
	d.state.setPhase(PhaseInitializing)
	defer d.state.setPhase(PhaseStopped)

	cols, rows, err := d.display.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}

	if err := d.display.Acquire(); err != nil {
		d.display.Release()
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer d.display.Release()

	if d.onSignal != nil {
		stop := WatchSignals(d.state, d.display.Release, d.onSignal)
		defer stop()
	}

	d.state.setPhase(PhaseRunning)
	d.logger.Info().
		Int("cols", cols).
		Int("rows", rows).
		Int("step", d.state.Step).
		Dur("wait", d.FrameWait()).
		Msg("animation started")

	center := render.GridCenter(cols, rows)
	wait := d.FrameWait()

	for {
		start := time.Now()
		if !d.RenderFrame(cols, rows, center) {
			return ErrAborted
		}
		if err := d.display.Flush(); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}
		d.stats.Frames++
		d.stats.LastFrame = time.Since(start)

		if d.stats.Frames%statsEvery == 0 {
			d.logger.Debug().
				Uint64("frames", d.stats.Frames).
				Uint64("revolutions", d.stats.Revolutions).
				Dur("render", d.stats.LastFrame).
				Msg("frame stats")
		}

		ready, err := d.display.WaitInput(wait)
		if err != nil {
			return fmt.Errorf("wait for input: %w", err)
		}
		if ready {
			d.logger.Info().Uint64("frames", d.stats.Frames).Msg("stopped by input")
			return nil
		}
		if d.state.Aborted() {
			return ErrAborted
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.state.Advance() {
			d.stats.Revolutions++
			d.logger.Debug().Uint64("revolutions", d.stats.Revolutions).Msg("revolution")
			if d.onRevolution != nil {
				d.onRevolution()
			}
		}
	}
}

// RenderFrame draws one frame at the current angle
// Returns false if an abort was requested part way
func (d *Driver) RenderFrame(cols, rows int, center render.Point) bool {
	angle := d.state.Angle
	d.display.Home()
	for y := 0; y < rows; y++ {
		if d.state.Aborted() {
			return false
		}
		for x := 0; x < cols; x++ {
			if idx, ok := d.rotator.SampleCell(angle, x, y, center); ok {
				d.display.Put(x, y, idx)
			}
		}
	}
	return true
}
