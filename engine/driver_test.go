package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rhotate/asset"
	"github.com/lixenwraith/rhotate/render"
	"github.com/lixenwraith/rhotate/terminal"
	"github.com/lixenwraith/rhotate/vmath"
)

type put struct{ x, y, index int }

// fakeDisplay records frames and stops after a fixed number of waits
type fakeDisplay struct {
	cols, rows int
	sizeErr    error
	acquireErr error
	flushErr   error
	stopAfter  int // WaitInput reports input on this call; 0 never

	acquired int
	released atomic.Int32
	homes    int
	puts     []put
	waits    []time.Duration
	angles   []vmath.Angle
	state    *SessionState
	onWait   func(n int)
}

func (f *fakeDisplay) Size() (int, int, error) { return f.cols, f.rows, f.sizeErr }
func (f *fakeDisplay) Acquire() error {
	f.acquired++
	return f.acquireErr
}
func (f *fakeDisplay) Release()            { f.released.Add(1) }
func (f *fakeDisplay) Home()               { f.homes++ }
func (f *fakeDisplay) Put(x, y, index int) { f.puts = append(f.puts, put{x, y, index}) }
func (f *fakeDisplay) Flush() error        { return f.flushErr }

func (f *fakeDisplay) WaitInput(timeout time.Duration) (bool, error) {
	f.waits = append(f.waits, timeout)
	if f.state != nil {
		f.angles = append(f.angles, f.state.Angle)
	}
	if f.onWait != nil {
		f.onWait(len(f.waits))
	}
	return f.stopAfter > 0 && len(f.waits) >= f.stopAfter, nil
}

func newRotator(t *testing.T, rows ...string) *render.Rotator {
	t.Helper()
	b, err := asset.NewBitmap("test", 4, rows)
	require.NoError(t, err)
	return render.NewRotator(vmath.NewSineTable(), render.NewSampler(b), len(asset.ConsolePalette))
}

func TestDriver_StopsOnInput(t *testing.T) {
	state := NewSessionState(3)
	disp := &fakeDisplay{cols: 4, rows: 2, stopAfter: 5, state: state}
	d := NewDriver(disp, newRotator(t, "###", "###", "###"), state)

	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, 1, disp.acquired)
	assert.Equal(t, int32(1), disp.released.Load())
	assert.Equal(t, 5, disp.homes)
	assert.Equal(t, uint64(5), d.Stats().Frames)
	assert.Equal(t, []vmath.Angle{0, 3, 6, 9, 12}, disp.angles)
	assert.Equal(t, vmath.Angle(12), state.Angle, "no advance after the stopping frame")
	assert.Equal(t, PhaseStopped, state.Phase())
	for _, w := range disp.waits {
		assert.Equal(t, 120*time.Millisecond, w)
	}
}

func TestDriver_FrameUnit(t *testing.T) {
	state := NewSessionState(10)
	disp := &fakeDisplay{cols: 1, rows: 1, stopAfter: 1}
	d := NewDriver(disp, newRotator(t, "#"), state, WithFrameUnit(time.Millisecond))

	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []time.Duration{10 * time.Millisecond}, disp.waits)
	assert.Equal(t, 10*time.Millisecond, d.FrameWait())
}

func TestDriver_SizeFailure(t *testing.T) {
	disp := &fakeDisplay{sizeErr: terminal.ErrSizeUnavailable}
	d := NewDriver(disp, newRotator(t, "#"), NewSessionState(1))

	err := d.Run(context.Background())
	assert.ErrorIs(t, err, terminal.ErrSizeUnavailable)
	assert.Zero(t, disp.acquired, "no acquire without a size")
	assert.Zero(t, disp.homes)
}

func TestDriver_AcquireFailure(t *testing.T) {
	disp := &fakeDisplay{cols: 2, rows: 2, acquireErr: terminal.ErrUnsupportedTerm}
	state := NewSessionState(1)
	d := NewDriver(disp, newRotator(t, "#"), state)

	err := d.Run(context.Background())
	assert.ErrorIs(t, err, terminal.ErrUnsupportedTerm)
	assert.Zero(t, disp.homes)
	assert.Equal(t, PhaseStopped, state.Phase())
}

func TestDriver_FlushFailure(t *testing.T) {
	boom := errors.New("broken pipe")
	disp := &fakeDisplay{cols: 2, rows: 2, flushErr: boom}
	d := NewDriver(disp, newRotator(t, "#"), NewSessionState(1))

	err := d.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), disp.released.Load())
}

func TestDriver_Revolutions(t *testing.T) {
	var chimes int
	state := NewSessionState(10)
	// 26 advances of 10 cross 256 once
	disp := &fakeDisplay{cols: 1, rows: 1, stopAfter: 27}
	d := NewDriver(disp, newRotator(t, "#"), state, WithRevolutionHook(func() { chimes++ }))

	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, 1, chimes)
	assert.Equal(t, uint64(1), d.Stats().Revolutions)
	assert.Equal(t, vmath.Angle(4), state.Angle)
}

func TestDriver_Abort(t *testing.T) {
	state := NewSessionState(1)
	disp := &fakeDisplay{cols: 3, rows: 3}
	disp.onWait = func(n int) {
		if n == 2 {
			state.Abort()
		}
	}
	d := NewDriver(disp, newRotator(t, "#"), state)

	err := d.Run(context.Background())
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, uint64(2), d.Stats().Frames)
	assert.Equal(t, int32(1), disp.released.Load())
}

func TestDriver_AbortMidFrame(t *testing.T) {
	state := NewSessionState(1)
	state.Abort()
	disp := &fakeDisplay{cols: 3, rows: 3}
	d := NewDriver(disp, newRotator(t, "#"), state)

	assert.False(t, d.RenderFrame(3, 3, render.GridCenter(3, 3)))
	assert.Empty(t, disp.puts)
}

func TestDriver_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	state := NewSessionState(1)
	disp := &fakeDisplay{cols: 1, rows: 1}
	disp.onWait = func(n int) {
		if n == 3 {
			cancel()
		}
	}
	d := NewDriver(disp, newRotator(t, "#"), state)

	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(3), d.Stats().Frames)
}

func TestDriver_SingleCellCenter(t *testing.T) {
	rot := newRotator(t,
		"...",
		".B.",
		"...",
	)
	disp := &fakeDisplay{cols: 1, rows: 1, stopAfter: 1}
	d := NewDriver(disp, rot, NewSessionState(1))

	require.NoError(t, d.Run(context.Background()))

	// B is level 2 of 4; 2*8/4 = 4, drawn exactly with no blending
	require.Len(t, disp.puts, 1)
	assert.Equal(t, put{0, 0, 4}, disp.puts[0])
}

func TestDriver_SweepsEveryCell(t *testing.T) {
	disp := &fakeDisplay{cols: 5, rows: 4, stopAfter: 1}
	d := NewDriver(disp, newRotator(t, "#"), NewSessionState(1))

	require.NoError(t, d.Run(context.Background()))

	// Default palette never overflows for a 4-level bitmap, so every cell is drawn in row-major order
	require.Len(t, disp.puts, 20)
	for i, p := range disp.puts {
		assert.Equal(t, i%5, p.x)
		assert.Equal(t, i/5, p.y)
	}
}

func TestDriver_DeadlineStopsAfterFrame(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	disp := &fakeDisplay{cols: 1, rows: 1}
	d := NewDriver(disp, newRotator(t, "#"), NewSessionState(1))

	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, uint64(1), d.Stats().Frames)
	assert.Equal(t, int32(1), disp.released.Load())
}
