package terminal

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rhotate/asset"
)

// Screen draws through tcell, for terminals other than the Linux console
type Screen struct {
	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	glyphs    []asset.Glyph
	styles    []tcell.Style
	keys      chan struct{}
	done      chan struct{}

	started  atomic.Bool
	released atomic.Bool
}

// NewScreen creates a tcell display for the glyph palette
// factory defaults to tcell.NewScreen when nil
func NewScreen(glyphs []asset.Glyph, factory func() (tcell.Screen, error)) *Screen {
	if factory == nil {
		factory = tcell.NewScreen
	}
	styles := make([]tcell.Style, len(glyphs))
	for i, g := range glyphs {
		styles[i] = shadeStyle(g.Shade)
	}
	return &Screen{
		newScreen: factory,
		glyphs:    glyphs,
		styles:    styles,
		keys:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

func shadeStyle(s asset.Shade) tcell.Style {
	st := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch s {
	case asset.ShadeDark:
		return st.Foreground(tcell.ColorDimGray)
	case asset.ShadeNormal:
		return st.Foreground(tcell.ColorSilver)
	case asset.ShadeBright:
		return st.Foreground(tcell.ColorWhite).Bold(true)
	}
	return st
}

// init creates and initializes the tcell screen once
func (s *Screen) init() error {
	if s.screen != nil {
		return nil
	}
	scr, err := s.newScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	s.screen = scr
	return nil
}

// Size initializes the screen if needed and returns its dimensions
func (s *Screen) Size() (int, int, error) {
	if err := s.init(); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrSizeUnavailable, err)
	}
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrSizeUnavailable, cols, rows)
	}
	return cols, rows, nil
}

// Acquire hides the cursor, clears and starts listening for keys
func (s *Screen) Acquire() error {
	if err := s.init(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotInteractive, err)
	}
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.screen.HideCursor()
	s.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	s.screen.Clear()
	go s.pollLoop()
	return nil
}

// pollLoop forwards key presses until the screen is finalized
func (s *Screen) pollLoop() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		switch ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			select {
			case s.keys <- struct{}{}:
			default:
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Release finalizes the tcell screen; runs at most once
func (s *Screen) Release() {
	if s.screen == nil {
		return
	}
	if !s.released.CompareAndSwap(false, true) {
		return
	}
	s.screen.Fini()
	if s.started.Load() {
		select {
		case <-s.done:
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// Home is a no-op; cells are addressed directly
func (s *Screen) Home() {}

// Put draws the glyph for index at (x, y)
func (s *Screen) Put(x, y, index int) {
	if index < 0 || index >= len(s.glyphs) {
		return
	}
	s.screen.SetContent(x, y, s.glyphs[index].Rune, nil, s.styles[index])
}

// Flush shows the frame
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

// WaitInput blocks up to timeout for a key press
func (s *Screen) WaitInput(timeout time.Duration) (bool, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-s.keys:
		return true, nil
	case <-t.C:
		return false, nil
	}
}
