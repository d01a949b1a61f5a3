package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ChimeConfig shapes the revolution chime
type ChimeConfig struct {
	SampleRate int
	Frequency  float64
	Duration   time.Duration
	Attack     time.Duration // fade in
	Release    time.Duration // fade out at the tail
	Volume     float64       // 0.0-1.0
}

// DefaultChimeConfig returns a short, quiet A5 blip
func DefaultChimeConfig() ChimeConfig {
	return ChimeConfig{
		SampleRate: 44100,
		Frequency:  880,
		Duration:   60 * time.Millisecond,
		Attack:     6 * time.Millisecond,
		Release:    30 * time.Millisecond,
		Volume:     0.3,
	}
}

// Chime plays a blip each time the image completes a turn
// Before Init succeeds, Ring is silent
type Chime struct {
	mu          sync.Mutex
	cfg         ChimeConfig
	rate        beep.SampleRate
	initialized bool
}

// NewChime creates a chime; call Init to open the speaker
func NewChime(cfg ChimeConfig) *Chime {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultChimeConfig().SampleRate
	}
	return &Chime{
		cfg:  cfg,
		rate: beep.SampleRate(cfg.SampleRate),
	}
}

// Init opens the speaker with a 100ms buffer
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Tone builds one chime stream
func (c *Chime) Tone() beep.Streamer {
	return withVolume(chimeTone(c.cfg, c.rate), c.cfg.Volume)
}

// Ring plays the chime without blocking
func (c *Chime) Ring() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Play(c.Tone())
}

// Close stops playback and releases the speaker
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
