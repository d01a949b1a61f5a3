package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// chimeTone streams one sine blip shaped by the attack and release ramps of cfg
func chimeTone(cfg ChimeConfig, rate beep.SampleRate) beep.Streamer {
	total := rate.N(cfg.Duration)
	attack := rate.N(cfg.Attack)
	release := rate.N(cfg.Release)
	cycles := cfg.Frequency / float64(rate) // per sample
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for n = 0; n < len(samples) && pos < total; n++ {
			v := math.Sin(2*math.Pi*cycles*float64(pos)) * ramp(pos, total, attack, release)
			samples[n][0] = v
			samples[n][1] = v
			pos++
		}
		return n, true
	})
}

// ramp is the envelope gain at sample pos: linear in over attack, linear out over the last release samples
func ramp(pos, total, attack, release int) float64 {
	g := 1.0
	if pos < attack {
		g = float64(pos) / float64(attack)
	}
	if left := total - pos; left < release {
		g = math.Min(g, float64(left)/float64(release))
	}
	return g
}

// withVolume scales s linearly; zero or less is silent
// math.Log2(0) is -Inf, so 0 volume is handled as Silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
