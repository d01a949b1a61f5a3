package render

import (
	"math"
)

// LevelSource is a discrete grid of brightness levels
// Reads outside the grid must return 0
type LevelSource interface {
	Width() int
	Height() int
	Levels() int
	Level(x, y int) int
}

// Sampler reads a LevelSource at fractional coordinates
type Sampler struct {
	src LevelSource
}

// NewSampler creates a sampler over src
func NewSampler(src LevelSource) *Sampler {
	return &Sampler{src: src}
}

// Source returns the sampled grid
func (s *Sampler) Source() LevelSource {
	return s.src
}

// Intensity returns the bilinear blend of the four cells around (x, y)
// Result lies in [0, Levels()-1]; cells outside the grid contribute background
func (s *Sampler) Intensity(x, y float64) float64 {
	rx := math.Floor(x)
	ry := math.Floor(y)
	fx, fy := x-rx, y-ry
	gx, gy := 1-fx, 1-fy

	// Anything this far out never touches the grid; also keeps the int conversion in range and rejects NaN
	if !(rx >= -2 && ry >= -2 && rx <= float64(s.src.Width()) && ry <= float64(s.src.Height())) {
		return 0
	}
	ix, iy := int(rx), int(ry)

	return gx*gy*float64(s.src.Level(ix, iy)) +
		fx*gy*float64(s.src.Level(ix+1, iy)) +
		gx*fy*float64(s.src.Level(ix, iy+1)) +
		fx*fy*float64(s.src.Level(ix+1, iy+1))
}
