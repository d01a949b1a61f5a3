package vmath

import (
	"math"
)

// SineTable maps every Angle to its sine
// Built once and read-only afterwards; safe for concurrent readers
type SineTable [AngleSteps]float64

// NewSineTable fills a table with sin(i·π/128)
func NewSineTable() *SineTable {
	t := &SineTable{}
	for i := 0; i < AngleSteps; i++ {
		t[i] = math.Sin(Angle(i).Radians())
	}
	return t
}

// Sin returns the sine of a
func (t *SineTable) Sin(a Angle) float64 {
	return t[a]
}

// Cos returns the cosine of a as the sine a quarter turn ahead
func (t *SineTable) Cos(a Angle) float64 {
	return t[a+QuarterTurn]
}

// SinCos returns both values for one angle
func (t *SineTable) SinCos(a Angle) (sin, cos float64) {
	return t[a], t[a+QuarterTurn]
}
