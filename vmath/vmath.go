// Package vmath holds the fixed-angle trigonometry used by the renderer.
package vmath

// Angle is one of 256 discrete steps of a full turn; arithmetic wraps modulo 256
type Angle uint8

// Angle constants in 8-bit units
const (
	AngleSteps   = 1 << 8
	QuarterTurn  = Angle(AngleSteps / 4)
	HalfTurn     = Angle(AngleSteps / 2)
	radsPerAngle = 3.141592653589793 / (AngleSteps / 2)
)

// Advance returns a moved by step units, wrapping past a full turn
// The second result reports whether the move crossed angle zero
func (a Angle) Advance(step int) (Angle, bool) {
	next := Angle(int(a) + step)
	return next, step > 0 && int(a)+step >= AngleSteps
}

// Radians converts the angle to radians in [0, 2π)
func (a Angle) Radians() float64 {
	return float64(a) * radsPerAngle
}
