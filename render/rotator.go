package render

import (
	"github.com/lixenwraith/rhotate/vmath"
)

// Point is a position in output or source space
type Point struct {
	X, Y float64
}

// GridCenter returns the rotation center of a cols×rows output grid
func GridCenter(cols, rows int) Point {
	return Point{X: 0.5 * float64(cols), Y: 0.5 * float64(rows)}
}

// Rotator maps output cells to palette indices for a rotation angle
type Rotator struct {
	table       *vmath.SineTable
	sampler     *Sampler
	paletteSize int
	srcCenter   Point
}

// NewRotator creates a rotator over the sampler's source, quantizing into paletteSize entries
func NewRotator(table *vmath.SineTable, sampler *Sampler, paletteSize int) *Rotator {
	src := sampler.Source()
	return &Rotator{
		table:       table,
		sampler:     sampler,
		paletteSize: paletteSize,
		srcCenter:   Point{X: 0.5 * float64(src.Width()), Y: 0.5 * float64(src.Height())},
	}
}

// PaletteSize returns the number of palette entries indices are quantized into
func (r *Rotator) PaletteSize() int {
	return r.paletteSize
}

// SourcePoint inverse-rotates output cell (x, y) about center into source coordinates
// Horizontal offsets count once against cosine and twice against sine, vertical offsets half against sine,
// compensating for character cells being about twice as tall as wide
func (r *Rotator) SourcePoint(angle vmath.Angle, x, y int, center Point) Point {
	sin, cos := r.table.SinCos(angle)
	ox := float64(x) - center.X
	oy := float64(y) - center.Y

	return Point{
		X: ox*cos - 2*oy*sin + r.srcCenter.X,
		Y: 0.5*ox*sin + oy*cos + r.srcCenter.Y,
	}
}

// SampleCell returns the palette index for output cell (x, y)
// ok is false when the quantized index falls outside the palette; such cells are not drawn
func (r *Rotator) SampleCell(angle vmath.Angle, x, y int, center Point) (index int, ok bool) {
	p := r.SourcePoint(angle, x, y, center)
	return Quantize(r.sampler.Intensity(p.X, p.Y), r.paletteSize, r.sampler.Source().Levels())
}

// Quantize scales a continuous intensity in [0, levels) down to a palette index
// Out-of-range results are reported with ok=false rather than clamped
func Quantize(intensity float64, paletteSize, levels int) (index int, ok bool) {
	if levels <= 0 || paletteSize <= 0 {
		return 0, false
	}
	scaled := intensity * float64(paletteSize) / float64(levels)
	if !(scaled >= 0 && scaled < float64(paletteSize)) {
		return 0, false
	}
	return int(scaled), true
}
