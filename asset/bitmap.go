package asset

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Bitmap cell markers
const (
	MarkFull   = '#'
	MarkLetter = 'A'
	MarkLast   = 'Z'
)

var (
	ErrEmptyBitmap  = errors.New("bitmap has no rows")
	ErrRaggedBitmap = errors.New("bitmap rows differ in width")
	ErrBadLevels    = errors.New("bitmap level count must be at least 2")
)

// bitmapDoc is the on-disk shape of a bitmap asset
type bitmapDoc struct {
	Name   string   `yaml:"name"`
	Levels int      `yaml:"levels"`
	Rows   []string `yaml:"rows"`
}

// Bitmap is an immutable grid of intensity codes
type Bitmap struct {
	name   string
	width  int
	height int
	levels int
	cells  []byte
}

// NewBitmap validates rows and builds a bitmap with the given number of brightness levels
func NewBitmap(name string, levels int, rows []string) (*Bitmap, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBitmap
	}
	if levels < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLevels, levels)
	}

	width := len(rows[0])
	if width == 0 {
		return nil, ErrEmptyBitmap
	}

	cells := make([]byte, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedBitmap, i, len(row), width)
		}
		cells = append(cells, row...)
	}

	return &Bitmap{
		name:   name,
		width:  width,
		height: len(rows),
		levels: levels,
		cells:  cells,
	}, nil
}

// LoadBitmap decodes a YAML bitmap document
func LoadBitmap(data []byte) (*Bitmap, error) {
	var doc bitmapDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode bitmap: %w", err)
	}
	return NewBitmap(doc.Name, doc.Levels, doc.Rows)
}

// DefaultBitmap returns the built-in π glyph
func DefaultBitmap() (*Bitmap, error) {
	return LoadBitmap([]byte(DefaultBitmapYAML))
}

func (b *Bitmap) Name() string { return b.name }
func (b *Bitmap) Width() int   { return b.width }
func (b *Bitmap) Height() int  { return b.height }

// Levels returns the number of brightness levels, background included
func (b *Bitmap) Levels() int { return b.levels }

// Level returns the brightness level of the cell at (x, y)
// Out-of-bounds cells read as background (0)
func (b *Bitmap) Level(x, y int) int {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	c := b.cells[b.width*y+x]
	switch {
	case c == MarkFull:
		return b.levels - 1
	case c >= MarkLetter && c <= MarkLast:
		level := b.levels - (1 + int(c-MarkLetter))
		if level < 0 {
			return 0
		}
		return level
	}
	return 0
}
