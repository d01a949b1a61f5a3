package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBitmap(t *testing.T) {
	b, err := DefaultBitmap()
	require.NoError(t, err)

	assert.Equal(t, "pi", b.Name())
	assert.Equal(t, 41, b.Width())
	assert.Equal(t, 21, b.Height())
	assert.Equal(t, 4, b.Levels())

	// Odd dimensions give an exact center pixel
	assert.Equal(t, 1, b.Width()%2)
	assert.Equal(t, 1, b.Height()%2)
}

func TestBitmap_LevelMapping(t *testing.T) {
	b, err := NewBitmap("t", 4, []string{
		"#ABC",
		".DZx",
	})
	require.NoError(t, err)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3}, // full
		{1, 0, 3}, // A = levels-1
		{2, 0, 2}, // B
		{3, 0, 1}, // C
		{0, 1, 0}, // background
		{1, 1, 0}, // D = levels-4
		{2, 1, 0}, // Z would go negative
		{3, 1, 0}, // unknown marker
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Level(tt.x, tt.y), "cell (%d,%d)", tt.x, tt.y)
	}
}

func TestBitmap_OutOfBoundsIsBackground(t *testing.T) {
	b, err := NewBitmap("t", 3, []string{"##", "##"})
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1000, 1000}, {1 << 30, 0}} {
		assert.Equal(t, 0, b.Level(p[0], p[1]), "cell %v", p)
	}
	assert.Equal(t, 2, b.Level(1, 1))
}

func TestNewBitmap_Errors(t *testing.T) {
	_, err := NewBitmap("t", 4, nil)
	assert.ErrorIs(t, err, ErrEmptyBitmap)

	_, err = NewBitmap("t", 4, []string{""})
	assert.ErrorIs(t, err, ErrEmptyBitmap)

	_, err = NewBitmap("t", 4, []string{"###", "##"})
	assert.ErrorIs(t, err, ErrRaggedBitmap)

	_, err = NewBitmap("t", 1, []string{"#"})
	assert.ErrorIs(t, err, ErrBadLevels)
}

func TestLoadBitmap_BadYAML(t *testing.T) {
	_, err := LoadBitmap([]byte("rows: [unterminated"))
	assert.Error(t, err)
}

func TestPalettesAligned(t *testing.T) {
	require.Len(t, GlyphPalette, len(ConsolePalette))
	assert.Equal(t, "\xff", ConsolePalette[0])
	assert.Equal(t, ShadeNone, GlyphPalette[0].Shade)
}
