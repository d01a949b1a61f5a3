package asset

const esc = "\x1b"

// ConsolePalette is ordered from background to most intense
// Meant for the Linux console with the alternate glyph mode on, where '0', '1' and '[' draw as shaded blocks
var ConsolePalette = []string{
	"\xff",
	esc + "[30;1m0" + esc + "[0m",
	esc + "[30;1m1" + esc + "[0m",
	esc + "[30;1m[" + esc + "[0m",
	"1",
	"[",
	esc + "[1m1" + esc + "[0m",
	esc + "[1m[" + esc + "[0m",
}

// Shade is the foreground brightness of a glyph
type Shade uint8

const (
	ShadeNone Shade = iota
	ShadeDark
	ShadeNormal
	ShadeBright
)

// Glyph is a palette entry for screens that draw runes with styles instead of raw escapes
type Glyph struct {
	Rune  rune
	Shade Shade
}

// GlyphPalette mirrors ConsolePalette entry for entry
var GlyphPalette = []Glyph{
	{' ', ShadeNone},
	{'░', ShadeDark},
	{'▒', ShadeDark},
	{'█', ShadeDark},
	{'▒', ShadeNormal},
	{'█', ShadeNormal},
	{'▒', ShadeBright},
	{'█', ShadeBright},
}
