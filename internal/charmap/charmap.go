// Package charmap holds the built-in luminance-to-glyph ramps and the
// rotating table the pipeline cycles through on SetCharMap(k).
package charmap

import "unicode/utf8"

// Map is an ordered, non-empty sequence of display glyphs. Index i maps the
// luminance bucket i out of len(Glyphs) buckets to Glyphs[i].
type Map struct {
	Name   string
	Glyphs []rune
}

// Len reports the number of luminance buckets this map divides the
// 0..255 range into.
func (m Map) Len() int { return len(m.Glyphs) }

// At returns the glyph for luminance bucket idx, clamped to range.
func (m Map) At(idx int) rune {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.Glyphs) {
		idx = len(m.Glyphs) - 1
	}
	return m.Glyphs[idx]
}

// FromString builds a Map from an ordered sequence of display glyphs, such
// as a user-supplied -c/--char-map string.
func FromString(name, s string) Map {
	glyphs := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		glyphs = append(glyphs, r)
	}
	return Map{Name: name, Glyphs: glyphs}
}

var (
	ASCII10      = FromString("ascii-10", " .:-=+*#%@")
	ASCII67      = FromString("ascii-67", ` .'`+"`"+`^",:;Il!i~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$`)
	ASCII92      = FromString("ascii-92", " `.-':_,^=;><+!rc*/z?sLTv)J7(|Fi{C}fI31tlu[neoZ5Yxjya]2ESwqkP6h9d4VpOGbUAKXHm8RD#$Bg0MNWQ%&@")
	SolidBlock   = FromString("solid-block", "█")
	DottedBlock  = FromString("dotted-block", "░")
	BlockGrad5   = FromString("block-gradient-5", " ░▒▓█")
	BlackWhite2  = FromString("black-white-2", " █")
	DottedTwo    = FromString("dotted-2", " ░")
	BrailleRamp  = FromString("braille-16", "⠀⠁⠃⠇⡇⣇⣧⣷⣿⢿⢻⢹⢸⠸⠘⠈")
)

// Builtins is the fixed, ordered set of pre-registered character maps,
// recommended by the display system as a complete set of visual densities.
var Builtins = []Map{
	ASCII10,
	ASCII67,
	ASCII92,
	SolidBlock,
	DottedBlock,
	BlockGrad5,
	BlackWhite2,
	DottedTwo,
	BrailleRamp,
}

// Table is the rotating list of named character maps a pipeline cycles
// through via SetCharMap(k). Slot 0 always holds the map supplied at
// startup (-c/--char-map); the built-ins fill the remaining slots, so
// SetCharMap(0) always returns to the user's original choice.
type Table struct {
	maps []Map
}

// NewTable builds a rotation table with initial at slot 0 followed by the
// fixed built-in set.
func NewTable(initial Map) *Table {
	maps := make([]Map, 0, len(Builtins)+1)
	maps = append(maps, initial)
	maps = append(maps, Builtins...)
	return &Table{maps: maps}
}

// Len is the modulus SetCharMap(k) wraps against.
func (t *Table) Len() int { return len(t.maps) }

// At returns the map at slot k, wrapping modulo Len.
func (t *Table) At(k int) Map {
	n := len(t.maps)
	idx := ((k % n) + n) % n
	return t.maps[idx]
}
