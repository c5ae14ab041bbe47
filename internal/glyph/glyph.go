// This package holds the fixed 7-row pixel font used to draw text onto
// the contribution grid. Each glyph covers rows 0-4 with ink and leaves
// rows 5-6 blank so rendered text sits clear of the bottom of the grid.
package glyph

import "unicode"

const Height = 7

// A Glyph is 7 rows of "0"/"1" cells. All rows of one glyph have the
// same width; widths vary between 3 and 5 columns across the table.
type Glyph [Height]string

func (g Glyph) Width() int {
	return len(g[0])
}

var table = map[rune]Glyph{
	'a': {"0110", "1001", "1111", "1001", "1001", "0000", "0000"},
	'b': {"1110", "1001", "1110", "1001", "1110", "0000", "0000"},
	'c': {"0111", "1000", "1000", "1000", "0111", "0000", "0000"},
	'd': {"1110", "1001", "1001", "1001", "1110", "0000", "0000"},
	'e': {"1111", "1000", "1110", "1000", "1111", "0000", "0000"},
	'f': {"1111", "1000", "1110", "1000", "1000", "0000", "0000"},
	'g': {"0111", "1000", "1011", "1001", "0111", "0000", "0000"},
	'h': {"1001", "1001", "1111", "1001", "1001", "0000", "0000"},
	'i': {"111", "010", "010", "010", "111", "000", "000"},
	'j': {"0011", "0001", "0001", "1001", "0110", "0000", "0000"},
	'k': {"1001", "1010", "1100", "1010", "1001", "0000", "0000"},
	'l': {"1000", "1000", "1000", "1000", "1111", "0000", "0000"},
	'm': {"10001", "11011", "10101", "10001", "10001", "00000", "00000"},
	'n': {"1001", "1101", "1011", "1001", "1001", "0000", "0000"},
	'o': {"0110", "1001", "1001", "1001", "0110", "0000", "0000"},
	'p': {"1110", "1001", "1110", "1000", "1000", "0000", "0000"},
	'q': {"0110", "1001", "1001", "1011", "0111", "0000", "0000"},
	'r': {"1110", "1001", "1110", "1010", "1001", "0000", "0000"},
	's': {"0111", "1000", "0110", "0001", "1110", "0000", "0000"},
	't': {"11111", "00100", "00100", "00100", "00100", "00000", "00000"},
	'u': {"1001", "1001", "1001", "1001", "0110", "0000", "0000"},
	'v': {"1001", "1001", "1001", "0101", "0010", "0000", "0000"},
	'w': {"10001", "10001", "10101", "11011", "10001", "00000", "00000"},
	'x': {"1001", "0101", "0010", "0101", "1001", "0000", "0000"},
	'y': {"1001", "0101", "0010", "0010", "0010", "0000", "0000"},
	'z': {"1111", "0001", "0010", "0100", "1111", "0000", "0000"},
	'0': {"0110", "1001", "1001", "1001", "0110", "0000", "0000"},
	'1': {"010", "110", "010", "010", "111", "000", "000"},
	'2': {"0110", "1001", "0010", "0100", "1111", "0000", "0000"},
	'3': {"1110", "0001", "0110", "0001", "1110", "0000", "0000"},
	'4': {"1001", "1001", "1111", "0001", "0001", "0000", "0000"},
	'5': {"1111", "1000", "1110", "0001", "1110", "0000", "0000"},
	'6': {"0111", "1000", "1110", "1001", "0110", "0000", "0000"},
	'7': {"1111", "0001", "0010", "0100", "0100", "0000", "0000"},
	'8': {"0110", "1001", "0110", "1001", "0110", "0000", "0000"},
	'9': {"0110", "1001", "0111", "0001", "1110", "0000", "0000"},
}

// Lookup returns the glyph for r, lowercasing first. The second return
// is false for any rune outside a-z and 0-9; callers are expected to
// handle that case rather than rely on a zero glyph.
func Lookup(r rune) (Glyph, bool) {
	g, ok := table[unicode.ToLower(r)]
	return g, ok
}

// WidthOf returns the column count of r's glyph, or 0 if r has no
// glyph.
func WidthOf(r rune) int {
	g, ok := Lookup(r)
	if !ok {
		return 0
	}
	return g.Width()
}

// Supported reports whether r has a glyph.
func Supported(r rune) bool {
	_, ok := Lookup(r)
	return ok
}

// UnsupportedIn returns the distinct characters of text that have no
// glyph, in first-appearance order. The scan covers the whole input,
// including characters the rasterizer's length cap would drop, so
// warnings can name every offender up front.
func UnsupportedIn(text string) []rune {
	seen := map[rune]bool{}
	var out []rune
	for _, r := range text {
		if Supported(r) || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
