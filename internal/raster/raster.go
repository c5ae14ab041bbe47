// This package turns a text string into the 7-row bitmap that gets
// mapped onto the contribution grid. The bitmap is never wider than
// the 52-week graph; characters that would overflow are dropped and
// characters without a glyph are skipped.
package raster

import (
	"fmt"
	"log/slog"
	"strings"

	"contribtext/internal/glyph"
)

// GraphWidth is the number of week columns in one year of the
// contribution graph.
const GraphWidth = 52

type Options struct {
	// MaxWidth is the column ceiling for the rendered bitmap.
	MaxWidth int
	// Spacing is the number of blank columns appended after every
	// glyph, including the last one.
	Spacing int
	// AvgCharWidth feeds the coarse character cap applied before
	// rasterization. It is only an estimate since glyph widths vary;
	// the exact per-character width check below always governs.
	AvgCharWidth int
}

func DefaultOptions() Options {
	return Options{
		MaxWidth:     GraphWidth,
		Spacing:      1,
		AvgCharWidth: 4,
	}
}

// MaxChars is the coarse upper bound on how many characters can fit.
func (o Options) MaxChars() int {
	if o.AvgCharWidth+o.Spacing <= 0 {
		return 0
	}
	return o.MaxWidth / (o.AvgCharWidth + o.Spacing)
}

// Bitmap is a rendered string: exactly 7 rows of equal width, where
// row 0 is always blank so ink starts one cell below the top of the
// grid. A fresh Bitmap is built per Rasterize call and never shared.
type Bitmap struct {
	rows      [glyph.Height]string
	truncated bool
	skipped   []rune
}

func (b *Bitmap) Width() int {
	return len(b.rows[0])
}

func (b *Bitmap) Height() int {
	return glyph.Height
}

// GetBit returns 1 if the cell at (x, y) is lit, 0 otherwise.
func (b *Bitmap) GetBit(x int, y int) byte {
	if b.rows[y][x] == '1' {
		return 1
	}
	return 0
}

func (b *Bitmap) Row(y int) string {
	return b.rows[y]
}

// Empty reports whether rasterization produced no columns at all, the
// "nothing to render" condition callers must treat as fatal.
func (b *Bitmap) Empty() bool {
	return b.Width() == 0
}

// CountLit returns the number of lit cells, which is also the number
// of commits an emission run will attempt.
func (b *Bitmap) CountLit() int {
	n := 0
	for _, row := range b.rows {
		n += strings.Count(row, "1")
	}
	return n
}

// Truncated reports whether the input text was cut short to stay
// within MaxWidth.
func (b *Bitmap) Truncated() bool {
	return b.truncated
}

// Skipped returns the characters that were dropped for having no
// glyph, in input order.
func (b *Bitmap) Skipped() []rune {
	return b.skipped
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%d,%d)", b.Width(), b.Height())
}

// Rasterize renders text into a Bitmap no wider than opts.MaxWidth.
//
// Characters without a glyph are skipped with a warning and consume no
// width. The first character whose glyph (plus spacing) would push the
// total past MaxWidth stops processing; the bitmap built so far is
// returned, so no glyph is ever split across the width boundary.
// Finally all rows shift down by one: a blank row is inserted at the
// top and the former bottom row, blank by glyph construction, drops
// off.
func Rasterize(text string, opts Options) *Bitmap {
	runes := []rune(strings.ToLower(text))
	if limit := opts.MaxChars(); len(runes) > limit {
		runes = runes[:limit]
	}

	b := &Bitmap{}
	var rows [glyph.Height]string
	gap := strings.Repeat("0", opts.Spacing)
	totalWidth := 0

	for _, r := range runes {
		g, ok := glyph.Lookup(r)
		if !ok {
			slog.Warn("Character not supported, skipping",
				"char", string(r),
			)
			b.skipped = append(b.skipped, r)
			continue
		}

		charWidth := g.Width() + opts.Spacing
		if totalWidth+charWidth > opts.MaxWidth {
			slog.Warn("Text truncated to fit graph width",
				"char", string(r),
				"width", totalWidth,
				"maxWidth", opts.MaxWidth,
			)
			b.truncated = true
			break
		}

		for i := range rows {
			rows[i] += g[i] + gap
		}
		totalWidth += charWidth
	}

	// Shift everything down one row: blank row on top, old bottom row
	// dropped. Built as a new slice so the input rows stay untouched.
	b.rows[0] = strings.Repeat("0", totalWidth)
	copy(b.rows[1:], rows[:glyph.Height-1])

	return b
}
