package raster

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"contribtext/internal/glyph"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func aRandomText(maxLen int) string {
	n := 1 + rand.Intn(maxLen)
	var sb strings.Builder
	for j := 0; j < n; j++ {
		sb.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return sb.String()
}

func assertWellFormed(t *testing.T, b *Bitmap) {
	t.Helper()
	if b.Height() != glyph.Height {
		t.Errorf("bitmap has %v rows, expected %v", b.Height(), glyph.Height)
	}
	width := b.Width()
	for y := 0; y < b.Height(); y++ {
		if len(b.Row(y)) != width {
			t.Errorf("row %v has width %v, expected %v", y, len(b.Row(y)), width)
		}
	}
	if strings.Contains(b.Row(0), "1") {
		t.Errorf("top row has ink: %q", b.Row(0))
	}
	if width > GraphWidth {
		t.Errorf("bitmap width %v exceeds graph width %v", width, GraphWidth)
	}
}

func assertBitmapsIdentical(t *testing.T, b1 *Bitmap, b2 *Bitmap) {
	t.Helper()
	if b1.Width() != b2.Width() {
		t.Fatalf("Bitmaps not of equal width: %s %s", b1, b2)
	}
	for y := 0; y < b1.Height(); y++ {
		if b1.Row(y) != b2.Row(y) {
			t.Errorf("Row %v doesn't match: %q vs %q", y, b1.Row(y), b2.Row(y))
		}
	}
}

func TestRasterizeSingleDigit(t *testing.T) {
	b := Rasterize("1", DefaultOptions())

	expected := []string{
		"0000",
		"0100",
		"1100",
		"0100",
		"0100",
		"1110",
		"0000",
	}
	if b.Width() != 4 {
		t.Fatalf("width = %v, expected 4", b.Width())
	}
	for y, row := range expected {
		if b.Row(y) != row {
			t.Errorf("row %v = %q, expected %q", y, b.Row(y), row)
		}
	}
}

func TestRasterizeEmpty(t *testing.T) {
	b := Rasterize("", DefaultOptions())
	if !b.Empty() {
		t.Errorf("empty input produced width %v", b.Width())
	}
	if b.CountLit() != 0 {
		t.Errorf("empty input produced %v lit cells", b.CountLit())
	}
}

func TestRasterizeAllUnsupported(t *testing.T) {
	b := Rasterize("!@# $%", DefaultOptions())
	if !b.Empty() {
		t.Errorf("unsupported-only input produced width %v", b.Width())
	}
	if len(b.Skipped()) != 6 {
		t.Errorf("skipped %v characters, expected 6", len(b.Skipped()))
	}
}

func TestRasterizeSkipsUnsupported(t *testing.T) {
	withJunk := Rasterize("a#b", DefaultOptions())
	clean := Rasterize("ab", DefaultOptions())
	assertBitmapsIdentical(t, withJunk, clean)

	if len(withJunk.Skipped()) != 1 || withJunk.Skipped()[0] != '#' {
		t.Errorf("Skipped() = %q, expected ['#']", string(withJunk.Skipped()))
	}
	if clean.Skipped() != nil {
		t.Errorf("clean input reported skips: %q", string(clean.Skipped()))
	}
}

func TestRasterizeCaseInsensitive(t *testing.T) {
	assertBitmapsIdentical(t, Rasterize("Hello", DefaultOptions()), Rasterize("hello", DefaultOptions()))
}

func TestRasterizeIdempotent(t *testing.T) {
	for i := 0; i < 20; i++ {
		text := aRandomText(20)
		t.Run(fmt.Sprintf("test %v: %q", i, text), func(t *testing.T) {
			assertBitmapsIdentical(t, Rasterize(text, DefaultOptions()), Rasterize(text, DefaultOptions()))
		})
	}
}

func TestRasterizeWidthBound(t *testing.T) {
	for i := 0; i < 30; i++ {
		text := aRandomText(40)
		t.Run(fmt.Sprintf("test %v: %q", i, text), func(t *testing.T) {
			b := Rasterize(text, DefaultOptions())
			assertWellFormed(t, b)
		})
	}
}

func TestRasterizeTruncation(t *testing.T) {
	// "w" glyphs are 5 wide, so each spaced glyph takes 6 columns;
	// 8 fit in 48 and the 9th would reach 54.
	b := Rasterize("wwwwwwwwwwww", DefaultOptions())
	assertWellFormed(t, b)
	if !b.Truncated() {
		t.Fatal("expected truncation")
	}
	if b.Width() != 48 {
		t.Errorf("width = %v, expected 48 (8 glyphs of 6 columns)", b.Width())
	}

	// The truncated result matches rasterizing the surviving prefix.
	prefix := Rasterize("wwwwwwww", DefaultOptions())
	assertBitmapsIdentical(t, b, prefix)
}

func TestRasterizeSpacingAfterLastGlyph(t *testing.T) {
	b := Rasterize("i", DefaultOptions())
	// "i" is 3 wide; plus the trailing spacing column the total is 4.
	if b.Width() != 4 {
		t.Fatalf("width = %v, expected 4", b.Width())
	}
	for y := 0; y < b.Height(); y++ {
		if b.Row(y)[3] != '0' {
			t.Errorf("row %v trailing spacing column lit", y)
		}
	}
}

func TestRasterizeCountLit(t *testing.T) {
	b := Rasterize("1", DefaultOptions())
	// glyph "1" has 8 lit cells: 1+2+1+1+3 across its five inked rows
	if b.CountLit() != 8 {
		t.Errorf("CountLit() = %v, expected 8", b.CountLit())
	}
}

func TestGetBitMatchesRows(t *testing.T) {
	b := Rasterize("go", DefaultOptions())
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			expected := byte(0)
			if b.Row(y)[x] == '1' {
				expected = 1
			}
			if b.GetBit(x, y) != expected {
				t.Errorf("GetBit(%v, %v) = %v, expected %v", x, y, b.GetBit(x, y), expected)
			}
		}
	}
}

func TestMaxChars(t *testing.T) {
	if got := DefaultOptions().MaxChars(); got != 10 {
		t.Errorf("MaxChars() = %v, expected 10", got)
	}
	degenerate := Options{MaxWidth: 52, Spacing: 0, AvgCharWidth: 0}
	if got := degenerate.MaxChars(); got != 0 {
		t.Errorf("MaxChars() with zero widths = %v, expected 0", got)
	}
}
