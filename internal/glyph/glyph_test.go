package glyph

import (
	"strings"
	"testing"
)

func TestAllGlyphsUniform(t *testing.T) {
	for r, g := range table {
		width := g.Width()
		if width < 3 || width > 5 {
			t.Errorf("glyph %q has width %v, expected 3-5", r, width)
		}
		for i, row := range g {
			if len(row) != width {
				t.Errorf("glyph %q row %v has width %v, expected %v", r, i, len(row), width)
			}
			for _, c := range row {
				if c != '0' && c != '1' {
					t.Errorf("glyph %q row %v contains %q", r, i, c)
				}
			}
		}
		// rows 5 and 6 are padding under the baseline
		for i := 5; i < Height; i++ {
			for _, c := range g[i] {
				if c != '0' {
					t.Errorf("glyph %q has ink in padding row %v", r, i)
				}
			}
		}
	}
}

func TestWidthOfMatchesGlyph(t *testing.T) {
	for r := range table {
		g, ok := Lookup(r)
		if !ok {
			t.Fatalf("Lookup(%q) not found", r)
		}
		if WidthOf(r) != g.Width() {
			t.Errorf("WidthOf(%q) = %v, glyph width %v", r, WidthOf(r), g.Width())
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	lower, ok := Lookup('a')
	if !ok {
		t.Fatal("Lookup('a') not found")
	}
	upper, ok := Lookup('A')
	if !ok {
		t.Fatal("Lookup('A') not found")
	}
	if lower != upper {
		t.Errorf("Lookup('a') and Lookup('A') differ")
	}
}

func TestUnsupportedRunes(t *testing.T) {
	for _, r := range []rune{'#', ' ', '!', 'é', '字'} {
		if Supported(r) {
			t.Errorf("Supported(%q) = true, expected false", r)
		}
		if WidthOf(r) != 0 {
			t.Errorf("WidthOf(%q) = %v, expected 0", r, WidthOf(r))
		}
	}
}

func TestUnsupportedIn(t *testing.T) {
	got := UnsupportedIn("a#b!c#")
	if string(got) != "#!" {
		t.Errorf("UnsupportedIn() = %q, expected %q", string(got), "#!")
	}
	if UnsupportedIn("abc123") != nil {
		t.Error("UnsupportedIn() reported offenders in clean input")
	}
}

func TestUnsupportedInScansWholeInput(t *testing.T) {
	// The offender sits past any length cap the rasterizer applies;
	// the scan must still find it.
	text := strings.Repeat("a", 30) + "?"
	got := UnsupportedIn(text)
	if string(got) != "?" {
		t.Errorf("UnsupportedIn() = %q, expected %q", string(got), "?")
	}
}

func TestCoverage(t *testing.T) {
	if len(table) != 36 {
		t.Fatalf("table has %v glyphs, expected 36", len(table))
	}
	for r := 'a'; r <= 'z'; r++ {
		if !Supported(r) {
			t.Errorf("letter %q missing from table", r)
		}
	}
	for r := '0'; r <= '9'; r++ {
		if !Supported(r) {
			t.Errorf("digit %q missing from table", r)
		}
	}
}
