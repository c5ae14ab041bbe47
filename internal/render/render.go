// Terminal and image rendering of a rasterized bitmap, for checking
// what a run will draw before any commits exist.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"contribtext/internal/raster"
)

type Bitmap interface {
	Width() int
	Height() int
	GetBit(x int, y int) byte
}

// Preview writes the bitmap to w using a filled block per lit cell,
// followed by the total width against the graph maximum.
func Preview(w io.Writer, b Bitmap) {
	fmt.Fprintf(w, "\nPreview (%d rows × width):\n", b.Height())
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.GetBit(x, y) == 1 {
				fmt.Fprint(w, "█")
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nTotal width: %d columns (max: %d)\n\n", b.Width(), raster.GraphWidth)
}

// Contribution-graph palette: unlit cells in the graph's background
// grey, lit cells in its mid green.
var (
	cellEmpty = color.RGBA{0xeb, 0xed, 0xf0, 0xff}
	cellLit   = color.RGBA{0x40, 0xc4, 0x63, 0xff}
)

// WritePNG encodes the bitmap as a PNG with cellSize pixels per cell.
// The small bitmap is drawn 1:1 and scaled up with nearest-neighbour
// so cells stay crisp squares.
func WritePNG(w io.Writer, b Bitmap, cellSize int) error {
	if b.Width() == 0 {
		return fmt.Errorf("nothing to render")
	}
	if cellSize < 1 {
		return fmt.Errorf("cell size must be at least 1, got %d", cellSize)
	}

	base := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.GetBit(x, y) == 1 {
				base.Set(x, y, cellLit)
			} else {
				base.Set(x, y, cellEmpty)
			}
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, b.Width()*cellSize, b.Height()*cellSize))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), draw.Src, nil)

	if err := png.Encode(w, scaled); err != nil {
		return fmt.Errorf("Couldn't encode PNG:\n%w", err)
	}
	return nil
}
