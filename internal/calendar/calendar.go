// This package maps bitmap cells onto calendar dates. The contribution
// graph lays weeks out as columns starting on Sunday, so the date for
// cell (row, col) is the year's first Sunday plus col*7+row days.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

var ErrYearRange = errors.New("year out of range")

// ValidateYear rejects years outside [2000, 2100]. Anything outside
// that window is almost certainly a typo and would emit commits nobody
// can see.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d, expected %d-%d", ErrYearRange, year, MinYear, MaxYear)
	}
	return nil
}

// FirstSunday returns the first Sunday on or after January 1 of year,
// the anchor cell (0, 0) maps to.
func FirstSunday(year int) time.Time {
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// CellDate maps a bitmap cell to its calendar date.
func CellDate(anchor time.Time, row int, col int) time.Time {
	return anchor.AddDate(0, 0, col*7+row)
}

type Bitmap interface {
	Width() int
	Height() int
	GetBit(x int, y int) byte
}

// Cells produces the dates of all lit cells in b, in emission order:
// rows top to bottom within each column, columns left to right.
func Cells(b Bitmap, anchor time.Time) []time.Time {
	var dates []time.Time
	for col := 0; col < b.Width(); col++ {
		for row := 0; row < b.Height(); row++ {
			if b.GetBit(col, row) == 1 {
				dates = append(dates, CellDate(anchor, row, col))
			}
		}
	}
	return dates
}
