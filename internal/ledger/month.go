package ledger

import (
	"fmt"
	"time"
)

// MonthCursor is the (year, month) window the view is pointed at.
// MonthIndex is 0-based to match the grid's internal convention; the
// remote API counts months from 1.
type MonthCursor struct {
	Year       int
	MonthIndex int
}

// CursorFor builds a cursor from 1-based flag values, falling back to
// the current month for anything absent or out of range. Years outside
// (1900, 2300) are treated as absent.
func CursorFor(year, month int, now time.Time) MonthCursor {
	c := MonthCursor{Year: now.Year(), MonthIndex: int(now.Month()) - 1}
	if year > 1900 && year < 2300 {
		c.Year = year
	}
	if month >= 1 && month <= 12 {
		c.MonthIndex = month - 1
	}
	return c
}

// Prev moves one month back, rolling the year below January.
func (c MonthCursor) Prev() MonthCursor {
	c.MonthIndex--
	if c.MonthIndex < 0 {
		c.MonthIndex = 11
		c.Year--
	}
	return c
}

// Next moves one month forward, rolling the year past December.
func (c MonthCursor) Next() MonthCursor {
	c.MonthIndex++
	if c.MonthIndex > 11 {
		c.MonthIndex = 0
		c.Year++
	}
	return c
}

// APIMonth is the 1-based month the remote API expects.
func (c MonthCursor) APIMonth() int { return c.MonthIndex + 1 }

// MonthName returns the display name of the month.
func (c MonthCursor) MonthName() string {
	return time.Month(c.MonthIndex + 1).String()
}

// Label renders the cursor for headers, e.g. "January 2026".
func (c MonthCursor) Label() string {
	return fmt.Sprintf("%s %d", c.MonthName(), c.Year)
}
