package ledger

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func TestCursorFor(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantYear  int
		wantIndex int
	}{
		{"explicit valid", 2025, 3, 2025, 2},
		{"no flags falls back to now", 0, 0, 2026, 7},
		{"month out of range falls back", 2025, 13, 2025, 7},
		{"month zero falls back", 2025, 0, 2025, 7},
		{"year out of range falls back", 1850, 6, 2026, 5},
		{"december", 2024, 12, 2024, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CursorFor(tt.year, tt.month, testNow)
			if got.Year != tt.wantYear || got.MonthIndex != tt.wantIndex {
				t.Errorf("CursorFor(%d, %d) = {%d %d}, want {%d %d}",
					tt.year, tt.month, got.Year, got.MonthIndex, tt.wantYear, tt.wantIndex)
			}
		})
	}
}

func TestMonthCursor_PrevRollsYear(t *testing.T) {
	c := MonthCursor{Year: 2024, MonthIndex: 0}.Prev()
	if c.Year != 2023 || c.MonthIndex != 11 {
		t.Errorf("Prev from Jan 2024 = {%d %d}, want {2023 11}", c.Year, c.MonthIndex)
	}
}

func TestMonthCursor_NextRollsYear(t *testing.T) {
	c := MonthCursor{Year: 2024, MonthIndex: 11}.Next()
	if c.Year != 2025 || c.MonthIndex != 0 {
		t.Errorf("Next from Dec 2024 = {%d %d}, want {2025 0}", c.Year, c.MonthIndex)
	}
}

func TestMonthCursor_PrevNextRoundTrip(t *testing.T) {
	start := MonthCursor{Year: 2026, MonthIndex: 4}
	if got := start.Next().Prev(); got != start {
		t.Errorf("Next().Prev() = %+v, want %+v", got, start)
	}
}

func TestMonthCursor_APIMonth(t *testing.T) {
	c := MonthCursor{Year: 2026, MonthIndex: 0}
	if c.APIMonth() != 1 {
		t.Errorf("APIMonth = %d, want 1", c.APIMonth())
	}
}

func TestMonthCursor_Label(t *testing.T) {
	c := MonthCursor{Year: 2026, MonthIndex: 0}
	if got := c.Label(); got != "January 2026" {
		t.Errorf("Label = %q, want %q", got, "January 2026")
	}
}
