package printers

import (
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		then time.Time
		want int
	}{
		{time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), 31},
		{time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local), 30},
		{time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local), 28},
		{time.Date(2028, 2, 10, 0, 0, 0, 0, time.Local), 29}, // leap year
	}
	for _, tc := range tests {
		if got := DaysIn(tc.then); got != tc.want {
			t.Errorf("DaysIn(%v) = %d, want %d", tc.then, got, tc.want)
		}
	}
}

func TestStartDay(t *testing.T) {
	// March 2026 starts on a Sunday.
	got := StartDay(time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local))
	if got != time.Sunday {
		t.Errorf("StartDay(March 2026) = %v, want Sunday", got)
	}
}
