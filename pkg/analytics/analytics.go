// Package analytics derives read-only views over the current state: KPI
// totals, hourly histograms, trends, and breakdowns. Nothing here mutates
// or persists anything.
package analytics

import (
	"fmt"
	"time"

	"tableflip.dev/quirk/pkg/state"
	"tableflip.dev/quirk/pkg/timeutil"
)

// TotalEvents is the lifetime event count.
func TotalEvents(s *state.State) int {
	return len(s.Events)
}

// CategoryTotals maps category id to its cached today-count.
func CategoryTotals(s *state.State) map[string]int {
	totals := make(map[string]int, len(s.Categories))
	for _, c := range s.Categories {
		totals[c.ID] = c.Count
	}
	return totals
}

// TodayEvents returns the events whose local calendar day matches now's.
func TodayEvents(s *state.State, now time.Time) []*state.Event {
	out := make([]*state.Event, 0)
	for _, e := range s.Events {
		if timeutil.SameDay(e.Timestamp.Time, now) {
			out = append(out, e)
		}
	}
	return out
}

// MostActiveToday returns the category id with the most events today.
// Ties break to the id encountered first in event-log order; the second
// return is false when no events were recorded today.
func MostActiveToday(s *state.State, now time.Time) (string, bool) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range TodayEvents(s, now) {
		if _, seen := counts[e.CategoryID]; !seen {
			order = append(order, e.CategoryID)
		}
		counts[e.CategoryID]++
	}

	best := ""
	max := 0
	for _, id := range order {
		if counts[id] > max {
			max = counts[id]
			best = id
		}
	}
	return best, best != ""
}

// PeakHour returns the local hour with the most events across the entire
// log, formatted "H:00". Ties break to the lowest hour. Returns "N/A"
// when the log is empty.
func PeakHour(s *state.State) string {
	if len(s.Events) == 0 {
		return "N/A"
	}
	buckets := EventsPerHour(s)
	peak := 0
	max := 0
	for hour, count := range buckets {
		if count > max {
			max = count
			peak = hour
		}
	}
	return fmt.Sprintf("%d:00", peak)
}

// EventsPerHour buckets the entire log by local hour.
func EventsPerHour(s *state.State) [24]int {
	var buckets [24]int
	for _, e := range s.Events {
		buckets[timeutil.HourOf(e.Timestamp.Time)]++
	}
	return buckets
}

// Trend is the day-over-day movement in event volume.
type Trend struct {
	Today     int
	Yesterday int
	Delta     int
	Percent   float64
}

// DayOverDayTrend compares today's event count to yesterday's. Percent is
// delta relative to yesterday; with an empty yesterday it is 100 when
// today has any events, else 0.
func DayOverDayTrend(s *state.State, now time.Time) Trend {
	yesterday := now.AddDate(0, 0, -1)
	t := Trend{}
	for _, e := range s.Events {
		switch {
		case timeutil.SameDay(e.Timestamp.Time, now):
			t.Today++
		case timeutil.SameDay(e.Timestamp.Time, yesterday):
			t.Yesterday++
		}
	}
	t.Delta = t.Today - t.Yesterday
	switch {
	case t.Yesterday > 0:
		t.Percent = float64(t.Delta) / float64(t.Yesterday) * 100
	case t.Today > 0:
		t.Percent = 100
	}
	return t
}

// Share is one category's slice of the all-time event volume.
type Share struct {
	CategoryID string
	Count      int
	Percent    float64
}

// Breakdown returns each category's cached count as a percentage of the
// lifetime event total, in category display order.
func Breakdown(s *state.State) []Share {
	total := TotalEvents(s)
	shares := make([]Share, 0, len(s.Categories))
	for _, c := range s.Categories {
		share := Share{CategoryID: c.ID, Count: c.Count}
		if total > 0 {
			share.Percent = float64(c.Count) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	return shares
}

// TodayCountFor derives a category's count for today from the event log,
// independent of the cached Count field.
func TodayCountFor(s *state.State, categoryID string, now time.Time) int {
	n := 0
	for _, e := range TodayEvents(s, now) {
		if e.CategoryID == categoryID {
			n++
		}
	}
	return n
}

// LifetimeCountFor is the all-time event count for a category. The cached
// Count field resets daily and is not a lifetime total; use this when a
// lifetime figure is wanted.
func LifetimeCountFor(s *state.State, categoryID string) int {
	n := 0
	for _, e := range s.Events {
		if e.CategoryID == categoryID {
			n++
		}
	}
	return n
}

// FirstLastToday returns today's chronologically first and last events,
// or nils when today is empty.
func FirstLastToday(s *state.State, now time.Time) (first, last *state.Event) {
	for _, e := range TodayEvents(s, now) {
		if first == nil || e.Timestamp.Before(first.Timestamp.Time) {
			first = e
		}
		if last == nil || !e.Timestamp.Before(last.Timestamp.Time) {
			last = e
		}
	}
	return first, last
}
