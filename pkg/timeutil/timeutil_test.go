package timeutil

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local))
	if want := "2026-03-14"; got != want {
		t.Errorf("DayKey() = %q, want %q", got, want)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 14, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local)
	nextDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)

	if !SameDay(morning, night) {
		t.Error("SameDay within one day = false")
	}
	if SameDay(night, nextDay) {
		t.Error("SameDay across midnight = true")
	}
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	b := time.Date(2026, 3, 31, 23, 0, 0, 0, time.Local)
	c := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	if !SameMonth(a, b) {
		t.Error("SameMonth within one month = false")
	}
	if SameMonth(a, c) {
		t.Error("SameMonth across years = true")
	}
}

func TestClockMinute(t *testing.T) {
	got := ClockMinute(time.Date(2026, 3, 14, 9, 5, 30, 0, time.Local))
	if want := "09:05"; got != want {
		t.Errorf("ClockMinute() = %q, want %q", got, want)
	}
}

func TestValidClock(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:30", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"09:60", false},
		{"9:30", false},
		{"0930", false},
		{"", false},
		{"ab:cd", false},
	}
	for _, tc := range tests {
		if got := ValidClock(tc.in); got != tc.want {
			t.Errorf("ValidClock(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "30m", want: 30 * time.Minute},
		{in: "48h", want: 48 * time.Hour},
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "1w2d6h", want: 9*24*time.Hour + 6*time.Hour},
		{in: " 2 Days ", want: 48 * time.Hour},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "5fortnights", wantErr: true},
		{in: "0d", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseWindow(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseWindow(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWindow(%q) = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWindow(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	tests := []struct {
		then time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-90 * time.Minute), "1h30m ago"},
		{now.Add(-52 * time.Hour), "2d4h ago"},
		{now.AddDate(0, 0, -9), "1w2d ago"},
	}
	for _, tc := range tests {
		if got := Ago(now, tc.then); got != tc.want {
			t.Errorf("Ago(%v) = %q, want %q", tc.then, got, tc.want)
		}
	}
}
