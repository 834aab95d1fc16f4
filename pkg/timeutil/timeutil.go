// Package timeutil holds the local-time day and clock math shared by the
// reconciler, analytics, and reminders.
package timeutil

import "time"

const layoutDay = "2006-01-02"

// DayKey formats t as its local-midnight date key, "YYYY-MM-DD".
func DayKey(t time.Time) string {
	return t.Local().Format(layoutDay)
}

// SameDay reports whether both instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

// SameMonth reports whether both instants fall in the same local month.
func SameMonth(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month()
}

// HourOf returns the local hour of t, 0..23.
func HourOf(t time.Time) int {
	return t.Local().Hour()
}

// ClockMinute formats t as a local "HH:MM" value, the reminder time format.
func ClockMinute(t time.Time) string {
	return t.Local().Format("15:04")
}

// ValidClock reports whether s is a well-formed "HH:MM" value.
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
