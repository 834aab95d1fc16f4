package printers

import (
	"fmt"
	"strings"
	"time"
)

const calendarWidth = len("11 12 13 14 15 16 17") // an example week

// Tracking renders the current month with the days that have events
// highlighted. counts holds one entry per day of the month.
func (pp *PrettyPrint) Tracking(then time.Time, counts []int) {
	d := StartDay(then)

	m := then.Month().String()
	mid := (calendarWidth - len(m)) / 2
	_, _ = pp.faint().Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", calendarWidth-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	for i := 0; i < days; i++ {
		if i < len(counts) && counts[i] > 0 {
			_, _ = pp.accent().Printf("%2d ", i+1)
		} else {
			_, _ = pp.faint().Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// StartDay returns the weekday the month starts on.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Local().Year(), then.Local().Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
