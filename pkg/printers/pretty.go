// Package printers renders state and analytics to the terminal using the
// active theme's palette.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/quirk/pkg/theme"
)

type PrettyPrint struct {
	Palette theme.Palette
}

func (pp *PrettyPrint) title() *color.Color {
	if len(pp.Palette.Title) == 0 {
		return color.New(color.Bold, color.Underline)
	}
	return color.New(pp.Palette.Title...)
}

func (pp *PrettyPrint) accent() *color.Color {
	if len(pp.Palette.Accent) == 0 {
		return color.New(color.FgHiWhite)
	}
	return color.New(pp.Palette.Accent...)
}

func (pp *PrettyPrint) faint() *color.Color {
	if len(pp.Palette.Faint) == 0 {
		return color.New(color.Faint)
	}
	return color.New(pp.Palette.Faint...)
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	_, _ = pp.title().Println(title)
}

// Toast prints the one-line acknowledgement for a mutation.
func (pp *PrettyPrint) Toast(msg string) {
	_, _ = pp.accent().Printf("» %s\n", msg)
}

// Info prints a low-emphasis status line.
func (pp *PrettyPrint) Info(msg string) {
	_, _ = pp.faint().Println(msg)
}

// Card is one category tile: today's count plus the lifetime total.
type Card struct {
	Name     string
	ID       string
	Count    int
	Lifetime int
}

func (pp *PrettyPrint) Cards(cards ...Card) {
	if len(cards) == 0 {
		_, _ = pp.faint().Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.AddRow("", "TODAY", "ALL TIME", "ID")
	for _, c := range cards {
		table.AddRow(c.Name, c.Count, c.Lifetime, c.ID)
	}
	fmt.Println(table)
	pp.NewLine()
}

// KPI is one label/value pair on the dashboard.
type KPI struct {
	Label string
	Value string
}

func (pp *PrettyPrint) KPIs(kpis ...KPI) {
	table := uitable.New()
	for _, k := range kpis {
		table.AddRow(k.Label, pp.accent().Sprint(k.Value))
	}
	fmt.Println(table)
	pp.NewLine()
}

// Note prints the manager's note.
func (pp *PrettyPrint) Note(note string) {
	_, _ = pp.faint().Print("Manager's note: ")
	_, _ = pp.accent().Println(note)
	pp.NewLine()
}

// Trend prints the day-over-day movement.
func (pp *PrettyPrint) Trend(delta int, percent float64) {
	arrow := "▲"
	if delta < 0 {
		arrow = "▼"
	}
	_, _ = pp.accent().Printf("%s %+d", arrow, delta)
	_, _ = pp.faint().Printf(" (%.1f%%) vs yesterday\n", percent)
	pp.NewLine()
}

// BreakdownRow is one category's share of all recorded events.
type BreakdownRow struct {
	Name    string
	Count   int
	Percent float64
}

const breakdownWidth = 20

func (pp *PrettyPrint) Breakdown(rows ...BreakdownRow) {
	table := uitable.New()
	for _, r := range rows {
		filled := int(r.Percent / 100 * breakdownWidth)
		if filled > breakdownWidth {
			filled = breakdownWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", breakdownWidth-filled)
		table.AddRow(r.Name, r.Count, fmt.Sprintf("%5.1f%%", r.Percent), pp.accent().Sprint(bar))
	}
	fmt.Println(table)
	pp.NewLine()
}

// Histogram renders the 24-bucket hourly distribution as a vertical-ish
// bar per hour.
func (pp *PrettyPrint) Histogram(buckets [24]int) {
	max := 1
	for _, n := range buckets {
		if n > max {
			max = n
		}
	}

	for hour, n := range buckets {
		bar := strings.Repeat("█", n*breakdownWidth/max)
		if n > 0 && bar == "" {
			bar = "▏"
		}
		_, _ = pp.faint().Printf("%2d:00 ", hour)
		if n == 0 {
			fmt.Println("")
			continue
		}
		_, _ = pp.accent().Printf("%s %d\n", bar, n)
	}
	pp.NewLine()
}

// EventRow is one line of the event log table.
type EventRow struct {
	When     string
	Age      string
	Category string
	Phrase   string
}

func (pp *PrettyPrint) Events(rows ...EventRow) {
	if len(rows) == 0 {
		_, _ = pp.faint().Print(" no events recorded yet\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("WHEN", "AGE", "CATEGORY", "PHRASE")
	for _, r := range rows {
		table.AddRow(r.When, r.Age, r.Category, r.Phrase)
	}
	fmt.Println(table)
	pp.NewLine()
}

// TodoRow is one todo on the board.
type TodoRow struct {
	ID     string
	Text   string
	Status string
	Age    string
}

// Todos renders the kanban board grouped into status columns.
func (pp *PrettyPrint) Todos(statuses []string, rows ...TodoRow) {
	empty := true
	for _, status := range statuses {
		pp.Title(status)
		table := uitable.New()
		table.MaxColWidth = 60
		found := false
		for _, r := range rows {
			if r.Status == status {
				table.AddRow(shortID(r.ID), r.Text, r.Age)
				found = true
				empty = false
			}
		}
		if !found {
			_, _ = pp.faint().Print(" none\n\n")
			continue
		}
		fmt.Println(table)
		pp.NewLine()
	}
	if !empty {
		pp.Info("ids are abbreviated; any unique prefix works with todo move/rm")
	}
}

// ReminderRow is one reminder line.
type ReminderRow struct {
	Category string
	Time     string
	Enabled  bool
	Last     string
}

func (pp *PrettyPrint) Reminders(rows ...ReminderRow) {
	if len(rows) == 0 {
		_, _ = pp.faint().Print(" no reminders configured\n\n")
		return
	}

	table := uitable.New()
	table.AddRow("CATEGORY", "TIME", "ENABLED", "LAST TRIGGERED")
	for _, r := range rows {
		table.AddRow(r.Category, r.Time, r.Enabled, r.Last)
	}
	fmt.Println(table)
	pp.NewLine()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
