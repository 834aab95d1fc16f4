// Package dashboard renders the analytics overview.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tableflip.dev/quirk/pkg/analytics"
	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/printers"
)

// Dashboard derives and prints KPIs, the daily summary, the category
// breakdown, and the hourly histogram.
type Dashboard struct {
	Service *app.Service
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("dashboard: no hydrated state")
	}

	s := n.Service.State
	now := n.Service.Now()
	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(s.Theme)}

	pp.NewLine()
	pp.Title("Analytics Dashboard")
	pp.NewLine()

	mostActiveID, active := analytics.MostActiveToday(s, now)
	mostActive := "N/A"
	if active {
		mostActive = n.Service.DisplayName(mostActiveID)
	}

	todayEvents := analytics.TodayEvents(s, now)
	pp.KPIs(
		printers.KPI{Label: "Total Events", Value: strconv.Itoa(analytics.TotalEvents(s))},
		printers.KPI{Label: "Events Today", Value: strconv.Itoa(len(todayEvents))},
		printers.KPI{Label: "Most Active Today", Value: mostActive},
		printers.KPI{Label: "Peak Hour", Value: analytics.PeakHour(s)},
	)

	trend := analytics.DayOverDayTrend(s, now)
	pp.Trend(trend.Delta, trend.Percent)

	pp.Title("Today's Summary")
	first, last := analytics.FirstLastToday(s, now)
	firstAt, lastAt := "N/A", "N/A"
	if first != nil {
		firstAt = first.Timestamp.Local().Format("15:04:05")
	}
	if last != nil {
		lastAt = last.Timestamp.Local().Format("15:04:05")
	}
	pp.KPIs(
		printers.KPI{Label: "First Event", Value: firstAt},
		printers.KPI{Label: "Last Event", Value: lastAt},
	)
	pp.Note(n.Service.Catalog.Note(s.Theme, mostActiveID, mostActive))

	pp.Title("Category Breakdown")
	shares := analytics.Breakdown(s)
	rows := make([]printers.BreakdownRow, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, printers.BreakdownRow{
			Name:    n.Service.DisplayName(share.CategoryID),
			Count:   share.Count,
			Percent: share.Percent,
		})
	}
	pp.Breakdown(rows...)

	pp.Title(fmt.Sprintf("Events per Hour — peak %s", analytics.PeakHour(s)))
	pp.Histogram(analytics.EventsPerHour(s))

	return nil
}
