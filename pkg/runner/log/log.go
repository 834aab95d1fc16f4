// Package log renders the searchable event log.
package log

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/printers"
	"tableflip.dev/quirk/pkg/state"
	"tableflip.dev/quirk/pkg/timeutil"
)

const layoutLocal = "2006-01-02 15:04:05"

// Log filters, sorts, and prints the event log. Search matches the
// category id, display name, phrase, or formatted timestamp,
// case-insensitively. SortBy is "timestamp" or "category".
type Log struct {
	Search  string
	SortBy  string
	Desc    bool
	Since   time.Duration
	Service *app.Service
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("log: no hydrated state")
	}

	now := n.Service.Now()
	events := n.filtered(now)

	switch n.SortBy {
	case "", "timestamp":
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Timestamp.Before(events[j].Timestamp.Time)
		})
	case "category":
		sort.SliceStable(events, func(i, j int) bool {
			return n.Service.DisplayName(events[i].CategoryID) < n.Service.DisplayName(events[j].CategoryID)
		})
	default:
		return fmt.Errorf("log: unknown sort column %q", n.SortBy)
	}
	if n.Desc {
		for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
			events[i], events[j] = events[j], events[i]
		}
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}
	pp.NewLine()
	switch {
	case n.Search != "":
		pp.Title(fmt.Sprintf("Event Log — %d matching %q", len(events), n.Search))
	default:
		pp.Title(fmt.Sprintf("Event Log — %d events", len(events)))
	}

	rows := make([]printers.EventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, printers.EventRow{
			When:     e.Timestamp.Local().Format(layoutLocal),
			Age:      timeutil.Ago(now, e.Timestamp.Time),
			Category: n.Service.DisplayName(e.CategoryID),
			Phrase:   e.Phrase,
		})
	}
	pp.Events(rows...)

	return nil
}

func (n *Log) filtered(now time.Time) []*state.Event {
	query := strings.ToLower(strings.TrimSpace(n.Search))
	out := make([]*state.Event, 0, len(n.Service.State.Events))
	for _, e := range n.Service.State.Events {
		if n.Since > 0 && e.Timestamp.Before(now.Add(-n.Since)) {
			continue
		}
		if query != "" && !n.matches(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (n *Log) matches(e *state.Event, query string) bool {
	return strings.Contains(strings.ToLower(e.CategoryID), query) ||
		strings.Contains(strings.ToLower(n.Service.DisplayName(e.CategoryID)), query) ||
		strings.Contains(strings.ToLower(e.Phrase), query) ||
		strings.Contains(strings.ToLower(e.Timestamp.Local().Format(layoutLocal)), query)
}
