// Package track records one occurrence against a category.
package track

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/printers"
	"tableflip.dev/quirk/pkg/timeutil"
)

// Track increments a category and reprints its month of activity.
type Track struct {
	CategoryID string
	Service    *app.Service
}

func (n *Track) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("track: no hydrated state")
	}

	phrase := n.Service.Increment(ctx, n.CategoryID)

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}
	pp.NewLine()
	pp.Toast(phrase)
	pp.NewLine()

	c := n.Service.State.Category(n.CategoryID)
	pp.Title(fmt.Sprintf("%s — %d today", n.Service.DisplayName(n.CategoryID), c.Count))

	now := n.Service.Now()
	counts := make([]int, printers.DaysIn(now))
	for _, e := range n.Service.State.Events {
		if e.CategoryID == n.CategoryID && timeutil.SameMonth(e.Timestamp.Time, now) {
			counts[e.Timestamp.Local().Day()-1]++
		}
	}
	pp.Tracking(now, counts)

	return nil
}
