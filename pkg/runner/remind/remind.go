// Package remind manages per-category reminders.
package remind

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/printers"
)

// Set upserts the reminder for a category.
type Set struct {
	CategoryID string
	Time       string
	Disabled   bool
	Service    *app.Service
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("remind: no hydrated state")
	}

	if err := n.Service.AddReminder(ctx, n.CategoryID, n.Time, !n.Disabled); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}
	pp.Toast(fmt.Sprintf("reminder for %s set to %s", n.Service.DisplayName(n.CategoryID), n.Time))
	return nil
}

// Toggle flips a reminder on or off.
type Toggle struct {
	CategoryID string
	Service    *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("remind: no hydrated state")
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}

	enabled, ok := n.Service.ToggleReminder(ctx, n.CategoryID)
	if !ok {
		pp.Info(fmt.Sprintf("no reminder for %q", n.CategoryID))
		return nil
	}
	if enabled {
		pp.Toast(fmt.Sprintf("reminder for %s enabled", n.Service.DisplayName(n.CategoryID)))
	} else {
		pp.Toast(fmt.Sprintf("reminder for %s disabled", n.Service.DisplayName(n.CategoryID)))
	}
	return nil
}

// Remove deletes the reminder for a category.
type Remove struct {
	CategoryID string
	Service    *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("remind: no hydrated state")
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}

	if !n.Service.DeleteReminder(ctx, n.CategoryID) {
		pp.Info(fmt.Sprintf("no reminder for %q", n.CategoryID))
		return nil
	}
	pp.Toast(fmt.Sprintf("reminder for %s removed", n.Service.DisplayName(n.CategoryID)))
	return nil
}

// List prints all reminders.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("remind: no hydrated state")
	}

	s := n.Service.State
	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(s.Theme)}
	pp.NewLine()
	pp.Title("Reminders")

	rows := make([]printers.ReminderRow, 0, len(s.Reminders))
	for _, r := range s.Reminders {
		last := "never"
		if r.LastTriggered != nil {
			last = r.LastTriggered.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, printers.ReminderRow{
			Category: n.Service.DisplayName(r.CategoryID),
			Time:     r.Time,
			Enabled:  r.Enabled,
			Last:     last,
		})
	}
	pp.Reminders(rows...)

	return nil
}

// Due fires the reminders due this minute.
type Due struct {
	Service *app.Service
}

func (n *Due) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("remind: no hydrated state")
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}

	due := n.Service.DueReminders(ctx)
	if len(due) == 0 {
		pp.Info("nothing due right now")
		return nil
	}
	for _, r := range due {
		pp.Toast(fmt.Sprintf("⏰ Time to track %s!", n.Service.DisplayName(r.CategoryID)))
	}
	return nil
}
