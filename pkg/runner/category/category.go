// Package category manages the category list.
package category

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/quirk/pkg/analytics"
	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/printers"
)

// Add creates a new category.
type Add struct {
	ID      string
	Name    string
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("category: no hydrated state")
	}

	if err := n.Service.AddCategory(ctx, n.ID, n.Name); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}
	pp.Toast(fmt.Sprintf("%s category created", n.Name))
	return nil
}

// Remove deletes a category, its events, and its reminder.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("category: no hydrated state")
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}

	name := n.Service.DisplayName(n.ID)
	if !n.Service.DeleteCategory(ctx, n.ID) {
		pp.Info(fmt.Sprintf("no category %q", n.ID))
		return nil
	}
	pp.Toast(fmt.Sprintf("%s deleted", name))
	return nil
}

// List prints every category with today's and lifetime counts.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("category: no hydrated state")
	}

	s := n.Service.State
	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(s.Theme)}
	pp.NewLine()
	pp.Title("Categories")

	cards := make([]printers.Card, 0, len(s.Categories))
	for _, c := range s.Categories {
		cards = append(cards, printers.Card{
			Name:     n.Service.DisplayName(c.ID),
			ID:       c.ID,
			Count:    c.Count,
			Lifetime: analytics.LifetimeCountFor(s, c.ID),
		})
	}
	pp.Cards(cards...)

	return nil
}
