// Package theme switches and lists the cosmetic themes.
package theme

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/printers"
)

// Set makes a theme active.
type Set struct {
	ThemeID string
	Service *app.Service
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("theme: no hydrated state")
	}

	if err := n.Service.SetTheme(ctx, n.ThemeID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.ThemeID)}
	pp.Toast(fmt.Sprintf("theme set to %s", n.Service.Catalog.Definition(n.ThemeID).Name))
	return nil
}

// List prints the available themes, marking the active one.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("theme: no hydrated state")
	}

	s := n.Service.State
	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(s.Theme)}
	pp.NewLine()
	pp.Title("Themes")

	for _, id := range n.Service.Catalog.IDs() {
		def := n.Service.Catalog.Definition(id)
		if id == s.Theme {
			pp.Toast(fmt.Sprintf("* %s (%s)", def.Name, id))
		} else {
			pp.Info(fmt.Sprintf("  %s (%s)", def.Name, id))
		}
	}
	pp.NewLine()

	return nil
}
