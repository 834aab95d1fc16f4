// Package undo removes the most recent event for a category.
package undo

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/printers"
)

// Undo decrements a category, dropping its newest event.
type Undo struct {
	CategoryID string
	Service    *app.Service
}

func (n *Undo) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("undo: no hydrated state")
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}

	msg, ok := n.Service.Decrement(ctx, n.CategoryID)
	if !ok {
		pp.Info(fmt.Sprintf("nothing to undo for %q", n.CategoryID))
		return nil
	}
	pp.Toast(msg)
	return nil
}
