// Package export writes the event log to a file or stdout.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/export"
	"tableflip.dev/quirk/pkg/printers"
)

// Export serializes the events as JSON or CSV.
type Export struct {
	Format  string // "json" or "csv"
	Output  string // empty means stdout
	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("export: no hydrated state")
	}

	w := os.Stdout
	if n.Output != "" {
		f, err := os.Create(n.Output)
		if err != nil {
			return fmt.Errorf("export: create %s: %w", n.Output, err)
		}
		defer f.Close()
		w = f
	}

	events := n.Service.State.Events
	switch n.Format {
	case "", "json":
		if err := export.JSON(w, events); err != nil {
			return err
		}
	case "csv":
		if err := export.CSV(w, events, n.Service.DisplayName); err != nil {
			return err
		}
	default:
		return fmt.Errorf("export: unknown format %q, want json or csv", n.Format)
	}

	if n.Output != "" {
		pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}
		pp.Toast(fmt.Sprintf("%d events written to %s", len(events), n.Output))
	}
	return nil
}
