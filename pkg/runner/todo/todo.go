// Package todo manages the kanban todo board.
package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/printers"
	"tableflip.dev/quirk/pkg/state"
	"tableflip.dev/quirk/pkg/timeutil"
)

// Add creates a todo in the "todo" column.
type Add struct {
	Text    string
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("todo: no hydrated state")
	}

	t, err := n.Service.AddTodo(ctx, n.Text)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}
	pp.Toast(fmt.Sprintf("todo %s added", shortID(t.ID)))
	return nil
}

// Move shifts a todo to another column.
type Move struct {
	ID      string
	Status  string
	Service *app.Service
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("todo: no hydrated state")
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}

	id, err := resolve(n.Service.State, n.ID)
	if err != nil {
		return err
	}
	if id == "" {
		pp.Info(fmt.Sprintf("no todo matching %q", n.ID))
		return nil
	}
	if err := n.Service.UpdateTodoStatus(ctx, id, n.Status); err != nil {
		return err
	}
	pp.Toast(fmt.Sprintf("todo %s moved to %s", shortID(id), n.Status))
	return nil
}

// Remove deletes a todo.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("todo: no hydrated state")
	}

	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(n.Service.State.Theme)}

	id, err := resolve(n.Service.State, n.ID)
	if err != nil {
		return err
	}
	if id == "" || !n.Service.DeleteTodo(ctx, id) {
		pp.Info(fmt.Sprintf("no todo matching %q", n.ID))
		return nil
	}
	pp.Toast(fmt.Sprintf("todo %s deleted", shortID(id)))
	return nil
}

// List renders the board grouped by status.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.State == nil {
		return errors.New("todo: no hydrated state")
	}

	s := n.Service.State
	now := n.Service.Now()
	pp := printers.PrettyPrint{Palette: n.Service.Catalog.PaletteFor(s.Theme)}
	pp.NewLine()

	statuses := make([]string, 0, 3)
	for _, st := range state.TodoStatuses() {
		statuses = append(statuses, string(st))
	}

	rows := make([]printers.TodoRow, 0, len(s.Todos))
	for _, t := range s.Todos {
		rows = append(rows, printers.TodoRow{
			ID:     t.ID,
			Text:   t.Text,
			Status: string(t.Status),
			Age:    timeutil.Ago(now, t.CreatedAt.Time),
		})
	}
	pp.Todos(statuses, rows...)

	return nil
}

// resolve expands a todo id prefix to the full id. Returns empty when
// nothing matches and an error when the prefix is ambiguous.
func resolve(s *state.State, prefix string) (string, error) {
	if s.Todo(prefix) != nil {
		return prefix, nil
	}
	match := ""
	for _, t := range s.Todos {
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("todo: id prefix %q is ambiguous", prefix)
			}
			match = t.ID
		}
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
