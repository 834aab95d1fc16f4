// Package commands wires the quirk CLI.
package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/quirk/pkg/app"
	"tableflip.dev/quirk/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "quirk",
		Short: base.Wrap80("Count your quirks: track events, todos, and reminders from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTrack(topLevel)
	addUndo(topLevel)
	addCategory(topLevel)
	addDashboard(topLevel)
	addLog(topLevel)
	addExport(topLevel)
	addTodo(topLevel)
	addRemind(topLevel)
	addTheme(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newService loads persistence and hydrates the application state.
func newService(ctx context.Context) (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	svc := app.New(p)
	if err := svc.Hydrate(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func categoryCompletions(toComplete string) []string {
	svc, err := newService(context.Background())
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(svc.State.Categories))
	for _, c := range svc.State.Categories {
		if strings.HasPrefix(c.ID, toComplete) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
