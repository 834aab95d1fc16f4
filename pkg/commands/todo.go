package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/quirk/pkg/runner/todo"
	"tableflip.dev/quirk/pkg/state"
)

func addTodo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "manage the kanban todo board",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := todo.List{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	add := &cobra.Command{
		Use:   "add <text>",
		Short: "add a todo to the board",
		Example: `
quirk todo add "water the plants"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires todo text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := todo.Add{
				Text:    strings.Join(args, " "),
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	move := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "move a todo to another column",
		Example: `
quirk todo move 1a2b3c4d in-progress
quirk todo move 1a2b done
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a todo id and a status")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			statuses := make([]string, 0, 3)
			for _, st := range state.TodoStatuses() {
				statuses = append(statuses, string(st))
			}
			return statuses, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := todo.Move{
				ID:      strings.TrimSpace(args[0]),
				Status:  strings.TrimSpace(args[1]),
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	rm := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "delete a todo",
		Example: `
quirk todo rm 1a2b3c4d
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a todo id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := todo.Remove{
				ID:      strings.TrimSpace(args[0]),
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "board"},
		Short:   "show the board grouped by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := todo.List{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.AddCommand(add, move, rm, list)
	topLevel.AddCommand(cmd)
}
