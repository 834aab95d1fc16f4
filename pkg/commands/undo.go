package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/quirk/pkg/runner/undo"
)

func addUndo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "undo <category-id>",
		Short: "remove the most recent event for a category",
		Example: `
quirk undo coffee
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a category id")
			}
			return nil
		},

		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := undo.Undo{
				CategoryID: strings.TrimSpace(args[0]),
				Service:    svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
