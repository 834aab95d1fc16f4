package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/quirk/pkg/runner/category"
)

func addCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "manage tracked categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:   "add <id> <display name>",
		Short: "create a category",
		Example: `
quirk category add tea "Cups of Tea"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an id and a display name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := category.Add{
				ID:      args[0],
				Name:    strings.Join(args[1:], " "),
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	rm := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "delete a category, its events, and its reminder",
		Example: `
quirk category rm tea
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
			s := category.Remove{
				ID:      strings.TrimSpace(args[0]),
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list categories with today's and lifetime counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := category.List{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.AddCommand(add, rm, list)
	topLevel.AddCommand(cmd)
}
