package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	themerunner "tableflip.dev/quirk/pkg/runner/theme"
	"tableflip.dev/quirk/pkg/theme"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "view and switch themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := themerunner.List{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	set := &cobra.Command{
		Use:   "set <theme-id>",
		Short: "make a theme active",
		Example: `
quirk theme set neon-nexus
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a theme id")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			ids := make([]string, 0, 4)
			for _, id := range theme.NewCatalog().IDs() {
				if strings.HasPrefix(id, toComplete) {
					ids = append(ids, id)
				}
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := themerunner.Set{
				ThemeID: strings.TrimSpace(args[0]),
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list the available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := themerunner.List{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.AddCommand(set, list)
	topLevel.AddCommand(cmd)
}
