package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/quirk/pkg/commands/options"
	"tableflip.dev/quirk/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "manage per-category reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	ro := &options.RemindOptions{}
	set := &cobra.Command{
		Use:   "set <category-id> <HH:MM>",
		Short: "set a daily reminder for a category",
		Example: `
quirk remind set coffee 09:30
quirk remind set bug 14:00 --disabled
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a category id and a HH:MM time")
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
			s := remind.Set{
				CategoryID: strings.TrimSpace(args[0]),
				Time:       strings.TrimSpace(args[1]),
				Disabled:   ro.Disabled,
				Service:    svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddRemindArgs(set, ro)

	toggle := &cobra.Command{
		Use:   "toggle <category-id>",
		Short: "switch a reminder on or off",
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
			s := remind.Toggle{
				CategoryID: strings.TrimSpace(args[0]),
				Service:    svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	rm := &cobra.Command{
		Use:     "rm <category-id>",
		Aliases: []string{"remove", "delete"},
		Short:   "remove a reminder",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a category id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := remind.Remove{
				CategoryID: strings.TrimSpace(args[0]),
				Service:    svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := remind.List{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	due := &cobra.Command{
		Use:   "due",
		Short: "fire the reminders due this minute",
		Long: `Checks every enabled reminder against the current clock minute and
prints a nudge for each one that is due. Meant to be run from cron:

* * * * * quirk remind due
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := remind.Due{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.AddCommand(set, toggle, rm, list, due)
	topLevel.AddCommand(cmd)
}
