package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quirk/pkg/commands/options"
	"tableflip.dev/quirk/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "show the event log",
		Example: `
quirk log
quirk log --search coffee --desc
quirk log --since 7d --sort category
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := lo.GetSince()
			if err != nil {
				return err
			}
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := log.Log{
				Search:  lo.Search,
				SortBy:  lo.SortBy,
				Desc:    lo.Desc,
				Since:   since,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddLogArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
