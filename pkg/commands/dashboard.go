package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quirk/pkg/runner/dashboard"
)

func addDashboard(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "stats"},
		Short:   "show today's activity, trends, and the hourly histogram",
		Example: `
quirk dashboard
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := dashboard.Dashboard{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
