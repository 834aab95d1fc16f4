package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quirk/pkg/commands/options"
	exportrunner "tableflip.dev/quirk/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export the event log as JSON or CSV",
		Example: `
quirk export
quirk export --format csv --output events.csv
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			s := exportrunner.Export{
				Format:  eo.Format,
				Output:  eo.Output,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
