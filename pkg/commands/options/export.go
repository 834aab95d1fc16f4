package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Format string
	Output string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "json",
		"Export format. One of 'json' or 'csv'.")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Write to a file instead of stdout.")
}
