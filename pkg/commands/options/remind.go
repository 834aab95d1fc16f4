package options

import (
	"github.com/spf13/cobra"
)

// RemindOptions
type RemindOptions struct {
	Disabled bool
}

func AddRemindArgs(cmd *cobra.Command, o *RemindOptions) {
	cmd.Flags().BoolVar(&o.Disabled, "disabled", false,
		"Create the reminder switched off.")
}
