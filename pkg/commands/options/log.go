// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/quirk/pkg/timeutil"
)

// LogOptions
type LogOptions struct {
	Search      string
	SortBy      string
	Desc        bool
	SinceString string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Filter events by category, phrase, or timestamp.")
	cmd.Flags().StringVar(&o.SortBy, "sort", "timestamp",
		"Sort column. One of 'timestamp' or 'category'.")
	cmd.Flags().BoolVar(&o.Desc, "desc", false,
		"Sort in descending order.")
	cmd.Flags().StringVar(&o.SinceString, "since", "",
		`Only show events within a window, example: --since="48h" or --since="7d".`)
}

func (o *LogOptions) GetSince() (time.Duration, error) {
	if o.SinceString == "" {
		return 0, nil
	}
	return timeutil.ParseWindow(o.SinceString)
}
