package options

import (
	"github.com/spf13/cobra"
)

// JournalOptions captures the journal-entry flags.
type JournalOptions struct {
	Date  string
	Title string
}

// AddJournalArgs wires the journal flags on the provided command.
func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Entry date as YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Entry title.")
}
