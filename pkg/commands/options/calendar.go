package options

import (
	"github.com/spf13/cobra"
)

// CalendarOptions captures the calendar-account flags.
type CalendarOptions struct {
	CalendarID   string
	AccountIndex int
}

// AddCalendarArgs wires the calendar-account flags on the provided command.
func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.CalendarID, "calendar", "",
		"Google Calendar id. Defaults to 'primary'.")
	cmd.Flags().IntVar(&o.AccountIndex, "index", 0,
		"Google account slot used in calendar.google.com/u/N links.")
}
