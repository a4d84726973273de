package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/milliesalita/mills-workspace/pkg/commands/options"
	"github.com/milliesalita/mills-workspace/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage Google Calendar accounts and links.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCalendarList(cmd)
	addCalendarAdd(cmd)
	addCalendarSwitch(cmd)
	addCalendarDelete(cmd)
	addCalendarSync(cmd)
	addCalendarEmbed(cmd)

	topLevel.AddCommand(cmd)
}

func addCalendarList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List calendar accounts. The active one is starred.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := calendar.List{ShowID: io.ShowID, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCalendarAdd(parent *cobra.Command) {
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:   "add <email>",
		Short: "Register a calendar account. New accounts start inactive.",
		Example: `
mills calendar add millie@school.edu --calendar school@group.calendar.google.com --index 1
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := calendar.Add{
				Email:        args[0],
				CalendarID:   co.CalendarID,
				AccountIndex: co.AccountIndex,
				Service:      svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCalendarArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCalendarSwitch(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "switch <id>",
		Short: "Make an account the active one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := calendar.Switch{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCalendarDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an account. The last one cannot be removed.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := calendar.Delete{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCalendarSync(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sync <task-id>",
		Short: "Print the Google Calendar link that files a task as an event.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := calendar.Sync{TaskID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCalendarEmbed(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Print the read-only embed link for the active calendar.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := calendar.Embed{Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
