package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/milliesalita/mills-workspace/pkg/notify"
	notifyrunner "github.com/milliesalita/mills-workspace/pkg/runner/notify"
	"github.com/milliesalita/mills-workspace/pkg/store"
)

func addNotify(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Control desktop reminders for deliverables due today.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNotifyEnable(cmd)
	addNotifyDisable(cmd)
	addNotifyCheck(cmd)

	topLevel.AddCommand(cmd)
}

func newScheduler() (*notify.Scheduler, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &notify.Scheduler{Persistence: p}, nil
}

func addNotifyEnable(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Turn due-date reminders on.",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduler, err := newScheduler()
			if err != nil {
				return err
			}
			s := notifyrunner.Toggle{Enabled: true, Scheduler: scheduler}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addNotifyDisable(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "disable",
		Short: "Turn due-date reminders off.",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduler, err := newScheduler()
			if err != nil {
				return err
			}
			s := notifyrunner.Toggle{Enabled: false, Scheduler: scheduler}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addNotifyCheck(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Send today's reminder now if one is owed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduler, err := newScheduler()
			if err != nil {
				return err
			}
			s := notifyrunner.Check{Scheduler: scheduler}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
