package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mills",
		Short: base.Wrap80("Millie's workspace: planner, journal, link vault and class cuts on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addTask(topLevel)
	addNote(topLevel)
	addJournal(topLevel)
	addVault(topLevel)
	addCuts(topLevel)
	addCalendar(topLevel)
	addInsight(topLevel)
	addNotify(topLevel)
	addVersion(topLevel)
}

func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p}, nil
}
