package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/milliesalita/mills-workspace/pkg/commands/options"
	"github.com/milliesalita/mills-workspace/pkg/runner/journal"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Keep a daily journal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addJournalWrite(cmd)
	addJournalList(cmd)
	addJournalDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addJournalWrite(parent *cobra.Command) {
	jo := &options.JournalOptions{}
	io := &options.IDOptions{}
	content := ""

	cmd := &cobra.Command{
		Use:   "write <content>",
		Short: "Write a journal entry. Pass --id to rewrite an existing one.",
		Example: `
mills journal write -t "Defense day" survived the panel questions
mills journal write --id 171dff69 -t "Defense day" better second draft
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires entry content")
			}
			content = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := journal.Save{
				Entry: workspace.JournalEntry{
					ID:      io.ID,
					Date:    jo.Date,
					Title:   jo.Title,
					Content: content,
				},
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addJournalList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List journal entries, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := journal.List{ShowID: io.ShowID, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addJournalDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a journal entry.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := journal.Delete{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
