package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/milliesalita/mills-workspace/pkg/commands/options"
	"github.com/milliesalita/mills-workspace/pkg/runner/cuts"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

func addCuts(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cuts",
		Short: "Track class cuts against each class's limit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCutsAdd(cmd)
	addCutsList(cmd)
	addCutsCut(cmd)
	addCutsUncut(cmd)
	addCutsDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addCutsAdd(parent *cobra.Command) {
	maxCuts := workspace.DefaultMaxCuts
	className := ""

	cmd := &cobra.Command{
		Use:   "add <class>",
		Short: "Start tracking cuts for a class.",
		Example: `
mills cuts add CS 210 --max 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a class name")
			}
			className = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := cuts.Add{ClassName: className, MaxCuts: maxCuts, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().IntVar(&maxCuts, "max", workspace.DefaultMaxCuts, "Allowed cuts for the class.")
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCutsList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every tracked class.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := cuts.List{ShowID: io.ShowID, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCutsCut(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cut <id>",
		Short: "Record a cut for a class.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := cuts.Adjust{ID: args[0], Delta: 1, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCutsUncut(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "uncut <id>",
		Short: "Take back a recorded cut. The count never drops below zero.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := cuts.Adjust{ID: args[0], Delta: -1, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCutsDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a class.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := cuts.Delete{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
