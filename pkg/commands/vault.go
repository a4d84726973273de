package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/milliesalita/mills-workspace/pkg/commands/options"
	"github.com/milliesalita/mills-workspace/pkg/runner/vault"
)

func addVault(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Organize links into groups.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addVaultList(cmd)
	addVaultGroup(cmd)
	addVaultAdd(cmd)
	addVaultDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addVaultList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every group and its links.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := vault.List{ShowID: io.ShowID, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addVaultGroup(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage link groups.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	name := ""
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a link group.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a group name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := vault.AddGroup{Name: name, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	base.AddOutputArg(add, output)
	cmd.AddCommand(add)

	del := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a group and every link in it.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := vault.DeleteGroup{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	base.AddOutputArg(del, output)
	cmd.AddCommand(del)

	parent.AddCommand(cmd)
}

func addVaultAdd(parent *cobra.Command) {
	groupID := ""

	cmd := &cobra.Command{
		Use:   "add <label> <url>",
		Short: "File a link under a group. Bare domains get https:// prefixed.",
		Example: `
mills vault add "CS210 syllabus" drive.google.com/syllabus --group 171dff69
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := vault.AddLink{Label: args[0], URL: args[1], GroupID: groupID, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&groupID, "group", "g", "", "The group id to file the link under.")
	_ = cmd.MarkFlagRequired("group")
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addVaultDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a single link.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := vault.DeleteLink{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
