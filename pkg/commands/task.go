package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/milliesalita/mills-workspace/pkg/commands/options"
	"github.com/milliesalita/mills-workspace/pkg/runner/task"
	"github.com/milliesalita/mills-workspace/pkg/timeutil"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage planner deliverables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskList(cmd)
	addTaskSet(cmd)
	addTaskDone(cmd)
	addTaskRestore(cmd)
	addTaskDelete(cmd)
	addTaskClear(cmd)

	topLevel.AddCommand(cmd)
}

func taskDraft(to *options.TaskOptions, title string) (workspace.TaskDraft, error) {
	category, err := workspace.ParseCategory(to.Category)
	if err != nil {
		return workspace.TaskDraft{}, err
	}
	priority, err := workspace.ParsePriority(to.Priority)
	if err != nil {
		return workspace.TaskDraft{}, err
	}
	status, err := workspace.ParseStatus(to.Status)
	if err != nil {
		return workspace.TaskDraft{}, err
	}
	return workspace.TaskDraft{
		Title:    title,
		Category: category,
		Priority: priority,
		Status:   status,
		DueDate:  to.DueDate,
		Remarks:  to.Remarks,
		Link:     to.Link,
	}, nil
}

func addTaskAdd(parent *cobra.Command) {
	to := &options.TaskOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a deliverable to the planner.",
		Example: `
mills task add Finish thesis chapter --due 2026-04-02 -p urgent
mills task add Band practice -c banda --due 2026-04-05
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := taskDraft(to, title)
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := task.Add{Draft: draft, Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddDueArg(cmd, to)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addTaskList(parent *cobra.Command) {
	io := &options.IDOptions{}
	dueIn := ""

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deliverables and history.",
		Example: `
mills task list
mills task list --due-in 3d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := task.List{ShowID: io.ShowID}
			if cmd.Flags().Changed("due-in") {
				window, label, err := timeutil.ParseWindow(dueIn)
				if err != nil {
					return output.HandleError(err)
				}
				s.Window = window
				s.WindowLabel = label
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s.Service = svc
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&dueIn, "due-in", "", "Only show tasks due within a window, for example 3d or 1w.")
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addTaskSet(parent *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Update fields on a deliverable.",
		Long:  base.Wrap80("Update fields on a deliverable. The id may be shortened to any unique prefix, like the short ids the --show-id tables print."),
		Example: `
mills task set 171dff69 -s began
mills task set 171dff69 --due 2026-04-10 --remarks "moved by prof"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := workspace.ParseCategory(to.Category)
			if err != nil {
				return output.HandleError(err)
			}
			priority, err := workspace.ParsePriority(to.Priority)
			if err != nil {
				return output.HandleError(err)
			}
			status, err := workspace.ParseStatus(to.Status)
			if err != nil {
				return output.HandleError(err)
			}

			// Only flags the user set should change the task.
			if !cmd.Flags().Changed("category") {
				category = ""
			}
			if !cmd.Flags().Changed("priority") {
				priority = ""
			}
			if !cmd.Flags().Changed("status") {
				status = ""
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			s := task.Set{
				ID:         args[0],
				Category:   category,
				Priority:   priority,
				Status:     status,
				DueDate:    to.DueDate,
				Remarks:    to.Remarks,
				SetRemarks: cmd.Flags().Changed("remarks"),
				Service:    svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddDueArg(cmd, to)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addTaskDone(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a deliverable finished.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := task.Done{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addTaskRestore(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Move a finished deliverable back to in progress.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := task.Restore{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addTaskDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a deliverable.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := task.Delete{ID: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addTaskClear(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear-history",
		Short: "Delete every finished deliverable.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := task.Clear{Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
