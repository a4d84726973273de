// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures the planner fields commands accept as flags. Enum
// values are kept as raw strings and parsed by the command.
type TaskOptions struct {
	Category string
	Priority string
	Status   string
	DueDate  string
	Remarks  string
	Link     string
}

// AddTaskArgs wires the planner flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Task category: academics, dsws, banda or personal.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Task priority: urgent, high, medium or low.")
	cmd.Flags().StringVarP(&o.Status, "status", "s", "",
		"Task status: pending, began or finished.")
	cmd.Flags().StringVar(&o.Remarks, "remarks", "",
		"Free-form remarks for the task.")
	cmd.Flags().StringVar(&o.Link, "link", "",
		"A reference URL for the task.")
}

// AddDueArg wires the due-date flag on the provided command.
func AddDueArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.DueDate, "due", "d", "",
		"Due date as YYYY-MM-DD.")
}
