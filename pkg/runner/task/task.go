// Package task provides the runner logic for planner commands.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/printers"
	"github.com/milliesalita/mills-workspace/pkg/views"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

// Add creates a task and prints the planner.
type Add struct {
	Draft   workspace.TaskDraft
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if _, err := n.Service.AddTask(ctx, n.Draft); err != nil {
		return err
	}
	return list(ctx, n.Service, n.ShowID)
}

// List prints the planner split into active and history. With a Window it
// prints only the unfinished tasks due inside that window instead.
type List struct {
	ShowID      bool
	Window      time.Duration
	WindowLabel string
	Service     *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Window <= 0 {
		return list(ctx, n.Service, n.ShowID)
	}

	tasks, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	due := views.DueWithin(tasks, n.Window, time.Now())
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount(fmt.Sprintf("Due within %s", n.WindowLabel), len(due))
	pp.TaskTable(due)
	return nil
}

// Set updates fields on an existing task.
type Set struct {
	ID         string
	Status     workspace.Status
	Priority   workspace.Priority
	Category   workspace.Category
	DueDate    string
	Remarks    string
	SetRemarks bool
	Service    *app.Service
}

func (n *Set) Do(ctx context.Context) error {
	if n.DueDate != "" {
		if _, err := time.Parse(workspace.DateLayout, n.DueDate); err != nil {
			return fmt.Errorf("bad due date %q: want %s", n.DueDate, workspace.DateLayout)
		}
	}
	_, err := n.Service.UpdateTask(ctx, n.ID, func(t *workspace.Task) {
		if n.Status != "" {
			t.Status = n.Status
		}
		if n.Priority != "" {
			t.Priority = n.Priority
		}
		if n.Category != "" {
			t.Category = n.Category
		}
		if n.DueDate != "" {
			t.DueDate = n.DueDate
		}
		if n.SetRemarks {
			t.Remarks = n.Remarks
		}
	})
	if err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// Done marks a task finished.
type Done struct {
	ID      string
	Service *app.Service
}

func (n *Done) Do(ctx context.Context) error {
	if _, err := n.Service.UpdateTask(ctx, n.ID, func(t *workspace.Task) {
		t.Status = workspace.StatusFinished
	}); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// Restore moves a finished task back into the active planner.
type Restore struct {
	ID      string
	Service *app.Service
}

func (n *Restore) Do(ctx context.Context) error {
	if _, err := n.Service.RestoreTask(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// Delete removes a task.
type Delete struct {
	ID      string
	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if err := n.Service.DeleteTask(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// Clear wipes the finished-task history.
type Clear struct {
	Service *app.Service
}

func (n *Clear) Do(ctx context.Context) error {
	removed, err := n.Service.ClearHistory(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("cleared %d finished task(s)\n\n", removed)
	return list(ctx, n.Service, false)
}

func list(ctx context.Context, s *app.Service, showID bool) error {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	pp.Tasks(tasks)
	return nil
}
