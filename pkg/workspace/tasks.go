package workspace

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TaskDraft carries the fields needed to create a task. Zero enum values fall
// back to their defaults (Academics / Medium / Pending).
type TaskDraft struct {
	Title    string
	Category Category
	Priority Priority
	Status   Status
	DueDate  string
	Remarks  string
	Link     string
}

// NewTask validates a draft and mints a task. Title and DueDate are required.
func NewTask(d TaskDraft, now time.Time) (Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Task{}, errors.New("workspace: task title required")
	}
	due := strings.TrimSpace(d.DueDate)
	if due == "" {
		return Task{}, errors.New("workspace: task due date required")
	}
	if _, err := time.Parse(DateLayout, due); err != nil {
		return Task{}, fmt.Errorf("workspace: bad due date %q: want %s", d.DueDate, DateLayout)
	}
	category := d.Category
	if category == "" {
		category = CategoryAcademics
	}
	priority := d.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	status := d.Status
	if status == "" {
		status = StatusPending
	}
	return Task{
		ID:        NewID(),
		Title:     title,
		Category:  category,
		Priority:  priority,
		Status:    status,
		DueDate:   due,
		Remarks:   d.Remarks,
		Link:      d.Link,
		CreatedAt: Timestamp{Time: now},
	}, nil
}

// Tasks is the planner collection.
type Tasks []Task

// Add appends the task to a copy of the collection.
func (ts Tasks) Add(t Task) Tasks {
	out := make(Tasks, 0, len(ts)+1)
	out = append(out, ts...)
	return append(out, t)
}

// Update applies mutate to the task with the given id in a copy of the
// collection. Unknown ids leave the collection unchanged.
func (ts Tasks) Update(id string, mutate func(*Task)) Tasks {
	out := append(Tasks(nil), ts...)
	for i := range out {
		if out[i].ID == id {
			mutate(&out[i])
			break
		}
	}
	return out
}

// Delete removes the task with the given id.
func (ts Tasks) Delete(id string) Tasks {
	out := make(Tasks, 0, len(ts))
	for _, t := range ts {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Restore moves a finished task back to Began, undoing completion.
func (ts Tasks) Restore(id string) Tasks {
	return ts.Update(id, func(t *Task) {
		if t.Status == StatusFinished {
			t.Status = StatusBegan
		}
	})
}

// ClearFinished drops every finished task, wiping the history view.
func (ts Tasks) ClearFinished() Tasks {
	out := make(Tasks, 0, len(ts))
	for _, t := range ts {
		if t.Status != StatusFinished {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the task with the given id.
func (ts Tasks) Find(id string) (Task, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// DueOn returns unfinished tasks whose due date equals the given calendar
// date string.
func (ts Tasks) DueOn(date string) Tasks {
	out := make(Tasks, 0)
	for _, t := range ts {
		if t.DueDate == date && t.Status != StatusFinished {
			out = append(out, t)
		}
	}
	return out
}
