package task

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/store"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

// fakePersistence backs the runners with an in-memory task list.
type fakePersistence struct {
	tasks workspace.Tasks
}

func (f *fakePersistence) Tasks(context.Context) (workspace.Tasks, error) {
	return append(workspace.Tasks(nil), f.tasks...), nil
}

func (f *fakePersistence) SaveTasks(tasks workspace.Tasks) error {
	f.tasks = append(workspace.Tasks(nil), tasks...)
	return nil
}

func (f *fakePersistence) Notes(context.Context) (workspace.QuickNotes, error) { return nil, nil }
func (f *fakePersistence) SaveNotes(workspace.QuickNotes) error                { return nil }
func (f *fakePersistence) Journal(context.Context) (workspace.JournalEntries, error) {
	return nil, nil
}
func (f *fakePersistence) SaveJournal(workspace.JournalEntries) error { return nil }
func (f *fakePersistence) LinkGroups(context.Context) (workspace.LinkGroups, error) {
	return nil, nil
}
func (f *fakePersistence) SaveLinkGroups(workspace.LinkGroups) error      { return nil }
func (f *fakePersistence) Links(context.Context) (workspace.Links, error) { return nil, nil }
func (f *fakePersistence) SaveLinks(workspace.Links) error                { return nil }
func (f *fakePersistence) ClassCuts(context.Context) (workspace.ClassCuts, error) {
	return nil, nil
}
func (f *fakePersistence) SaveClassCuts(workspace.ClassCuts) error { return nil }
func (f *fakePersistence) Accounts(context.Context) (workspace.CalendarAccounts, error) {
	return workspace.DefaultAccounts(), nil
}
func (f *fakePersistence) SaveAccounts(workspace.CalendarAccounts) error { return nil }
func (f *fakePersistence) LastAlertDate() (string, error)                { return "", nil }
func (f *fakePersistence) SetLastAlertDate(string) error                 { return nil }
func (f *fakePersistence) NotificationsEnabled() (bool, error)           { return false, nil }
func (f *fakePersistence) SetNotificationsEnabled(bool) error            { return nil }
func (f *fakePersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func newService(tasks workspace.Tasks) (*app.Service, *fakePersistence) {
	fp := &fakePersistence{tasks: tasks}
	svc := &app.Service{
		Persistence: fp,
		Now:         func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) },
	}
	return svc, fp
}

func TestSetRejectsBadDueDate(t *testing.T) {
	svc, fp := newService(workspace.Tasks{
		{ID: "task-1", Title: "Essay", DueDate: "2026-03-12", Status: workspace.StatusPending},
	})

	set := &Set{ID: "task-1", DueDate: "garbage", Service: svc}
	err := set.Do(context.Background())
	if err == nil {
		t.Fatal("expected an error for a malformed due date")
	}
	if !strings.Contains(err.Error(), "garbage") {
		t.Fatalf("error should name the bad value, got %v", err)
	}
	if fp.tasks[0].DueDate != "2026-03-12" {
		t.Fatalf("due date must stay untouched, got %s", fp.tasks[0].DueDate)
	}
}

func TestSetUpdatesDueDate(t *testing.T) {
	svc, fp := newService(workspace.Tasks{
		{ID: "task-1", Title: "Essay", DueDate: "2026-03-12", Status: workspace.StatusPending},
	})

	set := &Set{ID: "task-1", DueDate: "2026-04-10", Service: svc}
	if err := set.Do(context.Background()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if fp.tasks[0].DueDate != "2026-04-10" {
		t.Fatalf("expected due date 2026-04-10, got %s", fp.tasks[0].DueDate)
	}
}
