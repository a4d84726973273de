package notify

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/milliesalita/mills-workspace/pkg/store"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

type fakePersistence struct {
	mu        sync.Mutex
	tasks     workspace.Tasks
	lastAlert string
	enabled   bool
}

func (f *fakePersistence) Tasks(context.Context) (workspace.Tasks, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append(workspace.Tasks(nil), f.tasks...), nil
}

func (f *fakePersistence) SaveTasks(tasks workspace.Tasks) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(workspace.Tasks(nil), tasks...)
	return nil
}

func (f *fakePersistence) Notes(context.Context) (workspace.QuickNotes, error) { return nil, nil }
func (f *fakePersistence) SaveNotes(workspace.QuickNotes) error               { return nil }
func (f *fakePersistence) Journal(context.Context) (workspace.JournalEntries, error) {
	return nil, nil
}
func (f *fakePersistence) SaveJournal(workspace.JournalEntries) error { return nil }
func (f *fakePersistence) LinkGroups(context.Context) (workspace.LinkGroups, error) {
	return nil, nil
}
func (f *fakePersistence) SaveLinkGroups(workspace.LinkGroups) error     { return nil }
func (f *fakePersistence) Links(context.Context) (workspace.Links, error) { return nil, nil }
func (f *fakePersistence) SaveLinks(workspace.Links) error               { return nil }
func (f *fakePersistence) ClassCuts(context.Context) (workspace.ClassCuts, error) {
	return nil, nil
}
func (f *fakePersistence) SaveClassCuts(workspace.ClassCuts) error { return nil }
func (f *fakePersistence) Accounts(context.Context) (workspace.CalendarAccounts, error) {
	return workspace.DefaultAccounts(), nil
}
func (f *fakePersistence) SaveAccounts(workspace.CalendarAccounts) error { return nil }

func (f *fakePersistence) LastAlertDate() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAlert, nil
}

func (f *fakePersistence) SetLastAlertDate(date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastAlert = date
	return nil
}

func (f *fakePersistence) NotificationsEnabled() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enabled, nil
}

func (f *fakePersistence) SetNotificationsEnabled(enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = enabled
	return nil
}

func (f *fakePersistence) Watch(context.Context) (<-chan store.Event, error) { return nil, nil }

type recordingNotifier struct {
	titles   []string
	messages []string
}

func (r *recordingNotifier) Notify(title, message, icon string) error {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
	return nil
}

func newScheduler(fp *fakePersistence) (*Scheduler, *recordingNotifier) {
	rn := &recordingNotifier{}
	s := &Scheduler{
		Persistence: fp,
		Notifier:    rn,
		Now:         func() time.Time { return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) },
	}
	return s, rn
}

func dueTask(title, date string) workspace.Task {
	return workspace.Task{
		ID:      workspace.NewID(),
		Title:   title,
		Status:  workspace.StatusPending,
		DueDate: date,
	}
}

func TestCheckSendsOncePerDay(t *testing.T) {
	fp := &fakePersistence{enabled: true, tasks: workspace.Tasks{dueTask("Lab report", "2026-03-10")}}
	s, rn := newScheduler(fp)

	sent, err := s.Check(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !sent {
		t.Fatal("expected a notification")
	}
	if rn.titles[0] != Title {
		t.Fatalf("wrong title: %q", rn.titles[0])
	}
	if fp.lastAlert != "2026-03-10" {
		t.Fatalf("alert date not recorded: %q", fp.lastAlert)
	}

	sent, err = s.Check(context.Background())
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if sent || len(rn.titles) != 1 {
		t.Fatal("expected the second check to stay quiet")
	}
}

func TestCheckRespectsDisabled(t *testing.T) {
	fp := &fakePersistence{enabled: false, tasks: workspace.Tasks{dueTask("Lab report", "2026-03-10")}}
	s, rn := newScheduler(fp)

	sent, err := s.Check(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if sent || len(rn.titles) != 0 {
		t.Fatal("expected no notification while disabled")
	}
}

func TestCheckSkipsFinishedAndOtherDays(t *testing.T) {
	fp := &fakePersistence{enabled: true}
	finished := dueTask("Done already", "2026-03-10")
	finished.Status = workspace.StatusFinished
	fp.tasks = workspace.Tasks{finished, dueTask("Tomorrow", "2026-03-11")}
	s, rn := newScheduler(fp)

	sent, err := s.Check(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if sent || len(rn.titles) != 0 {
		t.Fatal("expected nothing due today")
	}
	if fp.lastAlert != "" {
		t.Fatalf("alert date must stay unset, got %q", fp.lastAlert)
	}
}

func TestMessage(t *testing.T) {
	due := workspace.Tasks{
		dueTask("Thesis defense", "2026-03-10"),
		dueTask("Band practice", "2026-03-10"),
		dueTask("Groceries", "2026-03-10"),
	}

	if got := Message(due[:1]); got != "Thesis defense" {
		t.Errorf("one task: %q", got)
	}
	if got := Message(due[:2]); got != "Thesis defense, Band practice" {
		t.Errorf("two tasks: %q", got)
	}
	if got := Message(due); !strings.HasSuffix(got, "and 1 more") {
		t.Errorf("three tasks: %q", got)
	}
}
