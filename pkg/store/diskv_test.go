package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func newTestPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestCollectionsStartEmpty(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	tasks, err := p.Tasks(ctx)
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty tasks, got %d", len(tasks))
	}

	notes, err := p.Notes(ctx)
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty notes, got %d", len(notes))
	}
}

func TestAccountsSeedOnFirstLoad(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	accounts, err := p.Accounts(ctx)
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != "default" || !accounts[0].Active {
		t.Fatalf("expected seeded default account, got %+v", accounts)
	}

	// The seed is persisted, so a second load returns the same record.
	again, err := p.Accounts(ctx)
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	if !reflect.DeepEqual(accounts, again) {
		t.Fatalf("seed not stable across loads: %+v vs %+v", accounts, again)
	}
}

func TestTaskRoundTrip(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	task, err := workspace.NewTask(workspace.TaskDraft{
		Title:    "Orchestra sectionals",
		Category: workspace.CategoryBanda,
		Priority: workspace.PriorityHigh,
		Status:   workspace.StatusBegan,
		DueDate:  "2026-03-05",
		Remarks:  "bring the second folder",
		Link:     "https://drive.google.com/folder",
	}, now)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}

	if err := p.SaveTasks(workspace.Tasks{task}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := p.Tasks(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(workspace.Tasks{task}, got) {
		t.Fatalf("round trip mismatch:\nsaved %+v\ngot   %+v", task, got)
	}
}

func TestAllCollectionsRoundTrip(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	note, _ := workspace.NewQuickNote("buy reeds", now)
	entry := workspace.NewJournalEntry("2026-03-01", "March", "New month.", now)
	group, _ := workspace.NewLinkGroup("School")
	link, _ := workspace.NewLink("Portal", "portal.school.edu", group.ID)
	cut, _ := workspace.NewClassCut("Physics", 3)
	account, _ := workspace.NewCalendarAccount("Work", "work@group.calendar.google.com", 1)
	accounts := workspace.DefaultAccounts().Add(account)

	if err := p.SaveNotes(workspace.QuickNotes{note}); err != nil {
		t.Fatalf("save notes: %v", err)
	}
	if err := p.SaveJournal(workspace.JournalEntries{entry}); err != nil {
		t.Fatalf("save journal: %v", err)
	}
	if err := p.SaveLinkGroups(workspace.LinkGroups{group}); err != nil {
		t.Fatalf("save groups: %v", err)
	}
	if err := p.SaveLinks(workspace.Links{link}); err != nil {
		t.Fatalf("save links: %v", err)
	}
	if err := p.SaveClassCuts(workspace.ClassCuts{cut}); err != nil {
		t.Fatalf("save cuts: %v", err)
	}
	if err := p.SaveAccounts(accounts); err != nil {
		t.Fatalf("save accounts: %v", err)
	}

	if got, _ := p.Notes(ctx); !reflect.DeepEqual(workspace.QuickNotes{note}, got) {
		t.Fatalf("notes mismatch: %+v", got)
	}
	if got, _ := p.Journal(ctx); !reflect.DeepEqual(workspace.JournalEntries{entry}, got) {
		t.Fatalf("journal mismatch: %+v", got)
	}
	if got, _ := p.LinkGroups(ctx); !reflect.DeepEqual(workspace.LinkGroups{group}, got) {
		t.Fatalf("groups mismatch: %+v", got)
	}
	if got, _ := p.Links(ctx); !reflect.DeepEqual(workspace.Links{link}, got) {
		t.Fatalf("links mismatch: %+v", got)
	}
	if got, _ := p.ClassCuts(ctx); !reflect.DeepEqual(workspace.ClassCuts{cut}, got) {
		t.Fatalf("cuts mismatch: %+v", got)
	}
	if got, _ := p.Accounts(ctx); !reflect.DeepEqual(accounts, got) {
		t.Fatalf("accounts mismatch: %+v", got)
	}
}

func TestSaveAccountsRefusesEmpty(t *testing.T) {
	p := newTestPersistence(t)
	if err := p.SaveAccounts(workspace.CalendarAccounts{}); err == nil {
		t.Fatal("expected error persisting an empty account list")
	}
}

func TestScalarMarkers(t *testing.T) {
	p := newTestPersistence(t)

	date, err := p.LastAlertDate()
	if err != nil || date != "" {
		t.Fatalf("expected empty marker, got %q %v", date, err)
	}
	if err := p.SetLastAlertDate("2026-03-01"); err != nil {
		t.Fatalf("set marker: %v", err)
	}
	if date, _ = p.LastAlertDate(); date != "2026-03-01" {
		t.Fatalf("marker = %q", date)
	}

	enabled, err := p.NotificationsEnabled()
	if err != nil || enabled {
		t.Fatalf("expected notifications off by default, got %v %v", enabled, err)
	}
	if err := p.SetNotificationsEnabled(true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if enabled, _ = p.NotificationsEnabled(); !enabled {
		t.Fatal("expected notifications on")
	}
}
