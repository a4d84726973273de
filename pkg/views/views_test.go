package views

import (
	"testing"
	"time"

	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

func TestDaysLeft(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	cases := []struct {
		due  string
		want int
	}{
		{"2026-03-10", 0},
		{"2026-03-11", 1},
		{"2026-03-14", 4},
		{"2026-03-09", -1},
		{"2026-02-28", -10},
		{"", 0},
		{"not-a-date", 0},
	}
	for _, tc := range cases {
		if got := DaysLeft(tc.due, now); got != tc.want {
			t.Fatalf("DaysLeft(%q) = %d, want %d", tc.due, got, tc.want)
		}
	}
}

func TestDaysLeftFlipsSignAtMidnight(t *testing.T) {
	due := "2026-03-10"
	before := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	after := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if got := DaysLeft(due, before); got != 0 {
		t.Fatalf("expected 0 on the due day, got %d", got)
	}
	if got := DaysLeft(due, after); got != -1 {
		t.Fatalf("expected -1 right after midnight, got %d", got)
	}
}

func TestStatusCountsCoverAllTasks(t *testing.T) {
	tasks := workspace.Tasks{
		{Status: workspace.StatusPending},
		{Status: workspace.StatusPending},
		{Status: workspace.StatusBegan},
		{Status: workspace.StatusFinished},
	}
	counts := StatusCounts(tasks)
	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != len(tasks) {
		t.Fatalf("counts sum %d, want %d", sum, len(tasks))
	}
	if counts[workspace.StatusPending] != 2 {
		t.Fatalf("pending = %d, want 2", counts[workspace.StatusPending])
	}
}

func TestProgressSumsToHundred(t *testing.T) {
	tasks := workspace.Tasks{
		{Status: workspace.StatusPending},
		{Status: workspace.StatusBegan},
		{Status: workspace.StatusFinished},
	}
	percent := Progress(tasks)
	sum := 0.0
	for _, p := range percent {
		sum += p
	}
	if sum < 99.9 || sum > 100.1 {
		t.Fatalf("progress sum %f, want ~100", sum)
	}
}

func TestProgressEmptyIsAllZero(t *testing.T) {
	for s, p := range Progress(nil) {
		if p != 0 {
			t.Fatalf("expected 0%% for %s on empty planner, got %f", s, p)
		}
	}
}

func TestCompletion(t *testing.T) {
	tasks := workspace.Tasks{
		{Status: workspace.StatusPending},
		{Status: workspace.StatusFinished},
		{Status: workspace.StatusFinished},
		{Status: workspace.StatusFinished},
	}
	if got := Completion(tasks); got != 75 {
		t.Fatalf("completion = %d, want 75", got)
	}
	if got := Completion(nil); got != 0 {
		t.Fatalf("empty planner completion = %d, want 0", got)
	}
}

func TestDueWithin(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := workspace.Tasks{
		{ID: "today", DueDate: "2026-03-10", Status: workspace.StatusPending},
		{ID: "in-range", DueDate: "2026-03-13", Status: workspace.StatusBegan},
		{ID: "far", DueDate: "2026-04-01", Status: workspace.StatusPending},
		{ID: "overdue", DueDate: "2026-03-01", Status: workspace.StatusPending},
		{ID: "done", DueDate: "2026-03-11", Status: workspace.StatusFinished},
	}

	got := DueWithin(tasks, 7*24*time.Hour, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks in window, got %d", len(got))
	}
	for _, task := range got {
		if task.ID != "today" && task.ID != "in-range" {
			t.Fatalf("unexpected task %s in window", task.ID)
		}
	}
}

func TestPartitionIsDisjointCover(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := workspace.Tasks{
		{ID: "late", DueDate: "2026-03-08", Status: workspace.StatusBegan},
		{ID: "soon", DueDate: "2026-03-11", Status: workspace.StatusPending},
		{ID: "old-done", Status: workspace.StatusFinished, CreatedAt: workspace.Timestamp{Time: now.Add(-48 * time.Hour)}},
		{ID: "new-done", Status: workspace.StatusFinished, CreatedAt: workspace.Timestamp{Time: now.Add(-1 * time.Hour)}},
	}

	active, completed := Partition(tasks, now)
	if len(active)+len(completed) != len(tasks) {
		t.Fatalf("partition dropped tasks: %d + %d != %d", len(active), len(completed), len(tasks))
	}
	seen := map[string]bool{}
	for _, task := range append(append(workspace.Tasks{}, active...), completed...) {
		if seen[task.ID] {
			t.Fatalf("task %s in both partitions", task.ID)
		}
		seen[task.ID] = true
	}

	if active[0].ID != "late" {
		t.Fatalf("expected overdue task first, got %s", active[0].ID)
	}
	if completed[0].ID != "new-done" {
		t.Fatalf("expected newest finished first, got %s", completed[0].ID)
	}
}

func TestCutFlags(t *testing.T) {
	safe := workspace.ClassCut{CutCount: 1, MaxCuts: 3}
	if CutDanger(safe) || CutOverLimit(safe) {
		t.Fatalf("1/3 should be safe")
	}

	warning := workspace.ClassCut{CutCount: 4, MaxCuts: 5}
	if !CutDanger(warning) {
		t.Fatal("4/5 should be danger")
	}
	if CutOverLimit(warning) {
		t.Fatal("4/5 should not be over limit")
	}

	over := workspace.ClassCut{CutCount: 4, MaxCuts: 3}
	if !CutOverLimit(over) || !CutDanger(over) {
		t.Fatal("4/3 should be over limit and danger")
	}
}
