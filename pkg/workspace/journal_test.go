package workspace

import (
	"testing"
	"time"
)

func TestJournalSaveUpsert(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	first := NewJournalEntry("", "Morning pages", "Slow start today.", now)
	if first.Date != "2026-03-01" {
		t.Fatalf("expected today fallback, got %q", first.Date)
	}

	es, err := JournalEntries{}.Save(first)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	second := NewJournalEntry("2026-02-28", "Yesterday", "Catch up.", now)
	es, err = es.Save(second)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(es) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(es))
	}
	if es[0].ID != second.ID {
		t.Fatal("expected newest entry prepended")
	}

	// Saving with an existing id edits in place.
	first.Content = "Better after coffee."
	es, err = es.Save(first)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(es) != 2 {
		t.Fatalf("expected edit in place, got %d entries", len(es))
	}
	got, ok := es.Find(first.ID)
	if !ok || got.Content != "Better after coffee." {
		t.Fatalf("edit lost: %+v", got)
	}
}

func TestJournalSaveRequiresTitleAndContent(t *testing.T) {
	now := time.Now()
	blank := NewJournalEntry("", "", "body", now)
	if _, err := (JournalEntries{}).Save(blank); err == nil {
		t.Fatal("expected error for blank title")
	}
	blank = NewJournalEntry("", "title", "   ", now)
	if _, err := (JournalEntries{}).Save(blank); err == nil {
		t.Fatal("expected error for blank content")
	}
}

func TestJournalSorted(t *testing.T) {
	es := JournalEntries{
		{ID: "a", Date: "2026-01-01"},
		{ID: "b", Date: "2026-02-01"},
		{ID: "c", Date: "2026-01-15"},
	}
	sorted := es.Sorted()
	if sorted[0].ID != "b" || sorted[1].ID != "c" || sorted[2].ID != "a" {
		t.Fatalf("unexpected order: %v", sorted)
	}
}
