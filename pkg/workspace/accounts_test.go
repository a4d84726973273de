package workspace

import (
	"errors"
	"testing"
)

func activeCount(as CalendarAccounts) int {
	n := 0
	for _, a := range as {
		if a.Active {
			n++
		}
	}
	return n
}

func TestDefaultAccountsSeed(t *testing.T) {
	as := DefaultAccounts()
	if len(as) != 1 {
		t.Fatalf("expected one seeded account, got %d", len(as))
	}
	seed := as[0]
	if seed.ID != "default" || seed.Email != "Primary Account" || seed.CalendarID != "primary" {
		t.Fatalf("unexpected seed: %+v", seed)
	}
	if seed.AccountIndex != 0 || !seed.Active {
		t.Fatalf("unexpected seed flags: %+v", seed)
	}
}

func TestAccountsSingleActiveInvariant(t *testing.T) {
	as := DefaultAccounts()

	work, err := NewCalendarAccount("Work", "work@group.calendar.google.com", 1)
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	school, err := NewCalendarAccount("School", "", 2)
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if school.CalendarID != "primary" {
		t.Fatalf("expected primary fallback, got %q", school.CalendarID)
	}

	as = as.Add(work).Add(school)
	if activeCount(as) != 1 {
		t.Fatalf("expected one active after adds, got %d", activeCount(as))
	}

	as = as.Switch(work.ID)
	if activeCount(as) != 1 {
		t.Fatalf("expected one active after switch, got %d", activeCount(as))
	}
	if as.Active().ID != work.ID {
		t.Fatalf("expected %s active, got %s", work.ID, as.Active().ID)
	}

	// Deleting the active account reassigns to the first remaining member.
	as, err = as.Delete(work.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if activeCount(as) != 1 {
		t.Fatalf("expected one active after delete, got %d", activeCount(as))
	}
	if as.Active().ID != as[0].ID {
		t.Fatalf("expected first remaining active, got %s", as.Active().ID)
	}
}

func TestAccountsDeleteLastRefused(t *testing.T) {
	as := DefaultAccounts()
	got, err := as.Delete("default")
	if !errors.Is(err, ErrLastAccount) {
		t.Fatalf("expected ErrLastAccount, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected collection untouched, got %d members", len(got))
	}
}

func TestAccountsSwitchUnknownIDIsNoop(t *testing.T) {
	as := DefaultAccounts()
	got := as.Switch("nope")
	if !got[0].Active {
		t.Fatal("expected seed account to stay active")
	}
}

func TestNewCalendarAccountRequiresLabel(t *testing.T) {
	if _, err := NewCalendarAccount("  ", "primary", 0); err == nil {
		t.Fatal("expected error for blank label")
	}
}
