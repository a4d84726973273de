package workspace

import (
	"errors"
	"strings"
)

// ErrLastAccount is returned when a delete would empty the account list.
var ErrLastAccount = errors.New("workspace: cannot delete the last calendar account")

// DefaultAccounts seeds the collection so the never-empty and single-active
// invariants hold from first run.
func DefaultAccounts() CalendarAccounts {
	return CalendarAccounts{{
		ID:           "default",
		Email:        "Primary Account",
		CalendarID:   "primary",
		AccountIndex: 0,
		Active:       true,
	}}
}

// NewCalendarAccount mints an inactive account. Email (the display label) is
// required; a blank calendar id falls back to "primary".
func NewCalendarAccount(email, calendarID string, accountIndex int) (CalendarAccount, error) {
	if strings.TrimSpace(email) == "" {
		return CalendarAccount{}, errors.New("workspace: account label required")
	}
	if strings.TrimSpace(calendarID) == "" {
		calendarID = "primary"
	}
	if accountIndex < 0 {
		accountIndex = 0
	}
	return CalendarAccount{
		ID:           NewID(),
		Email:        email,
		CalendarID:   calendarID,
		AccountIndex: accountIndex,
		Active:       false,
	}, nil
}

// CalendarAccounts holds the connected calendar accounts. Exactly one member
// is active at all times and the collection is never empty; both invariants
// are enforced here rather than by caller discipline.
type CalendarAccounts []CalendarAccount

// Add appends the account. The newcomer only becomes active when the
// collection was (unexpectedly) empty.
func (as CalendarAccounts) Add(a CalendarAccount) CalendarAccounts {
	if len(as) == 0 {
		a.Active = true
		return CalendarAccounts{a}
	}
	a.Active = false
	out := make(CalendarAccounts, 0, len(as)+1)
	out = append(out, as...)
	return append(out, a)
}

// Switch activates exactly the target account and deactivates all others.
// Unknown ids leave the collection unchanged.
func (as CalendarAccounts) Switch(id string) CalendarAccounts {
	if _, ok := as.Find(id); !ok {
		return as
	}
	out := append(CalendarAccounts(nil), as...)
	for i := range out {
		out[i].Active = out[i].ID == id
	}
	return out
}

// Delete removes the account with the given id. Deleting the last member is
// refused; when the active account goes, the first remaining one takes over.
func (as CalendarAccounts) Delete(id string) (CalendarAccounts, error) {
	if len(as) <= 1 {
		return as, ErrLastAccount
	}
	wasActive := false
	out := make(CalendarAccounts, 0, len(as))
	for _, a := range as {
		if a.ID == id {
			wasActive = a.Active
			continue
		}
		out = append(out, a)
	}
	if len(out) == len(as) {
		return as, errors.New("workspace: account not found")
	}
	if wasActive {
		out[0].Active = true
	}
	return out, nil
}

// Active returns the single active account, falling back to the first member
// if the flag was lost.
func (as CalendarAccounts) Active() CalendarAccount {
	for _, a := range as {
		if a.Active {
			return a
		}
	}
	if len(as) > 0 {
		return as[0]
	}
	return CalendarAccount{}
}

// Find returns the account with the given id.
func (as CalendarAccounts) Find(id string) (CalendarAccount, bool) {
	for _, a := range as {
		if a.ID == id {
			return a, true
		}
	}
	return CalendarAccount{}, false
}
