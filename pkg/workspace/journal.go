package workspace

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// NewJournalEntry mints an entry dated today when date is blank.
func NewJournalEntry(date, title, content string, now time.Time) JournalEntry {
	if strings.TrimSpace(date) == "" {
		date = now.Format(DateLayout)
	}
	return JournalEntry{
		ID:        NewID(),
		Date:      date,
		Title:     title,
		Content:   content,
		Timestamp: Timestamp{Time: now},
	}
}

// JournalEntries is the journal collection.
type JournalEntries []JournalEntry

// Save upserts an entry. Title and content are required to persist; an entry
// whose id already exists is replaced in place, otherwise it is prepended.
func (es JournalEntries) Save(e JournalEntry) (JournalEntries, error) {
	if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Content) == "" {
		return es, errors.New("workspace: journal entries need a title and content")
	}
	out := append(JournalEntries(nil), es...)
	for i := range out {
		if out[i].ID == e.ID {
			out[i] = e
			return out, nil
		}
	}
	withNew := make(JournalEntries, 0, len(out)+1)
	withNew = append(withNew, e)
	return append(withNew, out...), nil
}

// Delete removes the entry with the given id.
func (es JournalEntries) Delete(id string) JournalEntries {
	out := make(JournalEntries, 0, len(es))
	for _, e := range es {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the entry with the given id.
func (es JournalEntries) Find(id string) (JournalEntry, bool) {
	for _, e := range es {
		if e.ID == id {
			return e, true
		}
	}
	return JournalEntry{}, false
}

// Sorted returns the entries ordered by date, newest first.
func (es JournalEntries) Sorted() JournalEntries {
	out := append(JournalEntries(nil), es...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].Timestamp.After(out[j].Timestamp.Time)
		}
		return out[i].Date > out[j].Date
	})
	return out
}
