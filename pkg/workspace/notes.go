package workspace

import (
	"errors"
	"strings"
	"time"
)

// NewQuickNote mints a quick note. Content is required.
func NewQuickNote(content string, now time.Time) (QuickNote, error) {
	if strings.TrimSpace(content) == "" {
		return QuickNote{}, errors.New("workspace: note content required")
	}
	return QuickNote{
		ID:        NewID(),
		Content:   content,
		Timestamp: Timestamp{Time: now},
	}, nil
}

// QuickNotes is the reminder collection, newest first.
type QuickNotes []QuickNote

// Add prepends the note so the freshest reminder renders on top.
func (ns QuickNotes) Add(n QuickNote) QuickNotes {
	out := make(QuickNotes, 0, len(ns)+1)
	out = append(out, n)
	return append(out, ns...)
}

// Delete removes the note with the given id.
func (ns QuickNotes) Delete(id string) QuickNotes {
	out := make(QuickNotes, 0, len(ns))
	for _, n := range ns {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}
