// Package journal provides the runner logic for journal entries.
package journal

import (
	"context"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/printers"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

// Save creates or replaces a journal entry. A blank ID creates.
type Save struct {
	Entry   workspace.JournalEntry
	Service *app.Service
}

func (n *Save) Do(ctx context.Context) error {
	if _, err := n.Service.SaveJournalEntry(ctx, n.Entry); err != nil {
		return err
	}
	return list(ctx, n.Service, false)
}

// List prints all journal entries, newest first.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	return list(ctx, n.Service, n.ShowID)
}

// Delete removes a journal entry.
type Delete struct {
	ID      string
	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if err := n.Service.DeleteJournalEntry(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

func list(ctx context.Context, s *app.Service, showID bool) error {
	entries, err := s.Journal(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	pp.Journal(entries)
	return nil
}
