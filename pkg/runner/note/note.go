// Package note provides the runner logic for quick notes.
package note

import (
	"context"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/printers"
)

// Add captures a quick note.
type Add struct {
	Content string
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if _, err := n.Service.AddNote(ctx, n.Content); err != nil {
		return err
	}
	return list(ctx, n.Service, false)
}

// List prints all quick notes, newest first.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	return list(ctx, n.Service, n.ShowID)
}

// Delete removes a quick note.
type Delete struct {
	ID      string
	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if err := n.Service.DeleteNote(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

func list(ctx context.Context, s *app.Service, showID bool) error {
	notes, err := s.Notes(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	pp.Notes(notes)
	return nil
}
