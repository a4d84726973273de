// Package cuts provides the runner logic for class-cut tracking.
package cuts

import (
	"context"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/printers"
)

// Add starts tracking cuts for a class.
type Add struct {
	ClassName string
	MaxCuts   int
	Service   *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if _, err := n.Service.AddClassCut(ctx, n.ClassName, n.MaxCuts); err != nil {
		return err
	}
	return list(ctx, n.Service, false)
}

// Adjust moves a class tally up or down. The count never drops below zero.
type Adjust struct {
	ID      string
	Delta   int
	Service *app.Service
}

func (n *Adjust) Do(ctx context.Context) error {
	if _, err := n.Service.AdjustCut(ctx, n.ID, n.Delta); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// Delete stops tracking a class.
type Delete struct {
	ID      string
	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if err := n.Service.DeleteClassCut(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// List prints every tracked class.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	return list(ctx, n.Service, n.ShowID)
}

func list(ctx context.Context, s *app.Service, showID bool) error {
	cuts, err := s.ClassCuts(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	pp.Cuts(cuts)
	return nil
}
