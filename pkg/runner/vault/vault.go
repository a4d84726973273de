// Package vault provides the runner logic for the link vault.
package vault

import (
	"context"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/printers"
)

// AddGroup creates a link group.
type AddGroup struct {
	Name    string
	Service *app.Service
}

func (n *AddGroup) Do(ctx context.Context) error {
	if _, err := n.Service.AddLinkGroup(ctx, n.Name); err != nil {
		return err
	}
	return list(ctx, n.Service, false)
}

// DeleteGroup removes a group and every link inside it.
type DeleteGroup struct {
	ID      string
	Service *app.Service
}

func (n *DeleteGroup) Do(ctx context.Context) error {
	if err := n.Service.DeleteLinkGroup(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// AddLink files a link under an existing group.
type AddLink struct {
	Label   string
	URL     string
	GroupID string
	Service *app.Service
}

func (n *AddLink) Do(ctx context.Context) error {
	if _, err := n.Service.AddLink(ctx, n.Label, n.URL, n.GroupID); err != nil {
		return err
	}
	return list(ctx, n.Service, false)
}

// DeleteLink removes a single link.
type DeleteLink struct {
	ID      string
	Service *app.Service
}

func (n *DeleteLink) Do(ctx context.Context) error {
	if err := n.Service.DeleteLink(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// List prints the whole vault.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	return list(ctx, n.Service, n.ShowID)
}

func list(ctx context.Context, s *app.Service, showID bool) error {
	groups, links, err := s.Vault(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	pp.Vault(groups, links)
	return nil
}
