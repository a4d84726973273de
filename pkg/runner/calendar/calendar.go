// Package calendar provides the runner logic for calendar accounts and
// Google Calendar deep links.
package calendar

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/printers"
	"github.com/milliesalita/mills-workspace/pkg/views"
)

// List prints all configured accounts.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	return list(ctx, n.Service, n.ShowID)
}

// Add registers a new calendar account. It starts inactive.
type Add struct {
	Email        string
	CalendarID   string
	AccountIndex int
	Service      *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if _, err := n.Service.AddAccount(ctx, n.Email, n.CalendarID, n.AccountIndex); err != nil {
		return err
	}
	return list(ctx, n.Service, false)
}

// Switch makes the given account the active one.
type Switch struct {
	ID      string
	Service *app.Service
}

func (n *Switch) Do(ctx context.Context) error {
	if _, err := n.Service.SwitchAccount(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// Delete removes an account. The last account cannot be removed.
type Delete struct {
	ID      string
	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if err := n.Service.DeleteAccount(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Service, true)
}

// Sync prints the event-template link that files a task on the active
// account's calendar.
type Sync struct {
	TaskID  string
	Service *app.Service
}

func (n *Sync) Do(ctx context.Context) error {
	task, err := n.Service.FindTask(ctx, n.TaskID)
	if err != nil {
		return fmt.Errorf("no task with id %q", n.TaskID)
	}
	account, err := n.Service.ActiveAccount(ctx)
	if err != nil {
		return err
	}

	b := color.New(color.Bold)
	u := color.New(color.FgCyan, color.Underline)
	_, _ = b.Printf("%s (%s)\n", task.Title, task.DueDate)
	_, _ = u.Println(views.SyncURL(task, account))
	return nil
}

// Embed prints the read-only embed link for the active account's calendar.
type Embed struct {
	Service *app.Service
}

func (n *Embed) Do(ctx context.Context) error {
	account, err := n.Service.ActiveAccount(ctx)
	if err != nil {
		return err
	}
	u := color.New(color.FgCyan, color.Underline)
	_, _ = u.Println(views.EmbedURL(account))
	return nil
}

func list(ctx context.Context, s *app.Service, showID bool) error {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	pp.Accounts(accounts)
	return nil
}
