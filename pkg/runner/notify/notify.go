// Package notify provides the runner logic for due-date reminders.
package notify

import (
	"context"
	"fmt"

	"github.com/milliesalita/mills-workspace/pkg/notify"
)

// Toggle switches due-date reminders on or off.
type Toggle struct {
	Enabled   bool
	Scheduler *notify.Scheduler
}

func (n *Toggle) Do(ctx context.Context) error {
	if err := n.Scheduler.SetEnabled(n.Enabled); err != nil {
		return err
	}
	if n.Enabled {
		fmt.Println("due-date reminders on")
	} else {
		fmt.Println("due-date reminders off")
	}
	return nil
}

// Check runs the daily reminder check once.
type Check struct {
	Scheduler *notify.Scheduler
}

func (n *Check) Do(ctx context.Context) error {
	sent, err := n.Scheduler.Check(ctx)
	if err != nil {
		return err
	}
	if sent {
		fmt.Println("reminder sent")
	} else {
		fmt.Println("nothing to remind")
	}
	return nil
}
