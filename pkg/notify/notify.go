// Package notify fires a desktop reminder when unfinished tasks are due
// today. At most one reminder goes out per calendar day.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/milliesalita/mills-workspace/pkg/store"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

var errNoPersistence = errors.New("notify: no persistence configured")

const (
	// Title shown on every due-date reminder.
	Title = "Deliverables Due Today!"

	// Icon is passed to the desktop notifier as the reminder badge.
	Icon = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"

	// GraceDelay keeps the dashboard from popping a notification the
	// instant it starts.
	GraceDelay = 3 * time.Second
)

// Notifier delivers a single desktop notification.
type Notifier interface {
	Notify(title, message, icon string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message, icon string) error

func (f NotifierFunc) Notify(title, message, icon string) error {
	return f(title, message, icon)
}

// Desktop returns a Notifier backed by the host notification system.
func Desktop() Notifier {
	return NotifierFunc(beeep.Notify)
}

// Scheduler checks the planner for tasks due today and sends at most one
// reminder per day through the configured Notifier.
type Scheduler struct {
	Persistence store.Persistence
	Notifier    Notifier
	Now         func() time.Time
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Enabled reports whether due-date reminders are switched on.
func (s *Scheduler) Enabled() (bool, error) {
	if s.Persistence == nil {
		return false, errNoPersistence
	}
	return s.Persistence.NotificationsEnabled()
}

// SetEnabled turns due-date reminders on or off.
func (s *Scheduler) SetEnabled(enabled bool) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.SetNotificationsEnabled(enabled)
}

// Check sends the daily reminder if notifications are on, nothing has been
// sent yet today, and at least one unfinished task is due today. It reports
// whether a notification went out.
func (s *Scheduler) Check(ctx context.Context) (bool, error) {
	if s.Persistence == nil {
		return false, errNoPersistence
	}
	enabled, err := s.Persistence.NotificationsEnabled()
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, nil
	}

	today := s.now().Format(workspace.DateLayout)

	last, err := s.Persistence.LastAlertDate()
	if err != nil {
		return false, err
	}
	if last == today {
		return false, nil
	}

	tasks, err := s.Persistence.Tasks(ctx)
	if err != nil {
		return false, err
	}
	due := tasks.DueOn(today)
	if len(due) == 0 {
		return false, nil
	}

	notifier := s.Notifier
	if notifier == nil {
		notifier = Desktop()
	}
	if err := notifier.Notify(Title, Message(due), Icon); err != nil {
		return false, err
	}
	if err := s.Persistence.SetLastAlertDate(today); err != nil {
		return false, err
	}
	return true, nil
}

// Message names up to two due tasks and counts the rest.
func Message(due workspace.Tasks) string {
	switch len(due) {
	case 0:
		return ""
	case 1:
		return due[0].Title
	case 2:
		return fmt.Sprintf("%s, %s", due[0].Title, due[1].Title)
	default:
		return fmt.Sprintf("%s, %s and %d more", due[0].Title, due[1].Title, len(due)-2)
	}
}
