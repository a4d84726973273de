package views

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

// DefaultSyncDetails fills the event description when a task has no remarks.
const DefaultSyncDetails = "Sync from Millie's Workspace"

// SyncURL builds the Google Calendar event-template deep link for a task,
// routed to the given account. The task becomes a same-day all-day event.
func SyncURL(task workspace.Task, account workspace.CalendarAccount) string {
	day := strings.ReplaceAll(task.DueDate, "-", "")
	details := task.Remarks
	if details == "" {
		details = DefaultSyncDetails
	}
	return fmt.Sprintf(
		"https://calendar.google.com/calendar/u/%d/render?action=TEMPLATE&text=%s&dates=%s/%s&details=%s&src=%s",
		account.AccountIndex,
		url.QueryEscape(task.Title),
		day, day,
		url.QueryEscape(details),
		url.QueryEscape(account.CalendarID),
	)
}

// EmbedURL builds the read-only embed link for the account's calendar.
func EmbedURL(account workspace.CalendarAccount) string {
	return fmt.Sprintf(
		"https://calendar.google.com/calendar/u/%d/embed?src=%s&ctz=UTC",
		account.AccountIndex,
		url.QueryEscape(account.CalendarID),
	)
}
