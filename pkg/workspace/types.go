// Package workspace defines the domain records for the mills workspace and
// the collection operations over them. Every operation returns a new
// collection value; callers persist the result.
package workspace

import (
	"fmt"
	"strings"
)

// Category buckets a task into one of Millie's areas of life.
type Category string

const (
	CategoryAcademics Category = "Academics"
	CategoryDSWS      Category = "DSWS"
	CategoryBanda     Category = "Banda"
	CategoryPersonal  Category = "Personal"
)

// AllCategories returns the list of supported task categories.
func AllCategories() []Category {
	return []Category{
		CategoryAcademics,
		CategoryDSWS,
		CategoryBanda,
		CategoryPersonal,
	}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values. Empty input falls back to Academics.
func ParseCategory(raw string) (Category, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryAcademics, nil
	}
	for _, candidate := range AllCategories() {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return CategoryAcademics, fmt.Errorf("workspace: unknown category %q", raw)
}

// Priority ranks how urgently a task needs attention.
type Priority string

const (
	PriorityUrgent Priority = "Urgent"
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// AllPriorities returns the list of supported priorities.
func AllPriorities() []Priority {
	return []Priority{
		PriorityUrgent,
		PriorityHigh,
		PriorityMedium,
		PriorityLow,
	}
}

// ParsePriority converts a string to a Priority or returns an error for
// unknown values. Empty input falls back to Medium.
func ParsePriority(raw string) (Priority, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PriorityMedium, nil
	}
	for _, candidate := range AllPriorities() {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return PriorityMedium, fmt.Errorf("workspace: unknown priority %q", raw)
}

// Status tracks where a task is in its life. Transitions are unconstrained;
// any status may be set at any time.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusBegan    Status = "Began"
	StatusFinished Status = "Finished"
)

// AllStatuses returns the list of supported statuses.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusBegan,
		StatusFinished,
	}
}

// ParseStatus converts a string to a Status or returns an error for unknown
// values. Empty input falls back to Pending.
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return StatusPending, nil
	}
	for _, candidate := range AllStatuses() {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return StatusPending, fmt.Errorf("workspace: unknown status %q", raw)
}

// Task is a single deliverable on the planner.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Priority  Priority  `json:"priority"`
	Status    Status    `json:"status"`
	DueDate   string    `json:"dueDate"`
	Remarks   string    `json:"remarks"`
	Link      string    `json:"link,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// QuickNote is a short-lived reminder pinned to the header.
type QuickNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp"`
}

// JournalEntry is a dated long-form note.
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp"`
}

// LinkGroup names a folder of vault links.
type LinkGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Link is a bookmarked URL filed under a group.
type Link struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	URL     string `json:"url"`
	GroupID string `json:"groupId"`
}

// ClassCut tracks recorded absences against a per-class allowance.
type ClassCut struct {
	ID        string `json:"id"`
	ClassName string `json:"className"`
	CutCount  int    `json:"cutCount"`
	MaxCuts   int    `json:"maxCuts"`
}

// CalendarAccount routes sync and embed URLs to one Google account.
// AccountIndex maps to the /u/{n}/ path segment.
type CalendarAccount struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	CalendarID   string `json:"calendarId"`
	AccountIndex int    `json:"accountIndex"`
	Active       bool   `json:"isActive"`
}
