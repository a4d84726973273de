// Package app provides high-level operations over the workspace collections.
// It wraps persistence and the pure collection transforms so the CLI and the
// dashboard share one code path: load, transform, save.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/milliesalita/mills-workspace/pkg/store"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

// Service coordinates persistence-backed operations for every collection.
type Service struct {
	Persistence store.Persistence

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// resolveID matches id against a collection of ids, accepting a unique id
// prefix as shorthand for the full value so the short ids the tables print
// work on the command line. Exact matches always win; an ambiguous prefix
// resolves to nothing.
func resolveID(id string, n int, idAt func(int) string) (string, bool) {
	if id == "" {
		return "", false
	}
	match := ""
	for i := 0; i < n; i++ {
		full := idAt(i)
		if full == id {
			return full, true
		}
		if strings.HasPrefix(full, id) {
			if match != "" {
				return "", false
			}
			match = full
		}
	}
	return match, match != ""
}

// --- planner ---

// Tasks lists every task.
func (s *Service) Tasks(ctx context.Context) (workspace.Tasks, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Tasks(ctx)
}

// FindTask returns the task with the given id or unique id prefix.
func (s *Service) FindTask(ctx context.Context, id string) (workspace.Task, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return workspace.Task{}, err
	}
	id, ok := resolveID(id, len(tasks), func(i int) string { return tasks[i].ID })
	if !ok {
		return workspace.Task{}, errors.New("app: task not found")
	}
	task, _ := tasks.Find(id)
	return task, nil
}

// AddTask validates the draft, stores the new task and returns it.
func (s *Service) AddTask(ctx context.Context, draft workspace.TaskDraft) (workspace.Task, error) {
	if s.Persistence == nil {
		return workspace.Task{}, errors.New("app: no persistence configured")
	}
	task, err := workspace.NewTask(draft, s.now())
	if err != nil {
		return workspace.Task{}, err
	}
	tasks, err := s.Persistence.Tasks(ctx)
	if err != nil {
		return workspace.Task{}, err
	}
	if err := s.Persistence.SaveTasks(tasks.Add(task)); err != nil {
		return workspace.Task{}, err
	}
	return task, nil
}

// UpdateTask applies mutate to the task with the given id and persists the
// result.
func (s *Service) UpdateTask(ctx context.Context, id string, mutate func(*workspace.Task)) (workspace.Task, error) {
	if s.Persistence == nil {
		return workspace.Task{}, errors.New("app: no persistence configured")
	}
	tasks, err := s.Persistence.Tasks(ctx)
	if err != nil {
		return workspace.Task{}, err
	}
	id, ok := resolveID(id, len(tasks), func(i int) string { return tasks[i].ID })
	if !ok {
		return workspace.Task{}, errors.New("app: task not found")
	}
	next := tasks.Update(id, mutate)
	if err := s.Persistence.SaveTasks(next); err != nil {
		return workspace.Task{}, err
	}
	task, _ := next.Find(id)
	return task, nil
}

// DeleteTask removes a task permanently.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	tasks, err := s.Persistence.Tasks(ctx)
	if err != nil {
		return err
	}
	id, ok := resolveID(id, len(tasks), func(i int) string { return tasks[i].ID })
	if !ok {
		return errors.New("app: task not found")
	}
	return s.Persistence.SaveTasks(tasks.Delete(id))
}

// RestoreTask moves a finished task back to Began.
func (s *Service) RestoreTask(ctx context.Context, id string) (workspace.Task, error) {
	if s.Persistence == nil {
		return workspace.Task{}, errors.New("app: no persistence configured")
	}
	tasks, err := s.Persistence.Tasks(ctx)
	if err != nil {
		return workspace.Task{}, err
	}
	id, ok := resolveID(id, len(tasks), func(i int) string { return tasks[i].ID })
	if !ok {
		return workspace.Task{}, errors.New("app: task not found")
	}
	next := tasks.Restore(id)
	if err := s.Persistence.SaveTasks(next); err != nil {
		return workspace.Task{}, err
	}
	task, _ := next.Find(id)
	return task, nil
}

// ClearHistory drops every finished task and reports how many went.
func (s *Service) ClearHistory(ctx context.Context) (int, error) {
	if s.Persistence == nil {
		return 0, errors.New("app: no persistence configured")
	}
	tasks, err := s.Persistence.Tasks(ctx)
	if err != nil {
		return 0, err
	}
	next := tasks.ClearFinished()
	removed := len(tasks) - len(next)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.Persistence.SaveTasks(next)
}

// --- quick notes ---

// Notes lists quick notes, newest first.
func (s *Service) Notes(ctx context.Context) (workspace.QuickNotes, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Notes(ctx)
}

// AddNote stores a new quick note.
func (s *Service) AddNote(ctx context.Context, content string) (workspace.QuickNote, error) {
	if s.Persistence == nil {
		return workspace.QuickNote{}, errors.New("app: no persistence configured")
	}
	note, err := workspace.NewQuickNote(content, s.now())
	if err != nil {
		return workspace.QuickNote{}, err
	}
	notes, err := s.Persistence.Notes(ctx)
	if err != nil {
		return workspace.QuickNote{}, err
	}
	if err := s.Persistence.SaveNotes(notes.Add(note)); err != nil {
		return workspace.QuickNote{}, err
	}
	return note, nil
}

// DeleteNote removes a quick note.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	notes, err := s.Persistence.Notes(ctx)
	if err != nil {
		return err
	}
	if full, ok := resolveID(id, len(notes), func(i int) string { return notes[i].ID }); ok {
		id = full
	}
	return s.Persistence.SaveNotes(notes.Delete(id))
}

// --- journal ---

// Journal lists journal entries.
func (s *Service) Journal(ctx context.Context) (workspace.JournalEntries, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Journal(ctx)
}

// SaveJournalEntry upserts an entry. A blank id mints a new entry.
func (s *Service) SaveJournalEntry(ctx context.Context, entry workspace.JournalEntry) (workspace.JournalEntry, error) {
	if s.Persistence == nil {
		return workspace.JournalEntry{}, errors.New("app: no persistence configured")
	}
	if entry.ID == "" {
		entry = workspace.NewJournalEntry(entry.Date, entry.Title, entry.Content, s.now())
	}
	entries, err := s.Persistence.Journal(ctx)
	if err != nil {
		return workspace.JournalEntry{}, err
	}
	if full, ok := resolveID(entry.ID, len(entries), func(i int) string { return entries[i].ID }); ok {
		entry.ID = full
	}
	next, err := entries.Save(entry)
	if err != nil {
		return workspace.JournalEntry{}, err
	}
	if err := s.Persistence.SaveJournal(next); err != nil {
		return workspace.JournalEntry{}, err
	}
	return entry, nil
}

// DeleteJournalEntry removes an entry.
func (s *Service) DeleteJournalEntry(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	entries, err := s.Persistence.Journal(ctx)
	if err != nil {
		return err
	}
	if full, ok := resolveID(id, len(entries), func(i int) string { return entries[i].ID }); ok {
		id = full
	}
	return s.Persistence.SaveJournal(entries.Delete(id))
}

// --- vault ---

// Vault lists the link groups and links.
func (s *Service) Vault(ctx context.Context) (workspace.LinkGroups, workspace.Links, error) {
	if s.Persistence == nil {
		return nil, nil, errors.New("app: no persistence configured")
	}
	groups, err := s.Persistence.LinkGroups(ctx)
	if err != nil {
		return nil, nil, err
	}
	links, err := s.Persistence.Links(ctx)
	if err != nil {
		return nil, nil, err
	}
	return groups, links, nil
}

// AddLinkGroup creates and stores a vault group.
func (s *Service) AddLinkGroup(ctx context.Context, name string) (workspace.LinkGroup, error) {
	if s.Persistence == nil {
		return workspace.LinkGroup{}, errors.New("app: no persistence configured")
	}
	group, err := workspace.NewLinkGroup(name)
	if err != nil {
		return workspace.LinkGroup{}, err
	}
	groups, err := s.Persistence.LinkGroups(ctx)
	if err != nil {
		return workspace.LinkGroup{}, err
	}
	if err := s.Persistence.SaveLinkGroups(groups.Add(group)); err != nil {
		return workspace.LinkGroup{}, err
	}
	return group, nil
}

// DeleteLinkGroup removes a group and cascades to every link filed under it.
func (s *Service) DeleteLinkGroup(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	groups, err := s.Persistence.LinkGroups(ctx)
	if err != nil {
		return err
	}
	links, err := s.Persistence.Links(ctx)
	if err != nil {
		return err
	}
	if full, ok := resolveID(id, len(groups), func(i int) string { return groups[i].ID }); ok {
		id = full
	}
	if err := s.Persistence.SaveLinkGroups(groups.Delete(id)); err != nil {
		return err
	}
	return s.Persistence.SaveLinks(links.DropGroup(id))
}

// AddLink creates and stores a link under the given group.
func (s *Service) AddLink(ctx context.Context, label, rawURL, groupID string) (workspace.Link, error) {
	if s.Persistence == nil {
		return workspace.Link{}, errors.New("app: no persistence configured")
	}
	groups, err := s.Persistence.LinkGroups(ctx)
	if err != nil {
		return workspace.Link{}, err
	}
	groupID, ok := resolveID(groupID, len(groups), func(i int) string { return groups[i].ID })
	if !ok {
		return workspace.Link{}, errors.New("app: link group not found")
	}
	link, err := workspace.NewLink(label, rawURL, groupID)
	if err != nil {
		return workspace.Link{}, err
	}
	links, err := s.Persistence.Links(ctx)
	if err != nil {
		return workspace.Link{}, err
	}
	if err := s.Persistence.SaveLinks(links.Add(link)); err != nil {
		return workspace.Link{}, err
	}
	return link, nil
}

// DeleteLink removes a single link.
func (s *Service) DeleteLink(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	links, err := s.Persistence.Links(ctx)
	if err != nil {
		return err
	}
	if full, ok := resolveID(id, len(links), func(i int) string { return links[i].ID }); ok {
		id = full
	}
	return s.Persistence.SaveLinks(links.Delete(id))
}

// --- class cuts ---

// ClassCuts lists the attendance trackers.
func (s *Service) ClassCuts(ctx context.Context) (workspace.ClassCuts, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.ClassCuts(ctx)
}

// AddClassCut creates and stores a class tracker.
func (s *Service) AddClassCut(ctx context.Context, className string, maxCuts int) (workspace.ClassCut, error) {
	if s.Persistence == nil {
		return workspace.ClassCut{}, errors.New("app: no persistence configured")
	}
	cut, err := workspace.NewClassCut(className, maxCuts)
	if err != nil {
		return workspace.ClassCut{}, err
	}
	cuts, err := s.Persistence.ClassCuts(ctx)
	if err != nil {
		return workspace.ClassCut{}, err
	}
	if err := s.Persistence.SaveClassCuts(cuts.Add(cut)); err != nil {
		return workspace.ClassCut{}, err
	}
	return cut, nil
}

// DeleteClassCut removes a class tracker.
func (s *Service) DeleteClassCut(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	cuts, err := s.Persistence.ClassCuts(ctx)
	if err != nil {
		return err
	}
	if full, ok := resolveID(id, len(cuts), func(i int) string { return cuts[i].ID }); ok {
		id = full
	}
	return s.Persistence.SaveClassCuts(cuts.Delete(id))
}

// AdjustCut applies delta to a class's cut count, clamped at zero.
func (s *Service) AdjustCut(ctx context.Context, id string, delta int) (workspace.ClassCut, error) {
	if s.Persistence == nil {
		return workspace.ClassCut{}, errors.New("app: no persistence configured")
	}
	cuts, err := s.Persistence.ClassCuts(ctx)
	if err != nil {
		return workspace.ClassCut{}, err
	}
	id, ok := resolveID(id, len(cuts), func(i int) string { return cuts[i].ID })
	if !ok {
		return workspace.ClassCut{}, errors.New("app: class not found")
	}
	next := cuts.Adjust(id, delta)
	if err := s.Persistence.SaveClassCuts(next); err != nil {
		return workspace.ClassCut{}, err
	}
	cut, _ := next.Find(id)
	return cut, nil
}

// --- calendar accounts ---

// Accounts lists the calendar accounts.
func (s *Service) Accounts(ctx context.Context) (workspace.CalendarAccounts, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Accounts(ctx)
}

// ActiveAccount returns the account sync and embed URLs route to.
func (s *Service) ActiveAccount(ctx context.Context) (workspace.CalendarAccount, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return workspace.CalendarAccount{}, err
	}
	return accounts.Active(), nil
}

// AddAccount connects a new calendar account; it starts inactive.
func (s *Service) AddAccount(ctx context.Context, email, calendarID string, accountIndex int) (workspace.CalendarAccount, error) {
	if s.Persistence == nil {
		return workspace.CalendarAccount{}, errors.New("app: no persistence configured")
	}
	account, err := workspace.NewCalendarAccount(email, calendarID, accountIndex)
	if err != nil {
		return workspace.CalendarAccount{}, err
	}
	accounts, err := s.Persistence.Accounts(ctx)
	if err != nil {
		return workspace.CalendarAccount{}, err
	}
	if err := s.Persistence.SaveAccounts(accounts.Add(account)); err != nil {
		return workspace.CalendarAccount{}, err
	}
	return account, nil
}

// SwitchAccount makes the target the single active account.
func (s *Service) SwitchAccount(ctx context.Context, id string) (workspace.CalendarAccount, error) {
	if s.Persistence == nil {
		return workspace.CalendarAccount{}, errors.New("app: no persistence configured")
	}
	accounts, err := s.Persistence.Accounts(ctx)
	if err != nil {
		return workspace.CalendarAccount{}, err
	}
	id, ok := resolveID(id, len(accounts), func(i int) string { return accounts[i].ID })
	if !ok {
		return workspace.CalendarAccount{}, errors.New("app: account not found")
	}
	next := accounts.Switch(id)
	if err := s.Persistence.SaveAccounts(next); err != nil {
		return workspace.CalendarAccount{}, err
	}
	return next.Active(), nil
}

// DeleteAccount disconnects an account. The last account cannot go.
func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	accounts, err := s.Persistence.Accounts(ctx)
	if err != nil {
		return err
	}
	if full, ok := resolveID(id, len(accounts), func(i int) string { return accounts[i].ID }); ok {
		id = full
	}
	next, err := accounts.Delete(id)
	if err != nil {
		return err
	}
	return s.Persistence.SaveAccounts(next)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
