package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"strconv"

	"github.com/peterbourgon/diskv/v3"

	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

// Storage keys, one per collection plus the scheduler markers. Values are
// whole-collection JSON arrays; every mutation rewrites the full value.
const (
	keyTasks      = "tasks"
	keyNotes      = "notes"
	keyJournal    = "journal"
	keyLinkGroups = "link_groups"
	keyLinks      = "links"
	keyClassCuts  = "class_cuts"
	keyAccounts   = "calendar_accounts"

	keyLastAlertDate        = "last_alert_date"
	keyNotificationsEnabled = "notifications_enabled"
)

// Persistence defines the persistence contract for workspace collections.
type Persistence interface {
	Tasks(ctx context.Context) (workspace.Tasks, error)
	SaveTasks(tasks workspace.Tasks) error

	Notes(ctx context.Context) (workspace.QuickNotes, error)
	SaveNotes(notes workspace.QuickNotes) error

	Journal(ctx context.Context) (workspace.JournalEntries, error)
	SaveJournal(entries workspace.JournalEntries) error

	LinkGroups(ctx context.Context) (workspace.LinkGroups, error)
	SaveLinkGroups(groups workspace.LinkGroups) error

	Links(ctx context.Context) (workspace.Links, error)
	SaveLinks(links workspace.Links) error

	ClassCuts(ctx context.Context) (workspace.ClassCuts, error)
	SaveClassCuts(cuts workspace.ClassCuts) error

	Accounts(ctx context.Context) (workspace.CalendarAccounts, error)
	SaveAccounts(accounts workspace.CalendarAccounts) error

	LastAlertDate() (string, error)
	SetLastAlertDate(date string) error

	NotificationsEnabled() (bool, error)
	SetNotificationsEnabled(enabled bool) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// flatTransform keeps every key as a single file directly under the base path.
func flatTransform(string) []string {
	return []string{}
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// load decodes the value under key into v. A missing key leaves v at its
// zero value, which is how collections start empty on first run.
func (p *persistence) load(key string, v interface{}) error {
	data, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (p *persistence) save(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) Tasks(_ context.Context) (workspace.Tasks, error) {
	tasks := workspace.Tasks{}
	if err := p.load(keyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (p *persistence) SaveTasks(tasks workspace.Tasks) error {
	return p.save(keyTasks, tasks)
}

func (p *persistence) Notes(_ context.Context) (workspace.QuickNotes, error) {
	notes := workspace.QuickNotes{}
	if err := p.load(keyNotes, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (p *persistence) SaveNotes(notes workspace.QuickNotes) error {
	return p.save(keyNotes, notes)
}

func (p *persistence) Journal(_ context.Context) (workspace.JournalEntries, error) {
	entries := workspace.JournalEntries{}
	if err := p.load(keyJournal, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (p *persistence) SaveJournal(entries workspace.JournalEntries) error {
	return p.save(keyJournal, entries)
}

func (p *persistence) LinkGroups(_ context.Context) (workspace.LinkGroups, error) {
	groups := workspace.LinkGroups{}
	if err := p.load(keyLinkGroups, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (p *persistence) SaveLinkGroups(groups workspace.LinkGroups) error {
	return p.save(keyLinkGroups, groups)
}

func (p *persistence) Links(_ context.Context) (workspace.Links, error) {
	links := workspace.Links{}
	if err := p.load(keyLinks, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (p *persistence) SaveLinks(links workspace.Links) error {
	return p.save(keyLinks, links)
}

func (p *persistence) ClassCuts(_ context.Context) (workspace.ClassCuts, error) {
	cuts := workspace.ClassCuts{}
	if err := p.load(keyClassCuts, &cuts); err != nil {
		return nil, err
	}
	return cuts, nil
}

func (p *persistence) SaveClassCuts(cuts workspace.ClassCuts) error {
	return p.save(keyClassCuts, cuts)
}

// Accounts loads the calendar accounts, seeding the default Primary Account
// on first run so the collection is never empty.
func (p *persistence) Accounts(_ context.Context) (workspace.CalendarAccounts, error) {
	accounts := workspace.CalendarAccounts{}
	if err := p.load(keyAccounts, &accounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		accounts = workspace.DefaultAccounts()
		if err := p.save(keyAccounts, accounts); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

func (p *persistence) SaveAccounts(accounts workspace.CalendarAccounts) error {
	if len(accounts) == 0 {
		return errors.New("store: refusing to persist an empty account list")
	}
	return p.save(keyAccounts, accounts)
}

func (p *persistence) LastAlertDate() (string, error) {
	data, err := p.d.Read(keyLastAlertDate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (p *persistence) SetLastAlertDate(date string) error {
	return p.d.Write(keyLastAlertDate, []byte(date))
}

func (p *persistence) NotificationsEnabled() (bool, error) {
	data, err := p.d.Read(keyNotificationsEnabled)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	enabled, err := strconv.ParseBool(string(data))
	if err != nil {
		return false, nil
	}
	return enabled, nil
}

func (p *persistence) SetNotificationsEnabled(enabled bool) error {
	return p.d.Write(keyNotificationsEnabled, []byte(strconv.FormatBool(enabled)))
}
