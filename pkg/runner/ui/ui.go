// Package ui renders the interactive workspace dashboard.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/insight"
	"github.com/milliesalita/mills-workspace/pkg/notify"
	"github.com/milliesalita/mills-workspace/pkg/store"
	"github.com/milliesalita/mills-workspace/pkg/views"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

type tab int

const (
	tabPlanner tab = iota
	tabJournal
	tabVault
	tabCuts
	tabCalendar
	tabInsight
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabPlanner:
		return "Planner"
	case tabJournal:
		return "Journal"
	case tabVault:
		return "Vault"
	case tabCuts:
		return "Cuts"
	case tabCalendar:
		return "Calendar"
	case tabInsight:
		return "Insight"
	}
	return "?"
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	clockStyle     = lipgloss.NewStyle().Faint(true)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Underline(true).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	sectionStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle     = lipgloss.NewStyle().Faint(true)
	dangerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

type tickMsg time.Time

type storeEventMsg store.Event

type notifyDueMsg struct{}

type insightMsg string

type dataMsg struct {
	tasks    workspace.Tasks
	notes    workspace.QuickNotes
	journal  workspace.JournalEntries
	groups   workspace.LinkGroups
	links    workspace.Links
	cuts     workspace.ClassCuts
	accounts workspace.CalendarAccounts
	err      error
}

// Model holds the dashboard state.
type Model struct {
	svc       *app.Service
	scheduler *notify.Scheduler
	insights  *insight.Client
	ctx       context.Context
	events    <-chan store.Event

	active tab
	now    time.Time

	tasks    workspace.Tasks
	notes    workspace.QuickNotes
	journal  workspace.JournalEntries
	groups   workspace.LinkGroups
	links    workspace.Links
	cuts     workspace.ClassCuts
	accounts workspace.CalendarAccounts

	input       textinput.Model
	inputActive bool

	insightText    string
	loadingInsight bool

	status string
	width  int
}

// New builds the dashboard model. The insight client may be nil, in which
// case the panel shows the canned fallback.
func New(svc *app.Service, scheduler *notify.Scheduler, insights *insight.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "quick note"
	ti.CharLimit = 256

	return Model{
		svc:         svc,
		scheduler:   scheduler,
		insights:    insights,
		ctx:         context.Background(),
		now:         time.Now(),
		input:       ti,
		insightText: insight.Fallback,
	}
}

// Run starts the dashboard and blocks until it exits.
func Run(svc *app.Service, scheduler *notify.Scheduler, insights *insight.Client) error {
	m := New(svc, scheduler, insights)
	if events, err := svc.Watch(m.ctx); err == nil {
		m.events = events
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadData(), tickCmd()}
	if m.scheduler != nil {
		cmds = append(cmds, tea.Tick(notify.GraceDelay, func(time.Time) tea.Msg {
			return notifyDueMsg{}
		}))
	}
	if m.events != nil {
		cmds = append(cmds, m.waitForEvent())
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadData() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		var d dataMsg
		if d.tasks, d.err = svc.Tasks(ctx); d.err != nil {
			return d
		}
		if d.notes, d.err = svc.Notes(ctx); d.err != nil {
			return d
		}
		if d.journal, d.err = svc.Journal(ctx); d.err != nil {
			return d
		}
		if d.groups, d.links, d.err = svc.Vault(ctx); d.err != nil {
			return d
		}
		if d.cuts, d.err = svc.ClassCuts(ctx); d.err != nil {
			return d
		}
		d.accounts, d.err = svc.Accounts(ctx)
		return d
	}
}

func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg(e)
	}
}

func (m Model) fetchInsight() tea.Cmd {
	client := m.insights
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		tasks, err := svc.Tasks(ctx)
		if err != nil {
			return insightMsg(insight.Fallback)
		}
		return insightMsg(client.Insight(ctx, tasks))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case dataMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		m.notes = msg.notes
		m.journal = msg.journal
		m.groups = msg.groups
		m.links = msg.links
		m.cuts = msg.cuts
		m.accounts = msg.accounts
		m.status = ""
		return m, nil

	case storeEventMsg:
		return m, tea.Batch(m.loadData(), m.waitForEvent())

	case notifyDueMsg:
		scheduler := m.scheduler
		ctx := m.ctx
		return m, func() tea.Msg {
			_, _ = scheduler.Check(ctx)
			return nil
		}

	case insightMsg:
		m.insightText = string(msg)
		m.loadingInsight = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputActive {
		switch msg.Type {
		case tea.KeyEsc:
			m.inputActive = false
			m.input.Blur()
			m.input.SetValue("")
			return m, nil
		case tea.KeyEnter:
			content := m.input.Value()
			m.inputActive = false
			m.input.Blur()
			m.input.SetValue("")
			// Blank notes are dropped quietly.
			_, _ = m.svc.AddNote(m.ctx, content)
			return m, m.loadData()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "l", "right":
		m.active = (m.active + 1) % tabCount
		if m.active == tabInsight && !m.loadingInsight && m.insights != nil {
			m.loadingInsight = true
			return m, m.fetchInsight()
		}
		return m, nil
	case "shift+tab", "h", "left":
		m.active = (m.active + tabCount - 1) % tabCount
		return m, nil
	case "n":
		m.inputActive = true
		m.input.Focus()
		return m, textinput.Blink
	case "i":
		if m.loadingInsight || m.insights == nil {
			return m, nil
		}
		m.active = tabInsight
		m.loadingInsight = true
		return m, m.fetchInsight()
	case "r":
		return m, m.loadData()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Millie's Workspace"))
	b.WriteString("  ")
	b.WriteString(clockStyle.Render(m.now.Format("Mon Jan 2 15:04:05")))
	b.WriteString("\n\n")

	for t := tabPlanner; t < tabCount; t++ {
		if t == m.active {
			b.WriteString(activeTabStyle.Render(t.String()))
		} else {
			b.WriteString(tabStyle.Render(t.String()))
		}
	}
	b.WriteString("\n\n")

	switch m.active {
	case tabPlanner:
		b.WriteString(m.viewPlanner())
	case tabJournal:
		b.WriteString(m.viewJournal())
	case tabVault:
		b.WriteString(m.viewVault())
	case tabCuts:
		b.WriteString(m.viewCuts())
	case tabCalendar:
		b.WriteString(m.viewCalendar())
	case tabInsight:
		b.WriteString(m.viewInsight())
	}

	if m.inputActive {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(m.status))
	}

	b.WriteString(helpStyle.Render("\ntab: switch  n: quick note  i: insight  r: reload  q: quit"))
	return b.String()
}

func (m Model) viewPlanner() string {
	var b strings.Builder
	active, completed := views.Partition(m.tasks, m.now)

	fmt.Fprintf(&b, "%s %s\n", sectionStyle.Render("Deliverables"),
		faintStyle.Render(fmt.Sprintf("(%d%% done)", views.Completion(m.tasks))))
	if len(active) == 0 {
		b.WriteString(faintStyle.Render("  nothing due\n"))
	}
	for _, t := range active {
		left := views.DaysLeft(t.DueDate, m.now)
		when := fmt.Sprintf("%dd", left)
		switch {
		case left < 0:
			when = dangerStyle.Render(fmt.Sprintf("%dd overdue", -left))
		case left == 0:
			when = dangerStyle.Render("today")
		case left <= 3:
			when = warnStyle.Render(when)
		}
		fmt.Fprintf(&b, "  %-8s %-40s %s\n", t.Priority, t.Title, when)
	}

	fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render("History"))
	if len(completed) == 0 {
		b.WriteString(faintStyle.Render("  empty\n"))
	}
	for _, t := range completed {
		b.WriteString(faintStyle.Render(fmt.Sprintf("  %s (%s)\n", t.Title, t.DueDate)))
	}

	fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render("Quick Notes"))
	if len(m.notes) == 0 {
		b.WriteString(faintStyle.Render("  none\n"))
	}
	for _, n := range m.notes {
		fmt.Fprintf(&b, "  %s\n", n.Content)
	}
	return b.String()
}

func (m Model) viewJournal() string {
	var b strings.Builder
	if len(m.journal) == 0 {
		return faintStyle.Render("no journal entries yet\n")
	}
	for _, e := range m.journal.Sorted() {
		fmt.Fprintf(&b, "%s %s\n", faintStyle.Render(e.Date), sectionStyle.Render(e.Title))
		for _, line := range strings.Split(e.Content, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}
	return b.String()
}

func (m Model) viewVault() string {
	var b strings.Builder
	if len(m.groups) == 0 {
		return faintStyle.Render("no link groups yet\n")
	}
	for _, g := range m.groups {
		b.WriteString(sectionStyle.Render(g.Name))
		b.WriteString("\n")
		inGroup := m.links.InGroup(g.ID)
		if len(inGroup) == 0 {
			b.WriteString(faintStyle.Render("    none\n"))
			continue
		}
		for _, l := range inGroup {
			fmt.Fprintf(&b, "    %s  %s\n", l.Label, faintStyle.Render(l.URL))
		}
	}
	return b.String()
}

func (m Model) viewCuts() string {
	var b strings.Builder
	if len(m.cuts) == 0 {
		return faintStyle.Render("no classes tracked yet\n")
	}
	for _, c := range m.cuts {
		tally := fmt.Sprintf("%d / %d", c.CutCount, c.MaxCuts)
		switch {
		case views.CutOverLimit(c):
			tally = dangerStyle.Render(tally + "  over limit")
		case views.CutDanger(c):
			tally = warnStyle.Render(tally + "  careful")
		}
		fmt.Fprintf(&b, "%-30s %s\n", c.ClassName, tally)
	}
	return b.String()
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	for _, a := range m.accounts {
		marker := "  "
		email := a.Email
		if a.Active {
			marker = activeStyle.Render("* ")
			email = activeStyle.Render(email)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, email, faintStyle.Render(a.CalendarID))
	}
	acc := m.accounts.Active()
	if acc.ID != "" {
		fmt.Fprintf(&b, "\n%s\n%s\n", sectionStyle.Render("Embed"), views.EmbedURL(acc))
	}
	return b.String()
}

func (m Model) viewInsight() string {
	if m.loadingInsight {
		return faintStyle.Render("thinking...\n")
	}
	return m.insightText + "\n"
}
