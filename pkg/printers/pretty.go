// Package printers renders workspace collections for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/milliesalita/mills-workspace/pkg/views"
	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

type PrettyPrint struct {
	ShowID bool

	// Now anchors days-left math; zero means time.Now.
	Now time.Time
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

// ShortID trims a uuid to its first block. The commands resolve these back to
// the full id as long as the prefix stays unique.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Tasks prints the planner split into active and completed sections.
func (pp *PrettyPrint) Tasks(tasks workspace.Tasks) {
	active, completed := views.Partition(tasks, pp.now())

	pp.TitleWithCount("Deliverables", len(active))
	pp.TaskTable(active)

	pp.TitleWithCount("History", len(completed))
	pp.TaskTable(completed)

	counts := views.StatusCounts(tasks)
	f := color.New(color.Faint)
	_, _ = f.Printf("progress: %d%%  (%d pending, %d in progress, %d finished)\n",
		views.Completion(tasks),
		counts[workspace.StatusPending],
		counts[workspace.StatusBegan],
		counts[workspace.StatusFinished])
}

// TaskTable prints one set of tasks as a table.
func (pp *PrettyPrint) TaskTable(tasks workspace.Tasks) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true
	if pp.ShowID {
		table.AddRow("ID", "TITLE", "CATEGORY", "PRIORITY", "STATUS", "DUE", "LEFT")
	} else {
		table.AddRow("TITLE", "CATEGORY", "PRIORITY", "STATUS", "DUE", "LEFT")
	}

	overdue := color.New(color.FgRed, color.Bold)
	soon := color.New(color.FgYellow)

	for _, t := range tasks {
		left := views.DaysLeft(t.DueDate, pp.now())
		var when string
		switch {
		case t.Status == workspace.StatusFinished:
			when = "done"
		case left < 0:
			when = overdue.Sprintf("%dd overdue", -left)
		case left == 0:
			when = overdue.Sprint("today")
		case left <= 3:
			when = soon.Sprintf("%dd", left)
		default:
			when = fmt.Sprintf("%dd", left)
		}

		if pp.ShowID {
			table.AddRow(ShortID(t.ID), t.Title, string(t.Category), string(t.Priority), string(t.Status), t.DueDate, when)
		} else {
			table.AddRow(t.Title, string(t.Category), string(t.Priority), string(t.Status), t.DueDate, when)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Notes prints quick notes newest first.
func (pp *PrettyPrint) Notes(notes workspace.QuickNotes) {
	pp.TitleWithCount("Quick Notes", len(notes))
	if len(notes) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, n := range notes {
		if pp.ShowID {
			_, _ = y.Printf("%s  ", ShortID(n.ID))
		}
		_, _ = t.Print(n.Content)
		_, _ = f.Printf("  (%s)\n", noteStamp(n.Timestamp, pp.now()))
	}
	_, _ = t.Println("")
}

// noteStamp renders a note's capture time, shortened to the clock for notes
// taken today.
func noteStamp(t workspace.Timestamp, now time.Time) string {
	if t.SameDay(now) {
		return "today " + t.Local().Format("15:04")
	}
	return t.Local().Format("Jan 2 15:04")
}

// Journal prints entries date-descending, content indented under the title.
func (pp *PrettyPrint) Journal(entries workspace.JournalEntries) {
	pp.TitleWithCount("Journal", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}

	b := color.New(color.Bold)
	f := color.New(color.Faint)
	t := color.New()

	for _, e := range entries.Sorted() {
		if pp.ShowID {
			y := color.New(color.FgHiYellow, color.Italic, color.Faint)
			_, _ = y.Printf("%s  ", ShortID(e.ID))
		}
		_, _ = f.Printf("%s  ", e.Date)
		_, _ = b.Println(e.Title)
		for _, line := range strings.Split(e.Content, "\n") {
			_, _ = t.Printf("    %s\n", line)
		}
	}
	_, _ = t.Println("")
}

// Vault prints link groups with their links nested underneath.
func (pp *PrettyPrint) Vault(groups workspace.LinkGroups, links workspace.Links) {
	pp.TitleWithCount("Link Vault", len(groups))
	if len(groups) == 0 {
		pp.none()
		return
	}

	b := color.New(color.Bold)
	t := color.New()
	u := color.New(color.FgCyan, color.Underline)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, g := range groups {
		if pp.ShowID {
			_, _ = y.Printf("%s  ", ShortID(g.ID))
		}
		_, _ = b.Println(g.Name)
		inGroup := links.InGroup(g.ID)
		if len(inGroup) == 0 {
			f := color.New(color.Faint, color.Italic)
			_, _ = f.Println("    none")
			continue
		}
		for _, l := range inGroup {
			if pp.ShowID {
				_, _ = y.Printf("    %s  ", ShortID(l.ID))
			} else {
				_, _ = t.Print("    ")
			}
			_, _ = t.Printf("%s  ", l.Label)
			_, _ = u.Println(l.URL)
		}
	}
	_, _ = t.Println("")
}

// Cuts prints class-cut tallies, flagging classes near or past the limit.
func (pp *PrettyPrint) Cuts(cuts workspace.ClassCuts) {
	pp.TitleWithCount("Class Cuts", len(cuts))
	if len(cuts) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "CLASS", "CUTS", "")
	} else {
		table.AddRow("CLASS", "CUTS", "")
	}

	danger := color.New(color.FgYellow, color.Bold)
	over := color.New(color.FgRed, color.Bold)

	for _, c := range cuts {
		tally := fmt.Sprintf("%d / %d", c.CutCount, c.MaxCuts)
		flag := ""
		switch {
		case views.CutOverLimit(c):
			flag = over.Sprint("over limit")
		case views.CutDanger(c):
			flag = danger.Sprint("careful")
		}
		if pp.ShowID {
			table.AddRow(ShortID(c.ID), c.ClassName, tally, flag)
		} else {
			table.AddRow(c.ClassName, tally, flag)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Accounts prints calendar accounts, marking the active one.
func (pp *PrettyPrint) Accounts(accounts workspace.CalendarAccounts) {
	pp.TitleWithCount("Calendar Accounts", len(accounts))
	if len(accounts) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	if pp.ShowID {
		table.AddRow("", "ID", "EMAIL", "CALENDAR", "SLOT")
	} else {
		table.AddRow("", "EMAIL", "CALENDAR", "SLOT")
	}

	g := color.New(color.FgGreen, color.Bold)

	for _, a := range accounts {
		marker := " "
		if a.Active {
			marker = g.Sprint("*")
		}
		if pp.ShowID {
			table.AddRow(marker, ShortID(a.ID), a.Email, a.CalendarID, fmt.Sprintf("u/%d", a.AccountIndex))
		} else {
			table.AddRow(marker, a.Email, a.CalendarID, fmt.Sprintf("u/%d", a.AccountIndex))
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Insight prints a model-generated note about the planner.
func (pp *PrettyPrint) Insight(text string) {
	pp.Title("Insight")
	i := color.New(color.Italic)
	_, _ = i.Println(text)
}
