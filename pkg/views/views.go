// Package views computes presentation values derived from workspace
// collections. Everything here is pure and cheap enough to recompute on
// every render.
package views

import (
	"math"
	"sort"
	"time"

	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

// DaysLeft returns whole days until the due date, measured midnight to
// midnight. Negative values mean overdue by that many days. Empty or
// malformed due dates yield 0.
func DaysLeft(dueDate string, now time.Time) int {
	if dueDate == "" {
		return 0
	}
	due, err := time.ParseInLocation(workspace.DateLayout, dueDate, now.Location())
	if err != nil {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	diff := due.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}

// StatusCounts tallies tasks per status. Every status key is present even
// when zero.
func StatusCounts(tasks workspace.Tasks) map[workspace.Status]int {
	counts := make(map[workspace.Status]int, len(workspace.AllStatuses()))
	for _, s := range workspace.AllStatuses() {
		counts[s] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// Progress returns each status's share of the total as a percentage. The
// denominator is floored at one so an empty planner renders all bars at 0.
func Progress(tasks workspace.Tasks) map[workspace.Status]float64 {
	counts := StatusCounts(tasks)
	total := len(tasks)
	if total < 1 {
		total = 1
	}
	percent := make(map[workspace.Status]float64, len(counts))
	for s, n := range counts {
		percent[s] = float64(n) / float64(total) * 100
	}
	return percent
}

// Completion returns the finished share of the planner as a whole percent.
func Completion(tasks workspace.Tasks) int {
	total := len(tasks)
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(StatusCounts(tasks)[workspace.StatusFinished]) / float64(total) * 100))
}

// DueWithin returns the unfinished tasks due between now and the end of the
// window. Overdue tasks are excluded.
func DueWithin(tasks workspace.Tasks, window time.Duration, now time.Time) workspace.Tasks {
	maxDays := int(window.Hours() / 24)
	out := make(workspace.Tasks, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == workspace.StatusFinished {
			continue
		}
		left := DaysLeft(t.DueDate, now)
		if left >= 0 && left <= maxDays {
			out = append(out, t)
		}
	}
	return out
}

// Partition splits tasks into the active set (unfinished, soonest due first)
// and the completed set (newest created first). The two sets are a disjoint
// cover of the input.
func Partition(tasks workspace.Tasks, now time.Time) (active, completed workspace.Tasks) {
	active = make(workspace.Tasks, 0, len(tasks))
	completed = make(workspace.Tasks, 0)
	for _, t := range tasks {
		if t.Status == workspace.StatusFinished {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return DaysLeft(active[i].DueDate, now) < DaysLeft(active[j].DueDate, now)
	})
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].CreatedAt.After(completed[j].CreatedAt.Time)
	})
	return active, completed
}

// CutRatio is the fraction of the allowance a class has used. A non-positive
// allowance is treated as one so the ratio stays meaningful.
func CutRatio(c workspace.ClassCut) float64 {
	max := c.MaxCuts
	if max <= 0 {
		max = 1
	}
	return float64(c.CutCount) / float64(max)
}

// CutDanger reports whether a class has used 80% or more of its allowance.
func CutDanger(c workspace.ClassCut) bool {
	return CutRatio(c) >= 0.8
}

// CutOverLimit reports whether a class has gone past its allowance.
// Over-limit implies danger.
func CutOverLimit(c workspace.ClassCut) bool {
	return CutRatio(c) > 1
}
