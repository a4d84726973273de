package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

func sampleTasks() workspace.Tasks {
	return workspace.Tasks{
		{
			Title:    "Thesis chapter",
			Category: workspace.CategoryAcademics,
			Priority: workspace.PriorityUrgent,
			Status:   workspace.StatusBegan,
			DueDate:  "2026-03-14",
		},
		{
			Title:    "Band rehearsal",
			Category: workspace.CategoryBanda,
			Priority: workspace.PriorityLow,
			Status:   workspace.StatusPending,
			DueDate:  "2026-03-20",
		},
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleTasks())

	for _, want := range []string{
		"- [Urgent] Thesis chapter (Academics) - Due: 2026-03-14, Status: Began",
		"- [Low] Band rehearsal (Banda) - Due: 2026-03-20, Status: Pending",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptEmpty(t *testing.T) {
	if prompt := BuildPrompt(nil); !strings.Contains(prompt, "(no tasks yet)") {
		t.Errorf("empty planner prompt: %s", prompt)
	}
}

func TestInsightUsesGenerator(t *testing.T) {
	c := &Client{
		Generator: GeneratorFunc(func(_ context.Context, model, prompt string) (string, error) {
			if model != DefaultModel {
				t.Errorf("model = %q", model)
			}
			if !strings.Contains(prompt, "Thesis chapter") {
				t.Error("prompt missing task")
			}
			return "  You're on track.  ", nil
		}),
	}
	if got := c.Insight(context.Background(), sampleTasks()); got != "You're on track." {
		t.Errorf("insight = %q", got)
	}
}

func TestInsightFallsBack(t *testing.T) {
	failing := &Client{
		Generator: GeneratorFunc(func(context.Context, string, string) (string, error) {
			return "", errors.New("quota exceeded")
		}),
	}
	if got := failing.Insight(context.Background(), sampleTasks()); got != Fallback {
		t.Errorf("error case = %q", got)
	}

	empty := &Client{
		Generator: GeneratorFunc(func(context.Context, string, string) (string, error) {
			return "   ", nil
		}),
	}
	if got := empty.Insight(context.Background(), sampleTasks()); got != Fallback {
		t.Errorf("empty case = %q", got)
	}

	var nilClient *Client
	if got := nilClient.Insight(context.Background(), nil); got != Fallback {
		t.Errorf("nil client = %q", got)
	}
}
