// Package insight produces a short motivational note about the current
// planner, backed by the Gemini API with a canned fallback when the model
// is unreachable.
package insight

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/milliesalita/mills-workspace/pkg/workspace"
)

const (
	// DefaultModel is the Gemini model queried for insights.
	DefaultModel = "gemini-2.0-flash"

	// Fallback is returned whenever the model cannot be reached or the
	// response comes back empty.
	Fallback = "Keep pushing forward! You're doing great with your planning."

	// APIKeyEnv names the environment variable holding the Gemini key.
	APIKeyEnv = "GEMINI_API_KEY"
)

// Generator produces text for a prompt. It exists so tests can stand in for
// the live model.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, model, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, model, prompt string) (string, error) {
	return f(ctx, model, prompt)
}

// Client asks a Generator for planner insights.
type Client struct {
	Generator Generator
	Model     string
}

// NewClient builds a Client on the live Gemini API. The key falls back to
// the GEMINI_API_KEY environment variable when empty.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("insight: no API key, set %s", APIKeyEnv)
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("insight: %w", err)
	}
	return &Client{Generator: geminiGenerator{client: gc}, Model: DefaultModel}, nil
}

// Insight asks the model for a one-or-two sentence note about the given
// tasks. Any failure degrades to the canned fallback, never an error.
func (c *Client) Insight(ctx context.Context, tasks workspace.Tasks) string {
	if c == nil || c.Generator == nil {
		return Fallback
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	text, err := c.Generator.Generate(ctx, model, BuildPrompt(tasks))
	if err != nil {
		return Fallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Fallback
	}
	return text
}

// BuildPrompt renders the planner into the prompt sent to the model.
func BuildPrompt(tasks workspace.Tasks) string {
	var b strings.Builder
	b.WriteString("You are a friendly productivity coach. Here is my current task list:\n")
	if len(tasks) == 0 {
		b.WriteString("(no tasks yet)\n")
	}
	for _, t := range tasks {
		fmt.Fprintf(&b, "- [%s] %s (%s) - Due: %s, Status: %s\n",
			t.Priority, t.Title, t.Category, t.DueDate, t.Status)
	}
	b.WriteString("In one or two sentences, give me an encouraging, practical insight about my workload.")
	return b.String()
}

type geminiGenerator struct {
	client *genai.Client
}

func (g geminiGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
