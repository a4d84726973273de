package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/milliesalita/mills-workspace/pkg/insight"
	insightrunner "github.com/milliesalita/mills-workspace/pkg/runner/insight"
)

func addInsight(topLevel *cobra.Command) {
	apiKey := ""

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Ask the model for a note about the current planner.",
		Example: `
mills insight
GEMINI_API_KEY=... mills insight
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := newService()
			if err != nil {
				return err
			}
			// Without a key the panel degrades to the canned message.
			client, err := insight.NewClient(ctx, apiKey)
			if err != nil {
				client = nil
			}
			s := insightrunner.Insight{Client: client, Service: svc}
			return output.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key. Defaults to $GEMINI_API_KEY.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
