package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/milliesalita/mills-workspace/pkg/insight"
	"github.com/milliesalita/mills-workspace/pkg/notify"
	"github.com/milliesalita/mills-workspace/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	apiKey := ""

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			scheduler := &notify.Scheduler{Persistence: svc.Persistence}
			client, err := insight.NewClient(context.Background(), apiKey)
			if err != nil {
				client = nil
			}
			return ui.Run(svc, scheduler, client)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key. Defaults to $GEMINI_API_KEY.")
	topLevel.AddCommand(cmd)
}
