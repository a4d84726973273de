// Package insight provides the runner logic for the AI insight panel.
package insight

import (
	"context"

	"github.com/milliesalita/mills-workspace/pkg/app"
	"github.com/milliesalita/mills-workspace/pkg/insight"
	"github.com/milliesalita/mills-workspace/pkg/printers"
)

// Insight asks the model about the current planner and prints the answer.
type Insight struct {
	Client  *insight.Client
	Service *app.Service
}

func (n *Insight) Do(ctx context.Context) error {
	tasks, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Insight(n.Client.Insight(ctx, tasks))
	return nil
}
