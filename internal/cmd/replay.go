package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/pitmaster/internal/session"
	"github.com/renato0307/pitmaster/internal/ui"
)

// ReplayCmd folds the journaled events of a cook into a fresh controller and
// prints the state they lead to
type ReplayCmd struct {
	Detailed  bool   `help:"Show the detailed view"`
	SessionID string `arg:"" help:"Session ID of the cook"`
	Width     int    `help:"Width of the charts" default:"80"`
}

// Run executes the replay command
func (r *ReplayCmd) Run(cli *CLI) error {
	state, err := cli.Container.JournalService.ReplayCook(context.Background(), r.SessionID)
	if err != nil {
		return fmt.Errorf("failed to replay cook: %w", err)
	}

	state.DetailedMode = r.Detailed

	fmt.Printf("Cook %s (%s)\n\n", r.SessionID, session.Mode(state))
	fmt.Print(ui.RenderState(state, r.Width))
	return nil
}
