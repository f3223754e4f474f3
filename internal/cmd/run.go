package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/ui"
)

// RunCmd starts the cook screen
type RunCmd struct {
	Dev bool `help:"Enable development mode (shows version info in dialogs)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	l, err := acquireLock()
	if err != nil {
		return err
	}
	defer releaseLock(l)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	cli.startBackground(gctx, g)

	model := ui.NewModel(gctx, cli.Container.CookService, cli.Container.Controller, cli.Container.PresetService, r.Dev)
	defer model.Close()

	logging.Logger.Info("Starting TUI program")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(gctx))

	g.Go(func() error {
		// the screen owns the process lifetime
		defer cancel()
		if _, err := p.Run(); err != nil && gctx.Err() == nil {
			logging.Logger.Error("TUI program error", "error", err)
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logging.Logger.Info("TUI program exited normally")
	return nil
}
