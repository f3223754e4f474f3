package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/session"
)

// WatchCmd adopts a cook started elsewhere and prints every prediction
// change until interrupted
type WatchCmd struct {
	SessionID string `arg:"" help:"Session ID of the cook"`
}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	l, err := acquireLock()
	if err != nil {
		return err
	}
	defer releaseLock(l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Container.CookService.AttachSession(ctx, w.SessionID); err != nil {
		return err
	}

	updates, unsubscribe := cli.Container.Controller.Subscribe()
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)
	cli.startBackground(gctx, g)
	g.Go(func() error {
		followUpdates(gctx, os.Stdout, updates, time.Now)
		return nil
	})

	fmt.Printf("Watching cook %s every %s (ctrl+c to stop)\n", w.SessionID, cli.settings.GetPollInterval())
	return g.Wait()
}

// followUpdates prints a line whenever the printed summary of the state
// changes. It returns when ctx is done or the feed closes.
func followUpdates(ctx context.Context, out io.Writer, updates <-chan session.State, now func() time.Time) {
	last := ""
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-updates:
			if !ok {
				return
			}
			line := watchLine(s)
			if line == "" || line == last {
				continue
			}
			last = line
			fmt.Fprintf(out, "%s  %s\n", now().Format("15:04:05"), line)
		}
	}
}

// watchLine summarizes s on one line. States without a prediction print nothing.
func watchLine(s session.State) string {
	if s.Error != "" {
		return "error: " + s.Error
	}
	if s.Report != nil {
		return fmt.Sprintf("finished after %s", domain.FormatMinutes(s.Report.TotalCookMinutes))
	}
	if s.Prediction == nil {
		return ""
	}

	p := s.Prediction
	line := fmt.Sprintf("ready in %s (%s to %s), confidence %s, phase %s",
		domain.FormatMinutes(p.P50Minutes),
		domain.FormatMinutes(p.P10Minutes),
		domain.FormatMinutes(p.P90Minutes),
		p.Confidence.Label(),
		p.CurrentState.Label())
	if notice, ok := session.StallNotice(s); ok {
		line += ", " + notice.Title
	}
	if session.SuggestWrap(s) {
		line += ", consider wrapping"
	}
	return line
}
