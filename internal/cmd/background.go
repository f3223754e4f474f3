package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/pitmaster/internal/config"
	"github.com/renato0307/pitmaster/internal/lock"
	"github.com/renato0307/pitmaster/internal/logging"
)

const metricsShutdownTimeout = 5 * time.Second

// startBackground runs the prediction poller and, when an address is
// configured, the metrics listener. Both stop when ctx is cancelled.
func (c *CLI) startBackground(ctx context.Context, g *errgroup.Group) {
	g.Go(func() error {
		c.Container.Supervisor.Run(ctx)
		return nil
	})

	if addr := c.settings.MetricsAddr; addr != "" {
		g.Go(func() error {
			return serveMetrics(ctx, addr, c.Container.Metrics.Handler())
		})
	}
}

// acquireLock makes sure a single process writes the journal
func acquireLock() (*lock.Lock, error) {
	l, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		return nil, fmt.Errorf("failed to start: %w", err)
	}
	return l, nil
}

func releaseLock(l *lock.Lock) {
	if err := l.Release(); err != nil {
		logging.Logger.Warn("Failed to release lock", "error", err)
	}
}

// serveMetrics exposes /metrics on addr until ctx is cancelled
func serveMetrics(ctx context.Context, addr string, handler http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Serving metrics", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics listener: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown metrics listener: %w", err)
	}
	return nil
}
