package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Config holds the listen address and key locations of the SSH server
type Config struct {
	Addr               string
	AuthorizedKeysPath string
	HostKeyPath        string
}

// Deps are shared by every SSH client: they all drive the same cook
type Deps struct {
	Actions ui.Actions
	Presets ui.PresetLister
	Source  ui.StateSource
}

// Server exposes the cook screen over SSH
type Server struct {
	baseCtx    context.Context
	cfg        Config
	deps       Deps
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance. The host key is generated on
// first start.
func NewServer(cfg Config, deps Deps) (*Server, error) {
	if cfg.AuthorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.AuthorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create host key directory: %w", err)
	}

	s := &Server{
		baseCtx: context.Background(),
		cfg:     cfg,
		deps:    deps,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(cfg.Addr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Serve accepts SSH clients until ctx is cancelled, then shuts down gracefully.
// Calls made on behalf of clients use ctx, so they outlive a dropped client.
func (s *Server) Serve(ctx context.Context) error {
	s.baseCtx = ctx

	logging.Logger.Info("Starting SSH server", "address", s.cfg.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server: %w", err)
		}
	case <-shutdownCtx.Done():
		logging.Logger.Warn("SSH listener did not stop in time")
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
