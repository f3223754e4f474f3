package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/pitmaster/internal/config"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/server"
)

// ServeCmd starts the SSH server. Every client shares one cook.
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file of allowed clients (default ~/.ssh/authorized_keys)"`
	Host           string `help:"Host to bind to (overrides settings.json)"`
	Port           int    `help:"Port to listen on (overrides settings.json)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	l, err := acquireLock()
	if err != nil {
		return err
	}
	defer releaseLock(l)

	addr := s.addr(cli.settings)
	srv, err := server.NewServer(server.Config{
		Addr:               addr,
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		HostKeyPath:        config.GetHostKeyPath(),
	}, server.Deps{
		Actions: cli.Container.CookService,
		Presets: cli.Container.PresetService,
		Source:  cli.Container.Controller,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	cli.startBackground(gctx, g)
	g.Go(func() error {
		return srv.Serve(gctx)
	})

	logging.Logger.Info("Starting pitmaster SSH server", "address", addr)
	fmt.Printf("SSH server listening on %s\n", addr)
	return g.Wait()
}

// addr applies the flags over the configured SSH address
func (s *ServeCmd) addr(settings *config.Settings) string {
	host, port, err := net.SplitHostPort(settings.GetSSHAddr())
	if err != nil {
		host, port = config.DefaultSSHHost, strconv.Itoa(config.DefaultSSHPort)
	}
	if s.Host != "" {
		host = s.Host
	}
	if s.Port != 0 {
		port = strconv.Itoa(s.Port)
	}
	return net.JoinHostPort(host, port)
}
