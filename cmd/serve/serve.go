// Package serve implements the HTTP server command
package serve

import (
	"context"
	"os/signal"
	"syscall"

	"fjacquet/nexus-classifier/cmd/root"

	"github.com/spf13/cobra"
)

var address string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the classification HTTP API",
	Long: `Start the classification HTTP API.

Endpoints:
  GET  /          service information
  GET  /health    liveness and current classification mode
  GET  /docs      endpoint listing
  POST /classify  classify {"text": "..."}

The server stops gracefully on SIGINT or SIGTERM.

Example:
  nexus-classifier serve --addr 127.0.0.1:8000`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&address, "addr", "", "Listen address (defaults to server.host:server.port from configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := root.NewContainer(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close container")
		}
	}()

	addr := address
	if addr == "" {
		addr = root.AppConfig.Address()
	}

	if err := c.NewServer(root.Version).Listen(ctx, addr); err != nil {
		return err
	}

	root.Log.Info("HTTP server stopped")
	return nil
}
