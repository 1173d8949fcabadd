package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/supermarket-pro/internal/cli"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// @title Supermarket API
// @version 1.0
// @description REST API for a supermarket product catalogue, stock levels and sales ledger.
// @host localhost:8080
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
