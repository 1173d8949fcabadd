package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	api "github.com/rogerio-castellano/supermarket-pro/internal/http"
	"github.com/rogerio-castellano/supermarket-pro/internal/http/handlers"
	rl "github.com/rogerio-castellano/supermarket-pro/internal/http/rate_limiter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCommand(a *app) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  "Start the HTTP API over the configured data files until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	serveCmd.Flags().String("addr", "", "Listen address (default :8080)")
	_ = a.v.BindPFlag("http.addr", serveCmd.Flags().Lookup("addr"))

	return serveCmd
}

func (a *app) serve(ctx context.Context) error {
	if err := a.ensureFiles(); err != nil {
		return err
	}

	handlers.SetInventoryService(a.svc)
	handlers.SetLogger(a.log)
	handlers.SetLowStockThreshold(a.cfg.Analytics.LowStockThreshold)

	var limiter *rl.Limiter
	if a.cfg.HTTP.RateLimit.RPS > 0 {
		limiter = rl.New(a.cfg.HTTP.RateLimit.RPS, a.cfg.HTTP.RateLimit.Burst)
	}

	httpServer := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           api.NewRouter(api.RouterOptions{Logger: a.log, Limiter: limiter}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info().
			Str("addr", httpServer.Addr).
			Str("products", a.products.Path()).
			Str("sales", a.sales.Path()).
			Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	// gracefully shutdown HTTP server on context cancellation
	g.Go(func() error {
		<-gCtx.Done()
		a.log.Info().Msg("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if limiter != nil {
		g.Go(func() error {
			limiter.StartVisitorCleanupLoop(gCtx)
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.log.Info().Msg("server stopped")
	return nil
}
