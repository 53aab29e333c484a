package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/aretw0/folio/pkg/adapters/http"
	"github.com/aretw0/folio/pkg/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves the catalog, editing sessions, saved documents and exports as a JSON API with a per-session event stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		streams := httpAdapter.NewStreamManager(logger)
		e, err := openEnv(cmd.Context(), streams.Notifier())
		if err != nil {
			return err
		}
		defer e.Close()

		sessionOpts := []session.Option{session.WithLogger(logger)}
		if e.Stores.Locker != nil {
			sessionOpts = append(sessionOpts, session.WithLocker(e.Stores.Locker))
		}
		sessions := session.NewManager(e.Stores.Sessions, sessionOpts...)

		handler := httpAdapter.NewHandler(e.App, sessions,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithStreams(streams),
			httpAdapter.WithGatherer(e.Registry),
			httpAdapter.WithEditCounter(e.Metrics),
		)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting Folio Server", "address", srv.Addr, "store", cfg.Store)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("Folio Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Address to listen on")
}
