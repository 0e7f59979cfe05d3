package main

import (
	"context"
	"errors"
	"homoglyph/internal/api"
	"homoglyph/internal/config"
	"homoglyph/internal/shortener"
	"homoglyph/internal/worker"
	"homoglyph/pkg/logger"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and, with the shortener enabled, background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			det, gen := newCore(ctx, cfg, mp)
			deps := api.Deps{}
			deps.Detector = det
			deps.Generator = gen

			var stopWorker func(ctx context.Context)
			if cfg.Shortener.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				sh := shortener.New(strg, shortener.NewOptions(cfg))
				deps.Shortener = sh

				riverClient, err := worker.Start(ctx, strg.Pool, sh, cfg.Worker.Concurrency)
				if err != nil {
					logger.Fatal(ctx, "could not start workers", zap.Error(err))
				}
				stopWorker = func(ctx context.Context) {
					logger.Info(ctx, "stopping workers...")
					if err := riverClient.Stop(ctx); err != nil {
						logger.Error(ctx, "could not stop workers", zap.Error(err))
					}
				}
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if stopWorker != nil {
				stopWorker(shutdownCtx)
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
