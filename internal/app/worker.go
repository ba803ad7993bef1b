package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ghconnect/internal/adapter/provider/github"
	"github.com/heartmarshall/ghconnect/internal/adapter/redis"
	"github.com/heartmarshall/ghconnect/internal/adapter/redis/jobqueue"
	"github.com/heartmarshall/ghconnect/internal/config"
	"github.com/heartmarshall/ghconnect/internal/worker"
)

// RunWorker consumes disconnect cleanup jobs until ctx is cancelled. When
// Worker.MetricsAddr is set, /metrics and /live are served there.
func RunWorker(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting worker",
		slog.String("version", BuildVersion()),
		slog.String("queue", cfg.Worker.QueueKey),
	)

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reg, m, err := newMetrics()
	if err != nil {
		return err
	}

	handler := worker.NewCleanupHandler(logger, github.NewClient(cfg.GitHub, logger), m, cfg.Worker)
	runner := worker.NewRunner(logger, jobqueue.New(rdb, cfg.Worker.QueueKey, logger), handler, m, cfg.Worker)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return runner.Run(gctx) })

	if cfg.Worker.MetricsAddr != "" {
		r := chi.NewRouter()
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		r.Get("/live", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

		srv := &http.Server{
			Addr:              cfg.Worker.MetricsAddr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			return serve(gctx, logger, srv, cfg.Server)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("worker: %w", err)
	}
	return nil
}
