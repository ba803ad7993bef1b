package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/ghconnect/internal/adapter/postgres"
	"github.com/heartmarshall/ghconnect/internal/adapter/postgres/identity"
	"github.com/heartmarshall/ghconnect/internal/adapter/postgres/pendingcleanup"
	"github.com/heartmarshall/ghconnect/internal/adapter/postgres/providertoken"
	"github.com/heartmarshall/ghconnect/internal/adapter/postgres/remoteaccount"
	"github.com/heartmarshall/ghconnect/internal/adapter/postgres/repository"
	"github.com/heartmarshall/ghconnect/internal/adapter/provider/github"
	"github.com/heartmarshall/ghconnect/internal/adapter/redis"
	"github.com/heartmarshall/ghconnect/internal/adapter/redis/jobqueue"
	"github.com/heartmarshall/ghconnect/internal/auth"
	"github.com/heartmarshall/ghconnect/internal/config"
	"github.com/heartmarshall/ghconnect/internal/metrics"
	"github.com/heartmarshall/ghconnect/internal/service/connect"
	"github.com/heartmarshall/ghconnect/internal/transport/middleware"
	"github.com/heartmarshall/ghconnect/internal/transport/rest"
)

// Run starts the HTTP API and blocks until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting api",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reg, m, err := newMetrics()
	if err != nil {
		return err
	}

	gh := github.NewClient(cfg.GitHub, logger)
	jobs := jobqueue.New(rdb, cfg.Worker.QueueKey, logger)

	svc := connect.NewService(
		logger,
		identity.New(pool),
		remoteaccount.New(pool),
		providertoken.New(pool),
		repository.New(pool),
		pendingcleanup.New(pool),
		postgres.NewTxManager(pool),
		jobs,
		gh,
		m,
		cfg.GitHub,
	)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.RouterDeps{
		GitHub: rest.NewGitHubHandler(svc, gh, cfg.GitHub.SettingsURL, logger),
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Ping: pool.Ping},
			rest.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		),
		Auth:     middleware.Auth(jwt, logger),
		Metrics:  m,
		Gatherer: reg,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server)
}

// serve runs srv until ctx is cancelled and then drains in-flight requests
// for at most ShutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return <-errCh
}

// newMetrics creates a private registry with the ghconnect collectors and
// the standard Go and process collectors.
func newMetrics() (*prometheus.Registry, *metrics.Metrics, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m, err := metrics.New(reg)
	if err != nil {
		return nil, nil, fmt.Errorf("register metrics: %w", err)
	}
	return reg, m, nil
}
