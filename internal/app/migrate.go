package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ghconnect/internal/adapter/postgres"
	"github.com/heartmarshall/ghconnect/internal/config"
)

// Migrate applies ("up"), rolls back one ("down") or reports ("status") the
// goose migrations found in dir.
func Migrate(ctx context.Context, cfg *config.Config, dir, command string) error {
	logger := NewLogger(cfg.Log)

	provider, closeDB, err := postgres.NewMigrator(cfg.Database.DSN, dir)
	if err != nil {
		return err
	}
	defer closeDB() //nolint:errcheck

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			logger.InfoContext(ctx, "migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		if len(results) == 0 {
			logger.InfoContext(ctx, "no migrations to apply")
		}

	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.InfoContext(ctx, "migration rolled back", slog.Int64("version", r.Source.Version))

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			logger.InfoContext(ctx, "migration",
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
			)
		}

	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	return nil
}
