// Package worker executes the provider-side cleanup that follows a GitHub
// disconnect. Jobs come from the Redis job queue and are handled at least once.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/ghconnect/internal/adapter/provider/github"
	"github.com/heartmarshall/ghconnect/internal/config"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"github.com/heartmarshall/ghconnect/internal/metrics"
)

// Hook deletion results.
const (
	hookDeleted = "deleted"
	hookGone    = "gone"
	hookFailed  = "failed"
)

// githubClient defines the provider calls the cleanup needs.
type githubClient interface {
	DeleteHook(ctx context.Context, accessToken string, repoID, hookID int64) error
	RevokeToken(ctx context.Context, accessToken string) error
}

// CleanupHandler deletes the webhooks listed in a DisconnectJob and revokes
// the job's access token.
type CleanupHandler struct {
	log        *slog.Logger
	github     githubClient
	metrics    *metrics.Metrics
	newBackOff func() backoff.BackOff
}

// NewCleanupHandler creates a handler whose provider calls are retried for at
// most cfg.RetryMaxElapsed.
func NewCleanupHandler(logger *slog.Logger, client githubClient, m *metrics.Metrics, cfg config.WorkerConfig) *CleanupHandler {
	maxElapsed := cfg.RetryMaxElapsed
	return &CleanupHandler{
		log:     logger.With("worker", "cleanup"),
		github:  client,
		metrics: m,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxElapsedTime = maxElapsed
			return b
		},
	}
}

// Handle runs the cleanup for one job.
//
// Every hook is attempted even if an earlier one fails. The token is revoked
// only when no hook is left that a later attempt could still delete, because
// revoking it would make those hooks unreachable. The returned error joins all
// failures and is Permanent when none of them can be fixed by retrying.
func (h *CleanupHandler) Handle(ctx context.Context, job domain.DisconnectJob) error {
	var errs []error
	for _, r := range job.Repos {
		if err := h.deleteHook(ctx, job.AccessToken, r); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 && !allPermanent(errs) {
		return fmt.Errorf("worker: job %s: %w", job.ID, errors.Join(errs...))
	}

	if err := h.revokeToken(ctx, job.AccessToken); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		h.log.InfoContext(ctx, "disconnect cleanup done",
			slog.String("job_id", job.ID.String()),
			slog.Int("hooks", len(job.Repos)),
		)
		return nil
	}

	err := fmt.Errorf("worker: job %s: %w", job.ID, errors.Join(errs...))
	if allPermanent(errs) {
		return Permanent(err)
	}
	return err
}

func (h *CleanupHandler) deleteHook(ctx context.Context, accessToken string, r domain.RepoHook) error {
	gone := false
	err := h.retry(ctx, func() error {
		err := h.github.DeleteHook(ctx, accessToken, r.GitHubID, r.HookID)
		if github.StatusCode(err) == http.StatusNotFound {
			gone = true
			return nil
		}
		return err
	})

	switch {
	case err != nil:
		h.metrics.HooksDeleted.WithLabelValues(hookFailed).Inc()
		h.log.WarnContext(ctx, "delete webhook failed",
			slog.Int64("repo_id", r.GitHubID),
			slog.Int64("hook_id", r.HookID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("delete hook %d on %d: %w", r.HookID, r.GitHubID, err)
	case gone:
		h.metrics.HooksDeleted.WithLabelValues(hookGone).Inc()
	default:
		h.metrics.HooksDeleted.WithLabelValues(hookDeleted).Inc()
	}
	return nil
}

func (h *CleanupHandler) revokeToken(ctx context.Context, accessToken string) error {
	err := h.retry(ctx, func() error {
		err := h.github.RevokeToken(ctx, accessToken)
		switch github.StatusCode(err) {
		case http.StatusNotFound, http.StatusUnprocessableEntity:
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// retry runs op with exponential backoff. Client errors other than 429 stop
// the retries and come back marked Permanent.
func (h *CleanupHandler) retry(ctx context.Context, op func() error) error {
	err := backoff.Retry(func() error {
		err := op()
		if isClientError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(h.newBackOff(), ctx))

	if isClientError(err) {
		return Permanent(err)
	}
	return err
}

func isClientError(err error) bool {
	code := github.StatusCode(err)
	return code >= 400 && code < 500 && code != http.StatusTooManyRequests
}

func allPermanent(errs []error) bool {
	for _, err := range errs {
		if !IsPermanent(err) {
			return false
		}
	}
	return true
}
