package connect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ghconnect/internal/domain"
	"github.com/heartmarshall/ghconnect/internal/metrics"
	"github.com/heartmarshall/ghconnect/pkg/ctxutil"
)

// Disconnect unlinks the caller's GitHub account.
//
// Local state is changed and committed first: the identity is unlinked, the
// webhook token deleted and every repository disabled. Only then is the
// remote cleanup job dispatched, carrying the access token and the hooks
// that were active, and finally the remote account and its token are
// deleted in a second transaction.
//
// The job is also stored with the first transaction and removed with the
// second. A caller without a linked account gets nil after the identity step.
// If the job cannot be dispatched the error is returned and the remote account
// is kept; a retry picks the stored job up again, so the hooks cleared by the
// first attempt are still deleted.
func (s *Service) Disconnect(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		s.metrics.Disconnects.WithLabelValues(metrics.OutcomeUnauthorized).Inc()
		return domain.ErrUnauthorized
	}

	outcome := metrics.OutcomeError
	defer func() { s.metrics.Disconnects.WithLabelValues(outcome).Inc() }()

	var (
		linked    bool
		accountID uuid.UUID
		job       domain.DisconnectJob
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.unlinkIdentity(txCtx, userID); err != nil {
			return err
		}

		token, err := s.accounts.GetToken(txCtx, userID, s.clientID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		linked = true
		accountID = token.Account.ID

		// The id lives in the account's extra data, so it must go before the account.
		if id, ok := token.Account.ExtraData.WebhookTokenID(); ok {
			if err := s.providerTokens.Delete(txCtx, id); err != nil {
				return fmt.Errorf("delete webhook token: %w", err)
			}
		}

		repos, err := s.repos.ListByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list repositories: %w", err)
		}

		now := s.now()
		job, err = s.cleanupJob(txCtx, userID, token.AccessToken, domain.HookSnapshot(repos), now)
		if err != nil {
			return err
		}

		for i := range repos {
			repos[i].Disable(now)
			if err := s.repos.Disable(txCtx, &repos[i]); err != nil {
				return fmt.Errorf("disable repository %d: %w", repos[i].GitHubID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("connect.Disconnect: %w", err)
	}

	if !linked {
		outcome = metrics.OutcomeNoop
		s.log.InfoContext(ctx, "github disconnect: no linked account", slog.String("user_id", userID.String()))
		return nil
	}

	if err := s.jobs.Dispatch(ctx, job); err != nil {
		return fmt.Errorf("connect.Disconnect dispatch cleanup: %w", err)
	}
	s.metrics.JobsDispatched.Inc()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.accounts.Delete(txCtx, accountID); err != nil {
			return err
		}
		if err := s.cleanups.Delete(txCtx, userID); err != nil {
			return fmt.Errorf("delete pending cleanup: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("connect.Disconnect delete account: %w", err)
	}

	outcome = metrics.OutcomeOK
	s.log.InfoContext(ctx, "github account disconnected",
		slog.String("user_id", userID.String()),
		slog.String("job_id", job.ID.String()),
		slog.Int("hooks", len(job.Repos)),
	)
	return nil
}

// unlinkIdentity removes the caller's GitHub identity, if any.
func (s *Service) unlinkIdentity(ctx context.Context, userID uuid.UUID) error {
	idents, err := s.identities.ListByUser(ctx, userID, domain.ExternalMethodGitHub)
	if err != nil {
		return fmt.Errorf("list identities: %w", err)
	}
	if len(idents) == 0 {
		return nil
	}

	if err := s.identities.Unlink(ctx, idents[0].ExternalID, domain.ExternalMethodGitHub); err != nil {
		return fmt.Errorf("unlink identity: %w", err)
	}
	return nil
}

// cleanupJob builds the job for this disconnect and stores it. Hooks of a job
// left behind by an earlier, unfinished attempt are carried over.
func (s *Service) cleanupJob(ctx context.Context, userID uuid.UUID, accessToken string, hooks []domain.RepoHook, now time.Time) (domain.DisconnectJob, error) {
	job := domain.NewDisconnectJob(accessToken, hooks, now)

	pending, err := s.cleanups.Get(ctx, userID)
	switch {
	case err == nil:
		job = *pending
		job.Repos = slices.Clone(pending.Repos)
		job.AccessToken = accessToken
		job.EnqueuedAt = now
		job.Attempt = 0
		job.AddHooks(hooks)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.DisconnectJob{}, fmt.Errorf("get pending cleanup: %w", err)
	}

	if err := s.cleanups.Save(ctx, userID, job); err != nil {
		return domain.DisconnectJob{}, fmt.Errorf("save pending cleanup: %w", err)
	}
	return job, nil
}
