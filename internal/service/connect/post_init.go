package connect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ghconnect/internal/domain"
)

// AccountPostInit brings a freshly linked account in sync with GitHub: it
// refreshes the cached profile, makes sure a webhook token exists and syncs
// the user's repositories, all in one transaction.
//
// It never fails from the caller's point of view. On any error the
// transaction is rolled back and the failure is only logged and counted.
func (s *Service) AccountPostInit(ctx context.Context, token *domain.RemoteToken) {
	if token == nil {
		s.postInitFailed(ctx, uuid.Nil, errors.New("no remote token"))
		return
	}
	userID := token.UserID()

	defer func() {
		if r := recover(); r != nil {
			s.postInitFailed(ctx, userID, fmt.Errorf("panic: %v", r))
		}
	}()

	extra := token.Account.ExtraData
	var synced int

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.initAccount(txCtx, token, &extra); err != nil {
			return fmt.Errorf("init account: %w", err)
		}

		n, err := s.syncRepositories(txCtx, token, &extra)
		if err != nil {
			return fmt.Errorf("sync repositories: %w", err)
		}
		synced = n

		if err := s.accounts.UpdateExtraData(txCtx, token.Account.ID, extra); err != nil {
			return fmt.Errorf("update extra data: %w", err)
		}
		return nil
	})
	if err != nil {
		s.postInitFailed(ctx, userID, err)
		return
	}

	token.Account.ExtraData = extra

	s.log.InfoContext(ctx, "github account initialized",
		slog.String("user_id", userID.String()),
		slog.String("login", extra.Login),
		slog.Int("repositories", synced),
	)
}

func (s *Service) postInitFailed(ctx context.Context, userID uuid.UUID, err error) {
	s.metrics.PostInitFailures.Inc()
	s.log.WarnContext(ctx, "github account post-init failed",
		slog.String("user_id", userID.String()),
		slog.String("error", err.Error()),
	)
}

// initAccount refreshes the cached GitHub profile and ensures the account
// references a live webhook token.
func (s *Service) initAccount(ctx context.Context, token *domain.RemoteToken, extra *domain.AccountExtraData) error {
	user, err := s.github.GetUser(ctx, token.AccessToken)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	extra.GitHubID = user.ID
	extra.Login = user.Login
	extra.Name = user.Name

	if id, ok := extra.WebhookTokenID(); ok {
		_, err := s.providerTokens.GetByID(ctx, id)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get webhook token: %w", err)
		}
	}

	// Hooks are registered outside this service; only the hash is kept.
	_, hash, err := s.newToken()
	if err != nil {
		return fmt.Errorf("generate webhook token: %w", err)
	}

	pt, err := s.providerTokens.Create(ctx, token.UserID(), domain.WebhookTokenName, hash)
	if err != nil {
		return fmt.Errorf("create webhook token: %w", err)
	}
	extra.SetWebhookTokenID(pt.ID)

	return nil
}

// syncRepositories upserts a Repository row for every repository the user
// administers on GitHub and stamps the sync time. Returns the number of
// repositories seen.
func (s *Service) syncRepositories(ctx context.Context, token *domain.RemoteToken, extra *domain.AccountExtraData) (int, error) {
	remote, err := s.github.ListRepositories(ctx, token.AccessToken)
	if err != nil {
		return 0, fmt.Errorf("list repositories: %w", err)
	}

	userID := token.UserID()
	for _, r := range remote {
		_, err := s.repos.Upsert(ctx, &domain.Repository{
			GitHubID: r.ID,
			UserID:   &userID,
			Name:     r.FullName,
		})
		if err != nil {
			return 0, fmt.Errorf("upsert repository %d: %w", r.ID, err)
		}
	}

	now := s.now()
	extra.LastSync = &now

	return len(remote), nil
}
