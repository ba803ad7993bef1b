package connect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/ghconnect/internal/domain"
	"github.com/heartmarshall/ghconnect/pkg/ctxutil"
)

// Link completes the OAuth flow for the caller: it exchanges the code, binds
// the GitHub identity, stores the remote account and token, then runs
// AccountPostInit. Re-linking the same GitHub account refreshes the token.
// Returns domain.ErrAlreadyExists if the GitHub account belongs to another user.
func (s *Service) Link(ctx context.Context, in LinkInput) (*domain.RemoteAccount, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	accessToken, err := s.github.ExchangeCode(ctx, in.Code)
	if err != nil {
		s.log.WarnContext(ctx, "github code exchange failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil, domain.NewValidationError("code", "rejected by provider")
	}

	user, err := s.github.GetUser(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("connect.Link get user: %w", err)
	}
	externalID := strconv.FormatInt(user.ID, 10)

	var token *domain.RemoteToken

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ident, err := s.identities.GetByExternalID(txCtx, domain.ExternalMethodGitHub, externalID)
		switch {
		case err == nil && ident.UserID != userID:
			return fmt.Errorf("github account %s: %w", externalID, domain.ErrAlreadyExists)
		case errors.Is(err, domain.ErrNotFound):
			_, err = s.identities.Create(txCtx, &domain.ExternalIdentity{
				UserID:     userID,
				Method:     domain.ExternalMethodGitHub,
				ExternalID: externalID,
			})
			if err != nil {
				return fmt.Errorf("create identity: %w", err)
			}
		case err != nil:
			return fmt.Errorf("get identity: %w", err)
		}

		existing, err := s.accounts.GetToken(txCtx, userID, s.clientID)
		if err == nil {
			if err := s.accounts.UpdateAccessToken(txCtx, existing.ID, accessToken); err != nil {
				return fmt.Errorf("update access token: %w", err)
			}
			existing.AccessToken = accessToken
			token = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get token: %w", err)
		}

		account, err := s.accounts.CreateAccount(txCtx, &domain.RemoteAccount{
			UserID:   userID,
			ClientID: s.clientID,
			ExtraData: domain.AccountExtraData{
				GitHubID: user.ID,
				Login:    user.Login,
				Name:     user.Name,
			},
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		token, err = s.accounts.CreateToken(txCtx, account, accessToken)
		if err != nil {
			return fmt.Errorf("create token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect.Link: %w", err)
	}

	s.log.InfoContext(ctx, "github account linked",
		slog.String("user_id", userID.String()),
		slog.String("login", user.Login),
	)

	s.AccountPostInit(ctx, token)

	return &token.Account, nil
}
