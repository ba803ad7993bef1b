package connect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ghconnect/internal/domain"
	"github.com/heartmarshall/ghconnect/pkg/ctxutil"
)

// Sync re-reads the caller's repositories from GitHub. Unlike AccountPostInit
// it reports failures. Returns domain.ErrNotFound when no account is linked.
func (s *Service) Sync(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	token, err := s.accounts.GetToken(ctx, userID, s.clientID)
	if err != nil {
		return fmt.Errorf("connect.Sync get token: %w", err)
	}

	extra := token.Account.ExtraData
	var synced int

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.syncRepositories(txCtx, token, &extra)
		if err != nil {
			return err
		}
		synced = n
		return s.accounts.UpdateExtraData(txCtx, token.Account.ID, extra)
	})
	if err != nil {
		return fmt.Errorf("connect.Sync: %w", err)
	}

	s.log.InfoContext(ctx, "github repositories synced",
		slog.String("user_id", userID.String()),
		slog.Int("repositories", synced),
	)
	return nil
}
