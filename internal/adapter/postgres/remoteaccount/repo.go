// Package remoteaccount implements persistence of the RemoteAccount + RemoteToken
// aggregate using PostgreSQL. The extra_data column is JSONB.
package remoteaccount

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ghconnect/internal/adapter/postgres"
	"github.com/heartmarshall/ghconnect/internal/domain"
)

// Repo provides remote account and remote token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new remote account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const accountColumns = `id, user_id, client_id, extra_data, created_at, updated_at`

const createAccountSQL = `
INSERT INTO remote_accounts (id, user_id, client_id, extra_data)
VALUES ($1, $2, $3, $4)
RETURNING ` + accountColumns

const createTokenSQL = `
INSERT INTO remote_tokens (id, remote_account_id, token_type, access_token, secret)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`

const getTokenSQL = `
SELECT t.id, t.remote_account_id, t.token_type, t.access_token, t.secret, t.created_at,
       a.id, a.user_id, a.client_id, a.extra_data, a.created_at, a.updated_at
FROM remote_tokens t
JOIN remote_accounts a ON a.id = t.remote_account_id
WHERE a.user_id = $1 AND a.client_id = $2
ORDER BY t.created_at
LIMIT 1`

const updateAccessTokenSQL = `
UPDATE remote_tokens
SET access_token = $2
WHERE id = $1`

// Tokens and account go in one statement so neither can outlive the other.
const deleteSQL = `
WITH deleted_tokens AS (
    DELETE FROM remote_tokens WHERE remote_account_id = $1
)
DELETE FROM remote_accounts WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetToken returns the token of the user's account at the given consumer, with
// the owning account populated. Returns domain.ErrNotFound if the user has no
// account or the account has no token.
func (r *Repo) GetToken(ctx context.Context, userID uuid.UUID, clientID string) (*domain.RemoteToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		token     domain.RemoteToken
		extraJSON []byte
	)
	err := querier.QueryRow(ctx, getTokenSQL, userID, clientID).Scan(
		&token.ID, &token.RemoteAccountID, &token.TokenType, &token.AccessToken, &token.Secret, &token.CreatedAt,
		&token.Account.ID, &token.Account.UserID, &token.Account.ClientID, &extraJSON,
		&token.Account.CreatedAt, &token.Account.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "remote token")
	}

	extra, err := unmarshalExtraData(extraJSON)
	if err != nil {
		return nil, fmt.Errorf("remote account %s: %w", token.Account.ID, err)
	}
	token.Account.ExtraData = extra

	return &token, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateAccount inserts a remote account. Returns domain.ErrAlreadyExists when
// the user already has an account at the consumer.
func (r *Repo) CreateAccount(ctx context.Context, account *domain.RemoteAccount) (*domain.RemoteAccount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	extraJSON, err := json.Marshal(account.ExtraData)
	if err != nil {
		return nil, fmt.Errorf("remote account: marshal extra data: %w", err)
	}

	id := account.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanAccount(querier.QueryRow(ctx, createAccountSQL, id, account.UserID, account.ClientID, extraJSON))
	if err != nil {
		return nil, postgres.MapError(err, "remote account")
	}

	return created, nil
}

// CreateToken inserts a token for an existing account. The returned token
// carries the given account.
func (r *Repo) CreateToken(ctx context.Context, account *domain.RemoteAccount, accessToken string) (*domain.RemoteToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	token := domain.RemoteToken{
		ID:              uuid.New(),
		RemoteAccountID: account.ID,
		AccessToken:     accessToken,
		Account:         *account,
	}

	err := querier.QueryRow(ctx, createTokenSQL,
		token.ID, token.RemoteAccountID, token.TokenType, token.AccessToken, token.Secret,
	).Scan(&token.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "remote token")
	}

	return &token, nil
}

// UpdateAccessToken replaces the stored access token.
func (r *Repo) UpdateAccessToken(ctx context.Context, tokenID uuid.UUID, accessToken string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, updateAccessTokenSQL, tokenID, accessToken)
	if err != nil {
		return postgres.MapError(err, "remote token")
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("remote token %s: %w", tokenID, domain.ErrNotFound)
	}

	return nil
}

// UpdateExtraData overwrites the account's extra data and bumps updated_at.
func (r *Repo) UpdateExtraData(ctx context.Context, accountID uuid.UUID, extra domain.AccountExtraData) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	extraJSON, err := json.Marshal(extra)
	if err != nil {
		return fmt.Errorf("remote account %s: marshal extra data: %w", accountID, err)
	}

	query, args, err := postgres.Builder.
		Update("remote_accounts").
		Set("extra_data", extraJSON).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("remote account %s: build update: %w", accountID, err)
	}

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "remote account")
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("remote account %s: %w", accountID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the account together with all of its tokens.
// Deleting an account that does not exist is not an error.
func (r *Repo) Delete(ctx context.Context, accountID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSQL, accountID); err != nil {
		return postgres.MapError(err, "remote account")
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAccount(row pgx.Row) (*domain.RemoteAccount, error) {
	var (
		account   domain.RemoteAccount
		extraJSON []byte
	)
	if err := row.Scan(&account.ID, &account.UserID, &account.ClientID, &extraJSON, &account.CreatedAt, &account.UpdatedAt); err != nil {
		return nil, err
	}

	extra, err := unmarshalExtraData(extraJSON)
	if err != nil {
		return nil, fmt.Errorf("remote account %s: %w", account.ID, err)
	}
	account.ExtraData = extra

	return &account, nil
}

func unmarshalExtraData(data []byte) (domain.AccountExtraData, error) {
	var extra domain.AccountExtraData
	if len(data) == 0 {
		return extra, nil
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return extra, fmt.Errorf("unmarshal extra data: %w", err)
	}
	return extra, nil
}
