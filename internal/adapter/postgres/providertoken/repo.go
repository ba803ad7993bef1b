// Package providertoken implements the ProviderToken repository using PostgreSQL.
package providertoken

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ghconnect/internal/adapter/postgres"
	"github.com/heartmarshall/ghconnect/internal/adapter/postgres/providertoken/sqlc"
	"github.com/heartmarshall/ghconnect/internal/domain"
)

// Repo provides provider_tokens persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new provider token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores an internal token for the user. Only the hash is persisted.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name, tokenHash string) (*domain.ProviderToken, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CreateProviderToken(ctx, sqlc.CreateProviderTokenParams{
		UserID:    userID,
		Name:      name,
		TokenHash: tokenHash,
	})
	if err != nil {
		return nil, postgres.MapError(err, "provider token")
	}

	pt := toDomain(row)
	return &pt, nil
}

// GetByID returns a token by id. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ProviderToken, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetProviderToken(ctx, id)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("provider token %d", id))
	}

	pt := toDomain(row)
	return &pt, nil
}

// Delete removes a token by id. Deleting a missing token is not an error.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	if err := q.DeleteProviderToken(ctx, id); err != nil {
		return postgres.MapError(err, fmt.Sprintf("provider token %d", id))
	}

	return nil
}

func toDomain(row sqlc.ProviderToken) domain.ProviderToken {
	return domain.ProviderToken{
		ID:         row.ID,
		UserID:     row.UserID,
		Name:       row.Name,
		TokenHash:  row.TokenHash,
		IsInternal: row.IsInternal,
		CreatedAt:  row.CreatedAt,
	}
}
