// Package identity implements the external identity repository using PostgreSQL.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ghconnect/internal/adapter/postgres"
	"github.com/heartmarshall/ghconnect/internal/adapter/postgres/identity/sqlc"
	"github.com/heartmarshall/ghconnect/internal/domain"
)

// Repo provides external_identities persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new identity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByUser returns the user's identities in the given namespace, oldest first.
// Returns an empty slice when there are none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, method domain.ExternalMethod) ([]domain.ExternalIdentity, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	rows, err := q.ListIdentitiesByUser(ctx, sqlc.ListIdentitiesByUserParams{
		UserID: userID,
		Method: string(method),
	})
	if err != nil {
		return nil, fmt.Errorf("list identities by user: %w", err)
	}

	identities := make([]domain.ExternalIdentity, len(rows))
	for i, row := range rows {
		identities[i] = toDomain(row)
	}
	return identities, nil
}

// GetByExternalID returns the identity bound to externalID in the namespace.
// Returns domain.ErrNotFound if no user holds it.
func (r *Repo) GetByExternalID(ctx context.Context, method domain.ExternalMethod, externalID string) (*domain.ExternalIdentity, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetIdentityByExternalID(ctx, sqlc.GetIdentityByExternalIDParams{
		Method:     string(method),
		ExternalID: externalID,
	})
	if err != nil {
		return nil, postgres.MapError(err, "external identity")
	}

	ident := toDomain(row)
	return &ident, nil
}

// Create inserts a new identity. Returns domain.ErrAlreadyExists when the
// external id is already bound, or the user already has one in the namespace.
func (r *Repo) Create(ctx context.Context, ident *domain.ExternalIdentity) (*domain.ExternalIdentity, error) {
	if !ident.Method.IsValid() {
		return nil, fmt.Errorf("external identity: %w", domain.NewValidationError("method", "unknown namespace"))
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	id := ident.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row, err := q.CreateIdentity(ctx, sqlc.CreateIdentityParams{
		ID:         id,
		UserID:     ident.UserID,
		Method:     string(ident.Method),
		ExternalID: ident.ExternalID,
	})
	if err != nil {
		return nil, postgres.MapError(err, "external identity")
	}

	created := toDomain(row)
	return &created, nil
}

// Unlink removes the binding of externalID in the namespace.
// Removing an identity that does not exist is not an error.
func (r *Repo) Unlink(ctx context.Context, externalID string, method domain.ExternalMethod) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	err := q.UnlinkIdentity(ctx, sqlc.UnlinkIdentityParams{
		ExternalID: externalID,
		Method:     string(method),
	})
	if err != nil {
		return postgres.MapError(err, "external identity")
	}

	return nil
}

func toDomain(row sqlc.ExternalIdentity) domain.ExternalIdentity {
	return domain.ExternalIdentity{
		ID:         row.ID,
		UserID:     row.UserID,
		Method:     domain.ExternalMethod(row.Method),
		ExternalID: row.ExternalID,
		CreatedAt:  row.CreatedAt,
	}
}
