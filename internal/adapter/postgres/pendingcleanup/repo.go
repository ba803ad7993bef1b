// Package pendingcleanup stores cleanup jobs that were committed locally but
// not yet handed to the job queue. A row lives until the disconnect that
// wrote it deletes the remote account.
package pendingcleanup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ghconnect/internal/adapter/postgres"
	"github.com/heartmarshall/ghconnect/internal/adapter/postgres/pendingcleanup/sqlc"
	"github.com/heartmarshall/ghconnect/internal/domain"
)

// Repo provides pending_cleanups persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pending cleanup repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the user's pending job. Returns domain.ErrNotFound if there is none.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.DisconnectJob, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetPendingCleanup(ctx, userID)
	if err != nil {
		return nil, postgres.MapError(err, "pending cleanup")
	}

	var job domain.DisconnectJob
	if err := json.Unmarshal(row.Job, &job); err != nil {
		return nil, fmt.Errorf("pending cleanup: decode job: %w", err)
	}
	return &job, nil
}

// Save stores job as the user's pending job, replacing any earlier one.
func (r *Repo) Save(ctx context.Context, userID uuid.UUID, job domain.DisconnectJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("pending cleanup: encode job: %w", err)
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	err = q.SavePendingCleanup(ctx, sqlc.SavePendingCleanupParams{
		UserID: userID,
		Job:    payload,
	})
	if err != nil {
		return postgres.MapError(err, "pending cleanup")
	}
	return nil
}

// Delete removes the user's pending job. Deleting a missing row is not an error.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	if err := q.DeletePendingCleanup(ctx, userID); err != nil {
		return postgres.MapError(err, "pending cleanup")
	}
	return nil
}
