// Package repository implements persistence of provider repositories using
// PostgreSQL. Writes are built with squirrel.
package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ghconnect/internal/adapter/postgres"
	"github.com/heartmarshall/ghconnect/internal/domain"
)

// Repo provides repositories persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new repository repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "github_id", "user_id", "name", "hook", "enabled", "disabled_at", "created_at", "updated_at",
}

// ListByUser returns the repositories owned by the user ordered by name.
// Returns an empty slice when there are none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Repository, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Select(columns...).
		From("repositories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list repositories: build query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list repositories by user: %w", err)
	}
	defer rows.Close()

	repos := []domain.Repository{}
	for rows.Next() {
		repo, err := scanRepository(rows)
		if err != nil {
			return nil, fmt.Errorf("list repositories by user: %w", err)
		}
		repos = append(repos, *repo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list repositories by user: %w", err)
	}

	return repos, nil
}

// Upsert inserts the repository or, when its github_id is already known,
// refreshes owner and name. Hook and enabled state of an existing row are kept.
// A repository with an active hook stays with its current owner, whose
// disconnect must still see that hook.
func (r *Repo) Upsert(ctx context.Context, repo *domain.Repository) (*domain.Repository, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := repo.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder.
		Insert("repositories").
		Columns("id", "github_id", "user_id", "name").
		Values(id, repo.GitHubID, repo.UserID, repo.Name).
		Suffix(`ON CONFLICT (github_id) DO UPDATE
SET user_id = CASE WHEN repositories.hook IS NULL THEN EXCLUDED.user_id ELSE repositories.user_id END,
    name = EXCLUDED.name,
    updated_at = now()
RETURNING ` + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("upsert repository: build query: %w", err)
	}

	saved, err := scanRepository(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("repository %d", repo.GitHubID))
	}

	return saved, nil
}

// Disable persists the disabled state of repo: no hook, not enabled, and the
// DisabledAt stamp carried on the struct.
func (r *Repo) Disable(ctx context.Context, repo *domain.Repository) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Update("repositories").
		Set("hook", nil).
		Set("enabled", false).
		Set("disabled_at", repo.DisabledAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": repo.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("disable repository: build query: %w", err)
	}

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, fmt.Sprintf("repository %s", repo.ID))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("repository %s: %w", repo.ID, domain.ErrNotFound)
	}

	return nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}

func scanRepository(row pgx.Row) (*domain.Repository, error) {
	var repo domain.Repository
	err := row.Scan(
		&repo.ID, &repo.GitHubID, &repo.UserID, &repo.Name, &repo.Hook,
		&repo.Enabled, &repo.DisabledAt, &repo.CreatedAt, &repo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &repo, nil
}
