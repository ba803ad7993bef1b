package testhelper

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ghconnect/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueGitHubID returns a random positive id that will not collide across parallel tests.
func UniqueGitHubID() int64 {
	return rand.Int64N(1<<52) + 1
}

// SeedUser creates a user row. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + uniqueSuffix() + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, created_at) VALUES ($1, $2, $3)`,
		user.ID, user.Email, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedIdentity binds the user to a GitHub identity.
func SeedIdentity(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.ExternalIdentity {
	t.Helper()

	ident := domain.ExternalIdentity{
		ID:         uuid.New(),
		UserID:     userID,
		Method:     domain.ExternalMethodGitHub,
		ExternalID: "gh-" + uniqueSuffix(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO external_identities (id, user_id, method, external_id)
		 VALUES ($1, $2, $3, $4) RETURNING created_at`,
		ident.ID, ident.UserID, string(ident.Method), ident.ExternalID,
	).Scan(&ident.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedIdentity: %v", err)
	}

	return ident
}

// SeedRemoteToken creates a remote account with the given extra data and a
// token for it. Returns the token with its account populated.
func SeedRemoteToken(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, clientID string, extra domain.AccountExtraData) domain.RemoteToken {
	t.Helper()
	ctx := context.Background()

	raw, err := json.Marshal(extra)
	if err != nil {
		t.Fatalf("testhelper: SeedRemoteToken marshal: %v", err)
	}

	account := domain.RemoteAccount{ID: uuid.New(), UserID: userID, ClientID: clientID, ExtraData: extra}
	err = pool.QueryRow(ctx,
		`INSERT INTO remote_accounts (id, user_id, client_id, extra_data)
		 VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at`,
		account.ID, account.UserID, account.ClientID, raw,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRemoteToken account: %v", err)
	}

	token := domain.RemoteToken{
		ID:              uuid.New(),
		RemoteAccountID: account.ID,
		AccessToken:     "gho_" + uniqueSuffix(),
		Account:         account,
	}
	err = pool.QueryRow(ctx,
		`INSERT INTO remote_tokens (id, remote_account_id, access_token)
		 VALUES ($1, $2, $3) RETURNING created_at`,
		token.ID, token.RemoteAccountID, token.AccessToken,
	).Scan(&token.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRemoteToken token: %v", err)
	}

	return token
}

// SeedProviderToken issues a webhook token for the user.
func SeedProviderToken(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.ProviderToken {
	t.Helper()

	pt := domain.ProviderToken{
		UserID:     userID,
		Name:       domain.WebhookTokenName,
		TokenHash:  "hash-" + uuid.NewString(),
		IsInternal: true,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO provider_tokens (user_id, name, token_hash, is_internal)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		pt.UserID, pt.Name, pt.TokenHash, pt.IsInternal,
	).Scan(&pt.ID, &pt.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProviderToken: %v", err)
	}

	return pt
}

// SeedRepository creates a repository owned by the user. A non-nil hook
// creates an enabled repository with that webhook id.
func SeedRepository(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, hook *int64) domain.Repository {
	t.Helper()

	repo := domain.Repository{
		ID:       uuid.New(),
		GitHubID: UniqueGitHubID(),
		UserID:   &userID,
		Name:     "octo/repo-" + uniqueSuffix(),
		Hook:     hook,
		Enabled:  hook != nil,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO repositories (id, github_id, user_id, name, hook, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`,
		repo.ID, repo.GitHubID, repo.UserID, repo.Name, repo.Hook, repo.Enabled,
	).Scan(&repo.CreatedAt, &repo.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRepository: %v", err)
	}

	return repo
}
