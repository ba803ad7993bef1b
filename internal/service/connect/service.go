// Package connect links a user's GitHub account to the local user and tears
// the link down again.
package connect

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ghconnect/internal/auth"
	"github.com/heartmarshall/ghconnect/internal/config"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"github.com/heartmarshall/ghconnect/internal/metrics"
	"github.com/heartmarshall/ghconnect/internal/provider"
)

// identityRepo defines the external identity operations needed by the service.
type identityRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, method domain.ExternalMethod) ([]domain.ExternalIdentity, error)
	GetByExternalID(ctx context.Context, method domain.ExternalMethod, externalID string) (*domain.ExternalIdentity, error)
	Create(ctx context.Context, ident *domain.ExternalIdentity) (*domain.ExternalIdentity, error)
	Unlink(ctx context.Context, externalID string, method domain.ExternalMethod) error
}

// remoteAccountRepo defines the remote account aggregate operations needed by the service.
type remoteAccountRepo interface {
	GetToken(ctx context.Context, userID uuid.UUID, clientID string) (*domain.RemoteToken, error)
	CreateAccount(ctx context.Context, account *domain.RemoteAccount) (*domain.RemoteAccount, error)
	CreateToken(ctx context.Context, account *domain.RemoteAccount, accessToken string) (*domain.RemoteToken, error)
	UpdateAccessToken(ctx context.Context, tokenID uuid.UUID, accessToken string) error
	UpdateExtraData(ctx context.Context, accountID uuid.UUID, extra domain.AccountExtraData) error
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// providerTokenRepo defines the webhook token operations needed by the service.
type providerTokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name, tokenHash string) (*domain.ProviderToken, error)
	GetByID(ctx context.Context, id int64) (*domain.ProviderToken, error)
	Delete(ctx context.Context, id int64) error
}

// repositoryRepo defines the repository operations needed by the service.
type repositoryRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Repository, error)
	Upsert(ctx context.Context, repo *domain.Repository) (*domain.Repository, error)
	Disable(ctx context.Context, repo *domain.Repository) error
}

// pendingCleanupRepo keeps the cleanup job of a disconnect that has not
// finished yet, so a retry dispatches the same hooks again.
type pendingCleanupRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.DisconnectJob, error)
	Save(ctx context.Context, userID uuid.UUID, job domain.DisconnectJob) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jobDispatcher hands cleanup jobs to the asynchronous worker.
type jobDispatcher interface {
	Dispatch(ctx context.Context, job domain.DisconnectJob) error
}

// githubClient defines the provider API calls needed by the service.
type githubClient interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	GetUser(ctx context.Context, accessToken string) (*provider.Account, error)
	ListRepositories(ctx context.Context, accessToken string) ([]provider.Repository, error)
}

// Service implements GitHub account link, sync and disconnect.
type Service struct {
	log            *slog.Logger
	identities     identityRepo
	accounts       remoteAccountRepo
	providerTokens providerTokenRepo
	repos          repositoryRepo
	cleanups       pendingCleanupRepo
	tx             txManager
	jobs           jobDispatcher
	github         githubClient
	metrics        *metrics.Metrics
	clientID       string

	now      func() time.Time
	newToken func() (raw string, hash string, err error)
}

// NewService creates a new connect service instance.
func NewService(
	logger *slog.Logger,
	identities identityRepo,
	accounts remoteAccountRepo,
	providerTokens providerTokenRepo,
	repos repositoryRepo,
	cleanups pendingCleanupRepo,
	tx txManager,
	jobs jobDispatcher,
	github githubClient,
	m *metrics.Metrics,
	cfg config.GitHubConfig,
) *Service {
	return &Service{
		log:            logger.With("service", "connect"),
		identities:     identities,
		accounts:       accounts,
		providerTokens: providerTokens,
		repos:          repos,
		cleanups:       cleanups,
		tx:             tx,
		jobs:           jobs,
		github:         github,
		metrics:        m,
		clientID:       cfg.ConsumerKeyOrDefault(),
		now:            func() time.Time { return time.Now().UTC() },
		newToken:       auth.NewOpaqueToken,
	}
}
