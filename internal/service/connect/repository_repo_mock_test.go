package connect

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"sync"
)

var _ repositoryRepo = &repositoryRepoMock{}

type repositoryRepoMock struct {
	DisableFunc    func(ctx context.Context, repo *domain.Repository) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Repository, error)
	UpsertFunc     func(ctx context.Context, repo *domain.Repository) (*domain.Repository, error)

	calls struct {
		Disable []struct {
			Ctx  context.Context
			Repo *domain.Repository
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx  context.Context
			Repo *domain.Repository
		}
	}
	lockDisable    sync.RWMutex
	lockListByUser sync.RWMutex
	lockUpsert     sync.RWMutex
}

func (mock *repositoryRepoMock) Disable(ctx context.Context, repo *domain.Repository) error {
	if mock.DisableFunc == nil {
		panic("repositoryRepoMock.DisableFunc: method is nil but repositoryRepo.Disable was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Repo *domain.Repository
	}{Ctx: ctx, Repo: repo}
	mock.lockDisable.Lock()
	mock.calls.Disable = append(mock.calls.Disable, callInfo)
	mock.lockDisable.Unlock()
	return mock.DisableFunc(ctx, repo)
}

func (mock *repositoryRepoMock) DisableCalls() []struct {
	Ctx  context.Context
	Repo *domain.Repository
} {
	mock.lockDisable.RLock()
	calls := mock.calls.Disable
	mock.lockDisable.RUnlock()
	return calls
}

func (mock *repositoryRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Repository, error) {
	if mock.ListByUserFunc == nil {
		panic("repositoryRepoMock.ListByUserFunc: method is nil but repositoryRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *repositoryRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *repositoryRepoMock) Upsert(ctx context.Context, repo *domain.Repository) (*domain.Repository, error) {
	if mock.UpsertFunc == nil {
		panic("repositoryRepoMock.UpsertFunc: method is nil but repositoryRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Repo *domain.Repository
	}{Ctx: ctx, Repo: repo}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, repo)
}

func (mock *repositoryRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Repo *domain.Repository
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
