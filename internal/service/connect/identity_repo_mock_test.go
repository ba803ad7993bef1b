package connect

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"sync"
)

var _ identityRepo = &identityRepoMock{}

type identityRepoMock struct {
	CreateFunc          func(ctx context.Context, ident *domain.ExternalIdentity) (*domain.ExternalIdentity, error)
	GetByExternalIDFunc func(ctx context.Context, method domain.ExternalMethod, externalID string) (*domain.ExternalIdentity, error)
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID, method domain.ExternalMethod) ([]domain.ExternalIdentity, error)
	UnlinkFunc          func(ctx context.Context, externalID string, method domain.ExternalMethod) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Ident *domain.ExternalIdentity
		}
		GetByExternalID []struct {
			Ctx        context.Context
			Method     domain.ExternalMethod
			ExternalID string
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Method domain.ExternalMethod
		}
		Unlink []struct {
			Ctx        context.Context
			ExternalID string
			Method     domain.ExternalMethod
		}
	}
	lockCreate          sync.RWMutex
	lockGetByExternalID sync.RWMutex
	lockListByUser      sync.RWMutex
	lockUnlink          sync.RWMutex
}

func (mock *identityRepoMock) Create(ctx context.Context, ident *domain.ExternalIdentity) (*domain.ExternalIdentity, error) {
	if mock.CreateFunc == nil {
		panic("identityRepoMock.CreateFunc: method is nil but identityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Ident *domain.ExternalIdentity
	}{Ctx: ctx, Ident: ident}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ident)
}

func (mock *identityRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Ident *domain.ExternalIdentity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *identityRepoMock) GetByExternalID(ctx context.Context, method domain.ExternalMethod, externalID string) (*domain.ExternalIdentity, error) {
	if mock.GetByExternalIDFunc == nil {
		panic("identityRepoMock.GetByExternalIDFunc: method is nil but identityRepo.GetByExternalID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Method     domain.ExternalMethod
		ExternalID string
	}{Ctx: ctx, Method: method, ExternalID: externalID}
	mock.lockGetByExternalID.Lock()
	mock.calls.GetByExternalID = append(mock.calls.GetByExternalID, callInfo)
	mock.lockGetByExternalID.Unlock()
	return mock.GetByExternalIDFunc(ctx, method, externalID)
}

func (mock *identityRepoMock) GetByExternalIDCalls() []struct {
	Ctx        context.Context
	Method     domain.ExternalMethod
	ExternalID string
} {
	mock.lockGetByExternalID.RLock()
	calls := mock.calls.GetByExternalID
	mock.lockGetByExternalID.RUnlock()
	return calls
}

func (mock *identityRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, method domain.ExternalMethod) ([]domain.ExternalIdentity, error) {
	if mock.ListByUserFunc == nil {
		panic("identityRepoMock.ListByUserFunc: method is nil but identityRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Method domain.ExternalMethod
	}{Ctx: ctx, UserID: userID, Method: method}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, method)
}

func (mock *identityRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Method domain.ExternalMethod
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *identityRepoMock) Unlink(ctx context.Context, externalID string, method domain.ExternalMethod) error {
	if mock.UnlinkFunc == nil {
		panic("identityRepoMock.UnlinkFunc: method is nil but identityRepo.Unlink was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ExternalID string
		Method     domain.ExternalMethod
	}{Ctx: ctx, ExternalID: externalID, Method: method}
	mock.lockUnlink.Lock()
	mock.calls.Unlink = append(mock.calls.Unlink, callInfo)
	mock.lockUnlink.Unlock()
	return mock.UnlinkFunc(ctx, externalID, method)
}

func (mock *identityRepoMock) UnlinkCalls() []struct {
	Ctx        context.Context
	ExternalID string
	Method     domain.ExternalMethod
} {
	mock.lockUnlink.RLock()
	calls := mock.calls.Unlink
	mock.lockUnlink.RUnlock()
	return calls
}
