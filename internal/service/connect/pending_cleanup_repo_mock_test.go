package connect

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"sync"
)

var _ pendingCleanupRepo = &pendingCleanupRepoMock{}

type pendingCleanupRepoMock struct {
	DeleteFunc func(ctx context.Context, userID uuid.UUID) error
	GetFunc    func(ctx context.Context, userID uuid.UUID) (*domain.DisconnectJob, error)
	SaveFunc   func(ctx context.Context, userID uuid.UUID, job domain.DisconnectJob) error

	calls struct {
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Save []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Job    domain.DisconnectJob
		}
	}
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockSave   sync.RWMutex
}

func (mock *pendingCleanupRepoMock) Delete(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("pendingCleanupRepoMock.DeleteFunc: method is nil but pendingCleanupRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID)
}

func (mock *pendingCleanupRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *pendingCleanupRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.DisconnectJob, error) {
	if mock.GetFunc == nil {
		panic("pendingCleanupRepoMock.GetFunc: method is nil but pendingCleanupRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *pendingCleanupRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *pendingCleanupRepoMock) Save(ctx context.Context, userID uuid.UUID, job domain.DisconnectJob) error {
	if mock.SaveFunc == nil {
		panic("pendingCleanupRepoMock.SaveFunc: method is nil but pendingCleanupRepo.Save was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Job    domain.DisconnectJob
	}{Ctx: ctx, UserID: userID, Job: job}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, userID, job)
}

func (mock *pendingCleanupRepoMock) SaveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Job    domain.DisconnectJob
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
