package rest

import (
	"context"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"github.com/heartmarshall/ghconnect/internal/service/connect"
	"sync"
)

var _ connectService = &connectServiceMock{}

type connectServiceMock struct {
	DisconnectFunc func(ctx context.Context) error
	LinkFunc       func(ctx context.Context, in connect.LinkInput) (*domain.RemoteAccount, error)
	SyncFunc       func(ctx context.Context) error

	calls struct {
		Disconnect []struct {
			Ctx context.Context
		}
		Link []struct {
			Ctx context.Context
			In  connect.LinkInput
		}
		Sync []struct {
			Ctx context.Context
		}
	}
	lockDisconnect sync.RWMutex
	lockLink       sync.RWMutex
	lockSync       sync.RWMutex
}

func (mock *connectServiceMock) Disconnect(ctx context.Context) error {
	if mock.DisconnectFunc == nil {
		panic("connectServiceMock.DisconnectFunc: method is nil but connectService.Disconnect was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDisconnect.Lock()
	mock.calls.Disconnect = append(mock.calls.Disconnect, callInfo)
	mock.lockDisconnect.Unlock()
	return mock.DisconnectFunc(ctx)
}

func (mock *connectServiceMock) DisconnectCalls() []struct {
	Ctx context.Context
} {
	mock.lockDisconnect.RLock()
	calls := mock.calls.Disconnect
	mock.lockDisconnect.RUnlock()
	return calls
}

func (mock *connectServiceMock) Link(ctx context.Context, in connect.LinkInput) (*domain.RemoteAccount, error) {
	if mock.LinkFunc == nil {
		panic("connectServiceMock.LinkFunc: method is nil but connectService.Link was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  connect.LinkInput
	}{Ctx: ctx, In: in}
	mock.lockLink.Lock()
	mock.calls.Link = append(mock.calls.Link, callInfo)
	mock.lockLink.Unlock()
	return mock.LinkFunc(ctx, in)
}

func (mock *connectServiceMock) LinkCalls() []struct {
	Ctx context.Context
	In  connect.LinkInput
} {
	mock.lockLink.RLock()
	calls := mock.calls.Link
	mock.lockLink.RUnlock()
	return calls
}

func (mock *connectServiceMock) Sync(ctx context.Context) error {
	if mock.SyncFunc == nil {
		panic("connectServiceMock.SyncFunc: method is nil but connectService.Sync was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSync.Lock()
	mock.calls.Sync = append(mock.calls.Sync, callInfo)
	mock.lockSync.Unlock()
	return mock.SyncFunc(ctx)
}

func (mock *connectServiceMock) SyncCalls() []struct {
	Ctx context.Context
} {
	mock.lockSync.RLock()
	calls := mock.calls.Sync
	mock.lockSync.RUnlock()
	return calls
}
