package worker

import (
	"context"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"sync"
)

var _ jobHandler = &jobHandlerMock{}

type jobHandlerMock struct {
	HandleFunc func(ctx context.Context, job domain.DisconnectJob) error

	calls struct {
		Handle []struct {
			Ctx context.Context
			Job domain.DisconnectJob
		}
	}
	lockHandle sync.RWMutex
}

func (mock *jobHandlerMock) Handle(ctx context.Context, job domain.DisconnectJob) error {
	if mock.HandleFunc == nil {
		panic("jobHandlerMock.HandleFunc: method is nil but jobHandler.Handle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Job domain.DisconnectJob
	}{Ctx: ctx, Job: job}
	mock.lockHandle.Lock()
	mock.calls.Handle = append(mock.calls.Handle, callInfo)
	mock.lockHandle.Unlock()
	return mock.HandleFunc(ctx, job)
}

func (mock *jobHandlerMock) HandleCalls() []struct {
	Ctx context.Context
	Job domain.DisconnectJob
} {
	mock.lockHandle.RLock()
	calls := mock.calls.Handle
	mock.lockHandle.RUnlock()
	return calls
}
