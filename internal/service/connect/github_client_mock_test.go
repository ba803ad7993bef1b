package connect

import (
	"context"
	"github.com/heartmarshall/ghconnect/internal/provider"
	"sync"
)

var _ githubClient = &githubClientMock{}

type githubClientMock struct {
	ExchangeCodeFunc     func(ctx context.Context, code string) (string, error)
	GetUserFunc          func(ctx context.Context, accessToken string) (*provider.Account, error)
	ListRepositoriesFunc func(ctx context.Context, accessToken string) ([]provider.Repository, error)

	calls struct {
		ExchangeCode []struct {
			Ctx  context.Context
			Code string
		}
		GetUser []struct {
			Ctx         context.Context
			AccessToken string
		}
		ListRepositories []struct {
			Ctx         context.Context
			AccessToken string
		}
	}
	lockExchangeCode     sync.RWMutex
	lockGetUser          sync.RWMutex
	lockListRepositories sync.RWMutex
}

func (mock *githubClientMock) ExchangeCode(ctx context.Context, code string) (string, error) {
	if mock.ExchangeCodeFunc == nil {
		panic("githubClientMock.ExchangeCodeFunc: method is nil but githubClient.ExchangeCode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockExchangeCode.Lock()
	mock.calls.ExchangeCode = append(mock.calls.ExchangeCode, callInfo)
	mock.lockExchangeCode.Unlock()
	return mock.ExchangeCodeFunc(ctx, code)
}

func (mock *githubClientMock) ExchangeCodeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockExchangeCode.RLock()
	calls := mock.calls.ExchangeCode
	mock.lockExchangeCode.RUnlock()
	return calls
}

func (mock *githubClientMock) GetUser(ctx context.Context, accessToken string) (*provider.Account, error) {
	if mock.GetUserFunc == nil {
		panic("githubClientMock.GetUserFunc: method is nil but githubClient.GetUser was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
	}{Ctx: ctx, AccessToken: accessToken}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, accessToken)
}

func (mock *githubClientMock) GetUserCalls() []struct {
	Ctx         context.Context
	AccessToken string
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *githubClientMock) ListRepositories(ctx context.Context, accessToken string) ([]provider.Repository, error) {
	if mock.ListRepositoriesFunc == nil {
		panic("githubClientMock.ListRepositoriesFunc: method is nil but githubClient.ListRepositories was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
	}{Ctx: ctx, AccessToken: accessToken}
	mock.lockListRepositories.Lock()
	mock.calls.ListRepositories = append(mock.calls.ListRepositories, callInfo)
	mock.lockListRepositories.Unlock()
	return mock.ListRepositoriesFunc(ctx, accessToken)
}

func (mock *githubClientMock) ListRepositoriesCalls() []struct {
	Ctx         context.Context
	AccessToken string
} {
	mock.lockListRepositories.RLock()
	calls := mock.calls.ListRepositories
	mock.lockListRepositories.RUnlock()
	return calls
}
