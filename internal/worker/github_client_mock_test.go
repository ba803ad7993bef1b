package worker

import (
	"context"
	"sync"
)

var _ githubClient = &githubClientMock{}

type githubClientMock struct {
	DeleteHookFunc  func(ctx context.Context, accessToken string, repoID int64, hookID int64) error
	RevokeTokenFunc func(ctx context.Context, accessToken string) error

	calls struct {
		DeleteHook []struct {
			Ctx         context.Context
			AccessToken string
			RepoID      int64
			HookID      int64
		}
		RevokeToken []struct {
			Ctx         context.Context
			AccessToken string
		}
	}
	lockDeleteHook  sync.RWMutex
	lockRevokeToken sync.RWMutex
}

func (mock *githubClientMock) DeleteHook(ctx context.Context, accessToken string, repoID int64, hookID int64) error {
	if mock.DeleteHookFunc == nil {
		panic("githubClientMock.DeleteHookFunc: method is nil but githubClient.DeleteHook was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
		RepoID      int64
		HookID      int64
	}{Ctx: ctx, AccessToken: accessToken, RepoID: repoID, HookID: hookID}
	mock.lockDeleteHook.Lock()
	mock.calls.DeleteHook = append(mock.calls.DeleteHook, callInfo)
	mock.lockDeleteHook.Unlock()
	return mock.DeleteHookFunc(ctx, accessToken, repoID, hookID)
}

func (mock *githubClientMock) DeleteHookCalls() []struct {
	Ctx         context.Context
	AccessToken string
	RepoID      int64
	HookID      int64
} {
	mock.lockDeleteHook.RLock()
	calls := mock.calls.DeleteHook
	mock.lockDeleteHook.RUnlock()
	return calls
}

func (mock *githubClientMock) RevokeToken(ctx context.Context, accessToken string) error {
	if mock.RevokeTokenFunc == nil {
		panic("githubClientMock.RevokeTokenFunc: method is nil but githubClient.RevokeToken was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
	}{Ctx: ctx, AccessToken: accessToken}
	mock.lockRevokeToken.Lock()
	mock.calls.RevokeToken = append(mock.calls.RevokeToken, callInfo)
	mock.lockRevokeToken.Unlock()
	return mock.RevokeTokenFunc(ctx, accessToken)
}

func (mock *githubClientMock) RevokeTokenCalls() []struct {
	Ctx         context.Context
	AccessToken string
} {
	mock.lockRevokeToken.RLock()
	calls := mock.calls.RevokeToken
	mock.lockRevokeToken.RUnlock()
	return calls
}
