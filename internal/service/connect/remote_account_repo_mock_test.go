package connect

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"sync"
)

var _ remoteAccountRepo = &remoteAccountRepoMock{}

type remoteAccountRepoMock struct {
	CreateAccountFunc     func(ctx context.Context, account *domain.RemoteAccount) (*domain.RemoteAccount, error)
	CreateTokenFunc       func(ctx context.Context, account *domain.RemoteAccount, accessToken string) (*domain.RemoteToken, error)
	DeleteFunc            func(ctx context.Context, accountID uuid.UUID) error
	GetTokenFunc          func(ctx context.Context, userID uuid.UUID, clientID string) (*domain.RemoteToken, error)
	UpdateAccessTokenFunc func(ctx context.Context, tokenID uuid.UUID, accessToken string) error
	UpdateExtraDataFunc   func(ctx context.Context, accountID uuid.UUID, extra domain.AccountExtraData) error

	calls struct {
		CreateAccount []struct {
			Ctx     context.Context
			Account *domain.RemoteAccount
		}
		CreateToken []struct {
			Ctx         context.Context
			Account     *domain.RemoteAccount
			AccessToken string
		}
		Delete []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		GetToken []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			ClientID string
		}
		UpdateAccessToken []struct {
			Ctx         context.Context
			TokenID     uuid.UUID
			AccessToken string
		}
		UpdateExtraData []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Extra     domain.AccountExtraData
		}
	}
	lockCreateAccount     sync.RWMutex
	lockCreateToken       sync.RWMutex
	lockDelete            sync.RWMutex
	lockGetToken          sync.RWMutex
	lockUpdateAccessToken sync.RWMutex
	lockUpdateExtraData   sync.RWMutex
}

func (mock *remoteAccountRepoMock) CreateAccount(ctx context.Context, account *domain.RemoteAccount) (*domain.RemoteAccount, error) {
	if mock.CreateAccountFunc == nil {
		panic("remoteAccountRepoMock.CreateAccountFunc: method is nil but remoteAccountRepo.CreateAccount was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Account *domain.RemoteAccount
	}{Ctx: ctx, Account: account}
	mock.lockCreateAccount.Lock()
	mock.calls.CreateAccount = append(mock.calls.CreateAccount, callInfo)
	mock.lockCreateAccount.Unlock()
	return mock.CreateAccountFunc(ctx, account)
}

func (mock *remoteAccountRepoMock) CreateAccountCalls() []struct {
	Ctx     context.Context
	Account *domain.RemoteAccount
} {
	mock.lockCreateAccount.RLock()
	calls := mock.calls.CreateAccount
	mock.lockCreateAccount.RUnlock()
	return calls
}

func (mock *remoteAccountRepoMock) CreateToken(ctx context.Context, account *domain.RemoteAccount, accessToken string) (*domain.RemoteToken, error) {
	if mock.CreateTokenFunc == nil {
		panic("remoteAccountRepoMock.CreateTokenFunc: method is nil but remoteAccountRepo.CreateToken was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Account     *domain.RemoteAccount
		AccessToken string
	}{Ctx: ctx, Account: account, AccessToken: accessToken}
	mock.lockCreateToken.Lock()
	mock.calls.CreateToken = append(mock.calls.CreateToken, callInfo)
	mock.lockCreateToken.Unlock()
	return mock.CreateTokenFunc(ctx, account, accessToken)
}

func (mock *remoteAccountRepoMock) CreateTokenCalls() []struct {
	Ctx         context.Context
	Account     *domain.RemoteAccount
	AccessToken string
} {
	mock.lockCreateToken.RLock()
	calls := mock.calls.CreateToken
	mock.lockCreateToken.RUnlock()
	return calls
}

func (mock *remoteAccountRepoMock) Delete(ctx context.Context, accountID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("remoteAccountRepoMock.DeleteFunc: method is nil but remoteAccountRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, accountID)
}

func (mock *remoteAccountRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *remoteAccountRepoMock) GetToken(ctx context.Context, userID uuid.UUID, clientID string) (*domain.RemoteToken, error) {
	if mock.GetTokenFunc == nil {
		panic("remoteAccountRepoMock.GetTokenFunc: method is nil but remoteAccountRepo.GetToken was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		ClientID string
	}{Ctx: ctx, UserID: userID, ClientID: clientID}
	mock.lockGetToken.Lock()
	mock.calls.GetToken = append(mock.calls.GetToken, callInfo)
	mock.lockGetToken.Unlock()
	return mock.GetTokenFunc(ctx, userID, clientID)
}

func (mock *remoteAccountRepoMock) GetTokenCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	ClientID string
} {
	mock.lockGetToken.RLock()
	calls := mock.calls.GetToken
	mock.lockGetToken.RUnlock()
	return calls
}

func (mock *remoteAccountRepoMock) UpdateAccessToken(ctx context.Context, tokenID uuid.UUID, accessToken string) error {
	if mock.UpdateAccessTokenFunc == nil {
		panic("remoteAccountRepoMock.UpdateAccessTokenFunc: method is nil but remoteAccountRepo.UpdateAccessToken was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TokenID     uuid.UUID
		AccessToken string
	}{Ctx: ctx, TokenID: tokenID, AccessToken: accessToken}
	mock.lockUpdateAccessToken.Lock()
	mock.calls.UpdateAccessToken = append(mock.calls.UpdateAccessToken, callInfo)
	mock.lockUpdateAccessToken.Unlock()
	return mock.UpdateAccessTokenFunc(ctx, tokenID, accessToken)
}

func (mock *remoteAccountRepoMock) UpdateAccessTokenCalls() []struct {
	Ctx         context.Context
	TokenID     uuid.UUID
	AccessToken string
} {
	mock.lockUpdateAccessToken.RLock()
	calls := mock.calls.UpdateAccessToken
	mock.lockUpdateAccessToken.RUnlock()
	return calls
}

func (mock *remoteAccountRepoMock) UpdateExtraData(ctx context.Context, accountID uuid.UUID, extra domain.AccountExtraData) error {
	if mock.UpdateExtraDataFunc == nil {
		panic("remoteAccountRepoMock.UpdateExtraDataFunc: method is nil but remoteAccountRepo.UpdateExtraData was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Extra     domain.AccountExtraData
	}{Ctx: ctx, AccountID: accountID, Extra: extra}
	mock.lockUpdateExtraData.Lock()
	mock.calls.UpdateExtraData = append(mock.calls.UpdateExtraData, callInfo)
	mock.lockUpdateExtraData.Unlock()
	return mock.UpdateExtraDataFunc(ctx, accountID, extra)
}

func (mock *remoteAccountRepoMock) UpdateExtraDataCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Extra     domain.AccountExtraData
} {
	mock.lockUpdateExtraData.RLock()
	calls := mock.calls.UpdateExtraData
	mock.lockUpdateExtraData.RUnlock()
	return calls
}
