package rest

import (
	"sync"
)

var _ authorizer = &authorizerMock{}

type authorizerMock struct {
	AuthCodeURLFunc func(state string) string

	calls struct {
		AuthCodeURL []struct {
			State string
		}
	}
	lockAuthCodeURL sync.RWMutex
}

func (mock *authorizerMock) AuthCodeURL(state string) string {
	if mock.AuthCodeURLFunc == nil {
		panic("authorizerMock.AuthCodeURLFunc: method is nil but authorizer.AuthCodeURL was just called")
	}
	callInfo := struct {
		State string
	}{State: state}
	mock.lockAuthCodeURL.Lock()
	mock.calls.AuthCodeURL = append(mock.calls.AuthCodeURL, callInfo)
	mock.lockAuthCodeURL.Unlock()
	return mock.AuthCodeURLFunc(state)
}

func (mock *authorizerMock) AuthCodeURLCalls() []struct {
	State string
} {
	mock.lockAuthCodeURL.RLock()
	calls := mock.calls.AuthCodeURL
	mock.lockAuthCodeURL.RUnlock()
	return calls
}
