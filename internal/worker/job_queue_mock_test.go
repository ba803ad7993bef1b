package worker

import (
	"context"
	"github.com/heartmarshall/ghconnect/internal/adapter/redis/jobqueue"
	"sync"
	"time"
)

var _ jobQueue = &jobQueueMock{}

type jobQueueMock struct {
	AckFunc          func(ctx context.Context, d *jobqueue.Delivery) error
	DeadLetterFunc   func(ctx context.Context, d *jobqueue.Delivery, cause error) error
	DequeueFunc      func(ctx context.Context, timeout time.Duration) (*jobqueue.Delivery, error)
	RequeueStaleFunc func(ctx context.Context) (int, error)
	RetryFunc        func(ctx context.Context, d *jobqueue.Delivery) error

	calls struct {
		Ack []struct {
			Ctx context.Context
			D   *jobqueue.Delivery
		}
		DeadLetter []struct {
			Ctx   context.Context
			D     *jobqueue.Delivery
			Cause error
		}
		Dequeue []struct {
			Ctx     context.Context
			Timeout time.Duration
		}
		RequeueStale []struct {
			Ctx context.Context
		}
		Retry []struct {
			Ctx context.Context
			D   *jobqueue.Delivery
		}
	}
	lockAck          sync.RWMutex
	lockDeadLetter   sync.RWMutex
	lockDequeue      sync.RWMutex
	lockRequeueStale sync.RWMutex
	lockRetry        sync.RWMutex
}

func (mock *jobQueueMock) Ack(ctx context.Context, d *jobqueue.Delivery) error {
	if mock.AckFunc == nil {
		panic("jobQueueMock.AckFunc: method is nil but jobQueue.Ack was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *jobqueue.Delivery
	}{Ctx: ctx, D: d}
	mock.lockAck.Lock()
	mock.calls.Ack = append(mock.calls.Ack, callInfo)
	mock.lockAck.Unlock()
	return mock.AckFunc(ctx, d)
}

func (mock *jobQueueMock) AckCalls() []struct {
	Ctx context.Context
	D   *jobqueue.Delivery
} {
	mock.lockAck.RLock()
	calls := mock.calls.Ack
	mock.lockAck.RUnlock()
	return calls
}

func (mock *jobQueueMock) DeadLetter(ctx context.Context, d *jobqueue.Delivery, cause error) error {
	if mock.DeadLetterFunc == nil {
		panic("jobQueueMock.DeadLetterFunc: method is nil but jobQueue.DeadLetter was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		D     *jobqueue.Delivery
		Cause error
	}{Ctx: ctx, D: d, Cause: cause}
	mock.lockDeadLetter.Lock()
	mock.calls.DeadLetter = append(mock.calls.DeadLetter, callInfo)
	mock.lockDeadLetter.Unlock()
	return mock.DeadLetterFunc(ctx, d, cause)
}

func (mock *jobQueueMock) DeadLetterCalls() []struct {
	Ctx   context.Context
	D     *jobqueue.Delivery
	Cause error
} {
	mock.lockDeadLetter.RLock()
	calls := mock.calls.DeadLetter
	mock.lockDeadLetter.RUnlock()
	return calls
}

func (mock *jobQueueMock) Dequeue(ctx context.Context, timeout time.Duration) (*jobqueue.Delivery, error) {
	if mock.DequeueFunc == nil {
		panic("jobQueueMock.DequeueFunc: method is nil but jobQueue.Dequeue was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Timeout time.Duration
	}{Ctx: ctx, Timeout: timeout}
	mock.lockDequeue.Lock()
	mock.calls.Dequeue = append(mock.calls.Dequeue, callInfo)
	mock.lockDequeue.Unlock()
	return mock.DequeueFunc(ctx, timeout)
}

func (mock *jobQueueMock) DequeueCalls() []struct {
	Ctx     context.Context
	Timeout time.Duration
} {
	mock.lockDequeue.RLock()
	calls := mock.calls.Dequeue
	mock.lockDequeue.RUnlock()
	return calls
}

func (mock *jobQueueMock) RequeueStale(ctx context.Context) (int, error) {
	if mock.RequeueStaleFunc == nil {
		panic("jobQueueMock.RequeueStaleFunc: method is nil but jobQueue.RequeueStale was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRequeueStale.Lock()
	mock.calls.RequeueStale = append(mock.calls.RequeueStale, callInfo)
	mock.lockRequeueStale.Unlock()
	return mock.RequeueStaleFunc(ctx)
}

func (mock *jobQueueMock) RequeueStaleCalls() []struct {
	Ctx context.Context
} {
	mock.lockRequeueStale.RLock()
	calls := mock.calls.RequeueStale
	mock.lockRequeueStale.RUnlock()
	return calls
}

func (mock *jobQueueMock) Retry(ctx context.Context, d *jobqueue.Delivery) error {
	if mock.RetryFunc == nil {
		panic("jobQueueMock.RetryFunc: method is nil but jobQueue.Retry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *jobqueue.Delivery
	}{Ctx: ctx, D: d}
	mock.lockRetry.Lock()
	mock.calls.Retry = append(mock.calls.Retry, callInfo)
	mock.lockRetry.Unlock()
	return mock.RetryFunc(ctx, d)
}

func (mock *jobQueueMock) RetryCalls() []struct {
	Ctx context.Context
	D   *jobqueue.Delivery
} {
	mock.lockRetry.RLock()
	calls := mock.calls.Retry
	mock.lockRetry.RUnlock()
	return calls
}
