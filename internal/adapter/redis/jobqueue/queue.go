// Package jobqueue is a reliable Redis-list queue of disconnect cleanup jobs.
//
// Producers LPUSH onto the pending list. Consumers atomically move a job to a
// processing list with BLMOVE and remove it once handled, so a crashed
// consumer leaves its job behind for RequeueStale instead of losing it.
package jobqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/ghconnect/internal/domain"
)

// ErrMalformedJob is returned by Dequeue for a payload that cannot be decoded.
// The payload has already been moved to the dead-letter list.
var ErrMalformedJob = errors.New("jobqueue: malformed job")

// Delivery is a dequeued job together with the raw payload that identifies it
// in the processing list.
type Delivery struct {
	Job domain.DisconnectJob
	raw string
}

// DeadLetter is what lands on the dead-letter list.
type DeadLetter struct {
	Job      json.RawMessage `json:"job"`
	Error    string          `json:"error"`
	FailedAt time.Time       `json:"failed_at"`
}

// Queue is a Redis-backed job queue.
type Queue struct {
	rdb           *redis.Client
	pendingKey    string
	processingKey string
	deadKey       string
	now           func() time.Time
	log           *slog.Logger
}

// New creates a Queue whose lists are named after key.
func New(rdb *redis.Client, key string, logger *slog.Logger) *Queue {
	return &Queue{
		rdb:           rdb,
		pendingKey:    key,
		processingKey: key + ":processing",
		deadKey:       key + ":dead",
		now:           time.Now,
		log:           logger.With("adapter", "jobqueue"),
	}
}

// Dispatch enqueues a cleanup job. It returns once Redis has accepted the job;
// the job itself runs later in a worker.
func (q *Queue) Dispatch(ctx context.Context, job domain.DisconnectJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("jobqueue: encode job %s: %w", job.ID, err)
	}

	if err := q.rdb.LPush(ctx, q.pendingKey, payload).Err(); err != nil {
		return fmt.Errorf("jobqueue: push job %s: %w", job.ID, err)
	}

	q.log.DebugContext(ctx, "job dispatched",
		slog.String("job_id", job.ID.String()),
		slog.Int("repos", len(job.Repos)),
	)
	return nil
}

// Dequeue blocks up to timeout for the next job. It returns (nil, nil) when
// the timeout elapses with nothing to do.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (*Delivery, error) {
	raw, err := q.rdb.BLMove(ctx, q.pendingKey, q.processingKey, "RIGHT", "LEFT", timeout).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jobqueue: dequeue: %w", err)
	}

	d := &Delivery{raw: raw}
	if err := json.Unmarshal([]byte(raw), &d.Job); err != nil {
		if dlErr := q.DeadLetter(ctx, d, err); dlErr != nil {
			return nil, fmt.Errorf("jobqueue: dead-letter malformed job: %w", dlErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedJob, err)
	}

	return d, nil
}

// Ack removes a handled job from the processing list.
func (q *Queue) Ack(ctx context.Context, d *Delivery) error {
	if err := q.rdb.LRem(ctx, q.processingKey, 1, d.raw).Err(); err != nil {
		return fmt.Errorf("jobqueue: ack job %s: %w", d.Job.ID, err)
	}
	return nil
}

// Retry puts the job back on the pending list with its attempt counter bumped.
func (q *Queue) Retry(ctx context.Context, d *Delivery) error {
	job := d.Job
	job.Attempt++

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("jobqueue: encode job %s: %w", job.ID, err)
	}

	_, err = q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey, 1, d.raw)
		pipe.LPush(ctx, q.pendingKey, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("jobqueue: retry job %s: %w", job.ID, err)
	}
	return nil
}

// DeadLetter moves the job to the dead-letter list, recording why it failed.
func (q *Queue) DeadLetter(ctx context.Context, d *Delivery, cause error) error {
	entry, err := json.Marshal(DeadLetter{
		Job:      json.RawMessage(rawOrString(d.raw)),
		Error:    cause.Error(),
		FailedAt: q.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("jobqueue: encode dead letter: %w", err)
	}

	_, err = q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey, 1, d.raw)
		pipe.LPush(ctx, q.deadKey, entry)
		return nil
	})
	if err != nil {
		return fmt.Errorf("jobqueue: dead-letter job %s: %w", d.Job.ID, err)
	}
	return nil
}

// RequeueStale moves everything left in the processing list back to the
// pending list. It must only run while no consumer is active, i.e. at startup.
func (q *Queue) RequeueStale(ctx context.Context) (int, error) {
	moved := 0
	for {
		err := q.rdb.LMove(ctx, q.processingKey, q.pendingKey, "RIGHT", "RIGHT").Err()
		if errors.Is(err, redis.Nil) {
			return moved, nil
		}
		if err != nil {
			return moved, fmt.Errorf("jobqueue: requeue stale: %w", err)
		}
		moved++
	}
}

// Pending returns the number of jobs waiting to be consumed.
func (q *Queue) Pending(ctx context.Context) (int64, error) {
	n, err := q.rdb.LLen(ctx, q.pendingKey).Result()
	if err != nil {
		return 0, fmt.Errorf("jobqueue: pending: %w", err)
	}
	return n, nil
}

// DeadLetters returns the dead-letter entries, newest first.
func (q *Queue) DeadLetters(ctx context.Context) ([]DeadLetter, error) {
	raws, err := q.rdb.LRange(ctx, q.deadKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("jobqueue: dead letters: %w", err)
	}

	letters := make([]DeadLetter, 0, len(raws))
	for _, raw := range raws {
		var dl DeadLetter
		if err := json.Unmarshal([]byte(raw), &dl); err != nil {
			return nil, fmt.Errorf("jobqueue: decode dead letter: %w", err)
		}
		letters = append(letters, dl)
	}
	return letters, nil
}

// rawOrString keeps valid JSON payloads as-is and quotes anything else so the
// dead letter stays decodable.
func rawOrString(raw string) []byte {
	if json.Valid([]byte(raw)) {
		return []byte(raw)
	}
	quoted, _ := json.Marshal(raw)
	return quoted
}
