package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ghconnect/internal/adapter/redis/jobqueue"
	"github.com/heartmarshall/ghconnect/internal/config"
	"github.com/heartmarshall/ghconnect/internal/domain"
	"github.com/heartmarshall/ghconnect/internal/metrics"
)

// jobQueue defines the queue operations the runner needs.
type jobQueue interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*jobqueue.Delivery, error)
	Ack(ctx context.Context, d *jobqueue.Delivery) error
	Retry(ctx context.Context, d *jobqueue.Delivery) error
	DeadLetter(ctx context.Context, d *jobqueue.Delivery, cause error) error
	RequeueStale(ctx context.Context) (int, error)
}

// jobHandler executes a single job.
type jobHandler interface {
	Handle(ctx context.Context, job domain.DisconnectJob) error
}

// Runner consumes cleanup jobs with a fixed number of concurrent consumers.
type Runner struct {
	log     *slog.Logger
	queue   jobQueue
	handler jobHandler
	metrics *metrics.Metrics
	cfg     config.WorkerConfig
}

// NewRunner creates a Runner.
func NewRunner(logger *slog.Logger, queue jobQueue, handler jobHandler, m *metrics.Metrics, cfg config.WorkerConfig) *Runner {
	return &Runner{
		log:     logger.With("worker", "runner"),
		queue:   queue,
		handler: handler,
		metrics: m,
		cfg:     cfg,
	}
}

// Run requeues jobs left over by a previous process and then consumes until
// ctx is cancelled. A job interrupted by shutdown stays in the processing list
// and is picked up again on the next start.
func (r *Runner) Run(ctx context.Context) error {
	n, err := r.queue.RequeueStale(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		r.log.InfoContext(ctx, "requeued stale jobs", slog.Int("count", n))
	}

	r.log.InfoContext(ctx, "worker started", slog.Int("concurrency", r.cfg.Concurrency))

	g, gctx := errgroup.WithContext(ctx)
	for i := range r.cfg.Concurrency {
		g.Go(func() error {
			r.consume(gctx, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r.log.InfoContext(ctx, "worker stopped")
	return nil
}

func (r *Runner) consume(ctx context.Context, consumer int) {
	log := r.log.With(slog.Int("consumer", consumer))

	for ctx.Err() == nil {
		d, err := r.queue.Dequeue(ctx, r.cfg.PollTimeout)
		switch {
		case ctx.Err() != nil:
			return
		case errors.Is(err, jobqueue.ErrMalformedJob):
			r.metrics.JobsProcessed.WithLabelValues(metrics.JobDeadLetter).Inc()
			log.WarnContext(ctx, "malformed job dead-lettered", slog.String("error", err.Error()))
			continue
		case err != nil:
			log.ErrorContext(ctx, "dequeue failed", slog.String("error", err.Error()))
			sleep(ctx, r.cfg.PollTimeout)
			continue
		case d == nil:
			continue
		}

		r.process(ctx, log, d)
	}
}

func (r *Runner) process(ctx context.Context, log *slog.Logger, d *jobqueue.Delivery) {
	log = log.With(
		slog.String("job_id", d.Job.ID.String()),
		slog.Int("attempt", d.Job.Attempt),
	)

	start := time.Now()
	err := r.handler.Handle(ctx, d.Job)
	r.metrics.JobDuration.Observe(time.Since(start).Seconds())

	if err != nil && ctx.Err() != nil {
		log.InfoContext(ctx, "job interrupted by shutdown")
		return
	}

	switch {
	case err == nil:
		if ackErr := r.queue.Ack(ctx, d); ackErr != nil {
			log.ErrorContext(ctx, "ack failed", slog.String("error", ackErr.Error()))
			return
		}
		r.metrics.JobsProcessed.WithLabelValues(metrics.JobDone).Inc()

	case IsPermanent(err) || d.Job.Attempt+1 >= r.cfg.MaxAttempts:
		if dlErr := r.queue.DeadLetter(ctx, d, err); dlErr != nil {
			log.ErrorContext(ctx, "dead-letter failed", slog.String("error", dlErr.Error()))
			return
		}
		r.metrics.JobsProcessed.WithLabelValues(metrics.JobDeadLetter).Inc()
		log.ErrorContext(ctx, "job dead-lettered",
			slog.Bool("permanent", IsPermanent(err)),
			slog.String("error", err.Error()),
		)

	default:
		if retryErr := r.queue.Retry(ctx, d); retryErr != nil {
			log.ErrorContext(ctx, "retry failed", slog.String("error", retryErr.Error()))
			return
		}
		r.metrics.JobsProcessed.WithLabelValues(metrics.JobRetried).Inc()
		log.WarnContext(ctx, "job failed, retrying", slog.String("error", err.Error()))
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
