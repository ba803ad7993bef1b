// Package metrics defines the Prometheus collectors of ghconnect. Collectors
// live on a Metrics value so tests can register them on a private registry.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ghconnect"

// Disconnect outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeNoop         = "noop"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

// Job results.
const (
	JobDone       = "done"
	JobRetried    = "retried"
	JobDeadLetter = "dead_letter"
)

// Metrics groups every collector exported by the service and the worker.
type Metrics struct {
	PostInitFailures prometheus.Counter
	Disconnects      *prometheus.CounterVec
	JobsDispatched   prometheus.Counter
	JobsProcessed    *prometheus.CounterVec
	JobDuration      prometheus.Histogram
	HooksDeleted     *prometheus.CounterVec

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg (the default
// registerer when nil). Collectors already registered by an earlier call are
// reused.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		PostInitFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_init_failures_total",
			Help:      "GitHub account post-init runs that failed and were rolled back.",
		}),
		Disconnects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disconnects_total",
			Help:      "GitHub disconnect requests by outcome.",
		}, []string{"outcome"}),
		JobsDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_jobs_dispatched_total",
			Help:      "Cleanup jobs handed to the queue.",
		}),
		JobsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_jobs_processed_total",
			Help:      "Cleanup jobs handled by the worker, by result.",
		}, []string{"result"}),
		JobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cleanup_job_duration_seconds",
			Help:      "Time spent handling one cleanup job.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		HooksDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_deleted_total",
			Help:      "Provider webhook deletions by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	var err error
	if m.PostInitFailures, err = register(reg, m.PostInitFailures); err != nil {
		return nil, err
	}
	if m.Disconnects, err = register(reg, m.Disconnects); err != nil {
		return nil, err
	}
	if m.JobsDispatched, err = register(reg, m.JobsDispatched); err != nil {
		return nil, err
	}
	if m.JobsProcessed, err = register(reg, m.JobsProcessed); err != nil {
		return nil, err
	}
	if m.JobDuration, err = register(reg, m.JobDuration); err != nil {
		return nil, err
	}
	if m.HooksDeleted, err = register(reg, m.HooksDeleted); err != nil {
		return nil, err
	}
	if m.HTTPRequests, err = register(reg, m.HTTPRequests); err != nil {
		return nil, err
	}
	if m.HTTPRequestDuration, err = register(reg, m.HTTPRequestDuration); err != nil {
		return nil, err
	}

	return m, nil
}

// NewNop returns collectors that are not registered anywhere.
func NewNop() *Metrics {
	m, _ := New(prometheus.NewRegistry())
	return m
}

// register registers c, returning the existing collector when an equal one is
// already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("metrics: register: %w", err)
	}
	return c, nil
}
