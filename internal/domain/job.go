package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DisconnectJob carries everything the remote cleanup needs after the local
// link has been removed: the access token to act with and the webhooks to delete.
type DisconnectJob struct {
	ID          uuid.UUID  `json:"id"`
	AccessToken string     `json:"access_token"`
	Repos       []RepoHook `json:"repos"`
	EnqueuedAt  time.Time  `json:"enqueued_at"`
	Attempt     int        `json:"attempt"`
}

// NewDisconnectJob builds a job for the given token and hook snapshot.
// The repos slice is copied so later mutation by the caller is not observed.
func NewDisconnectJob(accessToken string, repos []RepoHook, now time.Time) DisconnectJob {
	snapshot := make([]RepoHook, len(repos))
	copy(snapshot, repos)
	return DisconnectJob{
		ID:          uuid.New(),
		AccessToken: accessToken,
		Repos:       snapshot,
		EnqueuedAt:  now,
	}
}

// AddHooks appends the hooks not already carried by the job, keeping the
// existing order.
func (j *DisconnectJob) AddHooks(hooks []RepoHook) {
	for _, h := range hooks {
		if !slices.Contains(j.Repos, h) {
			j.Repos = append(j.Repos, h)
		}
	}
}
