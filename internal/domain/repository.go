package domain

import (
	"time"

	"github.com/google/uuid"
)

// Repository is the local record of a provider repository, keyed by the
// provider's repository id. A non-nil Hook means a webhook is believed to be
// registered on the provider side.
type Repository struct {
	ID         uuid.UUID
	GitHubID   int64
	UserID     *uuid.UUID
	Name       string
	Hook       *int64
	Enabled    bool
	DisabledAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasHook reports whether a webhook is registered for the repository.
func (r *Repository) HasHook() bool {
	return r.Hook != nil
}

// Disable clears the webhook reference and marks the repository as not enabled.
func (r *Repository) Disable(now time.Time) {
	r.Hook = nil
	r.Enabled = false
	r.DisabledAt = &now
}

// RepoHook identifies a webhook registered on a provider repository.
type RepoHook struct {
	GitHubID int64 `json:"github_id"`
	HookID   int64 `json:"hook_id"`
}

// HookSnapshot returns the (github_id, hook) pairs of repos that currently
// have a webhook, preserving input order.
func HookSnapshot(repos []Repository) []RepoHook {
	hooks := make([]RepoHook, 0, len(repos))
	for _, r := range repos {
		if r.Hook == nil {
			continue
		}
		hooks = append(hooks, RepoHook{GitHubID: r.GitHubID, HookID: *r.Hook})
	}
	return hooks
}
