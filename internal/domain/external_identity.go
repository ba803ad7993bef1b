package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExternalMethod names an external identity namespace.
type ExternalMethod string

const (
	ExternalMethodGitHub ExternalMethod = "github"
)

func (m ExternalMethod) String() string { return string(m) }

// IsValid returns true if the method is a known namespace.
func (m ExternalMethod) IsValid() bool {
	return m == ExternalMethodGitHub
}

// ExternalIdentity binds a local user to an identifier in an external
// identity namespace. At most one identity exists per (method, user).
type ExternalIdentity struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Method     ExternalMethod
	ExternalID string
	CreatedAt  time.Time
}
