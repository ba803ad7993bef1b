package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the identity service. This system only references
// users by id; the row exists so identities, accounts and tokens can be
// owned and cascaded.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}
