package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookTokenName is the name given to tokens issued for webhook deliveries.
const WebhookTokenName = "github-webhooks"

// ProviderToken is a token issued by this system to an external provider so
// the provider can authenticate its webhook deliveries. Only the SHA-256 hash
// of the raw value is persisted.
type ProviderToken struct {
	ID         int64
	UserID     uuid.UUID
	Name       string
	TokenHash  string
	IsInternal bool
	CreatedAt  time.Time
}
