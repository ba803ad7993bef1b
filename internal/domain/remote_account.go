package domain

import (
	"time"

	"github.com/google/uuid"
)

// RemoteAccount links a local user to an account at a remote OAuth consumer.
// It owns the RemoteToken issued for that consumer.
type RemoteAccount struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ClientID  string
	ExtraData AccountExtraData
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountExtraData is the structured extension record kept on a RemoteAccount.
// The JSON shape matches what is persisted in remote_accounts.extra_data.
type AccountExtraData struct {
	GitHubID int64         `json:"id,omitempty"`
	Login    string        `json:"login,omitempty"`
	Name     string        `json:"name,omitempty"`
	Tokens   AccountTokens `json:"tokens"`
	LastSync *time.Time    `json:"last_sync,omitempty"`
}

// AccountTokens references tokens this system issued on behalf of the account.
type AccountTokens struct {
	Webhook *int64 `json:"webhook,omitempty"`
}

// WebhookTokenID returns the id of the webhook-delivery ProviderToken, if any.
func (d AccountExtraData) WebhookTokenID() (int64, bool) {
	if d.Tokens.Webhook == nil {
		return 0, false
	}
	return *d.Tokens.Webhook, true
}

// SetWebhookTokenID records the webhook-delivery ProviderToken id.
func (d *AccountExtraData) SetWebhookTokenID(id int64) {
	d.Tokens.Webhook = &id
}

// RemoteToken is the OAuth credential obtained from the provider. It is always
// loaded together with its owning RemoteAccount.
type RemoteToken struct {
	ID              uuid.UUID
	RemoteAccountID uuid.UUID
	TokenType       string
	AccessToken     string
	Secret          string
	CreatedAt       time.Time
	Account         RemoteAccount
}

// UserID returns the id of the user owning the token.
func (t *RemoteToken) UserID() uuid.UUID {
	return t.Account.UserID
}
