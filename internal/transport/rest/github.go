package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/ghconnect/internal/domain"
	"github.com/heartmarshall/ghconnect/internal/service/connect"
)

// maxBodyBytes bounds request bodies; the only payload is an OAuth code.
const maxBodyBytes = 4 << 10

// connectService defines the account operations needed by GitHubHandler.
type connectService interface {
	Link(ctx context.Context, in connect.LinkInput) (*domain.RemoteAccount, error)
	Disconnect(ctx context.Context) error
	Sync(ctx context.Context) error
}

// authorizer builds the provider authorization URL.
type authorizer interface {
	AuthCodeURL(state string) string
}

// GitHubHandler serves the GitHub account endpoints.
type GitHubHandler struct {
	svc         connectService
	oauth       authorizer
	settingsURL string
	log         *slog.Logger
}

// NewGitHubHandler creates a GitHubHandler. After a disconnect the client is
// redirected to settingsURL.
func NewGitHubHandler(svc connectService, oauth authorizer, settingsURL string, logger *slog.Logger) *GitHubHandler {
	return &GitHubHandler{
		svc:         svc,
		oauth:       oauth,
		settingsURL: settingsURL,
		log:         logger.With("handler", "github"),
	}
}

type accountResponse struct {
	ID       string     `json:"id"`
	GitHubID int64      `json:"github_id"`
	Login    string     `json:"login"`
	Name     string     `json:"name,omitempty"`
	LastSync *time.Time `json:"last_sync,omitempty"`
}

// Authorize handles GET /github/authorize?state=... by redirecting to GitHub.
func (h *GitHubHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		writeError(w, http.StatusBadRequest, "state is required")
		return
	}
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusFound)
}

// Connect handles POST /github/connect.
func (h *GitHubHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var in connect.LinkInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.svc.Link(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accountResponse{
		ID:       account.ID.String(),
		GitHubID: account.ExtraData.GitHubID,
		Login:    account.ExtraData.Login,
		Name:     account.ExtraData.Name,
		LastSync: account.ExtraData.LastSync,
	})
}

// Disconnect handles POST /github/disconnect and redirects to the linked
// accounts settings page.
func (h *GitHubHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Disconnect(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	http.Redirect(w, r, h.settingsURL, http.StatusFound)
}

// Sync handles POST /github/sync.
func (h *GitHubHandler) Sync(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Sync(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
