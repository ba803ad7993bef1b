// Package github is a minimal GitHub REST client covering the calls needed to
// link an account, sync its repositories and clean up after a disconnect.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/heartmarshall/ghconnect/internal/config"
	"github.com/heartmarshall/ghconnect/internal/provider"
)

const (
	reposPerPage = 100
	userAgent    = "ghconnect"
)

// APIError is a non-2xx response from GitHub.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github: status %d", e.StatusCode)
	}
	return fmt.Sprintf("github: status %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether repeating the request may succeed.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// StatusCode returns the HTTP status of err when it is an *APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Client talks to the GitHub REST API on behalf of linked users.
type Client struct {
	apiBaseURL string
	oauth      *oauth2.Config
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a Client from the GitHub configuration.
func NewClient(cfg config.GitHubConfig, logger *slog.Logger) *Client {
	oauthBase := strings.TrimRight(cfg.OAuthBaseURL, "/")
	return &Client{
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   oauthBase + "/login/oauth/authorize",
				TokenURL:  oauthBase + "/login/oauth/access_token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "github"),
	}
}

// NewClientWithURL creates a Client whose API and OAuth endpoints both live at baseURL (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	c := NewClient(config.GitHubConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		APIBaseURL:   baseURL,
		OAuthBaseURL: baseURL,
		Timeout:      5 * time.Second,
	}, logger)
	c.retryDelay = 10 * time.Millisecond
	return c
}

// AuthCodeURL returns the URL to send the user to for authorization.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	tok, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return "", fmt.Errorf("github: exchange code: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("github: exchange code: no access_token in response")
	}
	return tok.AccessToken, nil
}

// GetUser returns the user the access token belongs to.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*provider.Account, error) {
	var user apiUser
	if err := c.getJSON(ctx, accessToken, "/user", &user); err != nil {
		return nil, fmt.Errorf("github: get user: %w", err)
	}
	return user.toAccount(), nil
}

// ListRepositories returns every repository the user administers, following pagination.
func (c *Client) ListRepositories(ctx context.Context, accessToken string) ([]provider.Repository, error) {
	repos := []provider.Repository{}
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("per_page", fmt.Sprint(reposPerPage))
		q.Set("page", fmt.Sprint(page))
		q.Set("sort", "full_name")

		var batch []apiRepository
		if err := c.getJSON(ctx, accessToken, "/user/repos?"+q.Encode(), &batch); err != nil {
			return nil, fmt.Errorf("github: list repositories page %d: %w", page, err)
		}
		repos = append(repos, adminRepositories(batch)...)
		if len(batch) < reposPerPage {
			break
		}
	}

	c.log.DebugContext(ctx, "github repositories listed", slog.Int("count", len(repos)))
	return repos, nil
}

// DeleteHook removes a webhook from the repository identified by its numeric id.
func (c *Client) DeleteHook(ctx context.Context, accessToken string, repoID, hookID int64) error {
	path := fmt.Sprintf("/repositories/%d/hooks/%d", repoID, hookID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiBaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("github: create request: %w", err)
	}

	resp, err := c.bearerClient(ctx, accessToken).Do(c.decorate(req))
	if err != nil {
		return fmt.Errorf("github: delete hook %d on %d: %w", hookID, repoID, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("github: delete hook %d on %d: %w", hookID, repoID, err)
	}
	return nil
}

// RevokeToken revokes the OAuth grant of accessToken for this application.
func (c *Client) RevokeToken(ctx context.Context, accessToken string) error {
	body, err := json.Marshal(map[string]string{"access_token": accessToken})
	if err != nil {
		return fmt.Errorf("github: encode revoke body: %w", err)
	}

	path := "/applications/" + url.PathEscape(c.oauth.ClientID) + "/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiBaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("github: create request: %w", err)
	}
	req.SetBasicAuth(c.oauth.ClientID, c.oauth.ClientSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(c.decorate(req))
	if err != nil {
		return fmt.Errorf("github: revoke token: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("github: revoke token: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, accessToken, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, c.bearerClient(ctx, accessToken), c.decorate(req))
	if err != nil {
		c.log.ErrorContext(ctx, "github request failed", slog.String("path", path), slog.String("error", err.Error()))
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// doWithRetry executes a bodiless request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, hc *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := hc.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "github retry", slog.String("path", req.URL.Path), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return hc.Do(req)
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// bearerClient returns an HTTP client that authenticates with accessToken.
func (c *Client) bearerClient(ctx context.Context, accessToken string) *http.Client {
	hc := c.oauth.Client(c.withHTTPClient(ctx), &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	hc.Timeout = c.httpClient.Timeout
	return hc
}

func (c *Client) decorate(req *http.Request) *http.Request {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", userAgent)
	return req
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
