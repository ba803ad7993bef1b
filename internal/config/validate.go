package config

import (
	"fmt"
	"net/url"
	"slices"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.GitHub.validate(); err != nil {
		return fmt.Errorf("github: %w", err)
	}

	if err := c.Worker.validate(); err != nil {
		return fmt.Errorf("worker: %w", err)
	}

	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, c.Log.Level)
	}

	return nil
}

func (g *GitHubConfig) validate() error {
	if g.ClientID == "" || g.ClientSecret == "" {
		return fmt.Errorf("client_id and client_secret are required")
	}
	for name, raw := range map[string]string{"api_base_url": g.APIBaseURL, "oauth_base_url": g.OAuthBaseURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
		}
	}
	if g.SettingsURL == "" {
		return fmt.Errorf("settings_url is required")
	}
	return nil
}

func (w *WorkerConfig) validate() error {
	if w.QueueKey == "" {
		return fmt.Errorf("queue_key is required")
	}
	if w.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", w.Concurrency)
	}
	if w.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", w.MaxAttempts)
	}
	if w.PollTimeout <= 0 {
		return fmt.Errorf("poll_timeout must be > 0 (got %v)", w.PollTimeout)
	}
	return nil
}
