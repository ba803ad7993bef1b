package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	GitHub   GitHubConfig   `yaml:"github"`
	Worker   WorkerConfig   `yaml:"worker"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds settings of the Redis instance backing the job queue.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// AuthConfig holds settings for validating access tokens issued by the identity service.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"ghconnect"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// GitHubConfig holds the OAuth application and API settings.
type GitHubConfig struct {
	ClientID     string `yaml:"client_id"     env:"GITHUB_CLIENT_ID"     env-required:"true"`
	ClientSecret string `yaml:"client_secret" env:"GITHUB_CLIENT_SECRET" env-required:"true"`
	// ConsumerKey identifies the remote accounts of this integration. Defaults to ClientID.
	ConsumerKey  string   `yaml:"consumer_key"  env:"GITHUB_CONSUMER_KEY"`
	RedirectURL  string   `yaml:"redirect_url"  env:"GITHUB_REDIRECT_URL"`
	Scopes       []string `yaml:"scopes"        env:"GITHUB_SCOPES"        env-default:"user:email,admin:repo_hook,read:org"`
	APIBaseURL   string   `yaml:"api_base_url"  env:"GITHUB_API_BASE_URL"  env-default:"https://api.github.com"`
	OAuthBaseURL string   `yaml:"oauth_base_url" env:"GITHUB_OAUTH_BASE_URL" env-default:"https://github.com"`
	SettingsURL  string   `yaml:"settings_url"  env:"GITHUB_SETTINGS_URL"  env-default:"/account/settings/linkedaccounts/"`
	// WebhookURL is the delivery endpoint registered on provider repositories.
	WebhookURL string        `yaml:"webhook_url" env:"GITHUB_WEBHOOK_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"GITHUB_TIMEOUT"     env-default:"10s"`
}

// WorkerConfig holds settings of the cleanup job consumer.
type WorkerConfig struct {
	QueueKey    string        `yaml:"queue_key"    env:"WORKER_QUEUE_KEY"    env-default:"ghconnect:jobs:disconnect"`
	Concurrency int           `yaml:"concurrency"  env:"WORKER_CONCURRENCY"  env-default:"4"`
	MaxAttempts int           `yaml:"max_attempts" env:"WORKER_MAX_ATTEMPTS" env-default:"5"`
	PollTimeout time.Duration `yaml:"poll_timeout" env:"WORKER_POLL_TIMEOUT" env-default:"5s"`
	// RetryMaxElapsed bounds the in-process retries of a single provider call.
	RetryMaxElapsed time.Duration `yaml:"retry_max_elapsed" env:"WORKER_RETRY_MAX_ELAPSED" env-default:"30s"`
	// MetricsAddr is where the worker process serves /metrics. Empty disables it.
	MetricsAddr string `yaml:"metrics_addr" env:"WORKER_METRICS_ADDR" env-default:":9091"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ConsumerKeyOrDefault returns the key under which remote accounts are stored.
func (c GitHubConfig) ConsumerKeyOrDefault() string {
	if c.ConsumerKey != "" {
		return c.ConsumerKey
	}
	return c.ClientID
}
