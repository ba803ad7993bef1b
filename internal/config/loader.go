package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the configuration file read when CONFIG_PATH is unset.
const DefaultPath = "./config.yaml"

// Load reads the file named by CONFIG_PATH, or DefaultPath, then applies the
// environment on top. Only an explicitly configured path must exist.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path, true)
	}
	return LoadFile(DefaultPath, false)
}

// LoadFile reads path and the environment (ENV wins over YAML, env-default
// tags fill the rest) and validates the result. When path does not exist and
// required is false the configuration comes from the environment alone.
func LoadFile(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case errors.Is(statErr, fs.ErrNotExist) && !required:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
