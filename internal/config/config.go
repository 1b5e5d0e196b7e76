// Package config loads API credentials from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingSuperJobSecret is returned when SuperJob is requested but no
// app key is configured.
var ErrMissingSuperJobSecret = errors.New("SJ_CLIENT_SECRET is not set")

// Credentials holds everything the two API clients read from the
// environment. Only the SuperJob app key is strictly required; the rest
// widen access (HH bearer token) or enable the SuperJob OAuth flow.
type Credentials struct {
	HHClientID     string `env:"HH_CLIENT_ID"`
	HHClientSecret string `env:"HH_CLIENT_SECRET"`
	HHClientToken  string `env:"HH_CLIENT_TOKEN"`

	SJClientID     string `env:"SJ_CLIENT_ID"`
	SJClientSecret string `env:"SJ_CLIENT_SECRET"`
	SJEmail        string `env:"SJ_EMAIL"`
	SJPassword     string `env:"SJ_PASSWORD"`
}

// Load reads credentials from the environment. A .env file in the working
// directory is merged in first; real environment variables win.
func Load() (*Credentials, error) {
	if _, err := os.Stat(".env"); err == nil {
		// godotenv.Load never overrides variables already set.
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	cfg := &Credentials{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

// ValidateSuperJob reports whether the credentials are sufficient to query
// SuperJob at all.
func (c *Credentials) ValidateSuperJob() error {
	if c.SJClientSecret == "" {
		return ErrMissingSuperJobSecret
	}
	return nil
}

// HasSuperJobOAuth reports whether the full password-grant credential set
// is present.
func (c *Credentials) HasSuperJobOAuth() bool {
	return c.SJClientID != "" && c.SJClientSecret != "" &&
		c.SJEmail != "" && c.SJPassword != ""
}
