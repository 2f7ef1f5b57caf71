package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvAuthSecret holds the JWT signing secret.
	EnvAuthSecret = "AUTH_SECRET"

	// EnvAuthTokenTTL overrides the access token lifetime.
	EnvAuthTokenTTL = "AUTH_TOKEN_TTL"
)

// AuthConfig contains authentication settings. The signing secret is
// environment-only and never read from TOML.
type AuthConfig struct {
	TokenTTL string `toml:"token_ttl"`

	Secret string `toml:"-"`
}

// TokenTTLDuration parses and returns the token lifetime as a time.Duration.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the auth configuration.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.TokenTTL == "" {
		c.TokenTTL = "24h"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthSecret); v != "" {
		c.Secret = v
	}
}

func (c *AuthConfig) validate() error {
	if _, err := time.ParseDuration(c.TokenTTL); err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	return nil
}
