package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// EnvGeminiAPIKey holds the Google Gemini API credential.
	EnvGeminiAPIKey = "GEMINI_API_KEY"

	// EnvOpenAIAPIKey holds the OpenAI API credential.
	EnvOpenAIAPIKey = "OPENAI_API_KEY"

	// EnvProvidersDefaultModel overrides the default model identifier.
	EnvProvidersDefaultModel = "PROVIDERS_DEFAULT_MODEL"

	// EnvProvidersTemperature overrides the default sampling temperature.
	EnvProvidersTemperature = "PROVIDERS_TEMPERATURE"
)

// ProvidersConfig contains model provider credentials and generation defaults.
// Credentials are environment-only; they are never read from TOML so config
// files stay safe to commit.
type ProvidersConfig struct {
	DefaultModel string  `toml:"default_model"`
	Temperature  float64 `toml:"temperature"`

	GeminiAPIKey string `toml:"-"`
	OpenAIAPIKey string `toml:"-"`
}

// Finalize applies defaults, loads environment overrides, and validates the provider configuration.
func (c *ProvidersConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ProvidersConfig) Merge(overlay *ProvidersConfig) {
	if overlay.DefaultModel != "" {
		c.DefaultModel = overlay.DefaultModel
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
}

func (c *ProvidersConfig) loadDefaults() {
	if c.DefaultModel == "" {
		c.DefaultModel = "gemini-pro"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
}

func (c *ProvidersConfig) loadEnv() {
	c.GeminiAPIKey = os.Getenv(EnvGeminiAPIKey)
	c.OpenAIAPIKey = os.Getenv(EnvOpenAIAPIKey)

	if v := os.Getenv(EnvProvidersDefaultModel); v != "" {
		c.DefaultModel = v
	}
	if v := os.Getenv(EnvProvidersTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = t
		}
	}
}

func (c *ProvidersConfig) validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", c.Temperature)
	}
	return nil
}
