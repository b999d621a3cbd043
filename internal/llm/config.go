package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
)

// EnvPrefix is prepended to every variable read by ConfigFromEnv.
const EnvPrefix = "REGISTRAME_"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string `env:"LLM_PROVIDER"`

	Gemini     GeminiConfig     `envPrefix:"GEMINI_"`
	OpenAI     OpenAIConfig     `envPrefix:"OPENAI_"`
	Anthropic  AnthropicConfig  `envPrefix:"ANTHROPIC_"`
	OpenRouter OpenRouterConfig `envPrefix:"OPENROUTER_"`

	// Timeout is the maximum duration for a single generation call.
	Timeout time.Duration `env:"LLM_TIMEOUT"`

	// MaxTokens caps each generated section. Zero leaves the provider default.
	MaxTokens int `env:"LLM_MAX_TOKENS"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL"` // Default: "gemini-3-flash"

	// ThinkingBudget is passed to the model's thinking config. Zero disables
	// thinking, negative leaves the model default.
	ThinkingBudget int `env:"THINKING_BUDGET"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`    // Default: "gpt-4o-mini"
	BaseURL string `env:"BASE_URL"` // Optional. Override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL"` // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`    // Default: "google/gemini-2.5-flash"
	BaseURL string `env:"BASE_URL"` // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-3-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Timeout:   60 * time.Second,
		MaxTokens: 4096,
	}
}

// ConfigFromEnv builds a Config from REGISTRAME_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse LLM config: %w", err)
	}
	return cfg, nil
}

// DiscoverConfig probes the common API key variables in priority order
// (API_KEY and GEMINI_API_KEY → OPENAI_API_KEY → ANTHROPIC_API_KEY →
// OPENROUTER_API_KEY) and returns a Config for the first provider whose key
// is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	for _, name := range []string{"API_KEY", "GEMINI_API_KEY"} {
		if k := os.Getenv(name); k != "" {
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = k
			return cfg, true
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// adoptCredentials takes the provider and its API key from a discovered
// config and keeps every other setting of c.
func (c *Config) adoptCredentials(d Config) {
	c.Provider = d.Provider
	switch d.Provider {
	case "gemini":
		c.Gemini.APIKey = d.Gemini.APIKey
	case "openai":
		c.OpenAI.APIKey = d.OpenAI.APIKey
	case "anthropic":
		c.Anthropic.APIKey = d.Anthropic.APIKey
	case "openrouter":
		c.OpenRouter.APIKey = d.OpenRouter.APIKey
	}
}

// HasCredentials reports whether the selected provider has its key set.
func (c Config) HasCredentials() bool {
	return c.Validate() == nil
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return &ErrMissingAPIKey{Provider: c.Provider, EnvVar: EnvPrefix + "GEMINI_API_KEY"}
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return &ErrMissingAPIKey{Provider: c.Provider, EnvVar: EnvPrefix + "OPENAI_API_KEY"}
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return &ErrMissingAPIKey{Provider: c.Provider, EnvVar: EnvPrefix + "ANTHROPIC_API_KEY"}
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return &ErrMissingAPIKey{Provider: c.Provider, EnvVar: EnvPrefix + "OPENROUTER_API_KEY"}
		}
	case "mock":
		// No API key needed.
	default:
		return &ErrUnknownProvider{Name: c.Provider}
	}
	return nil
}
