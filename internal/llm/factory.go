package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/registrame/registrame/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger zerolog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewPlaceholderProvider()
	default:
		return nil, &ErrUnknownProvider{Name: cfg.Provider}
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → logging → base
	return WithLogging(base, cfg.Provider, eventRepo, logger), nil
}

// NewProviderFromEnv resolves configuration from the environment and builds
// a provider. When REGISTRAME_LLM_PROVIDER is unset and the default provider
// has no key, the common *_API_KEY variables are probed. The resolved Config
// is returned even when err is non-nil so callers can report it.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, logger zerolog.Logger) (Provider, Config, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, cfg, err
	}

	if os.Getenv(EnvPrefix+"LLM_PROVIDER") == "" && !cfg.HasCredentials() {
		if discovered, ok := DiscoverConfig(); ok {
			cfg.adoptCredentials(discovered)
		}
	}

	p, err := NewProvider(ctx, cfg, eventRepo, logger)
	return p, cfg, err
}
