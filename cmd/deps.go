package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/registrame/registrame/internal/gateway"
	"github.com/registrame/registrame/internal/llm"
	"github.com/registrame/registrame/internal/plan"
	"github.com/registrame/registrame/internal/store"
)

// openAuditStore opens the LLM audit database. It returns a nil store when
// auditing is disabled.
func openAuditStore(cmd *cobra.Command) (*store.Store, error) {
	if !cfg.Audit {
		return nil, nil
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// eventRepo returns the audit repository of st, or nil without a store.
func eventRepo(st *store.Store) store.EventRepo {
	if st == nil {
		return nil
	}
	return st.EventRepo()
}

// wizard is a plan machine plus a description of its backend.
type wizard struct {
	Machine   *plan.Machine
	Backend   string
	ConfigErr error
}

// newWizard builds the provider from the environment and a Machine on top
// of it. A provider that cannot be built yields a Machine whose generations
// fail with *gateway.ConfigurationError, so the TUI can still start.
func newWizard(ctx context.Context, repo store.EventRepo, logger zerolog.Logger) wizard {
	var gw gateway.Gateway
	provider, llmCfg, err := llm.NewProviderFromEnv(ctx, repo, logger)
	backend := ""
	if err != nil {
		logger.Warn().Err(err).Str("provider", llmCfg.Provider).Msg("generation backend not configured")
		gw = gateway.Unconfigured(err)
	} else {
		gwCfg := gateway.DefaultConfig()
		if llmCfg.Timeout > 0 {
			gwCfg.Timeout = llmCfg.Timeout
		}
		if llmCfg.MaxTokens > 0 {
			gwCfg.MaxTokens = llmCfg.MaxTokens
		}
		gw = gateway.New(provider, gwCfg)
		backend = llmCfg.Provider + "/" + provider.ModelID()
	}

	opts := []plan.Option{plan.WithLogger(logger)}
	if cfg.KeepStaleSections {
		opts = append(opts, plan.WithKeepStaleSections())
	}

	return wizard{
		Machine:   plan.New(gw, opts...),
		Backend:   backend,
		ConfigErr: err,
	}
}
