package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/registrame/registrame/internal/config"
	"github.com/registrame/registrame/internal/store"
)

// cfg is loaded once before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "registrame",
	Short: "AI lesson-plan wizard for teachers",
	Long: `RegistraME: terminal wizard that drafts DUA & STEM lesson plans with AI.

Describe the lesson (subject, topic, level, duration, methodology), generate the
DUA & STEM overview, then the objectives, didactic sequence and rubric, and
export the assembled plan to Markdown.

The generation backend is configured through the environment:
  API_KEY or GEMINI_API_KEY      Gemini (default)
  OPENAI_API_KEY                 OpenAI
  ANTHROPIC_API_KEY              Anthropic
  OPENROUTER_API_KEY             OpenRouter
  REGISTRAME_LLM_PROVIDER        force one of gemini, openai, anthropic, openrouter, mock
Variables may also be placed in a .env file in the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the LLM audit database (overrides REGISTRAME_DB)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides REGISTRAME_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "Env files to load before reading configuration (default .env)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(methodologiesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env files and REGISTRAME_* variables, then applies flag
// overrides.
func loadConfig(cmd *cobra.Command) error {
	files, _ := cmd.Flags().GetStringSlice("env-file")
	if _, err := config.LoadEnvFiles(files...); err != nil {
		return err
	}

	c, err := config.Load()
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.LogLevel = lvl
	}
	cfg = c
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REGISTRAME_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg == nil {
		return "", fmt.Errorf("configuration not loaded")
	}
	return cfg.ResolveDBPath()
}
