// Package config loads application settings from the environment and
// optional .env files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/registrame/registrame/internal/store"
)

// EnvPrefix is prepended to every variable read by Load.
const EnvPrefix = "REGISTRAME_"

// Config holds the environment driven application settings. LLM provider
// settings live in llm.Config.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFile receives logs while the TUI owns the terminal.
	// Empty resolves to the state directory; "-" disables file logging.
	LogFile string `env:"LOG_FILE"`

	// DBPath is the LLM audit database. Empty resolves to the data directory.
	DBPath string `env:"DB"`

	// Audit toggles recording of LLM calls in the audit database.
	Audit bool `env:"AUDIT" envDefault:"true"`

	// ExportDir is where the TUI writes exported plans.
	ExportDir string `env:"EXPORT_DIR" envDefault:"."`

	// KeepStaleSections keeps dependent sections when the overview is
	// regenerated.
	KeepStaleSections bool `env:"KEEP_STALE_SECTIONS" envDefault:"false"`
}

// Load parses REGISTRAME_* environment variables into Config.
//
// Loading order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (see LoadEnvFiles)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

// LoadEnvFiles loads the first-found variables of each existing file into
// the process environment without overriding variables already set. It
// returns the files that were loaded.
func LoadEnvFiles(paths ...string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var loaded []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}

// ResolveDBPath returns DBPath, or the default data-directory location.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// ResolveLogFile returns the TUI log file path, or "" when file logging is
// disabled. The default is $XDG_STATE_HOME/registrame/registrame.log, falling
// back to ~/.local/state.
func (c *Config) ResolveLogFile() (string, error) {
	switch c.LogFile {
	case "-":
		return "", nil
	case "":
	default:
		return c.LogFile, store.EnsureDir(c.LogFile)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "registrame", "registrame.log")
	return p, store.EnsureDir(p)
}
