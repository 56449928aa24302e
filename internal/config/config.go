// Package config loads server configuration from built-in defaults, an
// optional JSON or TOML file, and ACES_* environment variables, in that
// order of increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// ACES_GOVERNANCE_REPO or ACES_GH_TIMEOUT.
const EnvPrefix = "ACES_"

type Config struct {
	// GovernanceRepo is the governance checkout. Empty means resolve it
	// relative to the installed binary.
	GovernanceRepo string        `koanf:"governance_repo"`
	IssueRepo      string        `koanf:"issue_repo" validate:"required,repo_slug"`
	IssueLabel     string        `koanf:"issue_label" validate:"required"`
	GHCommand      string        `koanf:"gh_command" validate:"required"`
	GHTimeout      time.Duration `koanf:"gh_timeout" validate:"gt=0"`
	LogLevel       string        `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      string        `koanf:"log_format" validate:"oneof=text json"`
}

// Defaults returns the built-in values keyed by koanf path.
func Defaults() map[string]any {
	return map[string]any{
		"governance_repo": "",
		"issue_repo":      "aces-framework/aces",
		"issue_label":     "governance",
		"gh_command":      "gh",
		"gh_timeout":      "30s",
		"log_level":       "info",
		"log_format":      "text",
	}
}

// Load builds the configuration. path may be empty; a non-empty path must
// name an existing .json or .toml file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return TOMLParser(), nil
	}
	return nil, fmt.Errorf("unsupported config format %q (want .json or .toml)", filepath.Ext(path))
}

func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
