// Package config provides hierarchical configuration management for reqt using koanf.
// Configuration is loaded with priority: environment variables (REQT_*) > user config
// (~/.config/reqt/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the reqt CLI tool configuration.
type Configuration struct {
	// SkipConfirmations answers "yes" to the overwrite prompt of `reqt init`.
	// Also forced on by the REQT_YES env var.
	SkipConfirmations bool `koanf:"skip_confirmations"`
	// NoColor disables colored output.
	NoColor bool `koanf:"no_color"`
	// ASCII prints [OK]/[WARN] markers instead of Unicode symbols.
	ASCII bool `koanf:"ascii"`
	// IDScheme selects the seed record ID generator: uuid7 | uuid4.
	IDScheme string `koanf:"id_scheme" validate:"required,oneof=uuid7 uuid4"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// UserConfigPath overrides the user config path (for testing).
	UserConfigPath string
}

// Load loads configuration from defaults, the user config file and the environment.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath, _ = UserConfigPath()
	}
	if fileExists(userPath) {
		if err := ValidateYAMLSyntax(userPath); err != nil {
			return nil, fmt.Errorf("validating user config: %w", err)
		}
		if err := k.Load(file.Provider(userPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading user config %s: %w", userPath, err)
		}
	}

	if err := k.Load(env.Provider("REQT_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, userPath); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if os.Getenv("REQT_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: REQT_ID_SCHEME -> id_scheme
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "REQT_"))
}
