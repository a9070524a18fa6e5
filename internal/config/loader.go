package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/lanerunner.yaml
var defaultYAML []byte

const fileName = "lanerunner.yaml"

// Load reads the configuration and validates it. Fields missing from the
// file keep their default values.
// Search order: customPath -> ~/.lanerunner/config.yaml -> ./configs/lanerunner.yaml -> embedded default
func Load(customPath string) (Config, string, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := parse(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := parse(data, &cfg); err == nil {
				return cfg, userCfgPath, cfg.Validate()
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(local); err == nil {
		if err := parse(data, &cfg); err == nil {
			return cfg, local, cfg.Validate()
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := parse(defaultYAML, &cfg); err != nil {
		return Default(), "builtin", nil
	}
	return cfg, "embedded", cfg.Validate()
}

// parse decodes data over cfg. Each action listed under keys replaces
// that action's bindings; unlisted actions keep theirs.
func parse(data []byte, cfg *Config) error {
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanerunner", "config.yaml")
}
