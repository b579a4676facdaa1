package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "memory.yaml"
	localConfigDir = "configs"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.memory/config.yaml -> ./configs/memory.yaml -> embedded default
func Load(customPath string) (Config, error) {
	return loadFrom(customPath, userConfigPath(), filepath.Join(localConfigDir, configFileName))
}

func loadFrom(customPath, userPath, localPath string) (Config, error) {
	// Custom path errors are reported; the user asked for that file
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userPath, localPath} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMemoryYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration.
// Missing fields fall back to the built-in defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	def := Default()
	if cfg.HideDelayMS == 0 {
		cfg.HideDelayMS = def.HideDelayMS
	}
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = def.Tiers
		if cfg.DefaultDifficulty == "" {
			cfg.DefaultDifficulty = def.DefaultDifficulty
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "config.yaml")
}
