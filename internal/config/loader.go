package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads settings.
// Search order: customPath -> embedded default -> Default().
// Keys missing from a custom file keep their default values.
func Load(customPath string) (Settings, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	var embedded Settings
	if err := yaml.Unmarshal(defaultSettingsYAML, &embedded); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}
