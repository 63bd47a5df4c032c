package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mveld/burrow/internal/logger"
)

// Config holds all burrow configuration
type Config struct {
	StartDir       string `json:"start_dir"`       // Directory to open when none is given on the command line
	Editor         string `json:"editor"`          // Preferred editor for the open-in-editor action
	PreviewEnabled bool   `json:"preview_enabled"` // Show the preview pane on startup
	MaxResults     int    `json:"max_results"`     // Result cap for headless --json output
}

const (
	defaultMaxResults = 100
	maxMaxResults     = 10000
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		StartDir:       "",
		Editor:         "",
		PreviewEnabled: true,
		MaxResults:     defaultMaxResults,
	}
}

// Load reads config from ~/.config/burrow/config.json.
// Missing or unparsable files fall back to defaults; a missing file is
// written out so users have something to edit.
func Load() *Config {
	defaults := Default()

	configPath, err := Path()
	if err != nil {
		logger.Error("Failed to locate config: %v", err)
		return defaults
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		logger.Error("Failed to create config directory: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if err := Save(defaults); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return defaults
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", configPath, err)
		return defaults
	}

	// Clamp the headless result cap to something sane
	if config.MaxResults <= 0 {
		config.MaxResults = defaults.MaxResults
	} else if config.MaxResults > maxMaxResults {
		logger.Warn("MaxResults too high (%d), using maximum of %d", config.MaxResults, maxMaxResults)
		config.MaxResults = maxMaxResults
	}

	return config
}

// Save writes config to ~/.config/burrow/config.json
func Save(config *Config) error {
	configPath, err := Path()
	if err != nil {
		return fmt.Errorf("cannot locate config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// Path returns the path to the config file
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "burrow", "config.json"), nil
}
