// Package config provides loading, saving, and access to the application
// configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the configurable paths of the application: where the snapshot
// lives, where the bundled demo images are searched for, and where the logs
// and shell history go.
type Config struct {
	DataDir      string `json:"data_dir"`
	SnapshotFile string `json:"snapshot_file"`
	AssetDir     string `json:"asset_dir"`
	LogDir       string `json:"log_dir"`
	CommandLog   string `json:"command_log"`
	ErrorLog     string `json:"error_log"`
	HistoryFile  string `json:"history_file"`
}

var (
	currentConfig *Config
	configPath    = "./data/config.json"
)

// ConfigLoad loads the configuration from the JSON file, creating a default
// configuration when the file does not exist yet.
func ConfigLoad() error {
	dataDir := filepath.Dir(configPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultConfig := &Config{
			DataDir:      "./data",
			SnapshotFile: "photos.json",
			AssetDir:     "./assets",
			LogDir:       "./log",
			CommandLog:   "commands.log",
			ErrorLog:     "errors.log",
			HistoryFile:  "./data/history",
		}
		if err := ConfigSave(defaultConfig); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
		currentConfig = defaultConfig
		return nil
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	currentConfig = &Config{}
	if err := json.Unmarshal(file, currentConfig); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	return nil
}

// ConfigSave saves the provided configuration to the JSON file.
func ConfigSave(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// ConfigGet returns the current configuration.
func ConfigGet() *Config {
	return currentConfig
}

// SnapshotPath returns the full path to the snapshot file.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.DataDir, c.SnapshotFile)
}
