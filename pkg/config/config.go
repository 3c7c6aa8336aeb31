/*
Package config manages the TOML config for lexiserve.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/lexiserve/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Server  ServerConfig  `toml:"server"`
	CLI     CliConfig     `toml:"cli"`
}

// SuggestConfig tunes the engine itself.
type SuggestConfig struct {
	MaxSuggestions  int `toml:"max_suggestions"`
	MaxEditDistance int `toml:"max_edit_distance"`
	MaxWordLen      int `toml:"max_word_len"`
	CachedPrefixes  int `toml:"cached_prefixes"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit  int `toml:"max_limit"`
	MinPrefix int `toml:"min_prefix"`
	MaxPrefix int `toml:"max_prefix"`
}

// CliConfig holds interactive interface options.
type CliConfig struct {
	DefaultLimit int    `toml:"default_limit"`
	Prompt       string `toml:"prompt"`
}

// DefaultConfig returns a Config with builtin defaults.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			MaxSuggestions:  10,
			MaxEditDistance: 2,
			MaxWordLen:      64,
			CachedPrefixes:  512,
		},
		Server: ServerConfig{
			MaxLimit:  10,
			MinPrefix: 1,
			MaxPrefix: 60,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
			Prompt:       "> ",
		},
	}
}

// GetConfigDir returns the config directory, falling back to the
// executable dir when no home directory is available.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	return filepath.Join(homeDir, ".config", "lexiserve"), nil
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [config dir]/lexiserve/config.toml
// 3. Builtin defaults
// It returns the config together with the path it was loaded from
// (empty when running on builtin defaults).
func LoadWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using builtin defaults...", configDir, err)
		return DefaultConfig(), nil
	}
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using builtin defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file on top of the builtin defaults, so
// omitted keys keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
