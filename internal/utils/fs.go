package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// FileExists simply checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates the directory if it doesn't exist.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// LoadTOMLFile decodes a TOML file into cfg.
func LoadTOMLFile(path string, cfg any) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		log.Warnf("TOML parse error in %s: %v", path, err)
		return err
	}
	return nil
}

// SaveTOMLFile encodes data into a TOML file, creating it if needed.
func SaveTOMLFile(data any, path string) error {
	file, err := os.Create(path)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(data)
}

// GetExecutableDir returns the directory of the running binary. Used as
// the config-dir fallback when the home directory is unavailable.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}
