package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "countryfinder"
	configFile = "config.yaml"
	logFile    = "countryfinder.log"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// ConfigDirEnvVar overrides the settings directory when set.
const ConfigDirEnvVar = "COUNTRYFINDER_CONFIG_DIR"

// GetConfigDir returns the directory holding the settings file and the
// browser log. ConfigDirEnvVar wins when set; otherwise it is appName under
// %LOCALAPPDATA% on Windows, and under $XDG_CONFIG_HOME or ~/.config
// everywhere else, macOS included.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return dir, nil
	}

	base, err := configHome(runtime.GOOS)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// configHome returns the per-user directory that application folders live in.
func configHome(goos string) (string, error) {
	if goos == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return dir, nil
		}
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "AppData", "Local"), nil
		}
		return "", errors.New("cannot locate the settings directory: neither LOCALAPPDATA nor USERPROFILE is set")
	}

	// macOS follows the XDG layout too
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && goos != "darwin" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate the settings directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// DefaultLogPath returns where the TUI writes its log when log_file is unset.
// The terminal belongs to the interface while it runs, so logs go to a file.
func DefaultLogPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFile), nil
}

// Load reads the settings file from the default location.
// If the file doesn't exist, returns default settings.
func Load() (*Settings, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFile(configPath)
}

// LoadFile reads and validates the settings file at path.
// If the file doesn't exist, returns default settings.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if settings.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", settings.Version, CurrentVersion)
	}

	settings.applyDefaults()

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &settings, nil
}

// Save writes the settings to the default location.
func (s *Settings) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return s.SaveFile(configPath)
}

// SaveFile writes the settings to path.
// Performs an atomic write to prevent corruption on crash.
func (s *Settings) SaveFile(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	// User-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# countryfinder configuration file
#
# endpoint:     country directory URL
# http_timeout: request timeout such as "10s"; omit to wait indefinitely
# log_level:    debug, info, warn or error; omit to disable logging
# log_file:     log destination for the interactive browser
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
