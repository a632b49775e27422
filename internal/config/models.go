package config

import (
	"time"

	"github.com/muurk/countryfinder/internal/urls"
)

// CurrentVersion is the settings file format version this build reads and writes.
const CurrentVersion = 1

// Settings represents the user configuration file.
type Settings struct {
	Version     int           `yaml:"version"`
	Endpoint    string        `yaml:"endpoint,omitempty"`     // Country directory URL
	HTTPTimeout time.Duration `yaml:"http_timeout,omitempty"` // e.g. "10s"; 0 waits as long as the transport does
	LogLevel    string        `yaml:"log_level,omitempty"`    // debug, info, warn, error; empty disables logging
	LogFile     string        `yaml:"log_file,omitempty"`     // Where the TUI writes its log; empty uses DefaultLogPath
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:  CurrentVersion,
		Endpoint: urls.DirectoryEndpoint,
	}
}

// applyDefaults fills in fields a hand-edited file may have left out.
func (s *Settings) applyDefaults() {
	if s.Endpoint == "" {
		s.Endpoint = urls.DirectoryEndpoint
	}
}
