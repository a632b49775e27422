// Package config provides user configuration management for countryfinder.
//
// Settings live in a small YAML file holding the directory endpoint, the HTTP
// timeout and logging options. The configuration follows OS-specific
// conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/countryfinder/config.yaml or $HOME/.config/countryfinder/config.yaml
//   - macOS: $HOME/.config/countryfinder/config.yaml
//   - Windows: %LOCALAPPDATA%\countryfinder\config.yaml
//
// Setting COUNTRYFINDER_CONFIG_DIR replaces the directory on every platform.
//
// A missing file is not an error: Load returns defaults.
//
// # Usage Example
//
//	settings, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.HTTPTimeout = 15 * time.Second
//
//	// Save changes atomically
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// Command-line flags take precedence over the file; see cmd/countryfinder.
package config
