// Package config provides user configuration management for readme-agent.
//
// Preferences live in a YAML file in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/readme-agent/config.yaml or $HOME/.config/readme-agent/config.yaml
//   - macOS: $HOME/.config/readme-agent/config.yaml
//   - Windows: %LOCALAPPDATA%\readme-agent\config.yaml
//
// A missing file is not an error; the defaults are used. Missing keys are
// filled with defaults as well.
//
// # Example file
//
//	version: 1
//	preferences:
//	    default_category: api
//	    generate_delay: 3s
//	    notification_timeout: 4s
//	    log_level: debug
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	start := cfg.Preferences.StartCategory()
//
// Save writes atomically through a temporary file and rename.
package config
