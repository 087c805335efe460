package config

import (
	"fmt"
	"time"

	"github.com/muurk/readme-agent/internal/catalog"
	"github.com/muurk/readme-agent/internal/generate"
)

// CurrentVersion is the config file schema version
const CurrentVersion = 1

// DefaultNotificationTimeout is how long a notification stays on screen.
const DefaultNotificationTimeout = 4 * time.Second

// Config represents the entire user configuration file.
type Config struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultCategory     string        `yaml:"default_category"`     // Category selected at startup
	GenerateDelay       time.Duration `yaml:"generate_delay"`       // Mock generation duration (e.g., "3s")
	NotificationTimeout time.Duration `yaml:"notification_timeout"` // How long notifications stay visible
	LogLevel            string        `yaml:"log_level,omitempty"`  // Empty keeps logging silent
	LogFile             string        `yaml:"log_file,omitempty"`   // Empty uses the config directory
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
	}
}

// DefaultPreferences returns the built-in preference values
func DefaultPreferences() *Preferences {
	return &Preferences{
		DefaultCategory:     catalog.DefaultCategory,
		GenerateDelay:       generate.DefaultDelay,
		NotificationTimeout: DefaultNotificationTimeout,
	}
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	defaults := DefaultPreferences()
	if c.Preferences == nil {
		c.Preferences = defaults
		return
	}
	if c.Preferences.DefaultCategory == "" {
		c.Preferences.DefaultCategory = defaults.DefaultCategory
	}
	if c.Preferences.GenerateDelay <= 0 {
		c.Preferences.GenerateDelay = defaults.GenerateDelay
	}
	if c.Preferences.NotificationTimeout <= 0 {
		c.Preferences.NotificationTimeout = defaults.NotificationTimeout
	}
}

// Validate checks the preferences for values the application cannot use.
// An unknown default_category is not an error: StartCategory falls back.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.Preferences == nil {
		return nil
	}
	if c.Preferences.GenerateDelay < 0 {
		return fmt.Errorf("generate_delay must not be negative, got %s", c.Preferences.GenerateDelay)
	}
	return nil
}

// StartCategory returns the configured start category, or the catalog
// default when the configured id is unknown.
func (p *Preferences) StartCategory() string {
	if p != nil && catalog.IsKnown(p.DefaultCategory) {
		return p.DefaultCategory
	}
	return catalog.DefaultCategory
}

// UnknownCategory reports whether default_category names no catalog entry
func (p *Preferences) UnknownCategory() bool {
	return p != nil && p.DefaultCategory != "" && !catalog.IsKnown(p.DefaultCategory)
}
