// Package config handles configuration loading and validation for pillbox.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Presentation modes.
const (
	ModeElder     = "elder"
	ModeCaregiver = "caregiver"
)

// Config holds the application configuration.
type Config struct {
	// BaseURL of the reminder backend, e.g. "http://localhost:8080".
	BaseURL string `yaml:"base_url"`
	// UserID is the elder identity all requests act against.
	UserID string `yaml:"user_id"`
	// Mode selects the presentation mode at startup: elder or caregiver.
	Mode string `yaml:"mode"`
	// SnoozeMinutes is how far a snoozed dose is deferred.
	SnoozeMinutes int `yaml:"snooze_minutes"`

	TUI    TUIConfig    `yaml:"tui"`
	Speech SpeechConfig `yaml:"speech"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// SpeechConfig wires the host speech commands. Listen must print a
// recognized transcript to stdout; Speak receives the reply text as its
// final argument. Leaving Listen empty disables the voice affordance.
type SpeechConfig struct {
	Listen []string `yaml:"listen"`
	Speak  []string `yaml:"speak"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserID:        "elder-1",
		Mode:          ModeElder,
		SnoozeMinutes: 15,
		TUI: TUIConfig{
			Theme: "tokyo-night",
		},
	}
}

// Load reads configuration from the given path. A missing file returns
// defaults; a present but malformed file is an error.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.UserID == "" {
		c.UserID = defaults.UserID
	}
	if c.Mode == "" {
		c.Mode = defaults.Mode
	}
	if c.SnoozeMinutes <= 0 {
		c.SnoozeMinutes = defaults.SnoozeMinutes
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Mode != ModeElder && c.Mode != ModeCaregiver {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeElder, ModeCaregiver, c.Mode)
	}
	if len(c.Speech.Speak) > 0 && len(c.Speech.Listen) == 0 {
		return fmt.Errorf("speech.speak configured without speech.listen")
	}
	return nil
}
