package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/pillbox/internal/core/config"
	"github.com/colonyops/pillbox/internal/dose"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	BaseURL    string
	UserID     string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service is the reminder backend client
	Service dose.Service
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pillbox", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/pillbox/pillbox.log
// On Linux: $XDG_STATE_HOME/pillbox/pillbox.log (defaults to ~/.local/state/pillbox/pillbox.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "pillbox", "pillbox.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "pillbox", "pillbox.log")
	}

	return filepath.Join(home, ".local", "state", "pillbox", "pillbox.log")
}
