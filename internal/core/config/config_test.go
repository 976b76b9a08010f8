package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)
		assert.Equal(t, "elder-1", cfg.UserID)
		assert.Equal(t, ModeElder, cfg.Mode)
		assert.Equal(t, 15, cfg.SnoozeMinutes)
		assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
base_url: http://localhost:8080
user_id: grandma
mode: caregiver
snooze_minutes: 30
tui:
  theme: gruvbox
speech:
  listen: ["rec-stt"]
  speak: ["say"]
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
		assert.Equal(t, "grandma", cfg.UserID)
		assert.Equal(t, ModeCaregiver, cfg.Mode)
		assert.Equal(t, 30, cfg.SnoozeMinutes)
		assert.Equal(t, "gruvbox", cfg.TUI.Theme)
		assert.Equal(t, []string{"rec-stt"}, cfg.Speech.Listen)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := writeConfig(t, "base_url: http://localhost:9999\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
		assert.Equal(t, 15, cfg.SnoozeMinutes)
		assert.Equal(t, ModeElder, cfg.Mode)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "base_url: [unclosed\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config file")
	})

	t.Run("invalid mode is rejected", func(t *testing.T) {
		path := writeConfig(t, "mode: nurse\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mode must be")
	})

	t.Run("speak without listen is rejected", func(t *testing.T) {
		path := writeConfig(t, "speech:\n  speak: [\"say\"]\n")
		_, err := Load(path)
		require.Error(t, err)
	})
}
