// Package notify defines the user-facing notification type surfaced as
// toasts in the TUI.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single surfaced message.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}
