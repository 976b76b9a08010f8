package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pillbox/internal/core/notify"
)

func TestToastController(t *testing.T) {
	note := func(msg string) notify.Notification {
		return notify.Notification{Level: notify.LevelInfo, Message: msg}
	}

	t.Run("push evicts oldest beyond max", func(t *testing.T) {
		c := NewToastController()
		for _, msg := range []string{"one", "two", "three", "four"} {
			c.Push(note(msg))
		}

		toasts := c.Toasts()
		require.Len(t, toasts, defaultMaxToasts)
		assert.Equal(t, "two", toasts[0].notification.Message)
		assert.Equal(t, "four", toasts[2].notification.Message)
	})

	t.Run("tick expires toasts after ttl", func(t *testing.T) {
		c := NewToastController()
		c.Push(note("hello"))

		c.Tick(defaultToastTTL - time.Millisecond)
		assert.True(t, c.HasToasts())

		c.Tick(time.Millisecond)
		assert.False(t, c.HasToasts())
	})

	t.Run("dismiss removes newest", func(t *testing.T) {
		c := NewToastController()
		c.Push(note("first"))
		c.Push(note("second"))

		c.Dismiss()
		require.Len(t, c.Toasts(), 1)
		assert.Equal(t, "first", c.Toasts()[0].notification.Message)

		c.Dismiss()
		c.Dismiss()
		assert.False(t, c.HasToasts())
	})
}
