package notify

import (
	"testing"

	"github.com/colonyops/pillbox/internal/core/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Publish(t *testing.T) {
	t.Run("dispatches to all subscribers", func(t *testing.T) {
		b := NewBus()
		var got []notify.Notification
		b.Subscribe(func(n notify.Notification) { got = append(got, n) })
		b.Subscribe(func(n notify.Notification) { got = append(got, n) })

		b.Infof("dose recorded")

		require.Len(t, got, 2)
		assert.Equal(t, notify.LevelInfo, got[0].Level)
		assert.Equal(t, "dose recorded", got[0].Message)
	})

	t.Run("stamps created at", func(t *testing.T) {
		b := NewBus()
		var got notify.Notification
		b.Subscribe(func(n notify.Notification) { got = n })

		b.Errorf("could not reach backend: %s", "timeout")

		assert.False(t, got.CreatedAt.IsZero())
		assert.Equal(t, notify.LevelError, got.Level)
		assert.Equal(t, "could not reach backend: timeout", got.Message)
	})

	t.Run("publish with no subscribers is a no-op", func(t *testing.T) {
		b := NewBus()
		b.Warnf("nobody listening")
	})
}
