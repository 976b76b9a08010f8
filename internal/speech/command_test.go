package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Available(t *testing.T) {
	t.Parallel()

	t.Run("no listen command configured", func(t *testing.T) {
		c := NewCommand(nil, []string{"say"})
		assert.False(t, c.Available())
	})

	t.Run("listen command not on path", func(t *testing.T) {
		c := NewCommand([]string{"definitely-not-a-real-binary-xyz"}, nil)
		assert.False(t, c.Available())
	})

	t.Run("listen command resolvable", func(t *testing.T) {
		c := NewCommand([]string{"echo", "take my pill"}, nil)
		assert.True(t, c.Available())
	})
}

func TestCommand_Listen(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed stdout", func(t *testing.T) {
		c := NewCommand([]string{"echo", "take my pill"}, nil)
		transcript, err := c.Listen(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "take my pill", transcript)
	})

	t.Run("empty output is ErrNoSpeech", func(t *testing.T) {
		c := NewCommand([]string{"echo", ""}, nil)
		_, err := c.Listen(context.Background())
		assert.ErrorIs(t, err, ErrNoSpeech)
	})

	t.Run("command failure propagates", func(t *testing.T) {
		c := NewCommand([]string{"false"}, nil)
		_, err := c.Listen(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoSpeech)
	})
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	var c Capability = Disabled{}
	assert.False(t, c.Available())
	c.Speak("ignored")
}
