package today

import (
	"errors"
	"testing"

	"github.com/colonyops/pillbox/internal/dose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func due(id, at string) dose.DueItem {
	return dose.DueItem{
		MedicationID: id,
		Name:         "Aspirin",
		Dosage:       "100mg",
		ScheduledAt:  at,
	}
}

func TestController_ApplyLoad(t *testing.T) {
	t.Run("replaces collection wholesale", func(t *testing.T) {
		c := NewController()
		c.BeginLoad()
		c.ApplyLoad([]dose.DueItem{due("m1", "08:00"), due("m2", "09:00")}, nil)

		require.Len(t, c.Items(), 2)
		assert.True(t, c.Loaded())
		assert.False(t, c.Loading())

		c.BeginLoad()
		c.ApplyLoad([]dose.DueItem{due("m3", "12:00")}, nil)
		require.Len(t, c.Items(), 1)
		assert.Equal(t, "m3", c.Items()[0].MedicationID)
	})

	t.Run("empty result is valid and displayable", func(t *testing.T) {
		c := NewController()
		c.BeginLoad()
		c.ApplyLoad([]dose.DueItem{}, nil)

		assert.Empty(t, c.Items())
		assert.True(t, c.Loaded())
		assert.Empty(t, c.Failure())
	})

	t.Run("failure retains prior collection", func(t *testing.T) {
		c := NewController()
		c.BeginLoad()
		c.ApplyLoad([]dose.DueItem{due("m1", "08:00")}, nil)

		c.BeginLoad()
		c.ApplyLoad(nil, errors.New("connection refused"))

		require.Len(t, c.Items(), 1)
		assert.Equal(t, "connection refused", c.Failure())
		assert.True(t, c.Loaded())
	})

	t.Run("empty result and failed result are distinguishable", func(t *testing.T) {
		succeeded := NewController()
		succeeded.BeginLoad()
		succeeded.ApplyLoad(nil, nil)

		failed := NewController()
		failed.BeginLoad()
		failed.ApplyLoad(nil, errors.New("boom"))

		assert.Empty(t, succeeded.Failure())
		assert.True(t, succeeded.Loaded())
		assert.NotEmpty(t, failed.Failure())
		assert.False(t, failed.Loaded())
	})

	t.Run("success clears a prior failure", func(t *testing.T) {
		c := NewController()
		c.BeginLoad()
		c.ApplyLoad(nil, errors.New("boom"))
		c.BeginLoad()
		c.ApplyLoad([]dose.DueItem{due("m1", "08:00")}, nil)

		assert.Empty(t, c.Failure())
	})

	t.Run("last completion wins regardless of issue order", func(t *testing.T) {
		c := NewController()
		c.BeginLoad() // load A issued
		c.BeginLoad() // load B issued

		// B's response arrives first, then A's.
		c.ApplyLoad([]dose.DueItem{due("mB", "10:00")}, nil)
		c.ApplyLoad([]dose.DueItem{due("mA", "08:00")}, nil)

		require.Len(t, c.Items(), 1)
		assert.Equal(t, "mA", c.Items()[0].MedicationID)
		assert.False(t, c.Loading())
	})

	t.Run("idempotent reload yields identical collection", func(t *testing.T) {
		backend := []dose.DueItem{due("m1", "08:00"), due("m2", "09:00")}

		c := NewController()
		c.BeginLoad()
		c.ApplyLoad(backend, nil)
		first := c.Items()

		c.BeginLoad()
		c.ApplyLoad(backend, nil)
		assert.Equal(t, first, c.Items())
	})
}

func TestController_Cursor(t *testing.T) {
	t.Run("navigation clamps at both ends", func(t *testing.T) {
		c := NewController()
		c.ApplyLoad([]dose.DueItem{due("m1", "08:00"), due("m2", "09:00")}, nil)

		c.MoveUp()
		assert.Equal(t, 0, c.Cursor())

		c.MoveDown()
		c.MoveDown()
		c.MoveDown()
		assert.Equal(t, 1, c.Cursor())
	})

	t.Run("cursor clamps when reload shrinks the list", func(t *testing.T) {
		c := NewController()
		c.ApplyLoad([]dose.DueItem{due("m1", "08:00"), due("m2", "09:00"), due("m3", "10:00")}, nil)
		c.MoveDown()
		c.MoveDown()
		assert.Equal(t, 2, c.Cursor())

		c.ApplyLoad([]dose.DueItem{due("m1", "08:00")}, nil)
		assert.Equal(t, 0, c.Cursor())
		require.NotNil(t, c.Selected())
		assert.Equal(t, "m1", c.Selected().MedicationID)
	})

	t.Run("selected is nil on empty list", func(t *testing.T) {
		c := NewController()
		assert.Nil(t, c.Selected())

		c.ApplyLoad([]dose.DueItem{}, nil)
		assert.Nil(t, c.Selected())
	})
}
