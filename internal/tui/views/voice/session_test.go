package voice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_HappyPath(t *testing.T) {
	var surfaced []string
	s := NewSession(func(msg string) { surfaced = append(surfaced, msg) })

	assert.True(t, s.Idle())

	assert.Equal(t, EffectListen, s.Start())
	assert.Equal(t, PhaseListening, s.Phase())

	// Transcript is surfaced before any network activity.
	assert.Equal(t, EffectSubmit, s.HandleResult("take my pill"))
	assert.Equal(t, PhaseTranscribing, s.Phase())
	require.Len(t, surfaced, 1)
	assert.Equal(t, "You said: take my pill", surfaced[0])

	s.BeginSubmit()
	assert.Equal(t, PhaseAwaitingReply, s.Phase())

	assert.Equal(t, EffectSpeak, s.HandleReply("Reminder noted", nil))
	assert.Equal(t, PhaseSpeaking, s.Phase())
	assert.Equal(t, "Reminder noted", s.Reply())
	require.Len(t, surfaced, 2)
	assert.Equal(t, "Reminder noted", surfaced[1])

	// Idle reentry happens once playback is requested, not when it ends.
	s.FinishSpeak()
	assert.True(t, s.Idle())
	assert.Empty(t, s.Transcript())
}

func TestSession_DoubleStartIsNoOp(t *testing.T) {
	s := NewSession(nil)

	assert.Equal(t, EffectListen, s.Start())
	for _, phase := range []func(){
		func() {},
		func() { s.HandleResult("hello") },
		func() { s.BeginSubmit() },
	} {
		phase()
		assert.Equal(t, EffectNone, s.Start(), "start must be a no-op while phase=%s", s.Phase())
	}
}

func TestSession_EndWithoutResult(t *testing.T) {
	var surfaced []string
	s := NewSession(func(msg string) { surfaced = append(surfaced, msg) })

	s.Start()
	s.HandleEnd()

	assert.True(t, s.Idle())
	assert.Empty(t, surfaced, "a silent end is a clean abort, not an error")
}

func TestSession_EndAfterResultIsIgnored(t *testing.T) {
	s := NewSession(nil)

	s.Start()
	s.HandleResult("take my pill")
	// The engine fires its end event after the result; the session has
	// already moved on.
	s.HandleEnd()

	assert.Equal(t, PhaseTranscribing, s.Phase())
}

func TestSession_SubmitFailureReturnsToIdle(t *testing.T) {
	var surfaced []string
	s := NewSession(func(msg string) { surfaced = append(surfaced, msg) })

	s.Start()
	s.HandleResult("take my pill")
	s.BeginSubmit()

	effect := s.HandleReply("", errors.New("connection refused"))

	assert.Equal(t, EffectNone, effect)
	assert.True(t, s.Idle(), "session must never remain stuck awaiting a reply")
	require.Len(t, surfaced, 2)
	assert.NotEqual(t, "", surfaced[1])
	assert.NotContains(t, surfaced[1], "connection refused")
}

func TestSession_PhaseMonotonicity(t *testing.T) {
	// Events delivered out of phase must all be no-ops.
	s := NewSession(nil)

	assert.Equal(t, EffectNone, s.HandleResult("stray"))
	assert.Equal(t, EffectNone, s.HandleReply("stray", nil))
	s.BeginSubmit()
	s.FinishSpeak()
	assert.True(t, s.Idle())

	s.Start()
	assert.Equal(t, EffectNone, s.HandleReply("stray", nil), "reply before submit is ignored")
	s.FinishSpeak()
	assert.Equal(t, PhaseListening, s.Phase())
}

func TestSession_NewSessionAfterCompletion(t *testing.T) {
	s := NewSession(nil)

	s.Start()
	s.HandleResult("first")
	s.BeginSubmit()
	s.HandleReply("ok", nil)
	s.FinishSpeak()

	assert.Equal(t, EffectListen, s.Start(), "a fresh session may begin once idle")
	assert.Empty(t, s.Reply(), "prior session state is cleared")
}
