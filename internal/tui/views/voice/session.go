// Package voice drives one speech interaction end-to-end as an explicit
// finite-state machine: start listening, receive a transcript, submit it
// to the backend, speak the reply, return to idle.
package voice

// Phase is the state of the single voice exchange. Transitions are
// monotonic within a session; any terminal event resets to PhaseIdle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseListening
	PhaseTranscribing
	PhaseAwaitingReply
	PhaseSpeaking
)

// String implements fmt.Stringer for logging.
func (p Phase) String() string {
	switch p {
	case PhaseListening:
		return "listening"
	case PhaseTranscribing:
		return "transcribing"
	case PhaseAwaitingReply:
		return "awaiting-reply"
	case PhaseSpeaking:
		return "speaking"
	default:
		return "idle"
	}
}

// Effect tells the caller which side effect to perform after an event.
// The session itself never touches the network or the speech engine.
type Effect int

const (
	EffectNone Effect = iota
	// EffectListen: begin recognition on the capability adapter.
	EffectListen
	// EffectSubmit: issue the voice-command request, then call BeginSubmit.
	EffectSubmit
	// EffectSpeak: request playback of Reply, then call FinishSpeak.
	EffectSpeak
)

// Session is the one active voice exchange. Invalid calls for the
// current phase are guaranteed no-ops, so a duplicate tap or a stale
// completion can never corrupt the machine.
type Session struct {
	phase      Phase
	transcript string
	reply      string
	surface    func(string)
}

// NewSession creates an idle session. surface receives every message the
// session wants shown to the user.
func NewSession(surface func(string)) *Session {
	if surface == nil {
		surface = func(string) {}
	}
	return &Session{surface: surface}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Transcript returns the recognized text, or empty before recognition.
func (s *Session) Transcript() string {
	return s.transcript
}

// Reply returns the backend's reply text, or empty before it arrives.
func (s *Session) Reply() string {
	return s.reply
}

// Idle reports whether a new session may begin.
func (s *Session) Idle() bool {
	return s.phase == PhaseIdle
}

// Start begins listening. A start while the session is anywhere past
// idle (a duplicate tap) is a no-op.
func (s *Session) Start() Effect {
	if s.phase != PhaseIdle {
		return EffectNone
	}
	s.transcript = ""
	s.reply = ""
	s.phase = PhaseListening
	return EffectListen
}

// HandleResult consumes a recognition result. The transcript is surfaced
// immediately, before the network round trip resolves.
func (s *Session) HandleResult(text string) Effect {
	if s.phase != PhaseListening {
		return EffectNone
	}
	s.transcript = text
	s.phase = PhaseTranscribing
	s.surface("You said: " + text)
	return EffectSubmit
}

// HandleEnd consumes a recognition end without a result (silence,
// timeout, user cancel). The session resets silently; this is a clean
// abort, not an error.
func (s *Session) HandleEnd() {
	if s.phase == PhaseListening {
		s.reset()
	}
}

// BeginSubmit records that the voice-command request was issued.
func (s *Session) BeginSubmit() {
	if s.phase == PhaseTranscribing {
		s.phase = PhaseAwaitingReply
	}
}

// HandleReply consumes the backend response. On failure the session
// surfaces a message and resets; it never stays stuck awaiting a reply.
func (s *Session) HandleReply(reply string, err error) Effect {
	if s.phase != PhaseAwaitingReply {
		return EffectNone
	}
	if err != nil {
		s.surface("Sorry, I could not reach your reminders.")
		s.reset()
		return EffectNone
	}

	s.reply = reply
	s.phase = PhaseSpeaking
	s.surface(reply)
	return EffectSpeak
}

// FinishSpeak returns the session to idle. Playback completion is not
// observable through the capability contract, so idle reentry happens as
// soon as playback is requested.
func (s *Session) FinishSpeak() {
	if s.phase == PhaseSpeaking {
		s.reset()
	}
}

func (s *Session) reset() {
	s.phase = PhaseIdle
	s.transcript = ""
	s.reply = ""
}
