// Package speech is the boundary to a platform speech input/output
// facility. Callers must branch on Available before starting recognition;
// the rest of the application never touches the underlying engine.
package speech

import (
	"context"
	"errors"
)

// ErrNoSpeech is returned by Listen when recognition ends without a
// result (silence, timeout, user cancel). It is a clean termination, not
// a failure to surface.
var ErrNoSpeech = errors.New("recognition ended without speech")

// Capability is the speech engine contract. Listen blocks until a
// non-empty transcript is recognized or recognition ends; Speak requests
// playback and returns immediately without reporting completion.
type Capability interface {
	Available() bool
	Listen(ctx context.Context) (string, error)
	Speak(text string)
}

// Disabled is the capability of a host without speech support.
type Disabled struct{}

// Available always reports false.
func (Disabled) Available() bool { return false }

// Listen must never be reached; callers branch on Available first.
func (Disabled) Listen(context.Context) (string, error) { return "", ErrNoSpeech }

// Speak is a no-op.
func (Disabled) Speak(string) {}
