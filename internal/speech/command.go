package speech

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// Command adapts user-configured shell commands into the Capability
// contract. The listen command is expected to print a transcript to
// stdout (empty output means nothing was heard); the speak command
// receives the text as its final argument.
type Command struct {
	ListenArgv []string
	SpeakArgv  []string
}

// NewCommand builds a Command capability from configured argv lists.
func NewCommand(listen, speak []string) *Command {
	return &Command{ListenArgv: listen, SpeakArgv: speak}
}

// Available reports whether a listen command is configured and resolvable.
func (c *Command) Available() bool {
	if len(c.ListenArgv) == 0 {
		return false
	}
	_, err := exec.LookPath(c.ListenArgv[0])
	return err == nil
}

// Listen runs the configured listen command and returns its trimmed
// stdout as the transcript. Empty output maps to ErrNoSpeech.
func (c *Command) Listen(ctx context.Context) (string, error) {
	if len(c.ListenArgv) == 0 {
		return "", ErrNoSpeech
	}

	cmd := exec.CommandContext(ctx, c.ListenArgv[0], c.ListenArgv[1:]...) //nolint:gosec // argv comes from the user's own config
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	transcript := strings.TrimSpace(string(output))
	if transcript == "" {
		return "", ErrNoSpeech
	}
	return transcript, nil
}

// Speak runs the configured speak command with the text appended as the
// last argument. Playback is fire-and-forget; failures are logged, never
// surfaced.
func (c *Command) Speak(text string) {
	if len(c.SpeakArgv) == 0 {
		return
	}

	argv := append(append([]string{}, c.SpeakArgv...), text)
	go func() {
		cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // argv comes from the user's own config
		if err := cmd.Run(); err != nil {
			log.Debug().Err(err).Str("command", argv[0]).Msg("speak command failed")
		}
	}()
}
