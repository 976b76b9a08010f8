package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

type VoiceCmd struct {
	flags *Flags
}

// NewVoiceCmd creates a new voice command
func NewVoiceCmd(flags *Flags) *VoiceCmd {
	return &VoiceCmd{flags: flags}
}

// Register adds the voice command to the application
func (cmd *VoiceCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "voice",
		Usage:     "Send a voice-style command as text",
		UsageText: "pillbox voice <text...>",
		Description: `Sends the given text through the same voice-command endpoint the TUI
uses for speech, and prints the assistant's reply. Useful for testing a
backend without a microphone.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *VoiceCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("expected the command text, e.g. pillbox voice what are my medications")
	}

	text := strings.Join(c.Args().Slice(), " ")
	reply, err := cmd.flags.Service.SubmitVoiceCommand(ctx, text, cmd.flags.Config.UserID)
	if err != nil {
		return fmt.Errorf("submit voice command: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, reply)
	return nil
}
