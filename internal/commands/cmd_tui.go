package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pillbox/internal/speech"
	"github.com/colonyops/pillbox/internal/tui"
	tuinotify "github.com/colonyops/pillbox/internal/tui/notify"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	var speechCap speech.Capability = speech.Disabled{}
	if len(cfg.Speech.Listen) > 0 {
		speechCap = speech.NewCommand(cfg.Speech.Listen, cfg.Speech.Speak)
	}

	deps := tui.Deps{
		Config:  cfg,
		Service: cmd.flags.Service,
		Speech:  speechCap,
		Bus:     tuinotify.NewBus(),
	}

	m := tui.New(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
