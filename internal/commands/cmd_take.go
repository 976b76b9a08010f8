package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pillbox/internal/dose"
)

type TakeCmd struct {
	flags *Flags
}

// NewTakeCmd creates a new take command
func NewTakeCmd(flags *Flags) *TakeCmd {
	return &TakeCmd{flags: flags}
}

// Register adds the take command to the application
func (cmd *TakeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "take",
		Usage:     "Record a dose as taken",
		UsageText: "pillbox take <medication-id> <scheduled-time>",
		Description: `Records the dose identified by medication id and scheduled time as
taken. Use 'pillbox today' to find both values.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *TakeCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <medication-id> <scheduled-time>, got %d arguments", c.Args().Len())
	}

	req := dose.ActionRequest{
		UserID:       cmd.flags.Config.UserID,
		MedicationID: c.Args().Get(0),
		ScheduledAt:  c.Args().Get(1),
	}
	if err := cmd.flags.Service.RecordTake(ctx, req); err != nil {
		return fmt.Errorf("record take: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Recorded %s at %s as taken\n", req.MedicationID, req.ScheduledAt)
	return nil
}
