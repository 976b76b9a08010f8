package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pillbox/internal/dose"
)

type SnoozeCmd struct {
	flags *Flags

	// flags
	minutes int
}

// NewSnoozeCmd creates a new snooze command
func NewSnoozeCmd(flags *Flags) *SnoozeCmd {
	return &SnoozeCmd{flags: flags}
}

// Register adds the snooze command to the application
func (cmd *SnoozeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "snooze",
		Usage:     "Push a due dose back by a few minutes",
		UsageText: "pillbox snooze <medication-id> <scheduled-time> [--minutes 15]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "minutes",
				Aliases:     []string{"m"},
				Usage:       "minutes to defer the dose (defaults to the configured snooze)",
				Destination: &cmd.minutes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SnoozeCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <medication-id> <scheduled-time>, got %d arguments", c.Args().Len())
	}

	minutes := cmd.minutes
	if minutes <= 0 {
		minutes = cmd.flags.Config.SnoozeMinutes
	}

	req := dose.ActionRequest{
		UserID:       cmd.flags.Config.UserID,
		MedicationID: c.Args().Get(0),
		ScheduledAt:  c.Args().Get(1),
		Minutes:      minutes,
	}
	if err := cmd.flags.Service.RecordSnooze(ctx, req); err != nil {
		return fmt.Errorf("record snooze: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Snoozed %s at %s for %d minutes\n", req.MedicationID, req.ScheduledAt, minutes)
	return nil
}
