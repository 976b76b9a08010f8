package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pillbox/pkg/iojson"
)

type TodayCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewTodayCmd creates a new today command
func NewTodayCmd(flags *Flags) *TodayCmd {
	return &TodayCmd{flags: flags}
}

// Register adds the today command to the application
func (cmd *TodayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "today",
		Usage:     "List medications still due today",
		UsageText: "pillbox today [--json]",
		Description: `Displays the doses that are still due today for the configured user.

Each line carries the medication id and scheduled time needed by
'pillbox take' and 'pillbox snooze'.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *TodayCmd) run(ctx context.Context, c *cli.Command) error {
	items, err := cmd.flags.Service.FetchDueToday(ctx, cmd.flags.Config.UserID)
	if err != nil {
		return fmt.Errorf("fetch due today: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, item := range items {
			if err := iojson.WriteLine(out, item); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	if len(items) == 0 {
		fmt.Fprintf(os.Stderr, "No medication due right now\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tNAME\tDOSAGE\tID")
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.ScheduledAt, item.Name, item.Dosage, item.MedicationID)
	}
	_ = w.Flush()

	return nil
}
