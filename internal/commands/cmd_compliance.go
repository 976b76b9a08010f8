package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pillbox/internal/dose"
	"github.com/colonyops/pillbox/pkg/iojson"
)

type ComplianceCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewComplianceCmd creates a new compliance command
func NewComplianceCmd(flags *Flags) *ComplianceCmd {
	return &ComplianceCmd{flags: flags}
}

// Register adds the compliance command to the application
func (cmd *ComplianceCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "compliance",
		Usage:     "Show the monthly adherence calendar",
		UsageText: "pillbox compliance [--json]",
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

func (cmd *ComplianceCmd) run(ctx context.Context, c *cli.Command) error {
	days, err := cmd.flags.Service.FetchCompliance(ctx, cmd.flags.Config.UserID)
	if err != nil {
		return fmt.Errorf("fetch compliance: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, d := range days {
			if err := iojson.WriteLine(out, d); err != nil {
				return fmt.Errorf("encode day: %w", err)
			}
		}
		return nil
	}

	if len(days) == 0 {
		fmt.Fprintf(os.Stderr, "No history yet\n")
		return nil
	}

	var taken, missed, pending int
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tSTATUS")
	for _, d := range days {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", d.Date, d.Status)
		switch d.Status {
		case dose.StatusTaken:
			taken++
		case dose.StatusMissed:
			missed++
		default:
			pending++
		}
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\n%d taken, %d missed, %d pending\n", taken, missed, pending)
	return nil
}
