// Command docgen generates CLI reference documentation from the pillbox
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pillbox/internal/commands"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "pillbox",
		Usage:     "Medication reminders for elders and their caregivers",
		UsageText: "pillbox [global options] command [command options]",
		Description: `Pillbox is a terminal client for a medication-reminder backend.

Elders see today's doses and can mark them taken, snooze them, or ask
questions by voice. Caregivers manage medications and review the
monthly adherence calendar.

Run 'pillbox' with no arguments to open the interactive view.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("PILLBOX_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file",
				Sources: cli.EnvVars("PILLBOX_LOG_FILE"),
				Value:   commands.DefaultLogFile(),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("PILLBOX_CONFIG"),
				Value:   commands.DefaultConfigPath(),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "reminder backend base URL (overrides config)",
				Sources: cli.EnvVars("PILLBOX_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "user",
				Usage:   "act as this user id (overrides config)",
				Sources: cli.EnvVars("PILLBOX_USER"),
			},
		},
	}

	root = commands.NewTodayCmd(flags).Register(root)
	root = commands.NewTakeCmd(flags).Register(root)
	root = commands.NewSnoozeCmd(flags).Register(root)
	root = commands.NewAddCmd(flags).Register(root)
	root = commands.NewComplianceCmd(flags).Register(root)
	root = commands.NewVoiceCmd(flags).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
