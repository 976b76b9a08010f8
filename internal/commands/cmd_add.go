package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pillbox/internal/dose"
)

type AddCmd struct {
	flags *Flags
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a medication with an interactive form",
		UsageText: "pillbox add",
		Description: `Walks through name, dosage, schedule days, and time, then registers
the medication with the backend for the configured user.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	var (
		name     string
		dosage   string
		imageURL string
		days     []int
		timeStr  = "08:00"
	)

	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	dayOptions := make([]huh.Option[int], 0, len(weekdays))
	for i, day := range weekdays {
		dayOptions = append(dayOptions, huh.NewOption(day, i))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Drug name").
				Value(&name).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("drug name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Dosage").
				Placeholder("e.g. 100mg").
				Value(&dosage).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("dosage is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Pill image URL (optional)").
				Value(&imageURL),
			huh.NewMultiSelect[int]().
				Title("Days of week").
				Options(dayOptions...).
				Value(&days).
				Validate(func(v []int) error {
					if len(v) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time").
				Value(&timeStr).
				Validate(func(v string) error {
					if _, err := time.Parse("15:04", strings.TrimSpace(v)); err != nil {
						return fmt.Errorf("time must be HH:MM")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	sort.Ints(days)
	med := dose.NewMedication{
		UserID:       cmd.flags.Config.UserID,
		Name:         strings.TrimSpace(name),
		Dosage:       strings.TrimSpace(dosage),
		PillImageURL: strings.TrimSpace(imageURL),
		Schedule: dose.Schedule{
			DaysOfWeek: days,
			Times:      []string{strings.TrimSpace(timeStr)},
		},
	}

	if err := cmd.flags.Service.CreateMedication(ctx, med); err != nil {
		return fmt.Errorf("create medication: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Added %s (%s)\n", med.Name, med.Dosage)
	return nil
}
