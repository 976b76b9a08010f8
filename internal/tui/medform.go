package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/colonyops/pillbox/internal/dose"
)

// weekdays in Monday-first order; option values are the 0-based indices
// the backend schedule expects.
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MedForm is the caregiver medication-authoring form.
type MedForm struct {
	form *huh.Form

	name     string
	dosage   string
	imageURL string
	days     []int
	timeStr  string
}

// NewMedForm builds the authoring form.
func NewMedForm() *MedForm {
	f := &MedForm{timeStr: "08:00"}

	dayOptions := make([]huh.Option[int], 0, len(weekdays))
	for i, day := range weekdays {
		dayOptions = append(dayOptions, huh.NewOption(day, i))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Drug name").
				Value(&f.name).
				Validate(required("drug name")),
			huh.NewInput().
				Title("Dosage").
				Placeholder("e.g. 100mg").
				Value(&f.dosage).
				Validate(required("dosage")),
			huh.NewInput().
				Title("Pill image URL (optional)").
				Value(&f.imageURL),
			huh.NewMultiSelect[int]().
				Title("Days of week").
				Options(dayOptions...).
				Value(&f.days).
				Validate(func(days []int) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time").
				Value(&f.timeStr).
				Validate(validTime),
		),
	).WithWidth(48).WithShowHelp(true)

	return f
}

func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validTime(v string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(v)); err != nil {
		return fmt.Errorf("time must be HH:MM")
	}
	return nil
}

// Init starts the underlying form.
func (f *MedForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update routes a message to the form.
func (f *MedForm) Update(msg tea.Msg) tea.Cmd {
	model, cmd := f.form.Update(msg)
	if hf, ok := model.(*huh.Form); ok {
		f.form = hf
	}
	return cmd
}

// View renders the form.
func (f *MedForm) View() string {
	return f.form.View()
}

// Completed reports whether the form was submitted.
func (f *MedForm) Completed() bool {
	return f.form.State == huh.StateCompleted
}

// Aborted reports whether the form was cancelled.
func (f *MedForm) Aborted() bool {
	return f.form.State == huh.StateAborted
}

// Medication returns the authoring payload for the given user.
func (f *MedForm) Medication(userID string) dose.NewMedication {
	days := append([]int{}, f.days...)
	sort.Ints(days)

	return dose.NewMedication{
		UserID:       userID,
		Name:         strings.TrimSpace(f.name),
		Dosage:       strings.TrimSpace(f.dosage),
		PillImageURL: strings.TrimSpace(f.imageURL),
		Schedule: dose.Schedule{
			DaysOfWeek: days,
			Times:      []string{strings.TrimSpace(f.timeStr)},
		},
	}
}
