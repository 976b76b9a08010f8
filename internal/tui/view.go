package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pillbox/internal/core/config"
	"github.com/colonyops/pillbox/internal/core/styles"
	"github.com/colonyops/pillbox/internal/dose"
	"github.com/colonyops/pillbox/internal/tui/views/voice"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.IconPill + " Pillbox"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.medForm != nil {
		b.WriteString(m.medForm.View())
	} else if m.mode == config.ModeCaregiver {
		b.WriteString(m.renderCaregiver())
	} else {
		b.WriteString(m.renderElder())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	if m.toastCtrl.HasToasts() {
		b.WriteString("\n")
		b.WriteString(m.toastView.View(max(m.width, toastWidth)))
	}

	return b.String()
}

func (m Model) renderTabs() string {
	elder := styles.TabNormalStyle.Render("Elder")
	caregiver := styles.TabNormalStyle.Render("Caregiver")
	if m.mode == config.ModeCaregiver {
		caregiver = styles.TabSelectedStyle.Render("Caregiver")
	} else {
		elder = styles.TabSelectedStyle.Render("Elder")
	}
	return elder + " " + caregiver
}

// renderElder renders today's doses and the voice row.
func (m Model) renderElder() string {
	var b strings.Builder

	switch {
	case m.today.Loading() && !m.today.Loaded():
		b.WriteString(m.spinner.View())
		b.WriteString(styles.TextMutedStyle.Render(" Loading today's doses..."))
		b.WriteString("\n")
	case m.today.Failure() != "" && !m.today.Loaded():
		b.WriteString(styles.TextErrorStyle.Render("Could not load today's doses."))
		b.WriteString("\n")
	case len(m.today.Items()) == 0:
		b.WriteString(styles.EmptyCardStyle.Render("No medication due right now."))
		b.WriteString("\n")
	default:
		for i, item := range m.today.Items() {
			b.WriteString(m.renderDoseCard(item, i == m.today.Cursor()))
			b.WriteString("\n")
		}
	}

	if m.today.Failure() != "" && m.today.Loaded() {
		b.WriteString(styles.TextErrorStyle.Render("Refresh failed, showing the last known list."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderVoiceRow())
	return b.String()
}

func (m Model) renderDoseCard(item dose.DueItem, selected bool) string {
	card := styles.CardStyle
	if selected {
		card = styles.CardSelectedStyle
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.DoseNameStyle.Render(item.Name),
		" ",
		styles.DoseDosageStyle.Render(item.Dosage),
	)
	timeLine := styles.DoseTimeStyle.Render(styles.IconClock + " " + item.ScheduledAt)

	return card.Render(line + "\n" + timeLine)
}

func (m Model) renderVoiceRow() string {
	if !m.speech.Available() {
		return ""
	}

	var b strings.Builder
	switch m.voice.Phase() {
	case voice.PhaseIdle:
		b.WriteString(styles.VoiceIdleStyle.Render(styles.IconMic + " press v to speak"))
	case voice.PhaseListening:
		b.WriteString(styles.VoiceListeningStyle.Render(styles.IconMic + " listening..."))
	default:
		b.WriteString(styles.VoiceListeningStyle.Render(styles.IconMic + " thinking..."))
	}

	if m.voiceLine.text != "" {
		b.WriteString("\n")
		b.WriteString(styles.VoiceMessageStyle.Render(m.voiceLine.text))
	}
	return b.String()
}

// renderCaregiver renders the adherence calendar.
func (m Model) renderCaregiver() string {
	var b strings.Builder

	b.WriteString(styles.TextPrimaryStyle.Render(styles.IconCalendar + " Adherence this month"))
	b.WriteString("\n\n")

	switch {
	case m.compliance.Loading() && !m.compliance.Loaded():
		b.WriteString(m.spinner.View())
		b.WriteString(styles.TextMutedStyle.Render(" Loading calendar..."))
	case m.compliance.Failure() != "" && !m.compliance.Loaded():
		b.WriteString(styles.TextErrorStyle.Render("Could not load the calendar."))
	case len(m.compliance.Days()) == 0:
		b.WriteString(styles.TextMutedStyle.Render("No history yet."))
	default:
		b.WriteString(renderCalendar(m.compliance.Days()))
	}

	return b.String()
}

const calendarColumns = 7

// renderCalendar lays the days out in week rows. Day cells show the day
// of month colored by status.
func renderCalendar(days []dose.ComplianceDay) string {
	cells := make([]string, 0, len(days))
	for _, d := range days {
		cells = append(cells, renderDayCell(d))
	}

	var rows []string
	for len(cells) > 0 {
		n := min(calendarColumns, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[:n]...))
		cells = cells[n:]
	}
	return strings.Join(rows, "\n")
}

func renderDayCell(d dose.ComplianceDay) string {
	label := d.Date
	if i := strings.LastIndex(d.Date, "-"); i >= 0 {
		label = d.Date[i+1:]
	}

	switch d.Status {
	case dose.StatusTaken:
		return styles.DayTakenStyle.Render(label)
	case dose.StatusMissed:
		return styles.DayMissedStyle.Render(label)
	default:
		return styles.DayPendingStyle.Render(label)
	}
}

func (m Model) renderHelp() string {
	if m.medForm != nil {
		return ""
	}
	if m.mode == config.ModeCaregiver {
		return styles.HelpStyle.Render("a add medication • r refresh • tab switch view • q quit")
	}
	help := "j/k move • t take • s snooze • r refresh • tab switch view • q quit"
	if m.speech.Available() {
		help = "j/k move • t take • s snooze • v voice • r refresh • tab switch view • q quit"
	}
	return styles.HelpStyle.Render(help)
}
