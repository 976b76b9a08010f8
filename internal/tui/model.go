// Package tui implements the interactive medication-reminder interface.
//
// Concurrency model: every network call runs inside a tea.Cmd and its
// completion comes back as a typed tea.Msg. Bubble Tea serializes all
// Update calls, so completions can interleave but never race on shared
// state.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/pillbox/internal/core/config"
	"github.com/colonyops/pillbox/internal/core/notify"
	"github.com/colonyops/pillbox/internal/core/styles"
	"github.com/colonyops/pillbox/internal/dose"
	"github.com/colonyops/pillbox/internal/speech"
	tuinotify "github.com/colonyops/pillbox/internal/tui/notify"
	"github.com/colonyops/pillbox/internal/tui/views/compliance"
	"github.com/colonyops/pillbox/internal/tui/views/today"
	"github.com/colonyops/pillbox/internal/tui/views/voice"
)

// Key constants for event handling.
const keyCtrlC = "ctrl+c"

// Deps are the collaborators the TUI operates against.
type Deps struct {
	Config  *config.Config
	Service dose.Service
	Speech  speech.Capability
	Bus     *tuinotify.Bus
}

// messageLine holds the last message a voice session surfaced. It lives
// behind a pointer so the session's surface callback observes the same
// line across Model value copies.
type messageLine struct {
	text string
}

// Model is the main Bubble Tea model.
type Model struct {
	cfg     *config.Config
	service dose.Service
	speech  speech.Capability
	bus     *tuinotify.Bus

	// mode is the active presentation mode; gen counts mode activations.
	// Every async msg carries the gen it was issued under, and stale
	// completions from a discarded activation are dropped in Update.
	mode string
	gen  int

	// Elder mode controllers, rebuilt on each activation.
	today     *today.Controller
	voice     *voice.Session
	voiceLine *messageLine

	// Caregiver mode controllers, rebuilt on each activation.
	compliance *compliance.Controller
	medForm    *MedForm

	spinner   spinner.Model
	toastCtrl *ToastController
	toastView *ToastView

	width    int
	height   int
	quitting bool
}

// Async completion messages. Each carries the activation generation it
// was issued under.
type todayLoadedMsg struct {
	gen   int
	items []dose.DueItem
	err   error
}

type doseActionDoneMsg struct {
	gen    int
	action string
	err    error
}

type voiceResultMsg struct {
	gen        int
	transcript string
	err        error
}

type voiceReplyMsg struct {
	gen   int
	reply string
	err   error
}

type complianceLoadedMsg struct {
	gen  int
	days []dose.ComplianceDay
	err  error
}

type medCreatedMsg struct {
	gen int
	err error
}

// New creates the root model.
func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.TextPrimaryStyle

	toastCtrl := NewToastController()
	deps.Bus.Subscribe(func(n notify.Notification) {
		toastCtrl.Push(n)
	})

	m := Model{
		cfg:       deps.Config,
		service:   deps.Service,
		speech:    deps.Speech,
		bus:       deps.Bus,
		spinner:   s,
		toastCtrl: toastCtrl,
		toastView: NewToastView(toastCtrl),
	}
	m.activate(deps.Config.Mode)
	return m
}

// activate constructs fresh controllers for the given mode and bumps the
// generation so completions owned by the previous activation are dropped.
func (m *Model) activate(mode string) {
	m.gen++
	m.mode = mode

	m.today = nil
	m.voice = nil
	m.voiceLine = nil
	m.compliance = nil
	m.medForm = nil

	switch mode {
	case config.ModeCaregiver:
		m.compliance = compliance.NewController()
	default:
		m.today = today.NewController()
		line := &messageLine{}
		m.voiceLine = line
		m.voice = voice.NewSession(func(text string) {
			line.text = text
		})
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadForMode(), m.spinner.Tick)
}

// loadForMode returns the initial load command for the active mode.
func (m *Model) loadForMode() tea.Cmd {
	if m.mode == config.ModeCaregiver {
		m.compliance.BeginLoad()
		return m.loadCompliance()
	}
	m.today.BeginLoad()
	return m.loadToday()
}

// loadToday returns a command that fetches the due-today list.
func (m Model) loadToday() tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		items, err := m.service.FetchDueToday(context.Background(), m.cfg.UserID)
		return todayLoadedMsg{gen: gen, items: items, err: err}
	}
}

// recordDose returns a command that records a take or snooze. The
// response body is ignored either way; the completion handler reconciles
// by reloading.
func (m Model) recordDose(action string, item dose.DueItem) tea.Cmd {
	gen := m.gen
	req := dose.ActionRequest{
		UserID:       m.cfg.UserID,
		MedicationID: item.MedicationID,
		ScheduledAt:  item.ScheduledAt,
	}
	return func() tea.Msg {
		var err error
		if action == "snooze" {
			req.Minutes = m.cfg.SnoozeMinutes
			err = m.service.RecordSnooze(context.Background(), req)
		} else {
			err = m.service.RecordTake(context.Background(), req)
		}
		return doseActionDoneMsg{gen: gen, action: action, err: err}
	}
}

// listen returns a command that blocks on speech recognition.
func (m Model) listen() tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		transcript, err := m.speech.Listen(context.Background())
		return voiceResultMsg{gen: gen, transcript: transcript, err: err}
	}
}

// submitVoice returns a command that sends the transcript to the backend.
func (m Model) submitVoice(text string) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		reply, err := m.service.SubmitVoiceCommand(context.Background(), text, m.cfg.UserID)
		return voiceReplyMsg{gen: gen, reply: reply, err: err}
	}
}

// loadCompliance returns a command that fetches the adherence calendar.
func (m Model) loadCompliance() tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		days, err := m.service.FetchCompliance(context.Background(), m.cfg.UserID)
		return complianceLoadedMsg{gen: gen, days: days, err: err}
	}
}

// createMedication returns a command that submits the authoring payload.
func (m Model) createMedication(med dose.NewMedication) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		err := m.service.CreateMedication(context.Background(), med)
		return medCreatedMsg{gen: gen, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case todayLoadedMsg:
		return m.handleTodayLoaded(msg)
	case doseActionDoneMsg:
		return m.handleDoseActionDone(msg)
	case voiceResultMsg:
		return m.handleVoiceResult(msg)
	case voiceReplyMsg:
		return m.handleVoiceReply(msg)
	case complianceLoadedMsg:
		return m.handleComplianceLoaded(msg)
	case medCreatedMsg:
		return m.handleMedCreated(msg)

	case toastTickMsg:
		return m.handleToastTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.handleFallthrough(msg)
}

// handleTodayLoaded applies a due-list completion in completion order.
func (m Model) handleTodayLoaded(msg todayLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.today == nil {
		return m, nil
	}

	m.today.ApplyLoad(msg.items, msg.err)
	if msg.err != nil {
		log.Error().Err(msg.err).Msg("load due items failed")
		m.bus.Errorf("Could not refresh today's doses")
		return m, m.ensureToastTick()
	}
	return m, nil
}

// handleDoseActionDone always follows a mutation with exactly one
// reconciling reload; the backend is the sole source of truth for what
// is due, so the mutation's own outcome is surfaced but never applied
// locally.
func (m Model) handleDoseActionDone(msg doseActionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.today == nil {
		return m, nil
	}

	var cmds []tea.Cmd
	if msg.err != nil {
		log.Error().Err(msg.err).Str("action", msg.action).Msg("dose action failed")
		m.bus.Errorf("Could not record %s", msg.action)
		cmds = append(cmds, m.ensureToastTick())
	}

	m.today.BeginLoad()
	cmds = append(cmds, m.loadToday())
	return m, tea.Batch(cmds...)
}

// handleVoiceResult feeds a recognition completion into the session FSM.
func (m Model) handleVoiceResult(msg voiceResultMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.voice == nil {
		return m, nil
	}

	if msg.err != nil {
		m.voice.HandleEnd()
		if !errors.Is(msg.err, speech.ErrNoSpeech) {
			log.Error().Err(msg.err).Msg("speech recognition failed")
			m.bus.Errorf("Voice recognition failed")
			return m, m.ensureToastTick()
		}
		return m, nil
	}

	if m.voice.HandleResult(msg.transcript) == voice.EffectSubmit {
		m.voice.BeginSubmit()
		return m, m.submitVoice(msg.transcript)
	}
	return m, nil
}

// handleVoiceReply finishes the session: speak the reply and return to
// idle as soon as playback is requested.
func (m Model) handleVoiceReply(msg voiceReplyMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.voice == nil {
		return m, nil
	}

	if m.voice.HandleReply(msg.reply, msg.err) == voice.EffectSpeak {
		m.speech.Speak(m.voice.Reply())
		m.voice.FinishSpeak()
	}
	return m, nil
}

func (m Model) handleComplianceLoaded(msg complianceLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.compliance == nil {
		return m, nil
	}

	m.compliance.ApplyLoad(msg.days, msg.err)
	if msg.err != nil {
		log.Error().Err(msg.err).Msg("load compliance failed")
		m.bus.Errorf("Could not load the compliance calendar")
		return m, m.ensureToastTick()
	}
	return m, nil
}

func (m Model) handleMedCreated(msg medCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}

	if msg.err != nil {
		log.Error().Err(msg.err).Msg("create medication failed")
		m.bus.Errorf("Could not save the medication")
	} else {
		m.bus.Infof("Medication added")
	}
	return m, m.ensureToastTick()
}

func (m Model) handleToastTick() (tea.Model, tea.Cmd) {
	m.toastCtrl.Tick(toastTickInterval)
	if m.toastCtrl.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastCtrl.SetTicking(false)
	return m, nil
}

// ensureToastTick starts the toast countdown if it is not running.
func (m Model) ensureToastTick() tea.Cmd {
	if m.toastCtrl.Ticking() || !m.toastCtrl.HasToasts() {
		return nil
	}
	m.toastCtrl.SetTicking(true)
	return scheduleToastTick()
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The authoring form owns the keyboard while it is open.
	if m.medForm != nil {
		return m.handleMedFormKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Dismiss):
		if m.toastCtrl.HasToasts() {
			m.toastCtrl.Dismiss()
		}
		return m, nil
	case key.Matches(msg, keys.SwitchMode):
		return m.switchMode()
	}

	if m.mode == config.ModeCaregiver {
		return m.handleCaregiverKey(msg)
	}
	return m.handleElderKey(msg)
}

// switchMode flips between elder and caregiver. In-flight requests from
// the previous activation are not cancelled; their completions are
// dropped by the generation check.
func (m Model) switchMode() (tea.Model, tea.Cmd) {
	next := config.ModeElder
	if m.mode == config.ModeElder {
		next = config.ModeCaregiver
	}
	m.activate(next)
	return m, m.loadForMode()
}

// handleElderKey handles keys on the today view.
func (m Model) handleElderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.today.MoveUp()
	case key.Matches(msg, keys.Down):
		m.today.MoveDown()
	case key.Matches(msg, keys.Refresh):
		m.today.BeginLoad()
		return m, m.loadToday()
	case key.Matches(msg, keys.Take):
		if item := m.today.Selected(); item != nil {
			return m, m.recordDose("take", *item)
		}
	case key.Matches(msg, keys.Snooze):
		if item := m.today.Selected(); item != nil {
			return m, m.recordDose("snooze", *item)
		}
	case key.Matches(msg, keys.Voice):
		// Voice is offered only when the capability exists, and the
		// session refuses to double-start while one is active.
		if m.speech.Available() && m.voice.Start() == voice.EffectListen {
			return m, m.listen()
		}
	}
	return m, nil
}

// handleCaregiverKey handles keys on the compliance view.
func (m Model) handleCaregiverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Refresh):
		m.compliance.BeginLoad()
		return m, m.loadCompliance()
	case key.Matches(msg, keys.Add):
		m.medForm = NewMedForm()
		return m, m.medForm.Init()
	}
	return m, nil
}

// handleMedFormKey routes keys to the authoring form. Ctrl+c still
// quits; everything else belongs to the form.
func (m Model) handleMedFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	return m.handleFallthrough(msg)
}

// handleFallthrough routes unrecognized messages to the open form, which
// drives its own internal commands, and reacts to its terminal states.
func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.medForm == nil {
		return m, nil
	}

	cmd := m.medForm.Update(msg)

	if m.medForm.Completed() {
		med := m.medForm.Medication(m.cfg.UserID)
		m.medForm = nil
		return m, m.createMedication(med)
	}
	if m.medForm.Aborted() {
		m.medForm = nil
		return m, nil
	}
	return m, cmd
}
