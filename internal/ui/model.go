package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/session"
	"github.com/renato0307/pitmaster/internal/theme"
)

// Actions are the operator intents the screen can trigger
type Actions interface {
	ApplyWrap(ctx context.Context, wrapType domain.WrapType) error
	FinishSession(ctx context.Context, req domain.FinishRequest) error
	LogReading(ctx context.Context, tempF float64, smokerTempF *float64) error
	OpenLid(ctx context.Context, durationSeconds float64) error
	RefreshState(ctx context.Context) error
	Reset()
	StartSession(ctx context.Context, req domain.SetupRequest) error
	ToggleMode()
}

// PresetLister supplies equipment presets for the setup form
type PresetLister interface {
	ListPresets(ctx context.Context) ([]domain.EquipmentPreset, error)
}

// StateSource publishes controller state changes
type StateSource interface {
	Subscribe() (<-chan session.State, func())
}

type uiState int

const (
	stateCook uiState = iota
	stateFinish
	stateReading
	stateSetup
	stateWrap
)

// Action names reported back in actionDoneMsg
const (
	actionFinish  = "finish"
	actionLidOpen = "lid_open"
	actionReading = "reading"
	actionRefresh = "refresh"
	actionSetup   = "setup"
	actionWrap    = "wrap"
)

// Model is the cook screen. It renders whatever the controller publishes and
// turns key presses and form submissions into Actions calls.
type Model struct {
	actions      Actions
	ctx          context.Context
	devMode      bool
	dialog       *Dialog
	help         help.Model
	keys         KeyMap
	notice       string
	presetLister PresetLister
	presets      []domain.EquipmentPreset
	presetsReady bool
	setupPending bool
	spinner      spinner.Model
	state        session.State
	uiState      uiState
	unsubscribe  func()
	updates      <-chan session.State
	width        int
}

// NewModel creates the cook screen and subscribes it to source. Call Close
// once the program has exited. Calls made on behalf of the operator use ctx.
func NewModel(
	ctx context.Context,
	actions Actions,
	source StateSource,
	presets PresetLister,
	devMode bool,
) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	updates, unsubscribe := source.Subscribe()
	return &Model{
		actions:      actions,
		ctx:          ctx,
		devMode:      devMode,
		help:         help.New(),
		keys:         NewKeyMap(),
		presetLister: presets,
		spinner:      s,
		state:        session.InitialState(),
		uiState:      stateCook,
		unsubscribe:  unsubscribe,
		updates:      updates,
	}
}

// Close stops following the controller
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForState(m.updates), m.loadPresetsCmd(), m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if m.dialog != nil {
			_, cmd := m.dialog.Update(msg)
			return m, cmd
		}
		return m, nil

	case stateMsg:
		m.state = msg.state
		return m, tea.Batch(waitForState(m.updates), m.syncDialog())

	case feedClosedMsg:
		return m, nil

	case presetsLoadedMsg:
		m.presetsReady = true
		if msg.err != nil {
			logging.Logger.Warn("Using built-in equipment list", "error", msg.err)
		} else {
			m.presets = msg.presets
		}
		return m, m.syncDialog()

	case actionDoneMsg:
		if msg.err != nil && isInputError(msg.err) {
			m.notice = msg.err.Error()
		} else if msg.err == nil && msg.action == actionLidOpen {
			m.notice = "Lid opening recorded"
		}
		if msg.action == actionSetup {
			m.setupPending = false
			return m, m.syncDialog()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.dialog != nil {
		return m, m.updateDialog(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m, m.handleKey(keyMsg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	mode := session.Mode(m.state)
	if mode == session.ViewReport {
		if key.Matches(msg, m.keys.NewCook) {
			m.actions.Reset()
		}
		return nil
	}
	if mode == session.ViewSetup {
		return nil
	}

	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		m.actions.ToggleMode()
	case key.Matches(msg, m.keys.NewCook):
		m.actions.Reset()
	case key.Matches(msg, m.keys.LidOpen):
		return m.run(actionLidOpen, func(ctx context.Context) error {
			return m.actions.OpenLid(ctx, 0)
		})
	case m.state.Loading:
		// one service call at a time
	case key.Matches(msg, m.keys.Reading):
		return m.openDialog(stateReading, "Log reading", NewReadingForm())
	case key.Matches(msg, m.keys.Wrap):
		return m.openDialog(stateWrap, "Apply wrap", NewWrapForm())
	case key.Matches(msg, m.keys.Finish):
		return m.openDialog(stateFinish, "Finish cook", NewFinishForm())
	case key.Matches(msg, m.keys.Refresh):
		return m.run(actionRefresh, m.actions.RefreshState)
	}
	return nil
}

func (m *Model) openDialog(state uiState, title string, content tea.Model) tea.Cmd {
	m.uiState = state
	m.dialog = NewDialog(title, content, m.devMode)
	return m.dialog.Init()
}

func (m *Model) closeDialog() {
	m.uiState = stateCook
	m.dialog = nil
}

// syncDialog keeps the open dialog consistent with the session: the setup
// form appears when there is no cook, and cook dialogs close when the cook
// goes away (another client may have reset it).
func (m *Model) syncDialog() tea.Cmd {
	mode := session.Mode(m.state)
	cookDialog := m.uiState != stateCook && m.uiState != stateSetup
	if cookDialog && (mode == session.ViewSetup || mode == session.ViewReport) {
		m.closeDialog()
	}
	if m.uiState == stateSetup && mode != session.ViewSetup {
		m.closeDialog()
	}

	if mode == session.ViewSetup && m.uiState == stateCook && m.presetsReady && !m.setupPending {
		return m.openDialog(stateSetup, "New cook", NewSetupForm(m.presets))
	}
	return nil
}

func (m *Model) updateDialog(msg tea.Msg) tea.Cmd {
	_, cmd := m.dialog.Update(msg)

	switch content := m.dialog.Content().(type) {
	case *SetupForm:
		if !content.Completed {
			return cmd
		}
		m.closeDialog()
		if content.Cancelled {
			return tea.Quit
		}
		req, err := content.Request(time.Now())
		if err != nil {
			m.notice = err.Error()
			return m.syncDialog()
		}
		m.setupPending = true
		return m.run(actionSetup, func(ctx context.Context) error {
			return m.actions.StartSession(ctx, req)
		})

	case *ReadingForm:
		if !content.Completed {
			return cmd
		}
		m.closeDialog()
		if content.Cancelled {
			return nil
		}
		temp, smoker, err := content.Reading()
		if err != nil {
			m.notice = err.Error()
			return nil
		}
		return m.run(actionReading, func(ctx context.Context) error {
			return m.actions.LogReading(ctx, temp, smoker)
		})

	case *WrapForm:
		if !content.Completed {
			return cmd
		}
		m.closeDialog()
		if content.Cancelled {
			return nil
		}
		wrapType := content.WrapType()
		return m.run(actionWrap, func(ctx context.Context) error {
			return m.actions.ApplyWrap(ctx, wrapType)
		})

	case *FinishForm:
		if !content.Completed {
			return cmd
		}
		m.closeDialog()
		if content.Cancelled {
			return nil
		}
		req := content.Request()
		return m.run(actionFinish, func(ctx context.Context) error {
			return m.actions.FinishSession(ctx, req)
		})
	}
	return cmd
}

// run calls fn off the update loop and reports the result
func (m *Model) run(action string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m *Model) loadPresetsCmd() tea.Cmd {
	if m.presetLister == nil {
		return func() tea.Msg { return presetsLoadedMsg{} }
	}
	ctx := m.ctx
	return func() tea.Msg {
		presets, err := m.presetLister.ListPresets(ctx)
		return presetsLoadedMsg{presets: presets, err: err}
	}
}

func (m *Model) View() string {
	if m.dialog != nil {
		return m.dialog.View() + m.footer()
	}

	var sb strings.Builder
	mode := session.Mode(m.state)

	subtitle := ""
	switch mode {
	case session.ViewSummary, session.ViewDetailed:
		subtitle = fmt.Sprintf("Cook %s · %s", shortID(m.state.SessionID), mode)
	case session.ViewReport:
		subtitle = "Report"
	}
	sb.WriteString(renderHeader(m.devMode, subtitle))
	sb.WriteString("\n")

	sb.WriteString(RenderState(m.state, m.width))

	sb.WriteString(m.footer())

	if mode == session.ViewReport {
		sb.WriteString(theme.HelpStyle.Render(m.help.ShortHelpView(m.keys.reportKeys())))
	} else if mode != session.ViewSetup {
		sb.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	}
	return sb.String()
}

// footer renders the loading indicator, the current error and any notice
func (m *Model) footer() string {
	var sb strings.Builder
	if m.state.Loading {
		sb.WriteString("\n")
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Talking to the prediction service...")
	}
	if m.state.Error != "" {
		sb.WriteString("\n")
		sb.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.state.Error, m.errorWidth())))
	}
	if m.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(theme.MutedStyle.Render(m.notice))
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *Model) errorWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width
}

func waitForState(ch <-chan session.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return feedClosedMsg{}
		}
		return stateMsg{state: s}
	}
}

// isInputError reports whether err was raised before any service call, in
// which case the controller holds no error for it
func isInputError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidSetup,
		domain.ErrInvalidWrapType,
		domain.ErrNoActiveSession,
		domain.ErrOutOfRange,
		domain.ErrTempOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
