package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/session"
)

type fakeActions struct {
	lidOpens int
	refreshs int
	resets   int
	setups   []domain.SetupRequest
	toggles  int
}

func (f *fakeActions) ApplyWrap(context.Context, domain.WrapType) error { return nil }

func (f *fakeActions) FinishSession(context.Context, domain.FinishRequest) error { return nil }

func (f *fakeActions) LogReading(context.Context, float64, *float64) error { return nil }

func (f *fakeActions) OpenLid(context.Context, float64) error {
	f.lidOpens++
	return nil
}

func (f *fakeActions) RefreshState(context.Context) error {
	f.refreshs++
	return nil
}

func (f *fakeActions) Reset() { f.resets++ }

func (f *fakeActions) StartSession(_ context.Context, req domain.SetupRequest) error {
	f.setups = append(f.setups, req)
	return nil
}

func (f *fakeActions) ToggleMode() { f.toggles++ }

func newTestModel(t *testing.T) (*Model, *fakeActions) {
	t.Helper()
	actions := &fakeActions{}
	m := NewModel(context.Background(), actions, session.NewController(), nil, false)
	t.Cleanup(m.Close)
	return m, actions
}

func activeState() session.State {
	return cookState(false)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelOpensSetupFormOncePresetsLoad(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(stateMsg{state: session.InitialState()})
	assert.Nil(t, m.dialog, "setup form waits for presets")

	m.Update(presetsLoadedMsg{err: errors.New("catalog down")})
	assert.Equal(t, stateSetup, m.uiState)
	require.NotNil(t, m.dialog)
	assert.IsType(t, &SetupForm{}, m.dialog.Content())
}

func TestModelClosesSetupFormWhenSessionStarts(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(presetsLoadedMsg{})
	require.Equal(t, stateSetup, m.uiState)

	m.Update(stateMsg{state: activeState()})

	assert.Equal(t, stateCook, m.uiState)
	assert.Nil(t, m.dialog)
}

func TestModelKeepsSetupClosedWhileSubmitting(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(presetsLoadedMsg{})
	m.closeDialog()
	m.setupPending = true

	m.Update(stateMsg{state: session.State{Loading: true}})
	assert.Nil(t, m.dialog)

	m.Update(actionDoneMsg{action: actionSetup, err: errors.New("service unavailable")})
	assert.Equal(t, stateSetup, m.uiState, "a failed setup offers the form again")
}

func TestModelCookKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		loading  bool
		uiState  uiState
		check    func(t *testing.T, a *fakeActions)
		runsCmds bool
	}{
		{name: "reading opens form", key: runes("r"), uiState: stateReading},
		{name: "wrap opens form", key: runes("w"), uiState: stateWrap},
		{name: "finish opens form", key: runes("f"), uiState: stateFinish},
		{name: "reading blocked while loading", key: runes("r"), loading: true, uiState: stateCook},
		{
			name:    "toggle switches mode",
			key:     runes("d"),
			uiState: stateCook,
			check:   func(t *testing.T, a *fakeActions) { assert.Equal(t, 1, a.toggles) },
		},
		{
			name:    "tab switches mode",
			key:     tea.KeyMsg{Type: tea.KeyTab},
			uiState: stateCook,
			check:   func(t *testing.T, a *fakeActions) { assert.Equal(t, 1, a.toggles) },
		},
		{
			name:    "new cook resets",
			key:     runes("n"),
			uiState: stateCook,
			check:   func(t *testing.T, a *fakeActions) { assert.Equal(t, 1, a.resets) },
		},
		{
			name:     "lid open works while loading",
			key:      runes("l"),
			loading:  true,
			uiState:  stateCook,
			runsCmds: true,
			check:    func(t *testing.T, a *fakeActions) { assert.Equal(t, 1, a.lidOpens) },
		},
		{
			name:     "refresh",
			key:      runes("u"),
			uiState:  stateCook,
			runsCmds: true,
			check:    func(t *testing.T, a *fakeActions) { assert.Equal(t, 1, a.refreshs) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, actions := newTestModel(t)
			s := activeState()
			s.Loading = tt.loading
			m.Update(stateMsg{state: s})

			_, cmd := m.Update(tt.key)
			if tt.runsCmds {
				require.NotNil(t, cmd)
				msg := cmd()
				assert.IsType(t, actionDoneMsg{}, msg)
			}

			assert.Equal(t, tt.uiState, m.uiState)
			if tt.check != nil {
				tt.check(t, actions)
			}
		})
	}
}

func TestModelResetClosesCookDialogs(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(stateMsg{state: activeState()})
	m.Update(runes("r"))
	require.Equal(t, stateReading, m.uiState)

	m.Update(stateMsg{state: session.InitialState()})

	assert.Equal(t, stateCook, m.uiState)
	assert.Nil(t, m.dialog)
}

func TestModelReportScreen(t *testing.T) {
	m, actions := newTestModel(t)
	s := activeState()
	s.Report = &domain.Report{TotalCookMinutes: 600}
	m.Update(stateMsg{state: s})

	m.Update(runes("r"))
	assert.Equal(t, stateCook, m.uiState, "cook actions are disabled on the report")
	assert.Contains(t, m.View(), "Cook complete")

	m.Update(runes("n"))
	assert.Equal(t, 1, actions.resets)
}

func TestModelActionDoneNotices(t *testing.T) {
	tests := []struct {
		name   string
		msg    actionDoneMsg
		notice string
	}{
		{
			name:   "input errors are shown",
			msg:    actionDoneMsg{action: actionReading, err: fmt.Errorf("%w: 250.0°F", domain.ErrTempOutOfRange)},
			notice: "probe temperature out of range: 250.0°F",
		},
		{
			name: "service errors live in the state",
			msg:  actionDoneMsg{action: actionReading, err: errors.New("log reading: 500")},
		},
		{
			name:   "lid open is acknowledged",
			msg:    actionDoneMsg{action: actionLidOpen},
			notice: "Lid opening recorded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m.Update(stateMsg{state: activeState()})

			m.Update(tt.msg)

			assert.Equal(t, tt.notice, m.notice)
		})
	}
}

func TestModelViewShowsError(t *testing.T) {
	m, _ := newTestModel(t)
	s := activeState()
	s.Error = "Failed to log reading"
	m.Update(stateMsg{state: s})

	view := m.View()

	assert.Contains(t, view, "Error: Failed to log reading")
	assert.Contains(t, view, "Ready in")
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelFollowsController(t *testing.T) {
	controller := session.NewController()
	m := NewModel(context.Background(), &fakeActions{}, controller, nil, false)
	defer m.Close()

	msg := waitForState(m.updates)()
	assert.Equal(t, stateMsg{state: session.InitialState()}, msg)

	controller.Dispatch(session.ModeToggled{})
	msg = waitForState(m.updates)()
	require.IsType(t, stateMsg{}, msg)
	assert.True(t, msg.(stateMsg).state.DetailedMode)

	m.Close()
	assert.Equal(t, feedClosedMsg{}, waitForState(m.updates)())
}
