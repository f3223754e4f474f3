package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/pitmaster/internal/domain"
)

func stateWithStatus(st domain.CookStatus) State {
	p := prediction(600)
	return State{SessionID: "s-1", Prediction: &p, Status: &st}
}

func TestSuggestWrap(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected bool
	}{
		{"no status yet", State{SessionID: "s-1"}, false},
		{"exactly at threshold", stateWithStatus(status(true, 30.0, domain.WrapNone)), false},
		{"just past threshold", stateWithStatus(status(true, 30.0001, domain.WrapNone)), true},
		{"long stall", stateWithStatus(status(true, 45, domain.WrapNone)), true},
		{"empty wrap type counts as unwrapped", stateWithStatus(status(true, 45, "")), true},
		{"stall not active", stateWithStatus(status(false, 45, domain.WrapNone)), false},
		{"already wrapped", stateWithStatus(status(true, 45, domain.WrapButcherPaper)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestWrap(tt.state))
		})
	}
}

func TestStallNotice(t *testing.T) {
	withProbability := func(p float64, st *domain.CookStatus) State {
		pred := prediction(600)
		pred.StallProbability = p
		return State{SessionID: "s-1", Prediction: &pred, Status: st}
	}
	active := status(true, 44.6, domain.WrapNone)
	idle := status(false, 0, domain.WrapNone)

	tests := []struct {
		name     string
		state    State
		show     bool
		kind     StallKind
		minutes  int
		pct      int
		contains string
	}{
		{"nothing to report", withProbability(0.29, &idle), false, 0, 0, 0, ""},
		{"probability at threshold", withProbability(0.3, &idle), true, StallApproaching, 0, 30, "30% chance"},
		{"probability without status", withProbability(0.55, nil), true, StallApproaching, 0, 55, "55% chance"},
		{"active stall wins over probability", withProbability(0.9, &active), true, StallActive, 45, 0, "for 45 minutes"},
		{"active stall with low probability", withProbability(0.0, &active), true, StallActive, 45, 0, "Hang tight"},
		{"no prediction and no status", State{}, false, 0, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, show := StallNotice(tt.state)
			assert.Equal(t, tt.show, show)
			if !tt.show {
				return
			}
			assert.Equal(t, tt.kind, msg.Kind)
			assert.Equal(t, tt.minutes, msg.DurationMinutes)
			assert.Equal(t, tt.pct, msg.ProbabilityPct)
			assert.Contains(t, msg.Body, tt.contains)
			assert.NotEmpty(t, msg.Title)
		})
	}
}

func TestMode(t *testing.T) {
	p := prediction(600)
	report := domain.Report{SessionID: "s-1"}

	tests := []struct {
		name     string
		state    State
		expected ViewMode
	}{
		{"initial", InitialState(), ViewSetup},
		{"session without prediction", State{SessionID: "s-1"}, ViewSetup},
		{"summary", State{SessionID: "s-1", Prediction: &p}, ViewSummary},
		{"detailed", State{SessionID: "s-1", Prediction: &p, DetailedMode: true}, ViewDetailed},
		{"finished", State{SessionID: "s-1", Prediction: &p, Report: &report}, ViewReport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mode(tt.state))
		})
	}
}

func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "summary", ViewSummary.String())
	assert.Equal(t, "report", ViewReport.String())
	assert.Equal(t, "unknown", ViewMode(42).String())
}

func TestWrapOptions(t *testing.T) {
	opts := WrapOptions()

	assert.Len(t, opts, 3)
	for _, o := range opts {
		assert.NoError(t, o.Type.Validate())
		assert.NotEmpty(t, o.Description)
	}
}
