package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/session"
)

func cookState(detailed bool) session.State {
	return session.State{
		DetailedMode: detailed,
		Prediction: &domain.Prediction{
			Confidence:       domain.ConfidenceModerate,
			CurrentState:     domain.PhasePreStall,
			P10Minutes:       300,
			P50Minutes:       360,
			P90Minutes:       450,
			ReadingsCount:    3,
			StallProbability: 0.1,
		},
		PredictionHistory: []domain.PredictionHistoryPoint{
			{ElapsedMinutes: 30, P10: 300, P50: 370, P90: 460},
			{ElapsedMinutes: 60, P10: 300, P50: 360, P90: 450},
		},
		SessionID: "0b7f2c3e-1111-2222-3333-444455556666",
		Status: &domain.CookStatus{
			CurrentState:   domain.PhasePreStall,
			ElapsedMinutes: 60,
			ReadingsCount:  2,
			WrapType:       domain.WrapNone,
		},
		TempHistory: []domain.HistoryPoint{
			{ElapsedMinutes: 30, TempF: 110},
			{ElapsedMinutes: 60, TempF: 128.4},
		},
	}
}

func TestRenderCook(t *testing.T) {
	stalled := cookState(false)
	stalled.Status.StallActive = true
	stalled.Status.StallDurationMinutes = 42

	tests := []struct {
		name        string
		state       session.State
		contains    []string
		notContains []string
	}{
		{
			name:     "no prediction",
			state:    session.State{SessionID: "s-1"},
			contains: []string{"No active cook"},
		},
		{
			name:        "summary",
			state:       cookState(false),
			contains:    []string{"Ready in", "6h 0m", "5h 0m to 7h 30m", "Moderate", "elapsed 1h 0m"},
			notContains: []string{"P10 (optimistic)", "Stall in progress", "Timeline"},
		},
		{
			name:     "detailed",
			state:    cookState(true),
			contains: []string{"P10 (optimistic)", "P90 (safe)", "Stall chance", "10%", "last 128°F at 1h 0m", "P50 6h 0m", "Timeline (minutes remaining)", "max 7h 40m"},
		},
		{
			name:     "stall with wrap suggestion",
			state:    stalled,
			contains: []string{"Stall in progress", "for 42 minutes", "press w"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderCook(tt.state, 80)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestRenderRecentReadingsNewestFirst(t *testing.T) {
	got := renderRecentReadings(cookState(true))

	lines := strings.Split(strings.TrimSpace(got), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "128.4°F")
	assert.Contains(t, lines[1], "110.0°F")
}

func TestRenderReport(t *testing.T) {
	rating := domain.QualityExcellent
	report := domain.Report{
		FinalTempF:                203,
		LidOpensCount:             2,
		PredictionAccuracyMinutes: -12,
		QualityNotes:              "great bark",
		QualityRating:             &rating,
		ReadingsCount:             14,
		Residuals:                 []float64{1.5, -2, 0.5},
		StallDurationMinutes:      95,
		StallOccurred:             true,
		TotalCookMinutes:          725,
		WasWrapped:                true,
		WrapType:                  domain.WrapButcherPaper,
	}

	got := RenderReport(report, 80)

	for _, s := range []string{
		"Cook complete",
		"12h 5m",
		"203.0°F",
		"yes, 1h 35m",
		"Butcher Paper",
		"±12m",
		"Excellent",
		"great bark",
		"Residuals (°F)",
		"max 2.0",
	} {
		assert.Contains(t, got, s)
	}
}

func TestRenderReportWithoutFeedback(t *testing.T) {
	got := RenderReport(domain.Report{TotalCookMinutes: 30}, 80)

	assert.NotContains(t, got, "Quality")
	assert.NotContains(t, got, "Residuals")
	assert.Contains(t, got, "Wrapped")
}

func TestRenderResidualChartKeepsLatest(t *testing.T) {
	residuals := make([]float64, 100)
	residuals[99] = 7

	got := RenderResidualChart(residuals, 30)

	assert.Contains(t, got, "max 7.0")
}

func TestRenderTimelineChart(t *testing.T) {
	history := cookState(true).PredictionHistory

	got := RenderTimelineChart(history, 80)

	assert.Contains(t, got, "P10")
	assert.Contains(t, got, "P50")
	assert.Contains(t, got, "max 7h 40m")
	assert.Contains(t, got, "30m to 1h 0m elapsed, P50 6h 10m → 6h 0m")
	assert.NotContains(t, got, "Need more readings")
}

func TestRenderTimelineChartNeedsTwoReadings(t *testing.T) {
	one := []domain.PredictionHistoryPoint{{ElapsedMinutes: 5, P10: 300, P50: 360, P90: 450}}

	assert.Contains(t, RenderTimelineChart(nil, 80), "Need more readings")
	assert.Contains(t, RenderTimelineChart(one, 80), "Need more readings")
}

func TestRenderTimelineChartKeepsLatest(t *testing.T) {
	history := make([]domain.PredictionHistoryPoint, 100)
	for i := range history {
		history[i] = domain.PredictionHistoryPoint{ElapsedMinutes: float64(i), P10: 10, P50: 20, P90: 30}
	}
	history[99].P90 = 500

	got := RenderTimelineChart(history, 30)

	assert.Contains(t, got, "max 8h 20m")
	assert.Contains(t, got, "1h 30m to 1h 39m elapsed")
}

func TestRenderStatePicksScreen(t *testing.T) {
	finished := cookState(false)
	finished.Report = &domain.Report{TotalCookMinutes: 90}

	assert.Contains(t, RenderState(session.InitialState(), 80), "No active cook")
	assert.Contains(t, RenderState(cookState(false), 80), "Ready in")
	assert.Contains(t, RenderState(finished, 80), "Cook complete")
}
