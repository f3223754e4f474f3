package session

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pitmaster/internal/domain"
)

func prediction(p50 float64) domain.Prediction {
	return domain.Prediction{
		Confidence:       domain.ConfidenceModerate,
		CurrentState:     domain.PhaseEarlyCook,
		P10Minutes:       p50 - 60,
		P50Minutes:       p50,
		P90Minutes:       p50 + 90,
		ReadingsCount:    1,
		StallProbability: 0.1,
	}
}

func status(stallActive bool, stallMinutes float64, wrap domain.WrapType) domain.CookStatus {
	return domain.CookStatus{
		Confidence:           domain.ConfidenceModerate,
		CurrentState:         domain.PhaseStall,
		ElapsedMinutes:       240,
		ReadingsCount:        5,
		StallActive:          stallActive,
		StallDurationMinutes: stallMinutes,
		WrapType:             wrap,
	}
}

func reading(tempF, elapsed, p50 float64) ReadingSucceeded {
	return ReadingSucceeded{
		ElapsedMinutes: elapsed,
		LoggedTempF:    tempF,
		Prediction:     prediction(p50),
		Status:         status(false, 0, domain.WrapNone),
	}
}

// populated returns a state touched by every kind of event
func populated() State {
	dinner := time.Date(2026, 7, 4, 18, 0, 0, 0, time.UTC)
	return Replay([]Event{
		SetupSucceeded{SessionID: "s-1", Prediction: prediction(600), BackwardPlan: &domain.BackwardPlan{DinnerTime: dinner}},
		ModeToggled{},
		reading(150, 60, 540),
		reading(160, 90, 520),
		WrapSucceeded{Prediction: prediction(480), WrapType: domain.WrapFoil},
		StateUpdated{Status: status(true, 40, domain.WrapFoil)},
		ErrorSet{Message: "API error 500: boom"},
		LoadingSet{Loading: true},
		FinishSucceeded{Report: domain.Report{SessionID: "s-1", Residuals: []float64{1, 2}}},
	})
}

func TestReduce_SetupSuccess(t *testing.T) {
	prev := State{Loading: true, Error: "old failure", TempHistory: []domain.HistoryPoint{{ElapsedMinutes: 1, TempF: 100}}}
	plan := &domain.BackwardPlan{RestMinutes: 60}

	next := Reduce(prev, SetupSucceeded{SessionID: "s-1", Prediction: prediction(600), BackwardPlan: plan})

	assert.Equal(t, "s-1", next.SessionID)
	require.NotNil(t, next.Prediction)
	assert.Equal(t, 600.0, next.Prediction.P50Minutes)
	assert.Same(t, plan, next.BackwardPlan)
	assert.False(t, next.Loading)
	assert.Empty(t, next.Error)
	assert.Equal(t, prev.TempHistory, next.TempHistory, "history is not touched by setup")
}

func TestReduce_ReadingAppendsLockstepHistories(t *testing.T) {
	s := Reduce(InitialState(), SetupSucceeded{SessionID: "s-1", Prediction: prediction(600)})
	s = Reduce(s, LoadingSet{Loading: true})

	next := Reduce(s, reading(165, 60, 540))

	assert.Equal(t, []domain.HistoryPoint{{ElapsedMinutes: 60, TempF: 165}}, next.TempHistory)
	assert.Equal(t, []domain.PredictionHistoryPoint{{ElapsedMinutes: 60, P10: 480, P50: 540, P90: 630}}, next.PredictionHistory)
	require.NotNil(t, next.Status)
	assert.Equal(t, 240.0, next.Status.ElapsedMinutes)
	assert.False(t, next.Loading)
}

func TestReduce_HistoryLengthsStayEqual(t *testing.T) {
	s := Reduce(InitialState(), SetupSucceeded{SessionID: "s-1", Prediction: prediction(600)})
	prevLen := 0

	events := []Event{
		reading(120, 10, 590),
		PredictionUpdated{Prediction: prediction(580)},
		reading(130, 20, 570),
		StateUpdated{Status: status(false, 0, domain.WrapNone)},
		WrapSucceeded{Prediction: prediction(500)},
		reading(140, 30, 560),
		ErrorSet{Message: "x"},
		reading(150, 40, 550),
	}
	for _, ev := range events {
		s = Reduce(s, ev)
		assert.Equal(t, len(s.TempHistory), len(s.PredictionHistory))
		assert.GreaterOrEqual(t, len(s.TempHistory), prevLen)
		prevLen = len(s.TempHistory)
	}
	assert.Equal(t, 4, prevLen)
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	s := Replay([]Event{
		SetupSucceeded{SessionID: "s-1", Prediction: prediction(600)},
		reading(150, 60, 540),
	})
	snapshot := s.Clone()

	_ = Reduce(s, reading(160, 90, 520))
	_ = Reduce(s, reading(170, 95, 500))
	_ = Reduce(s, PredictionUpdated{Prediction: prediction(1)})

	assert.Empty(t, cmp.Diff(snapshot, s))
}

func TestReduce_PredictionAndStateUpdatesReplaceOnly(t *testing.T) {
	s := Replay([]Event{
		SetupSucceeded{SessionID: "s-1", Prediction: prediction(600)},
		reading(150, 60, 540),
		LoadingSet{Loading: true},
	})

	afterPoll := Reduce(s, PredictionUpdated{Prediction: prediction(500)})
	assert.Equal(t, 500.0, afterPoll.Prediction.P50Minutes)
	assert.Len(t, afterPoll.TempHistory, 1)
	assert.True(t, afterPoll.Loading, "polls leave the loading flag alone")

	afterState := Reduce(afterPoll, StateUpdated{Status: status(true, 12, domain.WrapNone)})
	assert.True(t, afterState.Status.StallActive)
	assert.Equal(t, 500.0, afterState.Prediction.P50Minutes)
	assert.Len(t, afterState.PredictionHistory, 1)
}

func TestReduce_FinishKeepsCookData(t *testing.T) {
	s := Replay([]Event{
		SetupSucceeded{SessionID: "s-1", Prediction: prediction(600)},
		reading(150, 60, 540),
		LoadingSet{Loading: true},
	})

	next := Reduce(s, FinishSucceeded{Report: domain.Report{SessionID: "s-1", TotalCookMinutes: 600}})

	require.NotNil(t, next.Report)
	assert.Equal(t, 600.0, next.Report.TotalCookMinutes)
	assert.Equal(t, "s-1", next.SessionID)
	assert.NotNil(t, next.Prediction)
	assert.Len(t, next.TempHistory, 1)
	assert.False(t, next.Loading)
}

func TestReduce_ToggleModeFlipsOnlyTheFlag(t *testing.T) {
	s := populated()

	once := Reduce(s, ModeToggled{})
	twice := Reduce(once, ModeToggled{})

	assert.Equal(t, !s.DetailedMode, once.DetailedMode)
	assert.Empty(t, cmp.Diff(s, twice))
}

func TestReduce_SetErrorAlwaysClearsLoading(t *testing.T) {
	for _, loading := range []bool{true, false} {
		s := populated()
		s.Loading = loading

		next := Reduce(s, ErrorSet{Message: "API error 404: not found"})

		assert.False(t, next.Loading)
		assert.Equal(t, "API error 404: not found", next.Error)
	}
}

func TestReduce_ErrorIsOverwrittenNotAccumulated(t *testing.T) {
	s := Reduce(InitialState(), ErrorSet{Message: "first"})
	s = Reduce(s, ErrorSet{Message: "second"})
	assert.Equal(t, "second", s.Error)

	// a reading success does not clear a previous error
	s = Reduce(s, reading(150, 10, 500))
	assert.Equal(t, "second", s.Error)
}

func TestReduce_ResetYieldsInitialState(t *testing.T) {
	states := map[string]State{
		"initial":   InitialState(),
		"populated": populated(),
		"loading":   {Loading: true, Error: "x"},
	}

	for name, s := range states {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, cmp.Diff(InitialState(), Reduce(s, Reset{})))
		})
	}
}

func TestReduce_NilEventIsIgnored(t *testing.T) {
	s := populated()
	assert.Empty(t, cmp.Diff(s, Reduce(s, nil)))
}

func TestReplay_IsDeterministic(t *testing.T) {
	log := []Event{
		SetupSucceeded{SessionID: "s-1", Prediction: prediction(600)},
		reading(150, 60, 540),
		PredictionUpdated{Prediction: prediction(530)},
		ModeToggled{},
		reading(160, 75, 520),
		WrapSucceeded{Prediction: prediction(450), WrapType: domain.WrapButcherPaper},
		ErrorSet{Message: "API error 502: bad gateway"},
		StateUpdated{Status: status(false, 0, domain.WrapButcherPaper)},
		FinishSucceeded{Report: domain.Report{SessionID: "s-1"}},
	}

	first := Replay(log)
	second := Replay(log)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestScenario_BrisketCook(t *testing.T) {
	req := domain.NewSetupRequest(domain.CutBrisket, 12)
	require.NoError(t, req.Validate())

	s := InitialState()
	steps := []Event{
		LoadingSet{Loading: true},
		SetupSucceeded{SessionID: "brisket-1", Prediction: prediction(720)},
		LoadingSet{Loading: true},
		reading(165, 60, 700),
		LoadingSet{Loading: true},
		reading(170, 75, 690),
		LoadingSet{Loading: true},
		FinishSucceeded{Report: domain.Report{SessionID: "brisket-1", FinalTempF: 203}},
	}
	for i, ev := range steps {
		s = Reduce(s, ev)
		if i >= 1 {
			assert.Equal(t, "brisket-1", s.SessionID)
		}
	}

	assert.Equal(t, []domain.HistoryPoint{{ElapsedMinutes: 60, TempF: 165}, {ElapsedMinutes: 75, TempF: 170}}, s.TempHistory)
	assert.Len(t, s.PredictionHistory, 2)
	require.NotNil(t, s.Report)
	assert.Equal(t, 203.0, s.Report.FinalTempF)
	assert.False(t, s.Loading)
	assert.Equal(t, ViewReport, Mode(s))
}

func TestScenario_WrapDuringStall(t *testing.T) {
	s := Replay([]Event{
		SetupSucceeded{SessionID: "s-1", Prediction: prediction(700)},
		reading(160, 200, 650),
		StateUpdated{Status: status(true, 45, domain.WrapNone)},
	})
	require.True(t, SuggestWrap(s))
	tempLen, predLen := len(s.TempHistory), len(s.PredictionHistory)

	next := Reduce(s, WrapSucceeded{Prediction: prediction(520), WrapType: domain.WrapFoil, Message: "Wrapped in foil"})

	assert.Equal(t, 520.0, next.Prediction.P50Minutes)
	assert.Len(t, next.TempHistory, tempLen)
	assert.Len(t, next.PredictionHistory, predLen)
}

// The status keeps reporting no wrap until the next status-bearing response,
// so a wrap can still be suggested right after one was applied.
func TestScenario_WrapTypeStaysStaleUntilNextStatus(t *testing.T) {
	s := Replay([]Event{
		SetupSucceeded{SessionID: "s-1", Prediction: prediction(700)},
		StateUpdated{Status: status(true, 45, domain.WrapNone)},
		WrapSucceeded{Prediction: prediction(520), WrapType: domain.WrapFoil},
	})

	assert.Equal(t, domain.WrapNone, s.Status.WrapType)
	assert.True(t, SuggestWrap(s))

	s = Reduce(s, StateUpdated{Status: status(true, 50, domain.WrapFoil)})
	assert.False(t, SuggestWrap(s))
}
