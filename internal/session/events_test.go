package session

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pitmaster/internal/domain"
)

func TestEventCodec_ReplayFromJournalMatchesLiveState(t *testing.T) {
	eta := time.Date(2026, 7, 4, 17, 30, 0, 0, time.UTC)
	p := prediction(600)
	p.P50Time = &eta
	rating := domain.QualityGood

	log := []Event{
		SetupSucceeded{SessionID: "s-1", Prediction: p, BackwardPlan: &domain.BackwardPlan{DinnerTime: eta, RestMinutes: 60}},
		reading(150, 60, 540),
		PredictionUpdated{Prediction: prediction(530)},
		ModeToggled{},
		LoadingSet{Loading: true},
		ErrorSet{Message: "API error 500: boom"},
		WrapSucceeded{Prediction: prediction(450), WrapType: domain.WrapFoilBoat, Message: "ok"},
		StateUpdated{Status: status(true, 31, domain.WrapFoilBoat)},
		FinishSucceeded{Report: domain.Report{SessionID: "s-1", QualityRating: &rating, Residuals: []float64{0.5}}},
		Reset{},
		SetupSucceeded{SessionID: "s-2", Prediction: prediction(300)},
	}

	decoded := make([]Event, 0, len(log))
	for _, ev := range log {
		kind, payload, err := MarshalEvent(ev)
		require.NoError(t, err)
		assert.Equal(t, ev.Kind(), kind)

		back, err := UnmarshalEvent(kind, payload)
		require.NoError(t, err)
		decoded = append(decoded, back)
	}

	assert.Empty(t, cmp.Diff(Replay(log), Replay(decoded)))
	// replaying up to the reset boundary keeps the report
	assert.Empty(t, cmp.Diff(Replay(log[:9]), Replay(decoded[:9])))
}

func TestUnmarshalEvent_UnknownKind(t *testing.T) {
	_, err := UnmarshalEvent("grill_lit", []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrUnknownEventKind)
}

func TestUnmarshalEvent_BadPayload(t *testing.T) {
	_, err := UnmarshalEvent(KindSetError, []byte(`{"message":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set_error")
}

func TestMarshalEvent_Nil(t *testing.T) {
	_, _, err := MarshalEvent(nil)
	assert.ErrorIs(t, err, domain.ErrUnknownEventKind)
}
