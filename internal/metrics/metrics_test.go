package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/session"
)

func TestObserveAction(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveAction("reading", ResultSuccess, 20*time.Millisecond)
	m.ObserveAction("reading", ResultSuccess, 30*time.Millisecond)
	m.ObserveAction("reading", ResultInvalid, 0)
	m.ObserveAction("wrap", ResultError, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ActionsTotal.WithLabelValues("reading", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActionsTotal.WithLabelValues("reading", ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActionsTotal.WithLabelValues("wrap", ResultError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ActionDuration))
}

func TestObservePoll(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePoll(PollApplied)
	m.ObservePoll(PollFailed)
	m.ObservePoll(PollFailed)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PollTicksTotal.WithLabelValues(PollApplied)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PollTicksTotal.WithLabelValues(PollFailed)))
}

func TestRecordTracksEventsAndActiveSession(t *testing.T) {
	m := New(prometheus.NewRegistry())
	c := session.NewController(session.WithRecorder(m))

	c.Dispatch(session.SetupSucceeded{SessionID: "s-1", Prediction: domain.Prediction{}})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionActive))

	c.Dispatch(session.ModeToggled{})
	c.Dispatch(session.Reset{})

	assert.Equal(t, 0.0, testutil.ToFloat64(m.SessionActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues(string(session.KindReset))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues(string(session.KindToggleMode))))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAction("setup", ResultSuccess, time.Second)
		m.ObservePoll(PollApplied)
		m.Record(session.Reset{}, session.InitialState(), session.InitialState())
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObservePoll(PollDiscarded)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `pitmaster_poll_ticks_total{outcome="discarded"} 1`)
}
