package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/metrics"
	"github.com/renato0307/pitmaster/internal/session"
)

const (
	testInterval = 5 * time.Millisecond
	waitFor      = 2 * time.Second
)

type fetchFunc func(ctx context.Context, sessionID string, call int) (domain.Prediction, error)

// fakeFetcher records calls and delegates to fn
type fakeFetcher struct {
	mu    sync.Mutex
	calls []string
	fn    fetchFunc
}

func (f *fakeFetcher) GetPrediction(ctx context.Context, sessionID string) (domain.Prediction, error) {
	f.mu.Lock()
	f.calls = append(f.calls, sessionID)
	n := len(f.calls)
	f.mu.Unlock()
	return f.fn(ctx, sessionID, n)
}

func (f *fakeFetcher) callsFor(sessionID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == sessionID {
			n++
		}
	}
	return n
}

func (f *fakeFetcher) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func predictionWithP50(p50 float64) domain.Prediction {
	return domain.Prediction{P50Minutes: p50, Confidence: domain.ConfidenceLow}
}

func startedController(sessionID string) *session.Controller {
	c := session.NewController()
	c.Dispatch(session.SetupSucceeded{SessionID: sessionID, Prediction: predictionWithP50(600)})
	return c
}

func TestRun_EmptySessionReturnsImmediately(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	fetcher := &fakeFetcher{fn: func(context.Context, string, int) (domain.Prediction, error) {
		return domain.Prediction{}, nil
	}}
	loop := New(fetcher, NewControllerSink(session.NewController()), WithInterval(testInterval))

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background(), "")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("Run did not return for an empty session")
	}
	assert.Equal(t, 0, fetcher.total())
}

func TestNew_Defaults(t *testing.T) {
	loop := New(&fakeFetcher{}, nil, WithInterval(0))
	assert.Equal(t, DefaultInterval, loop.Interval())
}

func TestRun_AppliesPolledPredictions(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := startedController("s-1")
	fetcher := &fakeFetcher{fn: func(_ context.Context, _ string, call int) (domain.Prediction, error) {
		return predictionWithP50(600 - float64(call)), nil
	}}
	m := metrics.New(prometheus.NewRegistry())
	loop := New(fetcher, NewControllerSink(c), WithInterval(testInterval), WithMetrics(m))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx, "s-1")
		close(done)
	}()

	require.Eventually(t, func() bool {
		return c.State().Prediction.P50Minutes < 600
	}, waitFor, time.Millisecond)

	cancel()
	<-done

	s := c.State()
	assert.Empty(t, s.TempHistory, "polls are not logged as readings")
	assert.Empty(t, s.PredictionHistory)
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.PollTicksTotal.WithLabelValues(metrics.PollApplied)), 1.0)
}

func TestRun_FailuresAreSilentAndDoNotStopTheLoop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := startedController("s-1")
	fetcher := &fakeFetcher{fn: func(_ context.Context, _ string, call int) (domain.Prediction, error) {
		if call <= 3 {
			return domain.Prediction{}, errors.New("API error 503: unavailable")
		}
		return predictionWithP50(42), nil
	}}
	m := metrics.New(prometheus.NewRegistry())
	loop := New(fetcher, NewControllerSink(c), WithInterval(testInterval), WithMetrics(m))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx, "s-1")
		close(done)
	}()

	require.Eventually(t, func() bool {
		return c.State().Prediction.P50Minutes == 42
	}, waitFor, time.Millisecond)
	cancel()
	<-done

	s := c.State()
	assert.Empty(t, s.Error)
	assert.False(t, s.Loading)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.PollTicksTotal.WithLabelValues(metrics.PollFailed)))
}

func TestRun_SlowTickDoesNotDelayNextTick(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	release := make(chan struct{})
	fetcher := &fakeFetcher{fn: func(ctx context.Context, _ string, call int) (domain.Prediction, error) {
		if call == 1 {
			select {
			case <-release:
			case <-ctx.Done():
				return domain.Prediction{}, ctx.Err()
			}
		}
		return predictionWithP50(float64(call)), nil
	}}
	c := startedController("s-1")
	loop := New(fetcher, NewControllerSink(c), WithInterval(testInterval))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx, "s-1")
		close(done)
	}()

	// later ticks complete while the first one is still blocked
	require.Eventually(t, func() bool { return fetcher.total() >= 3 }, waitFor, time.Millisecond)
	require.Eventually(t, func() bool { return c.State().Prediction.P50Minutes >= 2 }, waitFor, time.Millisecond)

	close(release)
	cancel()
	<-done
}

func TestRun_LateResultAfterResetIsDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	fetcher := &fakeFetcher{fn: func(_ context.Context, _ string, call int) (domain.Prediction, error) {
		if call == 1 {
			once.Do(func() { close(started) })
			<-release
			return predictionWithP50(1), nil
		}
		return domain.Prediction{}, errors.New("unreachable")
	}}
	c := startedController("s-1")
	m := metrics.New(prometheus.NewRegistry())
	loop := New(fetcher, NewControllerSink(c), WithInterval(testInterval), WithMetrics(m))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx, "s-1")
		close(done)
	}()

	<-started
	c.Dispatch(session.Reset{})
	c.Dispatch(session.SetupSucceeded{SessionID: "s-2", Prediction: predictionWithP50(300)})

	close(release)
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(m.PollTicksTotal.WithLabelValues(metrics.PollDiscarded)) >= 1
	}, waitFor, time.Millisecond)

	cancel()
	<-done

	s := c.State()
	assert.Equal(t, "s-2", s.SessionID)
	assert.Equal(t, 300.0, s.Prediction.P50Minutes)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.PollTicksTotal.WithLabelValues(metrics.PollApplied)))
}

func TestRun_ResultArrivingAfterCancelIsDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	fetcher := &fakeFetcher{fn: func(context.Context, string, int) (domain.Prediction, error) {
		once.Do(func() { close(started) })
		<-release
		return predictionWithP50(1), nil
	}}
	c := startedController("s-1")
	loop := New(fetcher, NewControllerSink(c), WithInterval(testInterval))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx, "s-1")
		close(done)
	}()

	<-started
	cancel()
	close(release)
	<-done

	assert.Equal(t, 600.0, c.State().Prediction.P50Minutes)
}

func TestControllerSink_Guard(t *testing.T) {
	c := startedController("s-1")
	sink := NewControllerSink(c)

	assert.True(t, sink.ApplyPrediction(context.Background(), "s-1", predictionWithP50(10)))
	assert.False(t, sink.ApplyPrediction(context.Background(), "s-0", predictionWithP50(20)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sink.ApplyPrediction(ctx, "s-1", predictionWithP50(30)))

	assert.Equal(t, 10.0, c.State().Prediction.P50Minutes)
}
