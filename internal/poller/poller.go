// Package poller keeps the current prediction fresh between operator actions.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/metrics"
	"github.com/renato0307/pitmaster/internal/session"
)

// DefaultInterval is the period between prediction polls
const DefaultInterval = 30 * time.Second

// PredictionFetcher fetches the latest prediction for a session
type PredictionFetcher interface {
	GetPrediction(ctx context.Context, sessionID string) (domain.Prediction, error)
}

// Sink receives polled predictions. It must reject the prediction, returning
// false, when ctx is done or sessionID is no longer the current session.
type Sink interface {
	ApplyPrediction(ctx context.Context, sessionID string, p domain.Prediction) bool
}

// Option configures a Loop
type Option func(*Loop)

// WithInterval sets the polling period
func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithLogger overrides the package logger
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithMetrics counts tick outcomes
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loop) {
		l.metrics = m
	}
}

// Loop polls the prediction service on a fixed period
type Loop struct {
	fetcher  PredictionFetcher
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
	sink     Sink
}

// New creates a polling loop
func New(fetcher PredictionFetcher, sink Sink, opts ...Option) *Loop {
	l := &Loop{
		fetcher:  fetcher,
		interval: DefaultInterval,
		sink:     sink,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Interval returns the polling period
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run polls sessionID until ctx is canceled. Each tick fetches in its own
// goroutine so a slow response never delays the next tick; when responses
// overlap the last one to arrive wins. Run returns after every in-flight
// tick has finished. Failed polls are logged and counted, nothing more.
func (l *Loop) Run(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	l.log().Debug("Prediction polling started", "session_id", sessionID, "interval", l.interval)
	defer l.log().Debug("Prediction polling stopped", "session_id", sessionID)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// select picks randomly between ready cases
			if ctx.Err() != nil {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				l.tick(ctx, sessionID)
			}()
		}
	}
}

func (l *Loop) tick(ctx context.Context, sessionID string) {
	p, err := l.fetcher.GetPrediction(ctx, sessionID)
	if err != nil {
		if ctx.Err() != nil {
			l.metrics.ObservePoll(metrics.PollDiscarded)
			return
		}
		l.log().Debug("Prediction poll failed", "session_id", sessionID, "error", err)
		l.metrics.ObservePoll(metrics.PollFailed)
		return
	}

	if ctx.Err() != nil || !l.sink.ApplyPrediction(ctx, sessionID, p) {
		l.log().Debug("Discarding stale prediction", "session_id", sessionID)
		l.metrics.ObservePoll(metrics.PollDiscarded)
		return
	}
	l.metrics.ObservePoll(metrics.PollApplied)
}

func (l *Loop) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return logging.Logger
}

// Dispatcher is the part of the session controller the sink needs
type Dispatcher interface {
	DispatchIf(guard func(session.State) bool, ev session.Event) (session.State, bool)
}

// ControllerSink applies polled predictions to a session controller
type ControllerSink struct {
	dispatcher Dispatcher
}

// NewControllerSink creates a sink writing to d
func NewControllerSink(d Dispatcher) *ControllerSink {
	return &ControllerSink{dispatcher: d}
}

// ApplyPrediction dispatches a PredictionUpdated event if, at the moment of
// applying, ctx is still live and sessionID is still the current session.
func (s *ControllerSink) ApplyPrediction(ctx context.Context, sessionID string, p domain.Prediction) bool {
	guard := func(st session.State) bool {
		return ctx.Err() == nil && st.SessionID == sessionID
	}
	_, applied := s.dispatcher.DispatchIf(guard, session.PredictionUpdated{Prediction: p})
	return applied
}
