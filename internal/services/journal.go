package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/ports"
	"github.com/renato0307/pitmaster/internal/session"
)

// DefaultJournalBuffer is the number of events a JournalRecorder queues before
// it starts dropping them
const DefaultJournalBuffer = 256

// JournalRecorder appends every applied controller event to the cook journal.
// Record runs under the controller lock, so entries are queued and written by
// a single worker goroutine in dispatch order.
type JournalRecorder struct {
	closed  bool
	done    chan struct{}
	entries chan domain.JournalEntry
	journal ports.CookRecorder
	mu      sync.Mutex
}

// NewJournalRecorder starts the writer goroutine. Call Close to flush it.
func NewJournalRecorder(journal ports.CookRecorder, buffer int) *JournalRecorder {
	if buffer <= 0 {
		buffer = DefaultJournalBuffer
	}
	r := &JournalRecorder{
		done:    make(chan struct{}),
		entries: make(chan domain.JournalEntry, buffer),
		journal: journal,
	}
	go r.run()
	return r
}

// Record implements session.Recorder. Events are filed under the session they
// belong to: the new one for a setup, the discarded one for a reset. Events
// outside any session are not journaled, and neither are the request flags
// (loading, error): a request may belong to a setup that is not the current
// cook, and a replayed cook has no request in flight.
func (r *JournalRecorder) Record(ev session.Event, prev, next session.State) {
	switch ev.(type) {
	case session.LoadingSet, session.ErrorSet:
		return
	}

	sessionID := next.SessionID
	if sessionID == "" {
		sessionID = prev.SessionID
	}
	if sessionID == "" {
		return
	}

	kind, payload, err := session.MarshalEvent(ev)
	if err != nil {
		logging.Logger.Error("Failed to encode event for journal", "event", ev.Kind(), "error", err)
		return
	}
	entry := domain.JournalEntry{
		Kind:       string(kind),
		Payload:    payload,
		RecordedAt: time.Now().UTC(),
		SessionID:  sessionID,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.entries <- entry:
	default:
		logging.Logger.Warn("Journal queue full, dropping event", "event", kind, "session_id", sessionID)
	}
}

// Close stops accepting events and waits until the queue is written
func (r *JournalRecorder) Close() error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.entries)
	}
	r.mu.Unlock()

	<-r.done
	return nil
}

func (r *JournalRecorder) run() {
	defer close(r.done)
	for entry := range r.entries {
		if err := r.journal.AppendEvent(context.Background(), entry); err != nil {
			logging.Logger.Error("Failed to journal event",
				"event", entry.Kind,
				"session_id", entry.SessionID,
				"error", err)
		}
	}
}

// JournalService reads back recorded cooks
type JournalService struct {
	journal ports.CookHistoryReader
	reports ports.ReportReader
}

// NewJournalService creates a new JournalService. reports is consulted when
// the local journal has no report for a cook and may be nil.
func NewJournalService(journal ports.CookHistoryReader, reports ports.ReportReader) *JournalService {
	return &JournalService{
		journal: journal,
		reports: reports,
	}
}

// ListCooks returns recorded cooks, newest first
func (s *JournalService) ListCooks(ctx context.Context) ([]domain.CookRecord, error) {
	cooks, err := s.journal.ListCooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cooks: %w", err)
	}
	return cooks, nil
}

// LoadEvents decodes the recorded events of a cook in arrival order
func (s *JournalService) LoadEvents(ctx context.Context, sessionID string) ([]session.Event, error) {
	entries, err := s.journal.Events(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	if len(entries) == 0 {
		if _, err := s.journal.GetCook(ctx, sessionID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	events := make([]session.Event, 0, len(entries))
	for _, e := range entries {
		ev, err := session.UnmarshalEvent(session.EventKind(e.Kind), e.Payload)
		if err != nil {
			return nil, fmt.Errorf("event %d of %s: %w", e.Seq, sessionID, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// ReplayCook rebuilds the state a cook had before it was reset. Events after
// the first reset are ignored.
func (s *JournalService) ReplayCook(ctx context.Context, sessionID string) (session.State, error) {
	events, err := s.LoadEvents(ctx, sessionID)
	if err != nil {
		return session.State{}, err
	}
	for i, ev := range events {
		if ev.Kind() == session.KindReset {
			events = events[:i]
			break
		}
	}
	return session.Replay(events), nil
}

// Report returns the report of a finished cook from the journal, falling back
// to the prediction service
func (s *JournalService) Report(ctx context.Context, sessionID string) (domain.Report, error) {
	report, err := s.journal.GetReport(ctx, sessionID)
	if err == nil {
		return *report, nil
	}
	if !errors.Is(err, domain.ErrCookNotFound) || s.reports == nil {
		return domain.Report{}, err
	}

	logging.Logger.Debug("Report not journaled, asking the prediction service", "session_id", sessionID)
	remote, err := s.reports.GetReport(ctx, sessionID)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to fetch report: %w", err)
	}
	return remote, nil
}
