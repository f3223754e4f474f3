package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/metrics"
	"github.com/renato0307/pitmaster/internal/ports"
	"github.com/renato0307/pitmaster/internal/session"
)

// Fallback messages shown when a failed call carries no text of its own
const (
	msgAttachFailed  = "Failed to attach to cook"
	msgFinishFailed  = "Failed to finish cook"
	msgReadingFailed = "Failed to log reading"
	msgRefreshFailed = "Failed to refresh state"
	msgSetupFailed   = "Setup failed"
	msgWrapFailed    = "Failed to apply wrap"
)

// Action names used in metrics and logs
const (
	actionAttach  = "attach"
	actionFinish  = "finish"
	actionLidOpen = "lid_open"
	actionReading = "reading"
	actionRefresh = "refresh"
	actionSetup   = "setup"
	actionWrap    = "wrap"
)

// Dispatcher is the part of the session controller the façade drives
type Dispatcher interface {
	Dispatch(ev session.Event) session.State
	DispatchIf(guard func(session.State) bool, ev session.Event) (session.State, bool)
	State() session.State
}

// CookService turns operator intents into prediction service calls and
// controller events. Every critical call raises the loading flag first and
// ends with either a success event or an error message.
type CookService struct {
	api          ports.CookSessionAPI
	controller   Dispatcher
	detailedMode bool
	journal      ports.CookRecorder
	metrics      *metrics.Metrics
}

// CookServiceOption configures a CookService
type CookServiceOption func(*CookService)

// WithDetailedMode makes detailed the preferred view. It is applied by
// ApplyDefaultMode and again after every Reset.
func WithDetailedMode(detailed bool) CookServiceOption {
	return func(s *CookService) {
		s.detailedMode = detailed
	}
}

// NewCookService creates a new CookService. journal and m may be nil.
func NewCookService(
	api ports.CookSessionAPI,
	controller Dispatcher,
	journal ports.CookRecorder,
	m *metrics.Metrics,
	opts ...CookServiceOption,
) *CookService {
	s := &CookService{
		api:        api,
		controller: controller,
		journal:    journal,
		metrics:    m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyDefaultMode switches to the preferred view. The controller always
// starts from the empty aggregate, so the preference is expressed as a
// ModeToggled event and the state stays a fold of the dispatched events.
func (s *CookService) ApplyDefaultMode() {
	if !s.detailedMode {
		return
	}
	s.controller.DispatchIf(func(st session.State) bool { return !st.DetailedMode }, session.ModeToggled{})
}

// StartSession creates a cook session. A session that is already active is
// replaced by the new one.
func (s *CookService) StartSession(ctx context.Context, req domain.SetupRequest) error {
	if err := req.Validate(); err != nil {
		s.metrics.ObserveAction(actionSetup, metrics.ResultInvalid, 0)
		return err
	}

	logging.Logger.Info("Starting cook session",
		"cut", req.CutType,
		"equipment", req.EquipmentType,
		"weight_lbs", req.WeightLbs)

	s.controller.Dispatch(session.LoadingSet{Loading: true})
	start := time.Now()
	res, err := s.api.StartSession(ctx, req)
	if err != nil {
		s.fail(actionSetup, msgSetupFailed, err, start, nil)
		return fmt.Errorf("start session: %w", err)
	}

	s.controller.Dispatch(session.SetupSucceeded{
		BackwardPlan: res.BackwardPlan,
		Prediction:   res.Prediction,
		SessionID:    res.SessionID,
	})
	s.metrics.ObserveAction(actionSetup, metrics.ResultSuccess, time.Since(start))
	logging.Logger.Info("Cook session started", "session_id", res.SessionID)

	s.recordCook(ctx, req, res.SessionID)
	return nil
}

// AttachSession adopts a session started elsewhere and makes it the active
// one. The status is fetched as well, but failing to get it is not an error.
func (s *CookService) AttachSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		s.metrics.ObserveAction(actionAttach, metrics.ResultInvalid, 0)
		return fmt.Errorf("%w: empty session id", domain.ErrInvalidSetup)
	}

	s.controller.Dispatch(session.LoadingSet{Loading: true})
	start := time.Now()
	prediction, err := s.api.GetPrediction(ctx, sessionID)
	if err != nil {
		s.fail(actionAttach, msgAttachFailed, err, start, nil)
		return fmt.Errorf("attach session: %w", err)
	}

	s.controller.Dispatch(session.SetupSucceeded{Prediction: prediction, SessionID: sessionID})
	s.metrics.ObserveAction(actionAttach, metrics.ResultSuccess, time.Since(start))
	logging.Logger.Info("Attached to cook session", "session_id", sessionID)

	if status, err := s.api.GetState(ctx, sessionID); err != nil {
		logging.Logger.Warn("Failed to fetch status of attached session", "session_id", sessionID, "error", err)
	} else {
		s.controller.DispatchIf(sameSession(sessionID), session.StateUpdated{Status: status})
	}

	if s.journal != nil {
		// the cook is already journaled when it was started on this machine
		rec := domain.CookRecord{SessionID: sessionID, StartedAt: time.Now()}
		if err := s.journal.StartCook(ctx, rec); err != nil {
			logging.Logger.Debug("Attached cook not journaled", "session_id", sessionID, "error", err)
		}
	}
	return nil
}

// LogReading sends a probe reading for the active session
func (s *CookService) LogReading(ctx context.Context, tempF float64, smokerTempF *float64) error {
	req := domain.ReadingRequest{SmokerTempF: smokerTempF, TempF: tempF}
	if err := req.Validate(); err != nil {
		s.metrics.ObserveAction(actionReading, metrics.ResultInvalid, 0)
		return err
	}

	id, err := s.activeSession()
	if err != nil {
		return err
	}

	s.controller.Dispatch(session.LoadingSet{Loading: true})
	start := time.Now()
	res, err := s.api.LogReading(ctx, id, req)
	if err != nil {
		s.fail(actionReading, msgReadingFailed, err, start, sameSession(id))
		return fmt.Errorf("log reading: %w", err)
	}

	s.succeed(actionReading, id, start, session.ReadingSucceeded{
		ElapsedMinutes: res.ElapsedMinutes,
		LoggedTempF:    tempF,
		Prediction:     res.Prediction,
		Status:         res.Status,
	})
	return nil
}

// OpenLid reports a lid opening. It is fire-and-forget: the loading flag is
// not raised and service failures are only logged. A zero duration means the
// default of 30 seconds.
func (s *CookService) OpenLid(ctx context.Context, durationSeconds float64) error {
	if durationSeconds == 0 {
		durationSeconds = domain.DefaultLidOpenSeconds
	}
	if err := domain.ValidateLidOpenSeconds(durationSeconds); err != nil {
		s.metrics.ObserveAction(actionLidOpen, metrics.ResultInvalid, 0)
		return err
	}

	id, err := s.activeSession()
	if err != nil {
		return err
	}

	start := time.Now()
	if err := s.api.LidOpened(ctx, id, durationSeconds); err != nil {
		logging.Logger.Warn("Failed to record lid opening", "session_id", id, "error", err)
		s.metrics.ObserveAction(actionLidOpen, metrics.ResultError, time.Since(start))
		return nil
	}

	s.metrics.ObserveAction(actionLidOpen, metrics.ResultSuccess, time.Since(start))
	logging.Logger.Debug("Lid opening recorded", "session_id", id, "seconds", durationSeconds)
	return nil
}

// ApplyWrap records a wrap intervention
func (s *CookService) ApplyWrap(ctx context.Context, wrapType domain.WrapType) error {
	if err := wrapType.Validate(); err != nil {
		s.metrics.ObserveAction(actionWrap, metrics.ResultInvalid, 0)
		return err
	}

	id, err := s.activeSession()
	if err != nil {
		return err
	}

	s.controller.Dispatch(session.LoadingSet{Loading: true})
	start := time.Now()
	res, err := s.api.ApplyWrap(ctx, id, wrapType)
	if err != nil {
		s.fail(actionWrap, msgWrapFailed, err, start, sameSession(id))
		return fmt.Errorf("apply wrap: %w", err)
	}

	s.succeed(actionWrap, id, start, session.WrapSucceeded{
		Message:    res.Message,
		Prediction: res.Prediction,
		WrapType:   res.WrapType,
	})
	return nil
}

// FinishSession ends the active cook and stores the report
func (s *CookService) FinishSession(ctx context.Context, req domain.FinishRequest) error {
	if err := req.Validate(); err != nil {
		s.metrics.ObserveAction(actionFinish, metrics.ResultInvalid, 0)
		return err
	}

	id, err := s.activeSession()
	if err != nil {
		return err
	}

	s.controller.Dispatch(session.LoadingSet{Loading: true})
	start := time.Now()
	report, err := s.api.FinishSession(ctx, id, req)
	if err != nil {
		s.fail(actionFinish, msgFinishFailed, err, start, sameSession(id))
		return fmt.Errorf("finish session: %w", err)
	}

	s.succeed(actionFinish, id, start, session.FinishSucceeded{Report: report})
	logging.Logger.Info("Cook session finished",
		"session_id", id,
		"total_minutes", report.TotalCookMinutes)

	if s.journal != nil {
		if err := s.journal.MarkFinished(ctx, id, report); err != nil {
			logging.Logger.Error("Failed to journal report", "session_id", id, "error", err)
		}
	}
	return nil
}

// RefreshState fetches the authoritative status for the active session. The
// loading flag is left alone because a status update does not clear it.
func (s *CookService) RefreshState(ctx context.Context) error {
	id, err := s.activeSession()
	if err != nil {
		return err
	}

	start := time.Now()
	status, err := s.api.GetState(ctx, id)
	if err != nil {
		s.fail(actionRefresh, msgRefreshFailed, err, start, sameSession(id))
		return fmt.Errorf("refresh state: %w", err)
	}

	s.succeed(actionRefresh, id, start, session.StateUpdated{Status: status})
	return nil
}

// ToggleMode switches between the summary and detailed views
func (s *CookService) ToggleMode() {
	s.controller.Dispatch(session.ModeToggled{})
}

// Reset discards the current session. Polling for it stops and late results
// for it are dropped.
func (s *CookService) Reset() {
	prev := s.controller.State()
	s.controller.Dispatch(session.Reset{})
	s.ApplyDefaultMode()
	logging.Logger.Info("Cook session reset", "session_id", prev.SessionID)
}

func (s *CookService) activeSession() (string, error) {
	st := s.controller.State()
	if !st.HasSession() {
		return "", domain.ErrNoActiveSession
	}
	return st.SessionID, nil
}

// succeed applies ev unless the session changed while the call was in flight
func (s *CookService) succeed(action, sessionID string, start time.Time, ev session.Event) {
	s.metrics.ObserveAction(action, metrics.ResultSuccess, time.Since(start))
	if _, ok := s.controller.DispatchIf(sameSession(sessionID), ev); !ok {
		logging.Logger.Info("Dropping result for a session that is no longer active",
			"action", action,
			"session_id", sessionID)
	}
}

// fail surfaces err on the controller. A nil guard always applies.
func (s *CookService) fail(action, fallback string, err error, start time.Time, guard func(session.State) bool) {
	s.metrics.ObserveAction(action, metrics.ResultError, time.Since(start))
	logging.Logger.Error("Cook action failed", "action", action, "error", err)
	s.controller.DispatchIf(guard, session.ErrorSet{Message: errorMessage(err, fallback)})
}

func (s *CookService) recordCook(ctx context.Context, req domain.SetupRequest, sessionID string) {
	if s.journal == nil {
		return
	}
	rec := domain.CookRecord{
		CutType:       req.CutType,
		EquipmentType: req.EquipmentType,
		MeatCategory:  req.MeatCategory,
		SessionID:     sessionID,
		StartedAt:     time.Now(),
		TargetTempF:   req.TargetTempF,
	}
	if err := s.journal.StartCook(ctx, rec); err != nil {
		logging.Logger.Error("Failed to journal cook", "session_id", sessionID, "error", err)
	}
}

func sameSession(sessionID string) func(session.State) bool {
	return func(st session.State) bool {
		return st.SessionID == sessionID
	}
}

func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
