package session

import (
	"encoding/json"
	"fmt"

	"github.com/renato0307/pitmaster/internal/domain"
)

// EventKind names an event for logs, metrics and the journal
type EventKind string

const (
	KindSetupSuccess     EventKind = "setup_success"
	KindReadingSuccess   EventKind = "reading_success"
	KindWrapSuccess      EventKind = "wrap_success"
	KindFinishSuccess    EventKind = "finish_success"
	KindPredictionUpdate EventKind = "prediction_update"
	KindStateUpdate      EventKind = "state_update"
	KindToggleMode       EventKind = "toggle_mode"
	KindSetLoading       EventKind = "set_loading"
	KindSetError         EventKind = "set_error"
	KindReset            EventKind = "reset"
)

// Event is a state transition accepted by the controller.
// The set of events is closed: only types in this package implement it.
type Event interface {
	Kind() EventKind
	isEvent()
}

// SetupSucceeded records that the service accepted a new cook
type SetupSucceeded struct {
	BackwardPlan *domain.BackwardPlan `json:"backward_plan,omitempty"`
	Prediction   domain.Prediction    `json:"prediction"`
	SessionID    string               `json:"session_id"`
}

// ReadingSucceeded records a logged probe reading. LoggedTempF is the value
// the operator entered, not an echo from the service.
type ReadingSucceeded struct {
	ElapsedMinutes float64           `json:"elapsed_minutes"`
	LoggedTempF    float64           `json:"logged_temp_f"`
	Prediction     domain.Prediction `json:"prediction"`
	Status         domain.CookStatus `json:"status"`
}

// WrapSucceeded records an applied wrap
type WrapSucceeded struct {
	Message    string            `json:"message"`
	Prediction domain.Prediction `json:"prediction"`
	WrapType   domain.WrapType   `json:"wrap_type"`
}

// FinishSucceeded carries the post-cook report
type FinishSucceeded struct {
	Report domain.Report `json:"report"`
}

// PredictionUpdated carries a polled prediction
type PredictionUpdated struct {
	Prediction domain.Prediction `json:"prediction"`
}

// StateUpdated carries a fetched session status
type StateUpdated struct {
	Status domain.CookStatus `json:"status"`
}

// ModeToggled flips between summary and detailed views
type ModeToggled struct{}

// LoadingSet sets the request-in-flight flag
type LoadingSet struct {
	Loading bool `json:"loading"`
}

// ErrorSet records the latest failure message
type ErrorSet struct {
	Message string `json:"message"`
}

// Reset discards the current cook
type Reset struct{}

func (SetupSucceeded) Kind() EventKind    { return KindSetupSuccess }
func (ReadingSucceeded) Kind() EventKind  { return KindReadingSuccess }
func (WrapSucceeded) Kind() EventKind     { return KindWrapSuccess }
func (FinishSucceeded) Kind() EventKind   { return KindFinishSuccess }
func (PredictionUpdated) Kind() EventKind { return KindPredictionUpdate }
func (StateUpdated) Kind() EventKind      { return KindStateUpdate }
func (ModeToggled) Kind() EventKind       { return KindToggleMode }
func (LoadingSet) Kind() EventKind        { return KindSetLoading }
func (ErrorSet) Kind() EventKind          { return KindSetError }
func (Reset) Kind() EventKind             { return KindReset }

func (SetupSucceeded) isEvent()    {}
func (ReadingSucceeded) isEvent()  {}
func (WrapSucceeded) isEvent()     {}
func (FinishSucceeded) isEvent()   {}
func (PredictionUpdated) isEvent() {}
func (StateUpdated) isEvent()      {}
func (ModeToggled) isEvent()       {}
func (LoadingSet) isEvent()        {}
func (ErrorSet) isEvent()          {}
func (Reset) isEvent()             {}

// MarshalEvent encodes an event for the journal
func MarshalEvent(ev Event) (EventKind, []byte, error) {
	if ev == nil {
		return "", nil, fmt.Errorf("%w: nil event", domain.ErrUnknownEventKind)
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode %s event: %w", ev.Kind(), err)
	}
	return ev.Kind(), payload, nil
}

// UnmarshalEvent decodes an event previously encoded with MarshalEvent
func UnmarshalEvent(kind EventKind, payload []byte) (Event, error) {
	var ev Event
	var err error

	switch kind {
	case KindSetupSuccess:
		ev, err = decode[SetupSucceeded](payload)
	case KindReadingSuccess:
		ev, err = decode[ReadingSucceeded](payload)
	case KindWrapSuccess:
		ev, err = decode[WrapSucceeded](payload)
	case KindFinishSuccess:
		ev, err = decode[FinishSucceeded](payload)
	case KindPredictionUpdate:
		ev, err = decode[PredictionUpdated](payload)
	case KindStateUpdate:
		ev, err = decode[StateUpdated](payload)
	case KindToggleMode:
		ev = ModeToggled{}
	case KindSetLoading:
		ev, err = decode[LoadingSet](payload)
	case KindSetError:
		ev, err = decode[ErrorSet](payload)
	case KindReset:
		ev = Reset{}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventKind, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s event: %w", kind, err)
	}
	return ev, nil
}

func decode[T Event](payload []byte) (T, error) {
	var ev T
	err := json.Unmarshal(payload, &ev)
	return ev, err
}
