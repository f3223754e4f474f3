package services

import (
	"sync"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/ports"
	"github.com/renato0307/pitmaster/internal/session"
)

// alarmBuffer bounds the alarms waiting to be played. Sounds take seconds, so
// anything beyond a few is stale by the time it would play.
const alarmBuffer = 4

// AlarmRecorder plays an alarm when a cook crosses a milestone: a stall
// starts, a wrap becomes advisable or the meat approaches its target.
type AlarmRecorder struct {
	alarms chan domain.Alarm
	closed bool
	done   chan struct{}
	mu     sync.Mutex
	player ports.AlarmPlayer
}

// NewAlarmRecorder starts the player goroutine. Call Close to stop it.
func NewAlarmRecorder(player ports.AlarmPlayer) *AlarmRecorder {
	r := &AlarmRecorder{
		alarms: make(chan domain.Alarm, alarmBuffer),
		done:   make(chan struct{}),
		player: player,
	}
	go r.run()
	return r
}

// Record implements session.Recorder
func (r *AlarmRecorder) Record(_ session.Event, prev, next session.State) {
	alarm, ok := alarmFor(prev, next)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.alarms <- alarm:
	default:
		logging.Logger.Warn("Alarm queue full, dropping alarm", "alarm", alarm)
	}
}

// Close stops accepting alarms and waits for the queued ones to play
func (r *AlarmRecorder) Close() error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.alarms)
	}
	r.mu.Unlock()

	<-r.done
	return nil
}

func (r *AlarmRecorder) run() {
	defer close(r.done)
	for alarm := range r.alarms {
		logging.Logger.Debug("Playing alarm", "alarm", alarm)
		if err := r.player.Play(alarm); err != nil {
			logging.Logger.Warn("Failed to play alarm", "alarm", alarm, "error", err)
		}
	}
}

// alarmFor returns the alarm raised by the transition from prev to next.
// Transitions across sessions never alarm.
func alarmFor(prev, next session.State) (domain.Alarm, bool) {
	if next.SessionID == "" || prev.SessionID != next.SessionID {
		return "", false
	}

	if stalled(next) && !stalled(prev) {
		return domain.AlarmStall, true
	}
	if session.SuggestWrap(next) && !session.SuggestWrap(prev) {
		return domain.AlarmWrap, true
	}
	if approaching(next) && !approaching(prev) {
		return domain.AlarmAlmostDone, true
	}
	return "", false
}

func stalled(s session.State) bool {
	return s.Status != nil && s.Status.StallActive
}

func approaching(s session.State) bool {
	return s.Prediction != nil && s.Prediction.CurrentState == domain.PhaseApproachingTarget
}
