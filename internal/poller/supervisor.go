package poller

import (
	"context"

	"github.com/renato0307/pitmaster/internal/session"
)

// StateSource publishes controller state changes
type StateSource interface {
	Subscribe() (<-chan session.State, func())
}

// Supervisor runs one polling loop per active session: it starts a loop when
// a session appears and stops it as soon as the session is reset or replaced.
type Supervisor struct {
	loop   *Loop
	source StateSource
}

// NewSupervisor creates a supervisor that follows source
func NewSupervisor(loop *Loop, source StateSource) *Supervisor {
	return &Supervisor{loop: loop, source: source}
}

// Run follows the session until ctx is canceled, then stops the active loop
// and waits for it before returning.
func (s *Supervisor) Run(ctx context.Context) {
	updates, unsubscribe := s.source.Subscribe()
	defer unsubscribe()

	var current string
	var stopLoop func()
	defer func() {
		if stopLoop != nil {
			stopLoop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-updates:
			if !ok {
				return
			}
			if st.SessionID == current {
				continue
			}

			if stopLoop != nil {
				stopLoop()
				stopLoop = nil
			}
			current = st.SessionID
			if current != "" {
				stopLoop = s.start(ctx, current)
			}
		}
	}
}

// start launches a loop for sessionID and returns a func that cancels it and
// waits until it has fully stopped
func (s *Supervisor) start(ctx context.Context, sessionID string) func() {
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.loop.Run(loopCtx, sessionID)
	}()

	return func() {
		cancel()
		<-done
	}
}
