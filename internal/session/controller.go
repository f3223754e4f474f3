package session

import (
	"sync"

	"github.com/renato0307/pitmaster/internal/logging"
)

// Recorder observes every applied event in dispatch order. It is called with
// the controller lock held and must not block or call back into the controller.
type Recorder interface {
	Record(ev Event, prev, next State)
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithRecorder attaches an event recorder
func WithRecorder(r Recorder) ControllerOption {
	return func(c *Controller) {
		c.recorders = append(c.recorders, r)
	}
}

// Controller owns the current State. Dispatch is the single writer; State and
// Subscribe serve any number of readers.
type Controller struct {
	mu        sync.Mutex
	nextSubID int
	recorders []Recorder
	state     State
	subs      map[int]chan State
}

// NewController creates a controller holding the initial state
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		state: InitialState(),
		subs:  make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch applies ev and returns the resulting state
func (c *Controller) Dispatch(ev Event) State {
	s, _ := c.DispatchIf(nil, ev)
	return s
}

// DispatchIf applies ev only if guard accepts the current state. The guard is
// evaluated under the same lock as the transition, so no other event can slip
// in between the check and the apply. A nil guard always accepts.
func (c *Controller) DispatchIf(guard func(State) bool, ev Event) (State, bool) {
	if ev == nil {
		return c.State(), false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if guard != nil && !guard(c.state) {
		logging.Logger.Debug("Event rejected by guard", "event", ev.Kind(), "session_id", c.state.SessionID)
		return c.state.Clone(), false
	}

	prev := c.state
	c.state = Reduce(prev, ev)
	logging.Logger.Debug("Event applied", "event", ev.Kind(), "session_id", c.state.SessionID)

	for _, r := range c.recorders {
		r.Record(ev, prev, c.state)
	}
	c.publish()

	return c.state.Clone(), true
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Subscribe returns a channel that receives the state after every applied
// event. The channel holds only the latest state: a slow reader skips
// intermediate states but always sees the newest. The current state is
// delivered immediately. Call the returned func to unsubscribe.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	ch := make(chan State, 1)
	ch <- c.state.Clone()
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// publish must be called with mu held
func (c *Controller) publish() {
	for _, ch := range c.subs {
		s := c.state.Clone()
		select {
		case ch <- s:
		default:
			// drop the stale value; only the controller sends, so the retry cannot block
			select {
			case <-ch:
			default:
			}
			ch <- s
		}
	}
}
