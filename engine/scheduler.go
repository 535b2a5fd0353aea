// Package engine drives resumable event sources at a controlled rate.
//
// A Scheduler wraps one event.Source and decides, once per rendered frame,
// whether to pull the next event. The unit of work is always exactly one
// event, so a frame never observes half an algorithm step.
package engine

import (
	"time"

	"github.com/lixenwraith/mazestep/event"
)

// Status reports the lifecycle of the scheduled run
type Status uint8

const (
	// StatusIdle means no source has been started or it was cleared
	StatusIdle Status = iota
	// StatusRunning means the source still has events
	StatusRunning
	// StatusFinished means the source ran to exhaustion and was released
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return "idle"
	}
}

const (
	// MinRate is the slowest accepted pace in events per second
	MinRate = 1.0

	// DefaultRate applies when NewScheduler receives a rate below MinRate
	DefaultRate = 60.0
)

// Scheduler paces a single event source
//
// Per-frame policy, at most one event per frame:
//   - pending single step: consume one, reset accumulator (honored while paused)
//   - paused: consume nothing
//   - fast-forward: consume one regardless of accumulator
//   - otherwise: accumulate dt, consume one when a full period has elapsed and
//     carry the remainder so the average rate survives frame jitter
//
// Not safe for concurrent use; run it on the loop goroutine
type Scheduler struct {
	source event.Source
	router *event.Router

	rate   float64
	period time.Duration
	acc    time.Duration

	paused      bool
	fastForward bool
	stepPending bool

	status   Status
	consumed uint64
	onFinish []func()
}

// NewScheduler creates an idle scheduler pulling rate events per second
// Every consumed event is dispatched through router; a nil router is allowed
func NewScheduler(rate float64, router *event.Router) *Scheduler {
	if router == nil {
		router = event.NewRouter()
	}
	s := &Scheduler{router: router}
	if rate < MinRate {
		rate = DefaultRate
	}
	s.SetRate(rate)
	return s
}

// Router returns the dispatch table for consumed events
func (s *Scheduler) Router() *event.Router {
	return s.router
}

// OnFinish registers fn to run each time a source is exhausted
func (s *Scheduler) OnFinish(fn func()) {
	s.onFinish = append(s.onFinish, fn)
}

// Start replaces any current source with src and resets pacing state
// Pause and fast-forward modes carry over between runs
func (s *Scheduler) Start(src event.Source) {
	s.source = src
	s.acc = 0
	s.stepPending = false
	s.consumed = 0
	s.status = StatusRunning
}

// Clear abandons the current source without finishing it
func (s *Scheduler) Clear() {
	s.source = nil
	s.acc = 0
	s.stepPending = false
	s.status = StatusIdle
}

// SetRate changes the target events per second, clamped to MinRate
// Backlog beyond one new period is dropped so a rate change never releases
// a run of catch-up events
func (s *Scheduler) SetRate(rate float64) {
	if rate < MinRate {
		rate = MinRate
	}
	s.rate = rate
	s.period = time.Duration(float64(time.Second) / rate)
	s.acc = min(s.acc, s.period)
}

func (s *Scheduler) Rate() float64 {
	return s.rate
}

// Period returns the time budget of one event at the current rate
func (s *Scheduler) Period() time.Duration {
	return s.period
}

func (s *Scheduler) Pause() {
	s.paused = true
}

func (s *Scheduler) Resume() {
	s.paused = false
}

func (s *Scheduler) Paused() bool {
	return s.paused
}

// StepOnce requests exactly one event on the next frame, even while paused
func (s *Scheduler) StepOnce() {
	if s.source != nil {
		s.stepPending = true
	}
}

func (s *Scheduler) SetFastForward(on bool) {
	s.fastForward = on
}

func (s *Scheduler) ToggleFastForward() bool {
	s.fastForward = !s.fastForward
	return s.fastForward
}

func (s *Scheduler) FastForward() bool {
	return s.fastForward
}

func (s *Scheduler) Status() Status {
	return s.status
}

// Active reports whether a source is attached and not yet exhausted
func (s *Scheduler) Active() bool {
	return s.source != nil
}

// Consumed returns the number of events pulled from the current source
func (s *Scheduler) Consumed() uint64 {
	return s.consumed
}

// Accumulated returns the unspent frame time
func (s *Scheduler) Accumulated() time.Duration {
	return s.acc
}

// Pump advances the source by exactly one event and dispatches it
// ok is false when there is no source or it just ran out; exhaustion marks
// the run finished, releases the source, and fires the finish callbacks
func (s *Scheduler) Pump() (event.Event, bool) {
	if s.source == nil {
		return event.Event{}, false
	}
	ev, ok := s.source.Next()
	if !ok {
		s.source = nil
		s.acc = 0
		s.stepPending = false
		s.status = StatusFinished
		for _, fn := range s.onFinish {
			fn()
		}
		return event.Event{}, false
	}
	s.consumed++
	s.router.Dispatch(ev)
	return ev, true
}

// Frame applies the pacing policy for one rendered frame of length dt
// Returns the consumed event, if any
func (s *Scheduler) Frame(dt time.Duration) (event.Event, bool) {
	if s.source == nil {
		return event.Event{}, false
	}

	if s.stepPending {
		s.stepPending = false
		s.acc = 0
		return s.Pump()
	}

	if s.paused {
		return event.Event{}, false
	}

	if dt > 0 {
		s.acc += dt
	}

	if s.fastForward {
		s.acc = 0
		return s.Pump()
	}

	if s.acc >= s.period {
		// The remainder carries forward so the average rate holds across hitches
		s.acc -= s.period
		return s.Pump()
	}
	return event.Event{}, false
}
