package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Frame rate bounds accepted by FrameClock
const (
	MinFPS     = 15
	MaxFPS     = 120
	DefaultFPS = 60
)

// ClampFPS bounds fps to [MinFPS, MaxFPS]
func ClampFPS(fps int) int {
	switch {
	case fps < MinFPS:
		return MinFPS
	case fps > MaxFPS:
		return MaxFPS
	}
	return fps
}

// FrameClock measures the time between rendered frames
type FrameClock struct {
	provider TimeProvider
	fps      int
	interval time.Duration
	last     time.Time
	frames   uint64
}

// NewFrameClock creates a clock capped at fps frames per second
func NewFrameClock(fps int, provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = NewTimeProvider()
	}
	c := &FrameClock{provider: provider}
	c.SetFPS(fps)
	c.last = provider.Now()
	return c
}

// SetFPS changes the frame cap, clamped to [MinFPS, MaxFPS]
func (c *FrameClock) SetFPS(fps int) {
	c.fps = ClampFPS(fps)
	c.interval = time.Second / time.Duration(c.fps)
}

func (c *FrameClock) FPS() int {
	return c.fps
}

// Interval returns the target time between frames
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// Tick marks a frame and returns the elapsed time since the previous one
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	dt := now.Sub(c.last)
	if dt < 0 {
		dt = 0
	}
	c.last = now
	c.frames++
	return dt
}

// Frames returns the number of ticks so far
func (c *FrameClock) Frames() uint64 {
	return c.frames
}

// Loop serializes frame callbacks and posted work onto one goroutine
// Everything that touches session state runs inside Run, so the session
// keeps a single writer even when input arrives from other goroutines
type Loop struct {
	clock   *FrameClock
	inbox   chan func()
	running atomic.Bool
}

// NewLoop creates a loop ticking at the clock's interval
func NewLoop(clock *FrameClock) *Loop {
	return &Loop{
		clock: clock,
		inbox: make(chan func(), 64),
	}
}

func (l *Loop) Clock() *FrameClock {
	return l.clock
}

// Post queues fn to run on the loop goroutine
// Returns false when the inbox is full
func (l *Loop) Post(fn func()) bool {
	select {
	case l.inbox <- fn:
		return true
	default:
		return false
	}
}

// PostWait queues fn, blocking while the inbox is full
// Returns false when ctx is done first
func (l *Loop) PostWait(ctx context.Context, fn func()) bool {
	select {
	case l.inbox <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Running reports whether Run is executing
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Run drives frame with the measured dt on every tick until ctx is done or
// frame returns false; posted work runs between frames in arrival order
func (l *Loop) Run(ctx context.Context, frame func(dt time.Duration) bool) {
	l.running.Store(true)
	defer l.running.Store(false)

	interval := l.clock.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case fn := <-l.inbox:
			fn()

		case <-ticker.C:
			if !frame(l.clock.Tick()) {
				return
			}
			// Pick up frame cap changes made by posted work
			if next := l.clock.Interval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}
