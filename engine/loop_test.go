package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	expected := newTime.Add(90 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestFrameClockTick(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewFrameClock(60, mock)

	assert.Equal(t, 60, c.FPS())
	assert.Equal(t, time.Second/60, c.Interval())

	mock.Advance(17 * time.Millisecond)
	assert.Equal(t, 17*time.Millisecond, c.Tick())
	mock.Advance(3 * time.Millisecond)
	mock.Advance(30 * time.Millisecond)
	assert.Equal(t, 33*time.Millisecond, c.Tick())
	assert.Zero(t, c.Tick(), "no time passed")
	assert.Equal(t, uint64(3), c.Frames())

	// A clock stepping backwards yields zero rather than a negative frame
	mock.Advance(-time.Second)
	assert.Zero(t, c.Tick())
}

func TestFrameClockClampsFPS(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, MinFPS}, {14, MinFPS}, {15, 15}, {90, 90}, {120, 120}, {500, MaxFPS},
	}
	for _, tc := range cases {
		c := NewFrameClock(tc.in, nil)
		assert.Equalf(t, tc.want, c.FPS(), "fps %d", tc.in)
	}
}

func TestFrameClockDrivesScheduler(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewFrameClock(50, mock)
	s := NewScheduler(10, nil)
	s.Start(&counter{})

	for i := 0; i < 500; i++ {
		mock.Advance(c.Interval())
		s.Frame(c.Tick())
	}
	// 500 frames at 20ms is 10s of simulated time
	assert.InDelta(t, 100, float64(s.Consumed()), 1)
}

func TestLoopRunsFramesAndPostedWork(t *testing.T) {
	l := NewLoop(NewFrameClock(MaxFPS, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var frames atomic.Int32
	var posted atomic.Bool
	done := make(chan struct{})
	go func() {
		l.Run(ctx, func(dt time.Duration) bool {
			n := frames.Add(1)
			return n < 10 || !posted.Load()
		})
		close(done)
	}()

	require.Eventually(t, l.Running, time.Second, time.Millisecond)
	require.True(t, l.Post(func() { posted.Store(true) }))

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("loop did not stop after frame returned false")
	}
	assert.True(t, posted.Load())
	assert.GreaterOrEqual(t, frames.Load(), int32(10))
	assert.False(t, l.Running())
}

func TestLoopStopsOnCancel(t *testing.T) {
	l := NewLoop(NewFrameClock(MinFPS, nil))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, func(time.Duration) bool { return true })
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop ignored cancellation")
	}
}

func TestLoopPostFullInbox(t *testing.T) {
	l := NewLoop(NewFrameClock(60, nil))
	n := 0
	for l.Post(func() {}) {
		n++
		if n > 1000 {
			t.Fatal("inbox never fills")
		}
	}
	assert.Equal(t, cap(l.inbox), n)
}

func TestLoopPostWaitDeliversWhenInboxFull(t *testing.T) {
	l := NewLoop(NewFrameClock(MaxFPS, nil))
	for l.Post(func() {}) {
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var delivered atomic.Bool
	accepted := make(chan bool, 1)
	go func() {
		accepted <- l.PostWait(ctx, func() { delivered.Store(true) })
	}()

	done := make(chan struct{})
	go func() {
		l.Run(ctx, func(time.Duration) bool { return !delivered.Load() })
		close(done)
	}()

	require.True(t, <-accepted, "work must be queued once the loop drains the inbox")
	<-done
	assert.True(t, delivered.Load())
}

func TestLoopPostWaitGivesUpOnCancel(t *testing.T) {
	l := NewLoop(NewFrameClock(60, nil))
	for l.Post(func() {}) {
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, l.PostWait(ctx, func() {}))
}
