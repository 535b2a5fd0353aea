package event

import (
	"github.com/google/uuid"
)

// Log is the ordered record of one carving run plus the parameters needed to
// rebuild an empty grid for replay
type Log struct {
	ID     uuid.UUID
	Width  int
	Height int
	Seed   uint32
	Carver string

	events   []Event
	complete bool
}

// NewLog creates an empty recording for a carve with the given parameters
func NewLog(width, height int, seed uint32, carver string) *Log {
	return &Log{
		ID:     uuid.New(),
		Width:  width,
		Height: height,
		Seed:   seed,
		Carver: carver,
		events: make([]Event, 0, width*height/2),
	}
}

// Append adds ev to the end of the recording
func (l *Log) Append(ev Event) {
	l.events = append(l.events, ev)
}

func (l *Log) Len() int {
	return len(l.events)
}

// At returns the i-th recorded event
func (l *Log) At(i int) Event {
	return l.events[i]
}

// Events returns a copy of the recording
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Complete reports whether the recorded source ran to exhaustion
func (l *Log) Complete() bool {
	return l.complete
}

// MarkComplete flags the recording as finished
func (l *Log) MarkComplete() {
	l.complete = true
}

// Player returns a fresh Source replaying the recording from the start
func (l *Log) Player() *Player {
	return &Player{log: l}
}

// Player replays a Log; each Player has its own cursor
type Player struct {
	log *Log
	pos int
}

func (p *Player) Next() (Event, bool) {
	if p.pos >= len(p.log.events) {
		return Event{}, false
	}
	ev := p.log.events[p.pos]
	p.pos++
	return ev, true
}

// Remaining returns the number of events not yet replayed
func (p *Player) Remaining() int {
	return len(p.log.events) - p.pos
}

// Recorder tees a live Source into a Log
type Recorder struct {
	src Source
	log *Log
}

// NewRecorder wraps src; every event it yields is appended to log
func NewRecorder(src Source, log *Log) *Recorder {
	return &Recorder{src: src, log: log}
}

func (r *Recorder) Next() (Event, bool) {
	ev, ok := r.src.Next()
	if !ok {
		r.log.MarkComplete()
		return Event{}, false
	}
	r.log.Append(ev)
	return ev, true
}

// Log returns the recording being written
func (r *Recorder) Log() *Log {
	return r.log
}
