// Package event defines the vocabulary carvers and solvers emit one step at a time.
//
// An ordered event sequence fully determines an algorithm's visible progress,
// which is the contract replay relies on.
package event

import (
	"fmt"

	"github.com/lixenwraith/mazestep/maze"
)

// Type tags an Event
type Type uint8

const (
	// === Carving ===

	// Init marks the first carved room
	// Payload: To = room
	Init Type = iota

	// Carve opens the wall between two rooms and the target room
	// Payload: From = current room, To = newly opened room
	Carve

	// Backtrack pops a dead end off the backtracker's stack
	// Payload: From = popped room, To = new top; annotation only
	Backtrack

	// Done closes a carve; start and goal are forced open
	// Payload: none
	Done

	// === Solving ===

	// Visit records a cell entering the solver's frontier
	// Payload: To = cell
	Visit

	// Path emits one cell of the final route, start to goal
	// Payload: To = cell
	Path

	// SolveDone closes a solve
	// Payload: Found, Cost (edge count, 0 when not found)
	SolveDone
)

var typeNames = [...]string{
	Init:      "init",
	Carve:     "carve",
	Backtrack: "backtrack",
	Done:      "done",
	Visit:     "visit",
	Path:      "path",
	SolveDone: "solve_done",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("event(%d)", uint8(t))
}

// IsCarving reports whether t is emitted by carvers
func (t Type) IsCarving() bool {
	return t <= Done
}

// IsSolving reports whether t is emitted by solvers
func (t Type) IsSolving() bool {
	return t >= Visit && t <= SolveDone
}

// Event is one atomic unit of algorithm progress
// Single-cell events carry their cell in To
type Event struct {
	Type  Type
	From  maze.Point
	To    maze.Point
	Found bool
	Cost  int
}

func NewInit(p maze.Point) Event             { return Event{Type: Init, To: p} }
func NewCarve(from, to maze.Point) Event     { return Event{Type: Carve, From: from, To: to} }
func NewBacktrack(from, to maze.Point) Event { return Event{Type: Backtrack, From: from, To: to} }
func NewDone() Event                         { return Event{Type: Done} }
func NewVisit(p maze.Point) Event            { return Event{Type: Visit, To: p} }
func NewPath(p maze.Point) Event             { return Event{Type: Path, To: p} }

func NewSolveDone(found bool, cost int) Event {
	return Event{Type: SolveDone, Found: found, Cost: cost}
}

// Cell returns the subject cell of a single-cell event
func (e Event) Cell() maze.Point {
	return e.To
}

func (e Event) String() string {
	switch e.Type {
	case Carve, Backtrack:
		return fmt.Sprintf("%s (%d,%d)->(%d,%d)", e.Type, e.From.X, e.From.Y, e.To.X, e.To.Y)
	case Init, Visit, Path:
		return fmt.Sprintf("%s (%d,%d)", e.Type, e.To.X, e.To.Y)
	case SolveDone:
		return fmt.Sprintf("%s found=%t cost=%d", e.Type, e.Found, e.Cost)
	default:
		return e.Type.String()
	}
}
