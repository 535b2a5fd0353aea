// Package carve turns a wall-filled grid into a perfect maze one event at a time.
//
// Carvers are resumable state machines: each Next performs exactly one
// visible unit of work, mutates the grid in place, and returns the event
// describing it. Rooms are the odd interior coordinates two cells apart; the
// even coordinate between two rooms is the wall carved to join them.
package carve

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
	"github.com/lixenwraith/mazestep/rng"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names
var ErrUnknownKind = errors.New("carve: unknown carver")

// Kind selects a carving algorithm
type Kind string

const (
	KindBacktracker Kind = "dfs"
	KindPrim        Kind = "prim"
)

// Kinds lists the available carvers in display order
var Kinds = []Kind{KindBacktracker, KindPrim}

// ParseKind validates a carver name
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBacktracker, KindPrim:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Carver is the event source every carving algorithm implements
type Carver interface {
	event.Source
	Grid() *maze.Grid
}

// New builds a carver of the given kind over g, drawing randomness from src
// Unknown kinds fall back to the backtracker
func New(kind Kind, g *maze.Grid, src *rng.Source) Carver {
	if kind == KindPrim {
		return NewPrim(g, src)
	}
	return NewBacktracker(g, src)
}

// Run carves g to completion and returns the full event sequence
func Run(kind Kind, g *maze.Grid, seed uint32) []event.Event {
	return event.Drain(New(kind, g, rng.New(seed)))
}

// jumps are the room-to-room offsets in N, E, S, W order
var jumps = [4]maze.Point{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

// closedRooms appends the interior rooms two cells from p that are still Wall
func closedRooms(g *maze.Grid, p maze.Point, dst []maze.Point) []maze.Point {
	for _, d := range jumps {
		n := p.Add(d)
		if n.X > 0 && n.X < g.Width-1 && n.Y > 0 && n.Y < g.Height-1 && g.At(n.X, n.Y) == maze.Wall {
			dst = append(dst, n)
		}
	}
	return dst
}

// randomRoom picks a uniformly random odd interior coordinate, x then y
func randomRoom(g *maze.Grid, src *rng.Source) maze.Point {
	x := 2*src.IntN(0, (g.Width-3)/2) + 1
	y := 2*src.IntN(0, (g.Height-3)/2) + 1
	return maze.Point{X: x, Y: y}
}

// join opens the wall between two rooms and the target room
func join(g *maze.Grid, from, to maze.Point) {
	g.SetPassage((from.X+to.X)/2, (from.Y+to.Y)/2)
	g.SetPassage(to.X, to.Y)
}

// finalize forces the endpoints open so they are reachable on any grid size
func finalize(g *maze.Grid) {
	g.Start = maze.Point{X: 1, Y: 1}
	g.Goal = maze.Point{X: g.Width - 2, Y: g.Height - 2}
	g.SetPassage(g.Start.X, g.Start.Y)
	g.SetPassage(g.Goal.X, g.Goal.Y)
}

// Apply reconstructs the visible effect of a carving event on g
// Replaying a recorded sequence through Apply on an empty grid reproduces the
// live result; applying to the grid a live carver already mutated is a no-op
func Apply(g *maze.Grid, ev event.Event) {
	switch ev.Type {
	case event.Init:
		g.SetPassage(ev.To.X, ev.To.Y)
	case event.Carve:
		join(g, ev.From, ev.To)
	case event.Done:
		finalize(g)
	}
}
