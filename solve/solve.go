// Package solve finds a route from a grid's start to its goal, one event at a time.
//
// Every solver shares the same harness: a search phase that emits Visit
// events as cells enter the frontier, a trace phase that emits one Path event
// per route cell from start to goal, and a final SolveDone. Bookkeeping is
// held in flat slices indexed y*w+x. Solvers never mutate the grid.
package solve

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names
var ErrUnknownKind = errors.New("solve: unknown solver")

// Kind selects a pathfinding algorithm
type Kind string

const (
	KindBFS   Kind = "bfs"
	KindDFS   Kind = "dfs"
	KindAStar Kind = "astar"
)

// Kinds lists the available solvers in display order
var Kinds = []Kind{KindBFS, KindDFS, KindAStar}

// ParseKind validates a solver name
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBFS, KindDFS, KindAStar:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New builds a solver of the given kind over g
// Unknown kinds fall back to BFS
func New(kind Kind, g *maze.Grid) event.Source {
	switch kind {
	case KindDFS:
		return NewDFS(g)
	case KindAStar:
		return NewAStar(g)
	default:
		return NewBFS(g)
	}
}

// Result is the drained outcome of a solver
type Result struct {
	Visited []maze.Point
	Path    []maze.Point
	Found   bool
	Cost    int
}

// Collect runs src to exhaustion and gathers its events
func Collect(src event.Source) Result {
	var r Result
	for {
		ev, ok := src.Next()
		if !ok {
			return r
		}
		switch ev.Type {
		case event.Visit:
			r.Visited = append(r.Visited, ev.To)
		case event.Path:
			r.Path = append(r.Path, ev.To)
		case event.SolveDone:
			r.Found, r.Cost = ev.Found, ev.Cost
		}
	}
}

type phase uint8

const (
	phaseSearch phase = iota
	phaseTrace
	phaseDone
	phaseExhausted
)

const unseen = -1

// harness carries the state common to every solver
// A single expansion may discover several cells; their Visit events wait in
// pending so each Next still yields exactly one event
type harness struct {
	grid        *maze.Grid
	start, goal maze.Point
	parent      []int // predecessor index, unseen, or own index for the start
	pending     []event.Event
	path        []maze.Point
	pathPos     int
	phase       phase
}

func newHarness(g *maze.Grid) harness {
	h := harness{
		grid:   g,
		start:  g.Start,
		goal:   g.Goal,
		parent: make([]int, g.Len()),
	}
	for i := range h.parent {
		h.parent[i] = unseen
	}
	return h
}

func (h *harness) seen(p maze.Point) bool {
	return h.parent[h.grid.Index(p)] != unseen
}

// discover records from as p's predecessor and queues its Visit
func (h *harness) discover(p, from maze.Point) {
	h.parent[h.grid.Index(p)] = h.grid.Index(from)
	h.pending = append(h.pending, event.NewVisit(p))
}

// seed marks the start as the root and queues its Visit
func (h *harness) seed() {
	h.discover(h.start, h.start)
}

// next drains pending events, then advances expand until the search ends
// expand performs one frontier expansion and returns false once the search
// is over, either because the goal was reached or the frontier is empty
func (h *harness) next(expand func() bool) (event.Event, bool) {
	for {
		if len(h.pending) > 0 {
			ev := h.pending[0]
			h.pending = h.pending[1:]
			return ev, true
		}

		switch h.phase {
		case phaseSearch:
			if !expand() {
				h.path = h.trace()
				h.phase = phaseTrace
			}
		case phaseTrace:
			if h.pathPos < len(h.path) {
				p := h.path[h.pathPos]
				h.pathPos++
				return event.NewPath(p), true
			}
			h.phase = phaseDone
			cost := len(h.path) - 1
			if cost < 0 {
				cost = 0
			}
			return event.NewSolveDone(len(h.path) > 0, cost), true
		default:
			h.phase = phaseExhausted
			return event.Event{}, false
		}
	}
}

// trace walks predecessors from the goal back to the start
// Returns nil when the goal was never reached
func (h *harness) trace() []maze.Point {
	if !h.grid.InBounds(h.goal.X, h.goal.Y) || !h.seen(h.goal) {
		return nil
	}
	var rev []maze.Point
	for i := h.grid.Index(h.goal); ; i = h.parent[i] {
		rev = append(rev, h.grid.PointAt(i))
		if h.parent[i] == i {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
