package carve

import (
	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
	"github.com/lixenwraith/mazestep/rng"
)

type phase uint8

const (
	phaseInit phase = iota
	phaseRunning
	phaseDone
)

// Backtracker is the randomized depth-first carver
// Long winding corridors with few branches
type Backtracker struct {
	grid  *maze.Grid
	rng   *rng.Source
	phase phase
	stack []maze.Point
	cands []maze.Point
}

func NewBacktracker(g *maze.Grid, src *rng.Source) *Backtracker {
	return &Backtracker{
		grid:  g,
		rng:   src,
		stack: make([]maze.Point, 0, g.Width*g.Height/4),
		cands: make([]maze.Point, 0, 4),
	}
}

func (b *Backtracker) Grid() *maze.Grid {
	return b.grid
}

// Depth returns the current stack size
func (b *Backtracker) Depth() int {
	return len(b.stack)
}

func (b *Backtracker) Next() (event.Event, bool) {
	switch b.phase {
	case phaseInit:
		b.grid.Fill(maze.Wall)
		start := randomRoom(b.grid, b.rng)
		b.grid.SetPassage(start.X, start.Y)
		b.stack = append(b.stack, start)
		b.phase = phaseRunning
		return event.NewInit(start), true

	case phaseRunning:
		for len(b.stack) > 0 {
			curr := b.stack[len(b.stack)-1]
			b.cands = closedRooms(b.grid, curr, b.cands[:0])

			if len(b.cands) > 0 {
				b.rng.Shuffle(len(b.cands), func(i, j int) {
					b.cands[i], b.cands[j] = b.cands[j], b.cands[i]
				})
				next := b.cands[0]
				join(b.grid, curr, next)
				b.stack = append(b.stack, next)
				return event.NewCarve(curr, next), true
			}

			// Dead end: pop; emptying the stack is silent
			b.stack = b.stack[:len(b.stack)-1]
			if len(b.stack) > 0 {
				return event.NewBacktrack(curr, b.stack[len(b.stack)-1]), true
			}
		}
		finalize(b.grid)
		b.phase = phaseDone
		return event.NewDone(), true
	}
	return event.Event{}, false
}
