package carve

import (
	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
	"github.com/lixenwraith/mazestep/rng"
)

// edge is a frontier candidate: an open room and a closed room two cells away
type edge struct {
	from, to maze.Point
}

// Prim is the randomized Prim carver
// Frontier selection is by random index, giving short branches and
// evenly sized corridors compared to the backtracker
type Prim struct {
	grid     *maze.Grid
	rng      *rng.Source
	phase    phase
	frontier []edge
	scratch  []maze.Point
}

func NewPrim(g *maze.Grid, src *rng.Source) *Prim {
	return &Prim{
		grid:     g,
		rng:      src,
		frontier: make([]edge, 0, g.Width+g.Height),
		scratch:  make([]maze.Point, 0, 4),
	}
}

func (p *Prim) Grid() *maze.Grid {
	return p.grid
}

// Frontier returns the number of pending candidate edges
func (p *Prim) Frontier() int {
	return len(p.frontier)
}

func (p *Prim) Next() (event.Event, bool) {
	switch p.phase {
	case phaseInit:
		p.grid.Fill(maze.Wall)
		start := randomRoom(p.grid, p.rng)
		p.grid.SetPassage(start.X, start.Y)
		p.grow(start)
		p.phase = phaseRunning
		return event.NewInit(start), true

	case phaseRunning:
		for len(p.frontier) > 0 {
			i := p.rng.IntN(0, len(p.frontier)-1)
			e := p.frontier[i]
			last := len(p.frontier) - 1
			p.frontier[i] = p.frontier[last]
			p.frontier = p.frontier[:last]

			// Stale edge: target opened through another wall since it was queued
			if p.grid.At(e.to.X, e.to.Y) != maze.Wall {
				continue
			}
			join(p.grid, e.from, e.to)
			p.grow(e.to)
			return event.NewCarve(e.from, e.to), true
		}
		finalize(p.grid)
		p.phase = phaseDone
		return event.NewDone(), true
	}
	return event.Event{}, false
}

// grow queues an edge from room to each closed neighbor room
func (p *Prim) grow(room maze.Point) {
	p.scratch = closedRooms(p.grid, room, p.scratch[:0])
	for _, n := range p.scratch {
		p.frontier = append(p.frontier, edge{from: room, to: n})
	}
}
