package session

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/mazestep/engine"
	"github.com/lixenwraith/mazestep/maze"
	"github.com/lixenwraith/mazestep/render"
)

// Snapshot is a copy of the observable session state
type Snapshot struct {
	Mode        Mode
	GenStatus   engine.Status
	SolveStatus engine.Status
	Paused      bool
	FastForward bool
	GenRate     float64
	SolveRate   float64

	Grid    *maze.Grid
	Carved  bool
	Visited []maze.Point
	Path    []maze.Point
	Head    maze.Point
	HasHead bool

	Solved bool
	Found  bool
	Cost   int

	CanReplay     bool
	GenConsumed   uint64
	SolveConsumed uint64
	Status        string
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Mode:          s.mode,
		GenStatus:     s.gen.Status(),
		SolveStatus:   s.solver.Status(),
		Paused:        s.Paused(),
		FastForward:   s.FastForward(),
		GenRate:       s.gen.Rate(),
		SolveRate:     s.solver.Rate(),
		Grid:          s.grid.Clone(),
		Carved:        s.carved,
		Visited:       slices.Clone(s.visited),
		Path:          slices.Clone(s.path),
		Head:          s.head,
		HasHead:       s.hasHead,
		Solved:        s.solved,
		Found:         s.found,
		Cost:          s.cost,
		CanReplay:     s.last != nil && s.last.Complete(),
		GenConsumed:   s.gen.Consumed(),
		SolveConsumed: s.solver.Consumed(),
		Status:        s.status,
	}
}

// Draw pushes the current frame: base grid, visited cells, the active head,
// the path glow, then the status line when r supports one
func (s *Session) Draw(r render.Renderer) {
	cell := s.cfg.CellSize
	r.DrawBaseGrid(s.grid, cell, s.palette, s.cfg.GridLines)
	if len(s.visited) > 0 {
		r.DrawOverlayCells(s.visited, cell, s.palette.Visited)
	}
	if s.hasHead {
		r.DrawOverlayCells([]maze.Point{s.head}, cell, s.palette.Head)
	}
	if len(s.path) > 0 {
		r.DrawPathGlow(s.path, cell, s.palette.PathOuter, s.palette.PathInner)
	}

	if w, ok := r.(render.StatusWriter); ok {
		p := s.palette
		if s.solved && !s.found {
			p.Text = p.Failure
		}
		w.DrawStatus(s.StatusLine(), p)
	}
	if p, ok := r.(render.Presenter); ok {
		p.Present()
	}
}

// StatusLine is the status message plus scheduler state
func (s *Session) StatusLine() string {
	line := s.status
	if s.Paused() {
		line += " [paused]"
	}
	if s.FastForward() {
		line += " [ff]"
	}
	return fmt.Sprintf("%s | %s/%s seed %d gen %.0f/s solve %.0f/s",
		line, s.cfg.Carver, s.cfg.Solver, s.cfg.Seed, s.gen.Rate(), s.solver.Rate())
}
