package session

import (
	"fmt"

	"github.com/lixenwraith/mazestep/carve"
	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
)

// Generation side

// applyCarve rebuilds visible state from the event; a no-op on a grid the
// live carver already mutated, and the only writer during replay
func (s *Session) applyCarve(ev event.Event) {
	carve.Apply(s.grid, ev)
}

func (s *Session) trackCarveHead(ev event.Event) {
	s.head = ev.To
	s.hasHead = true
}

func (s *Session) onCarveDone(event.Event) {
	s.hasHead = false
	s.carved = true
}

func (s *Session) onGenerationFinished() {
	switch s.mode {
	case ModeGenerate:
		if s.recording != nil && s.recording.Complete() {
			s.last = s.recording
		}
		s.recording = nil
		stats := maze.Analyze(s.grid)
		s.status = fmt.Sprintf("generated %s: %d passages, %d dead ends", s.cfg.Carver, stats.Passages, stats.DeadEnds)
		s.log.Info("generation finished",
			"session", s.ID, "events", s.gen.Consumed(),
			"passages", stats.Passages, "dead_ends", stats.DeadEnds, "perfect", stats.Perfect,
		)
		s.notifier.Generated(stats)
	case ModeReplay:
		s.status = fmt.Sprintf("replay finished (%d events)", s.gen.Consumed())
		s.log.Info("replay finished", "session", s.ID, "events", s.gen.Consumed())
	}
	s.mode = ModeIdle
}

// Solve side

func (s *Session) onVisit(ev event.Event) {
	s.visited = append(s.visited, ev.To)
	s.head = ev.To
	s.hasHead = true
}

func (s *Session) onPath(ev event.Event) {
	s.path = append(s.path, ev.To)
	s.hasHead = false
}

func (s *Session) onSolveDone(ev event.Event) {
	s.solved = true
	s.found = ev.Found
	s.cost = ev.Cost
	s.hasHead = false
	if ev.Found {
		s.status = fmt.Sprintf("solved %s: cost %d, visited %d", s.cfg.Solver, ev.Cost, len(s.visited))
	} else {
		s.status = StatusNoPath
	}
	s.log.Info("solve finished",
		"session", s.ID, "solver", s.cfg.Solver,
		"found", ev.Found, "cost", ev.Cost, "visited", len(s.visited),
	)
	s.notifier.Solved(ev.Found, ev.Cost)
}

func (s *Session) onSolveFinished() {
	s.mode = ModeIdle
}
