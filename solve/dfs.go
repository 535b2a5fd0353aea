package solve

import (
	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
)

// DFS explores along a LIFO stack
// No shortest-path guarantee: it exists to contrast exploration order and
// route quality against BFS and A*
type DFS struct {
	harness
	stack []maze.Point
}

func NewDFS(g *maze.Grid) *DFS {
	s := &DFS{harness: newHarness(g)}
	s.stack = append(make([]maze.Point, 0, g.Len()/4), s.start)
	s.seed()
	return s
}

func (s *DFS) Next() (event.Event, bool) {
	return s.next(s.expand)
}

func (s *DFS) expand() bool {
	if len(s.stack) == 0 {
		return false
	}
	curr := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	if curr == s.goal {
		return false
	}
	for _, d := range maze.Dirs4 {
		n := curr.Add(d)
		if s.grid.Open(n) && !s.seen(n) {
			s.discover(n, curr)
			s.stack = append(s.stack, n)
		}
	}
	return true
}
