package solve

import (
	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
)

// BFS explores in increasing distance from the start
// Shortest path by edge count on an unweighted grid
type BFS struct {
	harness
	queue []maze.Point
	head  int
}

func NewBFS(g *maze.Grid) *BFS {
	b := &BFS{harness: newHarness(g)}
	b.queue = append(make([]maze.Point, 0, g.Len()/2), b.start)
	b.seed()
	return b
}

func (b *BFS) Next() (event.Event, bool) {
	return b.next(b.expand)
}

func (b *BFS) expand() bool {
	if b.head >= len(b.queue) {
		return false
	}
	curr := b.queue[b.head]
	b.head++
	if curr == b.goal {
		return false
	}
	for _, d := range maze.Dirs4 {
		n := curr.Add(d)
		if b.grid.Open(n) && !b.seen(n) {
			b.discover(n, curr)
			b.queue = append(b.queue, n)
		}
	}
	return true
}
