package solve

import (
	"container/heap"
	"math"

	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
)

// node is an open-list entry; seq breaks f ties by insertion order
type node struct {
	p   maze.Point
	g   int
	f   int
	seq int
}

// openList is a min-heap on (f, seq)
type openList []node

func (o openList) Len() int { return len(o) }
func (o openList) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}
func (o openList) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o *openList) Push(x any)   { *o = append(*o, x.(node)) }
func (o *openList) Pop() any {
	old := *o
	n := old[len(old)-1]
	*o = old[:len(old)-1]
	return n
}

// AStar searches by f = g + Manhattan distance to the goal
// The heuristic is admissible and consistent on a 4-connected grid with unit
// edges, so the first extraction of the goal carries the optimal cost.
// Improvements push a fresh entry; superseded entries are skipped when popped
// (lazy decrease-key)
type AStar struct {
	harness
	open  openList
	score []int
	seq   int
}

func NewAStar(g *maze.Grid) *AStar {
	a := &AStar{
		harness: newHarness(g),
		score:   make([]int, g.Len()),
	}
	for i := range a.score {
		a.score[i] = math.MaxInt
	}
	a.score[g.Index(a.start)] = 0
	a.push(a.start, 0)
	a.seed()
	return a
}

func (a *AStar) Next() (event.Event, bool) {
	return a.next(a.expand)
}

func (a *AStar) push(p maze.Point, g int) {
	heap.Push(&a.open, node{p: p, g: g, f: g + p.Manhattan(a.goal), seq: a.seq})
	a.seq++
}

func (a *AStar) expand() bool {
	for a.open.Len() > 0 {
		curr := heap.Pop(&a.open).(node)
		if curr.g > a.score[a.grid.Index(curr.p)] {
			continue // stale
		}
		if curr.p == a.goal {
			return false
		}
		for _, d := range maze.Dirs4 {
			n := curr.p.Add(d)
			if !a.grid.Open(n) {
				continue
			}
			tentative := curr.g + 1
			if tentative < a.score[a.grid.Index(n)] {
				a.score[a.grid.Index(n)] = tentative
				a.discover(n, curr.p)
				a.push(n, tentative)
			}
		}
		return true
	}
	return false
}

// OpenLen returns the number of open-list entries, stale ones included
func (a *AStar) OpenLen() int {
	return a.open.Len()
}
