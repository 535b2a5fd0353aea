package maze

// Stats summarizes the structure of a carved grid
type Stats struct {
	Passages  int // open cells
	Edges     int // adjacent open pairs
	Reachable int // open cells reachable from Start
	DeadEnds  int // open cells with exactly one open neighbor
	Connected bool
	// Perfect holds when every open cell is reachable and the open cells form a tree
	Perfect bool
}

// Analyze walks the open cells from Start
// A connected open subgraph with edges == passages-1 has no cycles
func Analyze(g *Grid) Stats {
	var st Stats
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsPassage(x, y) {
				continue
			}
			st.Passages++
			if g.IsPassage(x+1, y) {
				st.Edges++
			}
			if g.IsPassage(x, y+1) {
				st.Edges++
			}
			exits := 0
			for _, d := range Dirs4 {
				if g.IsPassage(x+d.X, y+d.Y) {
					exits++
				}
			}
			if exits == 1 {
				st.DeadEnds++
			}
		}
	}

	if g.Open(g.Start) {
		seen := make([]bool, g.Len())
		queue := []Point{g.Start}
		seen[g.Index(g.Start)] = true
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			st.Reachable++
			for _, d := range Dirs4 {
				next := curr.Add(d)
				if g.Open(next) && !seen[g.Index(next)] {
					seen[g.Index(next)] = true
					queue = append(queue, next)
				}
			}
		}
	}

	st.Connected = st.Passages > 0 && st.Reachable == st.Passages
	st.Perfect = st.Connected && st.Edges == st.Passages-1
	return st
}
