package carve

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
	"github.com/lixenwraith/mazestep/rng"
)

var update = flag.Bool("update", false, "rewrite golden files")

func golden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if *update {
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
	}
	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(want), got)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("kruskal")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestGoldenBitmaps(t *testing.T) {
	cases := []struct {
		kind Kind
		file string
	}{
		{KindBacktracker, "dfs_seed42_21x21.golden"},
		{KindPrim, "prim_seed42_21x21.golden"},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			g := maze.NewGrid(21, 21)
			Run(tc.kind, g, 42)
			golden(t, tc.file, g.String())
		})
	}
}

func TestBacktrackerSeed42Sequence(t *testing.T) {
	evs := Run(KindBacktracker, maze.NewGrid(21, 21), 42)
	require.Len(t, evs, 200)

	assert.Equal(t, event.NewInit(maze.Point{X: 13, Y: 9}), evs[0])
	assert.Equal(t, event.NewCarve(maze.Point{X: 13, Y: 9}, maze.Point{X: 15, Y: 9}), evs[1])
	assert.Equal(t, event.NewDone(), evs[len(evs)-1])

	counts := make(map[event.Type]int)
	for _, ev := range evs {
		counts[ev.Type]++
	}
	// 10x10 rooms: a spanning tree has 99 edges, every non-root pop backtracks
	assert.Equal(t, 99, counts[event.Carve])
	assert.Equal(t, 99, counts[event.Backtrack])
}

func TestPrimEmitsNoBacktracks(t *testing.T) {
	evs := Run(KindPrim, maze.NewGrid(21, 21), 42)
	require.Len(t, evs, 101)
	for _, ev := range evs {
		assert.NotEqual(t, event.Backtrack, ev.Type)
	}
}

func TestPerfectMazeForAllSeedsAndSizes(t *testing.T) {
	sizes := [][2]int{{5, 5}, {7, 5}, {5, 9}, {11, 11}, {21, 13}, {31, 31}}
	for _, kind := range Kinds {
		for _, sz := range sizes {
			for seed := uint32(0); seed < 25; seed++ {
				name := fmt.Sprintf("%s/%dx%d/seed%d", kind, sz[0], sz[1], seed)
				g := maze.NewGrid(sz[0], sz[1])
				Run(kind, g, seed)

				st := maze.Analyze(g)
				require.Truef(t, st.Perfect, "%s not perfect: %+v", name, st)
				require.Truef(t, g.Open(g.Start), "%s start closed", name)
				require.Truef(t, g.Open(g.Goal), "%s goal closed", name)
				require.Equal(t, maze.Point{X: 1, Y: 1}, g.Start)
				require.Equal(t, maze.Point{X: sz[0] - 2, Y: sz[1] - 2}, g.Goal)

				// Every room is carved and the border is intact
				rooms := ((sz[0] - 1) / 2) * ((sz[1] - 1) / 2)
				require.Equalf(t, 2*rooms-1, st.Passages, "%s passage count", name)
				for x := 0; x < g.Width; x++ {
					require.False(t, g.IsPassage(x, 0))
					require.False(t, g.IsPassage(x, g.Height-1))
				}
				for y := 0; y < g.Height; y++ {
					require.False(t, g.IsPassage(0, y))
					require.False(t, g.IsPassage(g.Width-1, y))
				}
			}
		}
	}
}

func TestDeterministicEventSequence(t *testing.T) {
	for _, kind := range Kinds {
		a := Run(kind, maze.NewGrid(25, 17), 2024)
		b := Run(kind, maze.NewGrid(25, 17), 2024)
		assert.Equalf(t, a, b, "%s diverged across runs", kind)

		c := Run(kind, maze.NewGrid(25, 17), 2025)
		assert.NotEqualf(t, a, c, "%s ignored seed", kind)
	}
}

func TestCarverStructuralBias(t *testing.T) {
	// Prim leaves many more dead ends than the backtracker on the same lattice
	var dfsEnds, primEnds int
	for seed := uint32(1); seed <= 10; seed++ {
		g := maze.NewGrid(41, 41)
		Run(KindBacktracker, g, seed)
		dfsEnds += maze.Analyze(g).DeadEnds

		g = maze.NewGrid(41, 41)
		Run(KindPrim, g, seed)
		primEnds += maze.Analyze(g).DeadEnds
	}
	assert.Greater(t, primEnds, dfsEnds)
}

func TestCarveNeverPrecedesInit(t *testing.T) {
	for _, kind := range Kinds {
		c := New(kind, maze.NewGrid(9, 9), rng.New(3))
		ev, ok := c.Next()
		require.True(t, ok)
		assert.Equal(t, event.Init, ev.Type)

		rest := event.Drain(c)
		require.NotEmpty(t, rest)
		assert.Equal(t, event.Done, rest[len(rest)-1].Type)
		for _, ev := range rest[:len(rest)-1] {
			assert.NotEqual(t, event.Init, ev.Type)
			assert.NotEqual(t, event.Done, ev.Type)
		}

		_, ok = c.Next()
		assert.False(t, ok, "carver must stay exhausted after done")
	}
}

func TestApplyReconstructsLiveGrid(t *testing.T) {
	for _, kind := range Kinds {
		live := maze.NewGrid(23, 15)
		evs := Run(kind, live, 77)

		replayed := maze.NewGrid(23, 15)
		replayed.Start, replayed.Goal = maze.Point{}, maze.Point{}
		for _, ev := range evs {
			Apply(replayed, ev)
		}
		assert.Truef(t, live.Equal(replayed), "%s replay differs:\n%s\nvs\n%s", kind, live, replayed)

		// Applying over the live grid changes nothing
		before := live.Clone()
		for _, ev := range evs {
			Apply(live, ev)
		}
		assert.True(t, before.Equal(live))
	}
}

func TestCarveMutatesGridIncrementally(t *testing.T) {
	g := maze.NewGrid(7, 7)
	g.Fill(maze.Passage)
	c := NewBacktracker(g, rng.New(9))

	ev, _ := c.Next()
	assert.Equal(t, []maze.Point{ev.To}, g.Passages(), "init wipes the grid and opens one room")
	assert.Equal(t, 1, c.Depth())

	ev, _ = c.Next()
	require.Equal(t, event.Carve, ev.Type)
	assert.Len(t, g.Passages(), 3)
	assert.Same(t, g, c.Grid())
}

func TestPrimFrontierDrains(t *testing.T) {
	c := NewPrim(maze.NewGrid(5, 5), rng.New(11))
	assert.Zero(t, c.Frontier())

	ev, ok := c.Next()
	require.True(t, ok)
	require.Equal(t, event.Init, ev.Type)
	assert.Equal(t, 2, c.Frontier(), "every room of a 5x5 grid is a corner with two closed neighbors")

	peak := c.Frontier()
	for {
		ev, ok := c.Next()
		if !ok {
			break
		}
		if ev.Type == event.Done {
			assert.Zero(t, c.Frontier(), "done only after the frontier empties")
		}
		peak = max(peak, c.Frontier())
	}
	assert.LessOrEqual(t, peak, 4)
	assert.Zero(t, c.Frontier())
}
