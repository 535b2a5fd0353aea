package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/mazestep/carve"
	"github.com/lixenwraith/mazestep/solve"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	before := cfg
	cfg.Normalize()
	assert.Equal(t, before, cfg, "defaults are already normalized")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, carve.KindBacktracker, cfg.CarverKind())
	assert.Equal(t, solve.KindBFS, cfg.SolverKind())
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "even sizes round down",
			in:   Config{Width: 22, Height: 10, GenRate: 5, SolveRate: 5, FrameRateCap: 60, CellSize: 2},
			want: Config{Width: 21, Height: 9, GenRate: 5, SolveRate: 5, FrameRateCap: 60, CellSize: 2, LogLevel: "info"},
		},
		{
			name: "tiny and negative sizes",
			in:   Config{Width: 4, Height: -7, GenRate: 5, SolveRate: 5, FrameRateCap: 60, CellSize: 2},
			want: Config{Width: 5, Height: 5, GenRate: 5, SolveRate: 5, FrameRateCap: 60, CellSize: 2, LogLevel: "info"},
		},
		{
			name: "rates floor at one",
			in:   Config{Width: 7, Height: 7, GenRate: 0, SolveRate: -3, FrameRateCap: 60, CellSize: 1},
			want: Config{Width: 7, Height: 7, GenRate: 1, SolveRate: 1, FrameRateCap: 60, CellSize: 1, LogLevel: "info"},
		},
		{
			name: "frame cap and cell size clamp",
			in:   Config{Width: 7, Height: 7, GenRate: 1, SolveRate: 1, FrameRateCap: 500, CellSize: 9, LogLevel: "debug"},
			want: Config{Width: 7, Height: 7, GenRate: 1, SolveRate: 1, FrameRateCap: 120, CellSize: 4, LogLevel: "debug"},
		},
		{
			name: "low frame cap",
			in:   Config{Width: 7, Height: 7, GenRate: 1, SolveRate: 1, FrameRateCap: 3, CellSize: 0},
			want: Config{Width: 7, Height: 7, GenRate: 1, SolveRate: 1, FrameRateCap: 15, CellSize: 1, LogLevel: "info"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in
			got.Normalize()
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Carver = "kruskal"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownCarver)

	cfg = Default()
	cfg.Solver = "dijkstra"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownSolver)

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownLevel)

	cfg = Default()
	cfg.Carver, cfg.Solver = "prim", "astar"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, carve.KindPrim, cfg.CarverKind())
	assert.Equal(t, solve.KindAStar, cfg.SolverKind())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
carver: prim
solver: astar
width: 30
height: 21
seed: 7
gen_rate: 250
frame_rate_cap: 90
grid_lines: true
keys:
  x: solve
  space: pause
`))
	require.NoError(t, err)
	assert.Equal(t, "prim", cfg.Carver)
	assert.Equal(t, "astar", cfg.Solver)
	assert.Equal(t, 29, cfg.Width)
	assert.Equal(t, 21, cfg.Height)
	assert.Equal(t, uint32(7), cfg.Seed)
	assert.Equal(t, 250.0, cfg.GenRate)
	assert.Equal(t, Default().SolveRate, cfg.SolveRate, "unset fields keep defaults")
	assert.Equal(t, 90, cfg.FrameRateCap)
	assert.True(t, cfg.GridLines)
	assert.Equal(t, map[string]string{"x": "solve", "space": "pause"}, cfg.Keys)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("colour: blue\n"))
	assert.Error(t, err, "unknown field")

	_, err = Parse([]byte("carver: eller\n"))
	assert.ErrorIs(t, err, ErrUnknownCarver)

	_, err = Parse([]byte("width: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver: dfs\nseed: 1234\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dfs", cfg.Solver)
	assert.Equal(t, uint32(1234), cfg.Seed)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
