package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := Parse(s)
	require.NoError(t, err)
	return g
}

func TestAnalyzePerfect(t *testing.T) {
	g := mustParse(t, `
#####
#...#
###.#
#...#
#####
`)
	st := Analyze(g)
	assert.Equal(t, 7, st.Passages)
	assert.Equal(t, 6, st.Edges)
	assert.Equal(t, 7, st.Reachable)
	assert.Equal(t, 2, st.DeadEnds)
	assert.True(t, st.Connected)
	assert.True(t, st.Perfect)
}

func TestAnalyzeCycle(t *testing.T) {
	g := mustParse(t, `
#####
#...#
#.#.#
#...#
#####
`)
	st := Analyze(g)
	assert.True(t, st.Connected)
	assert.False(t, st.Perfect, "ring around the pillar is a cycle")
	assert.Equal(t, 0, st.DeadEnds)
}

func TestAnalyzeDisconnected(t *testing.T) {
	g := mustParse(t, `
#####
#.#.#
#####
#...#
#####
`)
	st := Analyze(g)
	assert.Equal(t, 5, st.Passages)
	assert.Equal(t, 1, st.Reachable)
	assert.False(t, st.Connected)
	assert.False(t, st.Perfect)
}

func TestAnalyzeClosedStart(t *testing.T) {
	st := Analyze(NewGrid(5, 5))
	assert.Zero(t, st.Reachable)
	assert.False(t, st.Connected)
}
