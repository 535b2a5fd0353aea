package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		name := a.String()
		require.NotEmpty(t, name, "action %d has no name", a)
		got, ok := ActionByName(name)
		require.True(t, ok, name)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "unknown", Action(250).String())
	_, ok := ActionByName("teleport")
	assert.False(t, ok)
}

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{runeKey('g'), ActionGenerate},
		{runeKey('r'), ActionReplay},
		{runeKey('s'), ActionSolve},
		{runeKey(' '), ActionPause},
		{runeKey('n'), ActionStep},
		{runeKey('f'), ActionFastForward},
		{runeKey('+'), ActionFaster},
		{runeKey('-'), ActionSlower},
		{runeKey('c'), ActionClear},
		{runeKey('1'), ActionCarverDFS},
		{runeKey('2'), ActionCarverPrim},
		{runeKey('b'), ActionSolverBFS},
		{runeKey('d'), ActionSolverDFS},
		{runeKey('a'), ActionSolverAStar},
		{runeKey('q'), ActionQuit},
		{runeKey('z'), ActionNone},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, kt.Lookup(tc.ev), "key %v rune %q", tc.ev.Key(), tc.ev.Rune())
	}
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"x":     "solve",
		"space": "step",
		"F5":    "generate",
		"esc":   "none",
	})
	require.NoError(t, err)
	assert.Equal(t, ActionSolve, kt.Runes['x'])
	assert.Equal(t, ActionStep, kt.Runes[' '])
	assert.Equal(t, ActionGenerate, kt.Keys[tcell.KeyF5])
	a, ok := kt.Keys[tcell.KeyEscape]
	assert.True(t, ok)
	assert.Equal(t, ActionNone, a)
}

func TestLoadKeyConfigErrors(t *testing.T) {
	_, err := LoadKeyConfig(map[string]string{"x": "explode"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = LoadKeyConfig(map[string]string{"hyperkey": "solve"})
	assert.ErrorContains(t, err, "unknown key name")
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override := &KeyTable{
		Runes: map[rune]Action{'s': ActionNone, 'x': ActionSolve},
		Keys:  map[tcell.Key]Action{tcell.KeyEscape: ActionNone},
	}
	merged := MergeKeyTable(base, override)

	assert.Equal(t, ActionNone, merged.Lookup(runeKey('s')), "unbound")
	assert.Equal(t, ActionSolve, merged.Lookup(runeKey('x')))
	assert.Equal(t, ActionNone, merged.Lookup(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, ActionGenerate, merged.Lookup(runeKey('g')), "untouched keys survive")

	// base is not modified
	assert.Equal(t, ActionSolve, base.Lookup(runeKey('s')))
}

func TestBuildKeyTable(t *testing.T) {
	kt, err := BuildKeyTable(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyTable(), kt)

	kt, err = BuildKeyTable(map[string]string{"plus": "slower"})
	require.NoError(t, err)
	assert.Equal(t, ActionSlower, kt.Lookup(runeKey('+')))

	_, err = BuildKeyTable(map[string]string{"?": "dance"})
	assert.Error(t, err)
}
