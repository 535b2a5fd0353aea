package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
// Printable keys live in Runes; everything tcell reports as a named key lives in Keys
type KeyTable struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'g': ActionGenerate,
			'r': ActionReplay,
			's': ActionSolve,
			' ': ActionPause,
			'n': ActionStep,
			'f': ActionFastForward,
			'+': ActionFaster,
			'=': ActionFaster,
			'-': ActionSlower,
			'c': ActionClear,
			'1': ActionCarverDFS,
			'2': ActionCarverPrim,
			'b': ActionSolverBFS,
			'd': ActionSolverDFS,
			'a': ActionSolverAStar,
			'm': ActionMute,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEnter:  ActionStep,
			tcell.KeyRight:  ActionStep,
			tcell.KeyUp:     ActionFaster,
			tcell.KeyDown:   ActionSlower,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// Lookup resolves a key event; unbound keys yield ActionNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
