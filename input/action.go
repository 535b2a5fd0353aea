// Package input maps terminal key events to session actions.
package input

// Action discriminates what a key asks the session to do
type Action uint8

const (
	ActionNone Action = iota

	// Runs
	ActionGenerate // g
	ActionReplay   // r
	ActionSolve    // s

	// Scheduler control
	ActionPause       // space
	ActionStep        // n
	ActionFastForward // f
	ActionFaster      // +
	ActionSlower      // -
	ActionClear       // c

	// Algorithm selection
	ActionCarverDFS   // 1
	ActionCarverPrim  // 2
	ActionSolverBFS   // b
	ActionSolverDFS   // d
	ActionSolverAStar // a

	// System
	ActionMute // m
	ActionQuit // q, Esc, Ctrl+C

	actionCount
)

// actionNames are the canonical names used by key configuration
// "none" unbinds a key
var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionGenerate:    "generate",
	ActionReplay:      "replay",
	ActionSolve:       "solve",
	ActionPause:       "pause",
	ActionStep:        "step",
	ActionFastForward: "fast_forward",
	ActionFaster:      "faster",
	ActionSlower:      "slower",
	ActionClear:       "clear",
	ActionCarverDFS:   "carver_dfs",
	ActionCarverPrim:  "carver_prim",
	ActionSolverBFS:   "solver_bfs",
	ActionSolverDFS:   "solver_dfs",
	ActionSolverAStar: "solver_astar",
	ActionMute:        "mute",
	ActionQuit:        "quit",
}

var actionRegistry = buildActionRegistry()

func buildActionRegistry() map[string]Action {
	m := make(map[string]Action, actionCount)
	for a, name := range actionNames {
		m[name] = Action(a)
	}
	return m
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}
