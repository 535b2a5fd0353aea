package main

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/mazestep/audio"
	"github.com/lixenwraith/mazestep/carve"
	"github.com/lixenwraith/mazestep/input"
	"github.com/lixenwraith/mazestep/render"
	"github.com/lixenwraith/mazestep/rng"
	"github.com/lixenwraith/mazestep/session"
	"github.com/lixenwraith/mazestep/solve"
)

const rateStep = 1.5

// app binds key actions to the session
// Every method runs on the loop goroutine
type app struct {
	session *session.Session
	keys    *input.KeyTable
	player  *audio.Player
	log     *log.Logger
	// seeds draws a fresh seed for every generate; nil keeps the configured seed
	seeds *rng.Source
}

// apply performs one action; returns false when the app should exit
func (a *app) apply(action input.Action) bool {
	s := a.session
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionGenerate:
		if a.seeds != nil {
			s.SetSeed(a.seeds.Uint32())
		}
		s.Start(session.ModeGenerate)
	case input.ActionReplay:
		s.ReplayLast()
	case input.ActionSolve:
		s.Start(session.ModeSolve)
	case input.ActionPause:
		s.TogglePause()
	case input.ActionStep:
		s.StepOnce()
	case input.ActionFastForward:
		s.ToggleFastForward()
	case input.ActionFaster:
		s.ScaleRate(rateStep)
	case input.ActionSlower:
		s.ScaleRate(1 / rateStep)
	case input.ActionClear:
		s.ClearOverlays()
	case input.ActionCarverDFS:
		s.SetCarver(carve.KindBacktracker)
	case input.ActionCarverPrim:
		s.SetCarver(carve.KindPrim)
	case input.ActionSolverBFS:
		s.SetSolver(solve.KindBFS)
	case input.ActionSolverDFS:
		s.SetSolver(solve.KindDFS)
	case input.ActionSolverAStar:
		s.SetSolver(solve.KindAStar)
	case input.ActionMute:
		if a.player != nil {
			a.player.ToggleMute()
		}
	case input.ActionNone:
		return true
	}
	a.log.Debug("action", "name", action, "mode", s.Mode())
	return true
}

// frame advances the session and redraws
func (a *app) frame(dt time.Duration, r *render.TerminalRenderer) {
	a.session.Frame(dt)
	r.Clear()
	a.session.Draw(r)
}
