// Package session owns one interactive run: the grid, a generation scheduler
// and a solve scheduler with independent rates, the last complete recording,
// and the overlay buffers a renderer draws from.
//
// A Session is not safe for concurrent use. Drive it from a single goroutine,
// normally the engine.Loop, and post input to that loop.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lixenwraith/mazestep/carve"
	"github.com/lixenwraith/mazestep/config"
	"github.com/lixenwraith/mazestep/engine"
	"github.com/lixenwraith/mazestep/event"
	"github.com/lixenwraith/mazestep/maze"
	"github.com/lixenwraith/mazestep/render"
	"github.com/lixenwraith/mazestep/rng"
	"github.com/lixenwraith/mazestep/solve"
)

// Mode names what the session is running
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeGenerate
	ModeReplay
	ModeSolve
)

func (m Mode) String() string {
	switch m {
	case ModeGenerate:
		return "generate"
	case ModeReplay:
		return "replay"
	case ModeSolve:
		return "solve"
	default:
		return "idle"
	}
}

// Status messages shown when a control has nothing to act on
const (
	StatusReady           = "ready"
	StatusNothingToReplay = "nothing to replay"
	StatusNothingToSolve  = "nothing to solve"
	StatusNoPath          = "no path"
)

// Notifier receives terminal events, e.g. to play a cue
type Notifier interface {
	Generated(stats maze.Stats)
	Solved(found bool, cost int)
	Replaying()
}

type nopNotifier struct{}

func (nopNotifier) Generated(maze.Stats) {}
func (nopNotifier) Solved(bool, int)     {}
func (nopNotifier) Replaying()           {}

type Option func(*Session)

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithPalette(p render.Palette) Option {
	return func(s *Session) {
		s.palette = p
	}
}

type Session struct {
	ID uuid.UUID

	cfg      config.Config
	log      *log.Logger
	notifier Notifier
	palette  render.Palette

	grid   *maze.Grid
	gen    *engine.Scheduler
	solver *engine.Scheduler

	// mode is the run owning the generation scheduler, or ModeSolve while a
	// solver is attached
	mode      Mode
	recording *event.Log
	last      *event.Log
	hasMaze   bool
	carved    bool

	visited []maze.Point
	path    []maze.Point
	head    maze.Point
	hasHead bool

	solved bool
	found  bool
	cost   int
	status string
}

// New creates an idle session; cfg is normalized first
func New(cfg config.Config, opts ...Option) *Session {
	cfg.Normalize()
	s := &Session{
		ID:       uuid.New(),
		cfg:      cfg,
		log:      log.New(io.Discard),
		notifier: nopNotifier{},
		palette:  render.DefaultPalette(),
		status:   StatusReady,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.grid = maze.NewGrid(cfg.Width, cfg.Height)

	genRouter := event.NewRouter().
		On(s.applyCarve, event.Init, event.Carve, event.Backtrack, event.Done).
		On(s.trackCarveHead, event.Init, event.Carve, event.Backtrack).
		On(s.onCarveDone, event.Done)
	s.gen = engine.NewScheduler(cfg.GenRate, genRouter)
	s.gen.OnFinish(s.onGenerationFinished)

	solveRouter := event.NewRouter().
		On(s.onVisit, event.Visit).
		On(s.onPath, event.Path).
		On(s.onSolveDone, event.SolveDone)
	s.solver = engine.NewScheduler(cfg.SolveRate, solveRouter)
	s.solver.OnFinish(s.onSolveFinished)

	return s
}

// Start begins a run in the given mode and reports whether anything started
func (s *Session) Start(mode Mode) bool {
	switch mode {
	case ModeGenerate:
		s.startGenerate()
		return true
	case ModeReplay:
		return s.ReplayLast()
	case ModeSolve:
		return s.startSolve()
	}
	return false
}

func (s *Session) startGenerate() {
	s.solver.Clear()
	s.gen.Clear()
	s.clearOverlays()
	s.last = nil

	kind := s.cfg.CarverKind()
	s.grid = maze.NewGrid(s.cfg.Width, s.cfg.Height)
	s.recording = event.NewLog(s.cfg.Width, s.cfg.Height, s.cfg.Seed, string(kind))
	carver := carve.New(kind, s.grid, rng.New(s.cfg.Seed))
	s.gen.Start(event.NewRecorder(carver, s.recording))

	s.mode = ModeGenerate
	s.hasMaze = true
	s.carved = false
	s.status = fmt.Sprintf("generating %s %dx%d seed=%d", kind, s.cfg.Width, s.cfg.Height, s.cfg.Seed)
	s.log.Info("generation started",
		"session", s.ID, "log", s.recording.ID,
		"carver", kind, "width", s.cfg.Width, "height", s.cfg.Height, "seed", s.cfg.Seed,
	)
}

// ReplayLast re-drives the last complete recording on a fresh grid through
// the generation scheduler
func (s *Session) ReplayLast() bool {
	if s.last == nil || !s.last.Complete() {
		s.status = StatusNothingToReplay
		return false
	}
	s.solver.Clear()
	s.gen.Clear()
	s.clearOverlays()
	s.recording = nil

	s.grid = maze.NewGrid(s.last.Width, s.last.Height)
	s.gen.Start(s.last.Player())

	s.mode = ModeReplay
	s.carved = false
	s.status = fmt.Sprintf("replaying %s seed=%d (%d events)", s.last.Carver, s.last.Seed, s.last.Len())
	s.log.Info("replay started", "session", s.ID, "log", s.last.ID, "events", s.last.Len())
	s.notifier.Replaying()
	return true
}

func (s *Session) startSolve() bool {
	if !s.hasMaze {
		s.status = StatusNothingToSolve
		return false
	}
	if s.gen.Active() {
		s.log.Warn("generation abandoned for solve", "session", s.ID, "consumed", s.gen.Consumed())
		s.gen.Clear()
		s.recording = nil
	}
	s.solver.Clear()
	s.clearOverlays()

	kind := s.cfg.SolverKind()
	s.solver.Start(solve.New(kind, s.grid))
	s.mode = ModeSolve
	s.status = fmt.Sprintf("solving %s", kind)
	s.log.Info("solve started", "session", s.ID, "solver", kind, "start", s.grid.Start, "goal", s.grid.Goal)
	return true
}

// active is the scheduler control input applies to: the solver while it
// runs, otherwise the generation scheduler
func (s *Session) active() *engine.Scheduler {
	if s.solver.Active() {
		return s.solver
	}
	if s.gen.Active() {
		return s.gen
	}
	return nil
}

// Pause halts both schedulers; no-op without an active run
func (s *Session) Pause() bool {
	if s.active() == nil {
		return false
	}
	s.gen.Pause()
	s.solver.Pause()
	return true
}

// Resume always clears the pause so a run started later is not held
func (s *Session) Resume() bool {
	s.gen.Resume()
	s.solver.Resume()
	return s.active() != nil
}

// TogglePause flips the pause state and returns it
func (s *Session) TogglePause() bool {
	if s.Paused() {
		s.Resume()
	} else {
		s.Pause()
	}
	return s.Paused()
}

func (s *Session) Paused() bool {
	return s.gen.Paused()
}

// StepOnce requests one event from the active run, honored while paused
func (s *Session) StepOnce() bool {
	sch := s.active()
	if sch == nil {
		return false
	}
	sch.StepOnce()
	return true
}

// ToggleFastForward flips fast-forward on both schedulers
func (s *Session) ToggleFastForward() bool {
	if s.active() == nil {
		return s.gen.FastForward()
	}
	on := s.gen.ToggleFastForward()
	s.solver.SetFastForward(on)
	return on
}

func (s *Session) FastForward() bool {
	return s.gen.FastForward()
}

// ClearOverlays drops visited cells, the path and the solve result
// A running solver keeps going and repopulates them
func (s *Session) ClearOverlays() bool {
	if len(s.visited) == 0 && len(s.path) == 0 && !s.hasHead && !s.solved {
		return false
	}
	s.clearOverlays()
	return true
}

func (s *Session) clearOverlays() {
	s.visited = s.visited[:0]
	s.path = s.path[:0]
	s.hasHead = false
	s.solved, s.found, s.cost = false, false, 0
}

func (s *Session) SetGenRate(rate float64) {
	s.gen.SetRate(rate)
	s.cfg.GenRate = s.gen.Rate()
}

func (s *Session) SetSolveRate(rate float64) {
	s.solver.SetRate(rate)
	s.cfg.SolveRate = s.solver.Rate()
}

// ScaleRate multiplies the rate of the active run, or of both when idle
func (s *Session) ScaleRate(factor float64) {
	switch {
	case s.solver.Active():
		s.SetSolveRate(s.solver.Rate() * factor)
	case s.gen.Active():
		s.SetGenRate(s.gen.Rate() * factor)
	default:
		s.SetGenRate(s.gen.Rate() * factor)
		s.SetSolveRate(s.solver.Rate() * factor)
	}
}

// SetCarver selects the carver for the next generation
func (s *Session) SetCarver(kind carve.Kind) {
	s.cfg.Carver = string(kind)
}

// SetSolver selects the solver for the next solve
func (s *Session) SetSolver(kind solve.Kind) {
	s.cfg.Solver = string(kind)
}

// SetSeed selects the seed for the next generation
func (s *Session) SetSeed(seed uint32) {
	s.cfg.Seed = seed
}

func (s *Session) Config() config.Config {
	return s.cfg
}

func (s *Session) Grid() *maze.Grid {
	return s.grid
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Status() string {
	return s.status
}

// Busy reports whether either scheduler has a source attached
func (s *Session) Busy() bool {
	return s.gen.Active() || s.solver.Active()
}

// Frame advances both schedulers by one rendered frame
// Returns the number of events consumed, at most one per scheduler
func (s *Session) Frame(dt time.Duration) int {
	n := 0
	if _, ok := s.gen.Frame(dt); ok {
		n++
	}
	if _, ok := s.solver.Frame(dt); ok {
		n++
	}
	return n
}

// RunToCompletion pumps the active runs until both schedulers are idle,
// ignoring pacing; used for headless output
func (s *Session) RunToCompletion() int {
	n := 0
	for s.gen.Active() {
		if _, ok := s.gen.Pump(); ok {
			n++
		}
	}
	for s.solver.Active() {
		if _, ok := s.solver.Pump(); ok {
			n++
		}
	}
	return n
}
