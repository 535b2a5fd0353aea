// Command mazeviz animates maze carving and pathfinding in the terminal.
//
// With a terminal on stdout it runs interactively; otherwise, or with
// -headless, it carves and solves to completion and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/mazestep/audio"
	"github.com/lixenwraith/mazestep/config"
	"github.com/lixenwraith/mazestep/engine"
	"github.com/lixenwraith/mazestep/input"
	"github.com/lixenwraith/mazestep/render"
	"github.com/lixenwraith/mazestep/rng"
	"github.com/lixenwraith/mazestep/session"
)

var (
	configPath = flag.String("config", "", "YAML config file")
	logPath    = flag.String("log", "", "log file (default: no logging)")
	headless   = flag.Bool("headless", false, "carve and solve without a UI and print the result")

	carverFlag    = flag.String("carver", "", "carver: dfs, prim")
	solverFlag    = flag.String("solver", "", "solver: bfs, dfs, astar")
	widthFlag     = flag.Int("width", 0, "maze width, rounded down to odd")
	heightFlag    = flag.Int("height", 0, "maze height, rounded down to odd")
	seedFlag      = flag.Uint("seed", 0, "32-bit seed")
	genRateFlag   = flag.Float64("gen-rate", 0, "generation events per second")
	solveRateFlag = flag.Float64("solve-rate", 0, "solve events per second")
	fpsFlag       = flag.Int("fps", 0, "frame rate cap, 15-120")
	cellFlag      = flag.Int("cell", 0, "terminal columns per maze cell, 1-4")
	gridFlag      = flag.Bool("grid", false, "tint alternate passage cells")
	soundFlag     = flag.Bool("sound", false, "play audio cues")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazeviz: %v\n", err)
		os.Exit(2)
	}

	logger, logFile, err := setupLogging(*logPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazeviz: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.CellSize = config.MinCellSize
		s := session.New(cfg, session.WithLogger(logger))
		if err := runHeadless(s, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "mazeviz: %v\n", err)
			os.Exit(1)
		}
		return
	}

	keys, err := input.BuildKeyTable(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazeviz: %v\n", err)
		os.Exit(2)
	}

	acfg := audio.DefaultConfig()
	acfg.Enabled = cfg.Sound
	player := audio.NewPlayer(acfg)
	if cfg.Sound {
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
		defer player.Close()
	}

	a := &app{
		session: session.New(cfg, session.WithLogger(logger), session.WithNotifier(player)),
		keys:    keys,
		player:  player,
		log:     logger,
	}
	if !seedPinned() {
		a.seeds = rng.New(uint32(time.Now().UnixNano()))
	}
	if err := runInteractive(a, cfg.FrameRateCap); err != nil {
		fmt.Fprintf(os.Stderr, "mazeviz: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers explicitly set flags over the config file or defaults
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "carver":
			cfg.Carver = *carverFlag
		case "solver":
			cfg.Solver = *solverFlag
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "seed":
			cfg.Seed = uint32(*seedFlag)
		case "gen-rate":
			cfg.GenRate = *genRateFlag
		case "solve-rate":
			cfg.SolveRate = *solveRateFlag
		case "fps":
			cfg.FrameRateCap = *fpsFlag
		case "cell":
			cfg.CellSize = *cellFlag
		case "grid":
			cfg.GridLines = *gridFlag
		case "sound":
			cfg.Sound = *soundFlag
		}
	})

	cfg.Normalize()
	return cfg, cfg.Validate()
}

// seedPinned reports whether -seed was given; an explicit seed makes every
// generation repeat the same maze
func seedPinned() bool {
	pinned := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			pinned = true
		}
	})
	return pinned
}

// runHeadless carves, solves and prints the final frame
func runHeadless(s *session.Session, w io.Writer) error {
	s.Start(session.ModeGenerate)
	s.RunToCompletion()
	s.Start(session.ModeSolve)
	s.RunToCompletion()

	r := render.NewTextRenderer()
	s.Draw(r)
	_, err := r.WriteTo(w)
	return err
}

func runInteractive(a *app, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMAZEVIZ CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	r := render.NewTerminalRenderer(screen)
	loop := engine.NewLoop(engine.NewFrameClock(fps, nil))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Input polling runs on its own goroutine and only posts to the loop
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := a.keys.Lookup(ev)
				if !loop.PostWait(ctx, func() {
					if !a.apply(action) {
						cancel()
					}
				}) {
					return
				}
			case *tcell.EventResize:
				if !loop.PostWait(ctx, screen.Sync) {
					return
				}
			}
		}
	}()

	a.log.Info("interactive session", "id", a.session.ID, "fps", loop.Clock().FPS())
	a.session.Start(session.ModeGenerate)
	loop.Run(ctx, func(dt time.Duration) bool {
		a.frame(dt, r)
		return true
	})
	return nil
}
