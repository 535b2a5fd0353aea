package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/mazestep/carve"
	"github.com/lixenwraith/mazestep/config"
	"github.com/lixenwraith/mazestep/maze"
	"github.com/lixenwraith/mazestep/render"
	"github.com/lixenwraith/mazestep/solve"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	def := config.Default()

	for {
		fmt.Println("\n=== SEEDED MAZE GENERATOR ===")

		cfg := def
		cfg.Width = getInt(reader, fmt.Sprintf("Width [odd] (default %d): ", def.Width), def.Width)
		cfg.Height = getInt(reader, fmt.Sprintf("Height [odd] (default %d): ", def.Height), def.Height)
		cfg.Carver = getString(reader, "Carver [dfs/prim] (default dfs): ", def.Carver)
		cfg.Solver = getString(reader, "Solver [bfs/dfs/astar] (default bfs): ", def.Solver)
		cfg.Seed = getSeed(reader, fmt.Sprintf("Seed (default %d): ", def.Seed), def.Seed)

		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Invalid settings: %v\n", err)
			continue
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res := generate(cfg)
		dur := time.Since(startT)

		fmt.Printf("Done in %v (%d carve events)\n", dur, res.events)
		fmt.Printf("Grid Dimensions: %dx%d\n", res.grid.Width, res.grid.Height)
		fmt.Printf("Passages: %d, Dead Ends: %d, Perfect: %v\n",
			res.stats.Passages, res.stats.DeadEnds, res.stats.Perfect)

		if res.solution.Found {
			fmt.Printf("Solution Cost: %d steps, %d cells visited\n", res.solution.Cost, len(res.solution.Visited))
		} else {
			fmt.Println("Status: Unsolvable")
		}

		draw(os.Stdout, res)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

type result struct {
	grid     *maze.Grid
	events   int
	stats    maze.Stats
	solution solve.Result
}

// generate carves and solves cfg in one pass with no pacing
func generate(cfg config.Config) result {
	g := maze.NewGrid(cfg.Width, cfg.Height)
	evs := carve.Run(cfg.CarverKind(), g, cfg.Seed)
	return result{
		grid:     g,
		events:   len(evs),
		stats:    maze.Analyze(g),
		solution: solve.Collect(solve.New(cfg.SolverKind(), g)),
	}
}

func draw(w io.Writer, res result) {
	r := render.NewTextRenderer()
	p := render.DefaultPalette()
	r.DrawBaseGrid(res.grid, 1, p, false)
	r.DrawPathGlow(res.solution.Path, 1, p.PathOuter, p.PathInner)
	r.WriteTo(w)
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getSeed(r *bufio.Reader, prompt string, def uint32) uint32 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return def
	}
	return uint32(v)
}

func getString(r *bufio.Reader, prompt string, def string) string {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def
	}
	return s
}
