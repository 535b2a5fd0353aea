// Package config holds the settings a session runs with and loads them from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/mazestep/carve"
	"github.com/lixenwraith/mazestep/solve"
)

const (
	MinSize      = 5
	MinRate      = 1.0
	MinFrameRate = 15
	MaxFrameRate = 120
	MinCellSize  = 1
	MaxCellSize  = 4
)

var (
	ErrUnknownCarver = errors.New("config: unknown carver")
	ErrUnknownSolver = errors.New("config: unknown solver")
	ErrUnknownLevel  = errors.New("config: unknown log level")
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config is the full option set; zero values are filled by Normalize
type Config struct {
	Carver       string  `yaml:"carver"`
	Solver       string  `yaml:"solver"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Seed         uint32  `yaml:"seed"`
	GenRate      float64 `yaml:"gen_rate"`
	SolveRate    float64 `yaml:"solve_rate"`
	FrameRateCap int     `yaml:"frame_rate_cap"`

	CellSize  int    `yaml:"cell_size"`
	GridLines bool   `yaml:"grid_lines"`
	Sound     bool   `yaml:"sound"`
	LogLevel  string `yaml:"log_level"`

	// Keys rebinds keys to actions, e.g. "x": "solve" or "f5": "generate"
	Keys map[string]string `yaml:"keys"`
}

func Default() Config {
	return Config{
		Carver:       string(carve.KindBacktracker),
		Solver:       string(solve.KindBFS),
		Width:        41,
		Height:       25,
		Seed:         42,
		GenRate:      120,
		SolveRate:    90,
		FrameRateCap: 60,
		CellSize:     2,
		LogLevel:     "info",
	}
}

// Normalize coerces dimensions down to odd values of at least MinSize and
// clamps rates, frame cap and cell size into range
func (c *Config) Normalize() {
	c.Width = oddSize(c.Width)
	c.Height = oddSize(c.Height)
	c.GenRate = max(c.GenRate, MinRate)
	c.SolveRate = max(c.SolveRate, MinRate)
	c.FrameRateCap = min(max(c.FrameRateCap, MinFrameRate), MaxFrameRate)
	c.CellSize = min(max(c.CellSize, MinCellSize), MaxCellSize)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func oddSize(n int) int {
	if n%2 == 0 {
		n--
	}
	return max(n, MinSize)
}

// Validate reports names that do not resolve to an algorithm or log level
func (c Config) Validate() error {
	if _, err := carve.ParseKind(c.Carver); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownCarver, c.Carver)
	}
	if _, err := solve.ParseKind(c.Solver); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownSolver, c.Solver)
	}
	if c.LogLevel != "" && !logLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, c.LogLevel)
	}
	return nil
}

// CarverKind returns the parsed carver; call after Validate
func (c Config) CarverKind() carve.Kind {
	k, _ := carve.ParseKind(c.Carver)
	return k
}

// SolverKind returns the parsed solver; call after Validate
func (c Config) SolverKind() solve.Kind {
	k, _ := solve.ParseKind(c.Solver)
	return k
}

// Load reads a YAML file over Default, then normalizes and validates it
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default; unknown fields are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
