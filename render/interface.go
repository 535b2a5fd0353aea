// Package render defines the draw-target contract the session pushes frames to,
// plus terminal and plain-text implementations.
//
// The core never touches a drawing surface: each frame it hands a Renderer
// the base grid, the accumulated overlay cells, and the current path as
// plain coordinate lists.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/mazestep/maze"
)

// Renderer consumes batched draw instructions once per frame
// Calls arrive in order: base grid, overlays, path glow
type Renderer interface {
	// DrawBaseGrid paints every cell of g; cellSize is surface units per maze cell
	DrawBaseGrid(g *maze.Grid, cellSize int, p Palette, showGridLines bool)

	// DrawOverlayCells tints cells on top of the base grid
	DrawOverlayCells(cells []maze.Point, cellSize int, c colorful.Color)

	// DrawPathGlow paints the route with an outer halo and an inner core
	DrawPathGlow(path []maze.Point, cellSize int, outer, inner colorful.Color)
}

// StatusWriter is optionally implemented by renderers with a text line
type StatusWriter interface {
	DrawStatus(text string, p Palette)
}

// Presenter is optionally implemented by renderers that buffer a frame
type Presenter interface {
	Present()
}
