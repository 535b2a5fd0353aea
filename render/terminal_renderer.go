package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/mazestep/maze"
)

const (
	glyphStart   = 'S'
	glyphGoal    = 'G'
	glyphPath    = '•'
	gridLineTint = 0.12
)

// TerminalRenderer draws frames onto a tcell screen
// One maze cell spans cellSize columns and one row; the status line sits on
// the row below the grid
type TerminalRenderer struct {
	screen  tcell.Screen
	originX int
	originY int

	// Endpoints and background of the last base grid, so overlays keep the
	// start/goal glyphs and the status line knows where the grid ends
	start, goal maze.Point
	gridHeight  int
}

// NewTerminalRenderer creates a renderer drawing at the top-left of screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// SetOrigin moves the top-left corner of the grid
func (r *TerminalRenderer) SetOrigin(x, y int) {
	r.originX, r.originY = x, y
}

// Clear blanks the whole screen before a frame
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Present flushes the frame to the terminal
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

func (r *TerminalRenderer) DrawBaseGrid(g *maze.Grid, cellSize int, p Palette, showGridLines bool) {
	cellSize = max(cellSize, 1)
	r.start, r.goal = g.Start, g.Goal
	r.gridHeight = g.Height

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			bg := p.Wall
			if g.IsPassage(x, y) {
				bg = p.Passage
				if showGridLines && (x+y)%2 == 0 {
					bg = Blend(bg, p.GridLine, gridLineTint)
				}
			}
			r.fill(maze.Point{X: x, Y: y}, cellSize, ' ', p.Text, bg)
		}
	}
	r.fill(g.Start, cellSize, glyphStart, p.Wall, p.Start)
	r.fill(g.Goal, cellSize, glyphGoal, p.Wall, p.Goal)
}

func (r *TerminalRenderer) DrawOverlayCells(cells []maze.Point, cellSize int, c colorful.Color) {
	cellSize = max(cellSize, 1)
	for _, p := range cells {
		r.fill(p, cellSize, r.glyphAt(p, ' '), colorful.Color{}, c)
	}
}

func (r *TerminalRenderer) DrawPathGlow(path []maze.Point, cellSize int, outer, inner colorful.Color) {
	cellSize = max(cellSize, 1)
	for _, p := range path {
		r.fill(p, cellSize, r.glyphAt(p, glyphPath), inner, outer)
	}
}

// DrawStatus writes text on the row below the grid, truncated to the screen width
func (r *TerminalRenderer) DrawStatus(text string, p Palette) {
	w, _ := r.screen.Size()
	y := r.originY + r.gridHeight
	text = runewidth.Truncate(text, w-r.originX, "…")
	style := tcell.StyleDefault.Foreground(toTcell(p.Text)).Background(toTcell(p.Wall))

	x := r.originX
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// glyphAt keeps the endpoint markers visible under overlays
func (r *TerminalRenderer) glyphAt(p maze.Point, fallback rune) rune {
	switch p {
	case r.start:
		return glyphStart
	case r.goal:
		return glyphGoal
	}
	return fallback
}

// fill paints one maze cell; the glyph goes in the first column of the span
func (r *TerminalRenderer) fill(p maze.Point, cellSize int, ch rune, fg, bg colorful.Color) {
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	sx := r.originX + p.X*cellSize
	sy := r.originY + p.Y
	for i := 0; i < cellSize; i++ {
		glyph := ' '
		if i == 0 {
			glyph = ch
		}
		r.screen.SetContent(sx+i, sy, glyph, nil, style)
	}
}

func toTcell(c colorful.Color) tcell.Color {
	cr, cg, cb := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}
