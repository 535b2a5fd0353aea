package render

import (
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/mazestep/maze"
)

// Glyphs used by TextRenderer
const (
	TextWall    = '█'
	TextPassage = ' '
	TextVisited = '·'
	TextHead    = '@'
	TextPath    = '•'
)

// TextRenderer rasterizes frames into a rune buffer for headless output
// Colors are ignored; overlays are told apart by glyph
type TextRenderer struct {
	cells       [][]rune
	start, goal maze.Point
	status      string
	// HeadColor marks which overlay color is drawn with TextHead
	HeadColor colorful.Color
}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{HeadColor: DefaultPalette().Head}
}

func (r *TextRenderer) DrawBaseGrid(g *maze.Grid, cellSize int, p Palette, showGridLines bool) {
	cellSize = max(cellSize, 1)
	r.start, r.goal = g.Start, g.Goal
	r.HeadColor = p.Head
	r.status = ""

	r.cells = make([][]rune, g.Height)
	for y := range r.cells {
		row := make([]rune, g.Width*cellSize)
		for x := 0; x < g.Width; x++ {
			ch := TextWall
			if g.IsPassage(x, y) {
				ch = TextPassage
			}
			for i := 0; i < cellSize; i++ {
				row[x*cellSize+i] = ch
			}
		}
		r.cells[y] = row
	}
	r.put(g.Start, cellSize, 'S')
	r.put(g.Goal, cellSize, 'G')
}

func (r *TextRenderer) DrawOverlayCells(cells []maze.Point, cellSize int, c colorful.Color) {
	ch := TextVisited
	if c == r.HeadColor {
		ch = TextHead
	}
	for _, p := range cells {
		r.put(p, max(cellSize, 1), ch)
	}
}

func (r *TextRenderer) DrawPathGlow(path []maze.Point, cellSize int, outer, inner colorful.Color) {
	for _, p := range path {
		r.put(p, max(cellSize, 1), TextPath)
	}
}

func (r *TextRenderer) DrawStatus(text string, p Palette) {
	r.status = text
}

// put writes ch into the first column of a cell, leaving endpoint markers alone
func (r *TextRenderer) put(p maze.Point, cellSize int, ch rune) {
	if p.Y < 0 || p.Y >= len(r.cells) {
		return
	}
	x := p.X * cellSize
	if x < 0 || x >= len(r.cells[p.Y]) {
		return
	}
	if (p == r.start || p == r.goal) && ch != 'S' && ch != 'G' {
		return
	}
	r.cells[p.Y][x] = ch
}

// String returns the buffered frame, one row per line, then the status line
func (r *TextRenderer) String() string {
	var sb strings.Builder
	for _, row := range r.cells {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	if r.status != "" {
		sb.WriteString(r.status)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the buffered frame to w
func (r *TextRenderer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
