package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty   = errors.New("maze: empty grid text")
	ErrRagged  = errors.New("maze: rows differ in length")
	ErrBadCell = errors.New("maze: unknown cell rune")
)

const (
	wallRune    = '#'
	passageRune = '.'
)

// String renders one row per line, '#' for walls and '.' for passages
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y*g.Width+x] == Passage {
				sb.WriteByte(passageRune)
			} else {
				sb.WriteByte(wallRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads the format produced by String
// Blank lines are skipped; Start and Goal take their defaults
func Parse(s string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			switch row[x] {
			case wallRune:
			case passageRune:
				g.cells[y*w+x] = Passage
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, row[x], x, y)
			}
		}
	}
	return g, nil
}
