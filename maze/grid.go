// Package maze holds the grid model shared by carvers and solvers.
//
// A grid is a fixed w×h lattice of Wall/Passage cells. Carvers treat odd
// coordinates as rooms two cells apart with the even coordinate between them
// as the wall, so the border row and column stay Wall after any carve.
package maze

// Cell is the state of a single lattice position
type Cell uint8

const (
	Wall Cell = iota
	Passage
)

func (c Cell) String() string {
	if c == Passage {
		return "passage"
	}
	return "wall"
}

type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Manhattan returns the 4-connected distance between p and q
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Dirs4 lists unit offsets in N, E, S, W order
var Dirs4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a row-major cell matrix with designated start and goal
// Cells are indexed y*Width + x
type Grid struct {
	Width, Height int
	Start, Goal   Point
	cells         []Cell
}

// NewGrid creates an all-Wall grid with Start (1,1) and Goal (w-2,h-2)
// Callers normalize dimensions; the carvers assume odd sizes of at least 5
func NewGrid(w, h int) *Grid {
	return &Grid{
		Width:  w,
		Height: h,
		Start:  Point{1, 1},
		Goal:   Point{w - 2, h - 2},
		cells:  make([]Cell, w*h),
	}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index returns the flat index of p; p must be in bounds
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// PointAt is the inverse of Index
func (g *Grid) PointAt(i int) Point {
	return Point{i % g.Width, i / g.Width}
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns the cell state, Wall when out of bounds
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.Width+x]
}

// IsPassage reports whether (x,y) is an open cell, false when out of bounds
func (g *Grid) IsPassage(x, y int) bool {
	return g.At(x, y) == Passage
}

// Open is IsPassage for a Point
func (g *Grid) Open(p Point) bool {
	return g.At(p.X, p.Y) == Passage
}

// Set writes a cell state; out of bounds writes are ignored
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = c
}

func (g *Grid) SetWall(x, y int) {
	g.Set(x, y, Wall)
}

func (g *Grid) SetPassage(x, y int) {
	g.Set(x, y, Passage)
}

// Fill sets every cell to c
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns an independent deep copy including Start and Goal
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// Equal compares dimensions, endpoints and every cell
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.Width != o.Width || g.Height != o.Height || g.Start != o.Start || g.Goal != o.Goal {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Passages returns all open cells in row-major order
func (g *Grid) Passages() []Point {
	var out []Point
	for i, c := range g.cells {
		if c == Passage {
			out = append(out, g.PointAt(i))
		}
	}
	return out
}

// IsRoom reports whether p lies on the odd interior lattice carvers walk
func (g *Grid) IsRoom(p Point) bool {
	return p.X > 0 && p.X < g.Width-1 && p.Y > 0 && p.Y < g.Height-1 && p.X%2 == 1 && p.Y%2 == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
