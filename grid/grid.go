// Package grid specializes the best-first engine to 2D occupancy grids:
// 4- and 8-connected neighbor generation, the matching heuristics, and the
// 1 / √2 step cost model.
package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidMap is returned for grid descriptions that cannot be loaded.
var ErrInvalidMap = errors.New("grid: invalid map")

// Cell addresses one grid square by row and column.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Geometry places the grid in continuous space. Cell (0,0) has its lower
// corner at Origin; columns run along the origin's rotated x axis and rows
// along its y axis.
type Geometry struct {
	Resolution float64 // metres per cell side
	Origin     r2.Vec
	Yaw        float64 // radians
}

// Grid is a width × height occupancy grid. It is read-only input to a
// search; callers must not mutate it while a search is running.
type Grid struct {
	width    int
	height   int
	occupied []bool
	geometry Geometry
}

// New returns a free grid with unit resolution at the origin.
func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", width, height))
	}
	return &Grid{
		width:    width,
		height:   height,
		occupied: make([]bool, width*height),
		geometry: Geometry{Resolution: 1},
	}
}

// Parse builds a grid from text rows, row 0 first. '#' marks an occupied
// cell; '.', 'S' and 'G' are free.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	width := len(rows[0])
	g := New(width, len(rows))
	for r, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidMap, r, len(line), width)
		}
		for c, ch := range []byte(line) {
			switch ch {
			case '#':
				g.occupied[r*width+c] = true
			case '.', 'S', 'G':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrInvalidMap, ch, r, c)
			}
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on error.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Geometry returns the grid's placement in continuous space.
func (g *Grid) Geometry() Geometry { return g.geometry }

// SetGeometry replaces the grid's placement. Resolution must be positive.
func (g *Grid) SetGeometry(geometry Geometry) error {
	if !(geometry.Resolution > 0) {
		return fmt.Errorf("%w: resolution %v", ErrInvalidMap, geometry.Resolution)
	}
	g.geometry = geometry
	return nil
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Free reports whether c is inside the grid and unoccupied.
func (g *Grid) Free(c Cell) bool {
	return g.InBounds(c) && !g.occupied[c.Row*g.width+c.Col]
}

// Occupied reports whether c is inside the grid and occupied.
func (g *Grid) Occupied(c Cell) bool {
	return g.InBounds(c) && g.occupied[c.Row*g.width+c.Col]
}

// SetOccupied marks c. It panics if c is outside the grid.
func (g *Grid) SetOccupied(c Cell, occupied bool) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: cell %v outside %dx%d grid", c, g.width, g.height))
	}
	g.occupied[c.Row*g.width+c.Col] = occupied
}

// OccupiedCells lists the occupied cells in row-major order.
func (g *Grid) OccupiedCells() []Cell {
	var cells []Cell
	for i, occupied := range g.occupied {
		if occupied {
			cells = append(cells, Cell{Row: i / g.width, Col: i % g.width})
		}
	}
	return cells
}
