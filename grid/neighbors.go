package grid

import (
	"math"

	"github.com/pdrpinto/bestfirst"
)

// Step costs.
const (
	OrthogonalCost = 1.0
	DiagonalCost   = math.Sqrt2
)

// Neighborhood selects the move set.
type Neighborhood int

const (
	// Taxi allows the four axis-aligned moves.
	Taxi Neighborhood = iota
	// Chessboard adds the four diagonal moves.
	Chessboard
)

func (n Neighborhood) String() string {
	switch n {
	case Taxi:
		return "taxi"
	case Chessboard:
		return "chessboard"
	default:
		return "unknown"
	}
}

var (
	orthogonalOffsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalOffsets   = [4]Cell{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// TaxiNeighbors is the 4-connected generator.
type TaxiNeighbors struct {
	Grid *Grid
}

func (n TaxiNeighbors) Neighbors(current Cell, gScore map[Cell]float64, closed map[Cell]bool) []bestfirst.Neighbor[Cell] {
	out := make([]bestfirst.Neighbor[Cell], 0, 4)
	return appendOrthogonal(out, n.Grid, current, gScore[current], closed)
}

// ChessboardNeighbors is the 8-connected generator. A diagonal move only
// needs its target cell free, so it may squeeze between two occupied
// cells that touch at a corner.
type ChessboardNeighbors struct {
	Grid *Grid
}

func (n ChessboardNeighbors) Neighbors(current Cell, gScore map[Cell]float64, closed map[Cell]bool) []bestfirst.Neighbor[Cell] {
	g := gScore[current]
	out := make([]bestfirst.Neighbor[Cell], 0, 8)
	out = appendOrthogonal(out, n.Grid, current, g, closed)
	return appendDiagonal(out, n.Grid, current, g, closed, false)
}

// CornerCheckedNeighbors is the 8-connected generator that also requires
// both orthogonal cells flanking a diagonal move to be free.
type CornerCheckedNeighbors struct {
	Grid *Grid
}

func (n CornerCheckedNeighbors) Neighbors(current Cell, gScore map[Cell]float64, closed map[Cell]bool) []bestfirst.Neighbor[Cell] {
	g := gScore[current]
	out := make([]bestfirst.Neighbor[Cell], 0, 8)
	out = appendOrthogonal(out, n.Grid, current, g, closed)
	return appendDiagonal(out, n.Grid, current, g, closed, true)
}

func appendOrthogonal(out []bestfirst.Neighbor[Cell], grid *Grid, current Cell, g float64, closed map[Cell]bool) []bestfirst.Neighbor[Cell] {
	for _, d := range orthogonalOffsets {
		next := Cell{Row: current.Row + d.Row, Col: current.Col + d.Col}
		if !grid.Free(next) || closed[next] {
			continue
		}
		out = append(out, bestfirst.Neighbor[Cell]{ID: next, Cost: g + OrthogonalCost})
	}
	return out
}

func appendDiagonal(out []bestfirst.Neighbor[Cell], grid *Grid, current Cell, g float64, closed map[Cell]bool, cornerCheck bool) []bestfirst.Neighbor[Cell] {
	for _, d := range diagonalOffsets {
		next := Cell{Row: current.Row + d.Row, Col: current.Col + d.Col}
		if !grid.Free(next) || closed[next] {
			continue
		}
		if cornerCheck {
			if !grid.Free(Cell{Row: current.Row, Col: next.Col}) || !grid.Free(Cell{Row: next.Row, Col: current.Col}) {
				continue
			}
		}
		out = append(out, bestfirst.Neighbor[Cell]{ID: next, Cost: g + DiagonalCost})
	}
	return out
}

// Generator returns the generator for kind. cornerCheck only matters for
// Chessboard.
func Generator(g *Grid, kind Neighborhood, cornerCheck bool) bestfirst.NeighborGenerator[Cell] {
	switch {
	case kind == Taxi:
		return TaxiNeighbors{Grid: g}
	case cornerCheck:
		return CornerCheckedNeighbors{Grid: g}
	default:
		return ChessboardNeighbors{Grid: g}
	}
}

// Adjacent reports whether b is one move away from a under kind, ignoring
// occupancy.
func Adjacent(a, b Cell, kind Neighborhood) bool {
	dr, dc := absInt(a.Row-b.Row), absInt(a.Col-b.Col)
	if dr > 1 || dc > 1 || dr+dc == 0 {
		return false
	}
	return kind == Chessboard || dr+dc == 1
}

// StepCost returns the cost of moving between adjacent cells a and b.
func StepCost(a, b Cell) float64 {
	if a.Row != b.Row && a.Col != b.Col {
		return DiagonalCost
	}
	return OrthogonalCost
}

// PathCost sums the step costs along path.
func PathCost(path []Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += StepCost(path[i-1], path[i])
	}
	return total
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
