package grid

import (
	"math"

	"github.com/pdrpinto/bestfirst"
)

// Manhattan is the taxi distance, exact on an empty 4-connected grid.
type Manhattan struct{}

func (Manhattan) Estimate(from, goal Cell) float64 {
	return float64(absInt(from.Row-goal.Row) + absInt(from.Col-goal.Col))
}

// Chebyshev is the larger axis distance. It is admissible for the 8-connected
// cost model but looser than Octile.
type Chebyshev struct{}

func (Chebyshev) Estimate(from, goal Cell) float64 {
	return float64(max(absInt(from.Row-goal.Row), absInt(from.Col-goal.Col)))
}

// Octile is the exact 8-connected distance on an empty grid with diagonal
// cost √2.
type Octile struct{}

func (Octile) Estimate(from, goal Cell) float64 {
	dr, dc := absInt(from.Row-goal.Row), absInt(from.Col-goal.Col)
	return float64(max(dr, dc)) + (math.Sqrt2-1)*float64(min(dr, dc))
}

// DefaultHeuristic returns Manhattan for Taxi and Chebyshev for Chessboard.
func DefaultHeuristic(kind Neighborhood) bestfirst.Heuristic[Cell] {
	if kind == Taxi {
		return Manhattan{}
	}
	return Chebyshev{}
}
