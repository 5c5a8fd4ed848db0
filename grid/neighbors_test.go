package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdrpinto/bestfirst"
)

func offered(neighbors []bestfirst.Neighbor[Cell]) map[Cell]float64 {
	out := make(map[Cell]float64, len(neighbors))
	for _, n := range neighbors {
		out[n.ID] = n.Cost
	}
	return out
}

func TestTaxiNeighbors(t *testing.T) {
	g := MustParse(
		"...",
		".#.",
		"...",
	)
	gScore := map[Cell]float64{{0, 1}: 2}

	got := offered(TaxiNeighbors{Grid: g}.Neighbors(Cell{0, 1}, gScore, map[Cell]bool{{0, 0}: true}))
	// (0,0) closed, (1,1) occupied, (-1,1) outside
	assert.Equal(t, map[Cell]float64{{0, 2}: 3}, got)
}

func TestChessboardNeighbors(t *testing.T) {
	g := New(3, 3)
	got := offered(ChessboardNeighbors{Grid: g}.Neighbors(Cell{1, 1}, map[Cell]float64{{1, 1}: 0}, map[Cell]bool{}))

	assert.Len(t, got, 8)
	assert.Equal(t, 1.0, got[Cell{0, 1}])
	assert.InDelta(t, math.Sqrt2, got[Cell{0, 0}], 1e-12)
	assert.InDelta(t, math.Sqrt2, got[Cell{2, 2}], 1e-12)
}

func TestCornerCutting(t *testing.T) {
	// the two free cells touch only at a corner
	g := MustParse(
		".#",
		"#.",
	)
	from := Cell{0, 0}
	gScore := map[Cell]float64{from: 0}

	simple := offered(ChessboardNeighbors{Grid: g}.Neighbors(from, gScore, map[Cell]bool{}))
	assert.Contains(t, simple, Cell{1, 1})

	checked := offered(CornerCheckedNeighbors{Grid: g}.Neighbors(from, gScore, map[Cell]bool{}))
	assert.Empty(t, checked)

	assert.Empty(t, offered(TaxiNeighbors{Grid: g}.Neighbors(from, gScore, map[Cell]bool{})))
}

func TestCornerCheck_OneFlankBlocked(t *testing.T) {
	g := MustParse(
		".#",
		"..",
	)
	got := offered(CornerCheckedNeighbors{Grid: g}.Neighbors(Cell{0, 0}, map[Cell]float64{}, map[Cell]bool{}))
	assert.Equal(t, map[Cell]float64{{1, 0}: 1}, got)
}

func TestGenerator(t *testing.T) {
	g := New(1, 1)
	assert.IsType(t, TaxiNeighbors{}, Generator(g, Taxi, true))
	assert.IsType(t, ChessboardNeighbors{}, Generator(g, Chessboard, false))
	assert.IsType(t, CornerCheckedNeighbors{}, Generator(g, Chessboard, true))
}

func TestAdjacentAndCosts(t *testing.T) {
	assert.True(t, Adjacent(Cell{0, 0}, Cell{0, 1}, Taxi))
	assert.False(t, Adjacent(Cell{0, 0}, Cell{1, 1}, Taxi))
	assert.True(t, Adjacent(Cell{0, 0}, Cell{1, 1}, Chessboard))
	assert.False(t, Adjacent(Cell{0, 0}, Cell{0, 0}, Chessboard))
	assert.False(t, Adjacent(Cell{0, 0}, Cell{0, 2}, Chessboard))

	assert.Equal(t, 1.0, StepCost(Cell{0, 0}, Cell{1, 0}))
	assert.Equal(t, math.Sqrt2, StepCost(Cell{0, 0}, Cell{1, 1}))
	assert.InDelta(t, 2+math.Sqrt2, PathCost([]Cell{{0, 0}, {0, 1}, {1, 2}, {2, 2}}), 1e-12)
	assert.Zero(t, PathCost([]Cell{{3, 3}}))
}

func TestHeuristics(t *testing.T) {
	from, goal := Cell{0, 0}, Cell{3, 7}
	assert.Equal(t, 10.0, Manhattan{}.Estimate(from, goal))
	assert.Equal(t, 7.0, Chebyshev{}.Estimate(from, goal))
	assert.InDelta(t, 4+3*math.Sqrt2, Octile{}.Estimate(from, goal), 1e-12)

	assert.IsType(t, Manhattan{}, DefaultHeuristic(Taxi))
	assert.IsType(t, Chebyshev{}, DefaultHeuristic(Chessboard))
}
