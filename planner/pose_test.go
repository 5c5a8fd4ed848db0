package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pdrpinto/bestfirst/grid"
)

func TestCellOf_UnitGrid(t *testing.T) {
	g := grid.New(5, 5)
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, CellOf(g, r2.Vec{X: 0.5, Y: 0.5}))
	assert.Equal(t, grid.Cell{Row: 2, Col: 3}, CellOf(g, r2.Vec{X: 3.99, Y: 2.01}))
	assert.Equal(t, grid.Cell{Row: 0, Col: -1}, CellOf(g, r2.Vec{X: -0.1, Y: 0.5}))
	assert.Equal(t, r2.Vec{X: 3.5, Y: 2.5}, CenterOf(g, grid.Cell{Row: 2, Col: 3}))
}

func TestCellOf_RoundTrip(t *testing.T) {
	g := grid.New(6, 4)
	require.NoError(t, g.SetGeometry(grid.Geometry{
		Resolution: 0.5,
		Origin:     r2.Vec{X: -1, Y: 3},
		Yaw:        math.Pi / 2,
	}))

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			c := grid.Cell{Row: row, Col: col}
			assert.Equal(t, c, CellOf(g, CenterOf(g, c)))
		}
	}

	// columns run along +y once the map is turned a quarter
	center := CenterOf(g, grid.Cell{Row: 0, Col: 2})
	assert.InDelta(t, -1-0.25, center.X, 1e-12)
	assert.InDelta(t, 3+1.25, center.Y, 1e-12)
}

func TestWaypoints(t *testing.T) {
	g := grid.New(3, 3)
	start := Pose{Position: r2.Vec{X: 0.1, Y: 0.2}, Yaw: 1}
	goal := Pose{Position: r2.Vec{X: 2.9, Y: 2.8}, Yaw: -1}

	got := waypoints(g, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, start, goal)
	require.Len(t, got, 4)
	assert.Equal(t, start, got[0])
	assert.Equal(t, goal, got[3])
	assert.Equal(t, r2.Vec{X: 1.5, Y: 0.5}, got[1].Position)
	assert.InDelta(t, math.Pi/2, got[1].Yaw, 1e-12)
	assert.Equal(t, r2.Vec{X: 1.5, Y: 1.5}, got[2].Position)

	assert.Nil(t, waypoints(g, nil, start, goal))
	assert.Equal(t, []Pose{start, goal}, waypoints(g, []grid.Cell{{Row: 0, Col: 0}}, start, goal))
}
