package planner

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pdrpinto/bestfirst/grid"
)

// Pose is a position and heading in the map frame.
type Pose struct {
	Position r2.Vec
	Yaw      float64
}

// At returns the pose at (x, y) with zero heading.
func At(x, y float64) Pose {
	return Pose{Position: r2.Vec{X: x, Y: y}}
}

// CellOf returns the cell containing position. The result may lie outside
// the grid.
func CellOf(g *grid.Grid, position r2.Vec) grid.Cell {
	geo := g.Geometry()
	local := r2.Rotate(r2.Sub(position, geo.Origin), -geo.Yaw, r2.Vec{})
	return grid.Cell{
		Row: int(math.Floor(local.Y / geo.Resolution)),
		Col: int(math.Floor(local.X / geo.Resolution)),
	}
}

// CenterOf returns the map-frame center of c.
func CenterOf(g *grid.Grid, c grid.Cell) r2.Vec {
	geo := g.Geometry()
	local := r2.Vec{
		X: (float64(c.Col) + 0.5) * geo.Resolution,
		Y: (float64(c.Row) + 0.5) * geo.Resolution,
	}
	return r2.Add(geo.Origin, r2.Rotate(local, geo.Yaw, r2.Vec{}))
}

// waypoints maps a cell path to poses. The ends are replaced by start and
// goal exactly; every other pose sits at its cell center facing the next
// waypoint.
func waypoints(g *grid.Grid, cells []grid.Cell, start, goal Pose) []Pose {
	if len(cells) == 0 {
		return nil
	}
	if len(cells) == 1 {
		return []Pose{start, goal}
	}
	out := make([]Pose, len(cells))
	out[0] = start
	out[len(cells)-1] = goal
	for i := 1; i < len(cells)-1; i++ {
		out[i].Position = CenterOf(g, cells[i])
	}
	for i := 1; i < len(cells)-1; i++ {
		d := r2.Sub(out[i+1].Position, out[i].Position)
		out[i].Yaw = math.Atan2(d.Y, d.X)
	}
	return out
}
