package grid

import (
	"context"
	"fmt"

	"github.com/pdrpinto/bestfirst"
)

type searchOptions struct {
	heuristic     bestfirst.Heuristic[Cell]
	maxExpansions int
}

// SearchOption configures Search.
type SearchOption func(*searchOptions)

// WithDijkstra searches without a heuristic.
func WithDijkstra() SearchOption {
	return func(o *searchOptions) { o.heuristic = bestfirst.Zero[Cell]{} }
}

// WithHeuristic replaces the default heuristic of the neighborhood.
func WithHeuristic(h bestfirst.Heuristic[Cell]) SearchOption {
	return func(o *searchOptions) { o.heuristic = h }
}

// WithMaxExpansions bounds the number of expanded cells.
func WithMaxExpansions(n int) SearchOption {
	return func(o *searchOptions) { o.maxExpansions = n }
}

// Search finds a path from start to goal on g. By default it runs A* with
// the heuristic matching kind.
//
// A start or goal that is outside the grid or occupied yields an unfound
// Result without searching. Only a cancelled ctx returns an error.
func Search(ctx context.Context, start, goal Cell, g *Grid, kind Neighborhood, cornerCheck bool, opts ...SearchOption) (bestfirst.Result[Cell], error) {
	o := searchOptions{heuristic: DefaultHeuristic(kind)}
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Free(start) || !g.Free(goal) {
		return bestfirst.Result[Cell]{
			Last:     start,
			CameFrom: map[Cell]Cell{},
			Closed:   map[Cell]bool{},
			GScore:   map[Cell]float64{},
			Frontier: bestfirst.NewQueue[Cell](),
		}, nil
	}

	var searchOpts []bestfirst.Option[Cell]
	if o.maxExpansions > 0 {
		searchOpts = append(searchOpts, bestfirst.WithMaxExpansions[Cell](o.maxExpansions))
	}
	sources := bestfirst.From(start)
	switch {
	case kind == Taxi:
		return bestfirst.Search(ctx, sources, goal, checked[TaxiNeighbors]{grid: g, inner: TaxiNeighbors{Grid: g}}, o.heuristic, searchOpts...)
	case cornerCheck:
		return bestfirst.Search(ctx, sources, goal, checked[CornerCheckedNeighbors]{grid: g, inner: CornerCheckedNeighbors{Grid: g}}, o.heuristic, searchOpts...)
	default:
		return bestfirst.Search(ctx, sources, goal, checked[ChessboardNeighbors]{grid: g, inner: ChessboardNeighbors{Grid: g}}, o.heuristic, searchOpts...)
	}
}

// checked panics if the wrapped generator offers a cell that is outside the
// grid or occupied.
type checked[N bestfirst.NeighborGenerator[Cell]] struct {
	grid  *Grid
	inner N
}

func (c checked[N]) Neighbors(current Cell, gScore map[Cell]float64, closed map[Cell]bool) []bestfirst.Neighbor[Cell] {
	neighbors := c.inner.Neighbors(current, gScore, closed)
	for _, n := range neighbors {
		if !c.grid.Free(n.ID) {
			panic(fmt.Sprintf("grid: generator offered blocked cell %v from %v", n.ID, current))
		}
	}
	return neighbors
}
