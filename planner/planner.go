// Package planner bridges continuous poses and the occupancy grid: it maps
// poses to cells, runs the grid search and turns the cell path back into
// waypoints anchored at the exact start and goal poses.
package planner

import (
	"context"
	"runtime"
	"time"

	"github.com/pdrpinto/bestfirst/grid"
	"github.com/pdrpinto/bestfirst/internal/monitoring"
)

// Algorithm selects how the grid is searched.
type Algorithm int

const (
	// AStar uses the heuristic matching the neighborhood.
	AStar Algorithm = iota
	// Dijkstra searches by path cost alone.
	Dijkstra
)

// Options defines parameters for planning.
type Options struct {
	Neighborhood    grid.Neighborhood
	CornerCheck     bool
	Algorithm       Algorithm
	MaxExpansions   int
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithNeighborhood selects 4- or 8-connected moves.
func WithNeighborhood(kind grid.Neighborhood) Option {
	return func(options *Options) { options.Neighborhood = kind }
}

// WithCornerCheck forbids diagonal moves between two occupied cells.
func WithCornerCheck(enabled bool) Option {
	return func(options *Options) { options.CornerCheck = enabled }
}

// WithAlgorithm selects A* or Dijkstra.
func WithAlgorithm(algorithm Algorithm) Option {
	return func(options *Options) { options.Algorithm = algorithm }
}

// WithMaxExpansions gives up on a plan after n expanded cells.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithWorkers specifies how many plans PlanBatch runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// Planner plans paths across occupancy grids. It holds only its options and
// is safe for concurrent use.
type Planner struct {
	options Options
}

// New returns a planner. The defaults are 4-connected A* without corner
// checking and one batch worker per CPU.
func New(options ...Option) *Planner {
	planOptions := Options{
		Neighborhood:    grid.Taxi,
		Algorithm:       AStar,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&planOptions)
	}
	if planOptions.NumberOfWorkers < 1 {
		planOptions.NumberOfWorkers = 1
	}
	return &Planner{options: planOptions}
}

// Options returns the planner's configuration.
func (p *Planner) Options() Options { return p.options }

// Plan returns waypoints from start to goal across g. The first waypoint is
// start and the last is goal; the ones between sit at cell centers.
//
// An empty result means there is no path: either pose lies outside the grid
// or on an occupied cell, or the goal is unreachable. The only error is the
// context's.
func (p *Planner) Plan(ctx context.Context, start, goal Pose, g *grid.Grid) ([]Pose, error) {
	startCell, goalCell := CellOf(g, start.Position), CellOf(g, goal.Position)
	if !g.Free(startCell) || !g.Free(goalCell) {
		monitoring.Logf("planner: rejected plan %v -> %v: start or goal cell blocked or outside %dx%d grid",
			startCell, goalCell, g.Width(), g.Height())
		plansTotal.WithLabelValues(outcomeRejected).Inc()
		return nil, nil
	}

	var searchOpts []grid.SearchOption
	if p.options.Algorithm == Dijkstra {
		searchOpts = append(searchOpts, grid.WithDijkstra())
	}
	if p.options.MaxExpansions > 0 {
		searchOpts = append(searchOpts, grid.WithMaxExpansions(p.options.MaxExpansions))
	}

	began := time.Now()
	result, err := grid.Search(ctx, startCell, goalCell, g, p.options.Neighborhood, p.options.CornerCheck, searchOpts...)
	if err != nil {
		plansTotal.WithLabelValues(outcomeCancelled).Inc()
		return nil, err
	}
	planDuration.Observe(time.Since(began).Seconds())
	planExpansions.Observe(float64(result.ExpandedNodes))

	if !result.Found {
		monitoring.Logf("planner: no path %v -> %v after %d expansions", startCell, goalCell, result.ExpandedNodes)
		plansTotal.WithLabelValues(outcomeUnreachable).Inc()
		return nil, nil
	}
	plansTotal.WithLabelValues(outcomeFound).Inc()
	return waypoints(g, result.Path(), start, goal), nil
}

// Plan plans with the default planner and no deadline.
func Plan(start, goal Pose, g *grid.Grid) []Pose {
	poses, _ := New().Plan(context.Background(), start, goal, g)
	return poses
}
