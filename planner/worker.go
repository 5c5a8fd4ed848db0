package planner

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/bestfirst/grid"
)

// Request is one plan in a batch.
type Request struct {
	// ID tags the response. A random id is assigned when empty.
	ID    string
	Start Pose
	Goal  Pose
}

// Response is the outcome of one Request.
type Response struct {
	ID        string
	Waypoints []Pose
}

// Found reports whether a path was planned.
func (r Response) Found() bool { return len(r.Waypoints) > 0 }

// PlanBatch plans every request across the same grid snapshot, running up
// to NumberOfWorkers searches at once. Responses are in request order. The
// first context error aborts the batch.
func (p *Planner) PlanBatch(ctx context.Context, g *grid.Grid, requests []Request) ([]Response, error) {
	responses := make([]Response, len(requests))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.options.NumberOfWorkers)
	for i, request := range requests {
		i, request := i, request
		group.Go(func() error {
			id := request.ID
			if id == "" {
				id = uuid.NewString()
			}
			waypoints, err := p.Plan(groupCtx, request.Start, request.Goal, g)
			if err != nil {
				return err
			}
			responses[i] = Response{ID: id, Waypoints: waypoints}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}
