package bestfirst

import (
	"context"
	"maps"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	GScore    map[NodeType]float64
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper drives a search one popped node at a time, for UIs and debugging
// tools. It runs exactly the algorithm of Search.
type Stepper[NodeType comparable, N NeighborGenerator[NodeType], H Heuristic[NodeType]] struct {
	ctx    context.Context
	cancel context.CancelFunc
	state  *searchState[NodeType, N, H]

	stepCount int
}

// NewStepper prepares a search without popping anything.
func NewStepper[NodeType comparable, N NeighborGenerator[NodeType], H Heuristic[NodeType]](
	parent context.Context,
	sources []Source[NodeType],
	goalNode NodeType,
	neighbors N,
	heuristic H,
	options ...Option[NodeType],
) *Stepper[NodeType, N, H] {
	ctx, cancel := context.WithCancel(parent)
	return &Stepper[NodeType, N, H]{
		ctx:    ctx,
		cancel: cancel,
		state:  newSearchState(sources, goalNode, neighbors, heuristic, options),
	}
}

// Close abandons the search. Later calls to Step return the context error.
func (s *Stepper[NodeType, N, H]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one popped node and returns a snapshot.
// Once the search is done every further Step returns the final snapshot.
func (s *Stepper[NodeType, N, H]) Step() (StepSnapshot[NodeType], error) {
	if s.state.done {
		return s.snapshot(), nil
	}
	if err := s.ctx.Err(); err != nil {
		s.state.done = true
		return StepSnapshot[NodeType]{Done: true, StepIndex: s.stepCount}, err
	}
	s.stepCount++
	s.state.advance()
	return s.snapshot(), nil
}

// Result returns the search state as Search would report it.
func (s *Stepper[NodeType, N, H]) Result() Result[NodeType] {
	return s.state.result()
}

func (s *Stepper[NodeType, N, H]) snapshot() StepSnapshot[NodeType] {
	snap := StepSnapshot[NodeType]{
		Current:   s.state.last,
		Open:      openSet(s.state.frontier),
		Closed:    maps.Clone(s.state.closed),
		CameFrom:  maps.Clone(s.state.cameFrom),
		GScore:    maps.Clone(s.state.gScore),
		Done:      s.state.done,
		Found:     s.state.found,
		StepIndex: s.stepCount,
	}
	if snap.Found {
		snap.Path = ReconstructPath(s.state.cameFrom, s.state.last, true)
	}
	return snap
}

func openSet[NodeType comparable](frontier *Queue[NodeType]) map[NodeType]bool {
	open := make(map[NodeType]bool, frontier.Len())
	for _, node := range frontier.Elements() {
		open[node] = true
	}
	return open
}
