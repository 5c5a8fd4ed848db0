package bestfirst

import (
	"context"
)

// Neighbor represents a reachable node with a cost.
//
// Returned by a NeighborGenerator, Cost is the tentative g-score of ID when
// reached through the current node. Returned by a Graph, Cost is the cost
// of the single edge.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// NeighborGenerator offers the successors of current. Implementations must
// skip nodes in closed and anything that is not traversable; the engine does
// not filter what it is given.
type NeighborGenerator[NodeType comparable] interface {
	Neighbors(current NodeType, gScore map[NodeType]float64, closed map[NodeType]bool) []Neighbor[NodeType]
}

// NeighborFunc adapts a function to a NeighborGenerator.
type NeighborFunc[NodeType comparable] func(current NodeType, gScore map[NodeType]float64, closed map[NodeType]bool) []Neighbor[NodeType]

// Neighbors calls f.
func (f NeighborFunc[NodeType]) Neighbors(current NodeType, gScore map[NodeType]float64, closed map[NodeType]bool) []Neighbor[NodeType] {
	return f(current, gScore, closed)
}

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// FromGraph turns a Graph with per-edge costs into a NeighborGenerator.
func FromGraph[NodeType comparable](graph Graph[NodeType]) NeighborFunc[NodeType] {
	return func(current NodeType, gScore map[NodeType]float64, closed map[NodeType]bool) []Neighbor[NodeType] {
		edges := graph.Neighbors(current)
		out := make([]Neighbor[NodeType], 0, len(edges))
		for _, edge := range edges {
			if closed[edge.ID] {
				continue
			}
			out = append(out, Neighbor[NodeType]{ID: edge.ID, Cost: gScore[current] + edge.Cost})
		}
		return out
	}
}

// Heuristic estimates the remaining cost from a node to the goal. It must
// never overestimate, and should be consistent, for the search to return
// optimal paths.
type Heuristic[NodeType comparable] interface {
	Estimate(from NodeType, goal NodeType) float64
}

// HeuristicFunc adapts a function to a Heuristic.
type HeuristicFunc[NodeType comparable] func(from NodeType, goal NodeType) float64

// Estimate calls f.
func (f HeuristicFunc[NodeType]) Estimate(from NodeType, goal NodeType) float64 { return f(from, goal) }

// Zero is the constant zero heuristic. Searching with it is Dijkstra's
// algorithm.
type Zero[NodeType comparable] struct{}

// Estimate returns 0.
func (Zero[NodeType]) Estimate(NodeType, NodeType) float64 { return 0 }

// Source seeds the search with a node and its initial cost.
type Source[NodeType comparable] struct {
	Element NodeType
	Cost    float64
}

// From returns the single-source seed for node at cost 0.
func From[NodeType comparable](node NodeType) []Source[NodeType] {
	return []Source[NodeType]{{Element: node}}
}

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	// Found reports whether the exit condition was met.
	Found bool
	// Last is the node that met the exit condition, or the last node
	// popped when the search gave up.
	Last     NodeType
	CameFrom map[NodeType]NodeType
	Closed   map[NodeType]bool
	GScore   map[NodeType]float64
	// Frontier holds whatever was still queued when the search stopped.
	Frontier      *Queue[NodeType]
	ExpandedNodes int
}

// Path returns the nodes from a source to Last, or nil when nothing was
// found.
func (r Result[NodeType]) Path() []NodeType {
	if !r.Found {
		return nil
	}
	return ReconstructPath(r.CameFrom, r.Last, true)
}

// TotalCost returns the g-score of Last.
func (r Result[NodeType]) TotalCost() float64 {
	return r.GScore[r.Last]
}

// Options defines parameters for the search.
type Options[NodeType comparable] struct {
	// ExitCondition decides when the popped node ends the search.
	// Defaults to equality with the goal.
	ExitCondition func(current NodeType, goal NodeType) bool
	// MaxExpansions stops the search unsuccessfully after that many node
	// expansions. Zero means unlimited.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option[NodeType comparable] func(*Options[NodeType])

// WithExitCondition replaces the goal test.
func WithExitCondition[NodeType comparable](exit func(current NodeType, goal NodeType) bool) Option[NodeType] {
	return func(options *Options[NodeType]) { options.ExitCondition = exit }
}

// WithMaxExpansions bounds the number of expanded nodes.
func WithMaxExpansions[NodeType comparable](n int) Option[NodeType] {
	return func(options *Options[NodeType]) { options.MaxExpansions = n }
}

func equalNodes[NodeType comparable](current NodeType, goal NodeType) bool { return current == goal }

// Search runs best-first search from sources towards goal. With the Zero
// heuristic it is Dijkstra's algorithm; with an admissible heuristic it is
// A*.
//
// An unreachable goal is not an error: the returned Result has Found unset
// and carries the partial search state. The only error returned is the
// context's, which is checked once per popped node.
func Search[NodeType comparable, N NeighborGenerator[NodeType], H Heuristic[NodeType]](
	contextObject context.Context,
	sources []Source[NodeType],
	goalNode NodeType,
	neighbors N,
	heuristic H,
	options ...Option[NodeType],
) (Result[NodeType], error) {
	state := newSearchState(sources, goalNode, neighbors, heuristic, options)
	for !state.done {
		if err := contextObject.Err(); err != nil {
			return state.result(), err
		}
		state.advance()
	}
	return state.result(), nil
}

// searchState is the orchestrator shared by Search and Stepper.
type searchState[NodeType comparable, N NeighborGenerator[NodeType], H Heuristic[NodeType]] struct {
	goal          NodeType
	neighbors     N
	heuristic     H
	exitCondition func(current NodeType, goal NodeType) bool
	maxExpansions int

	frontier *Queue[NodeType]
	gScore   map[NodeType]float64
	cameFrom map[NodeType]NodeType
	closed   map[NodeType]bool

	last     NodeType
	expanded int
	done     bool
	found    bool
}

func newSearchState[NodeType comparable, N NeighborGenerator[NodeType], H Heuristic[NodeType]](
	sources []Source[NodeType],
	goalNode NodeType,
	neighbors N,
	heuristic H,
	options []Option[NodeType],
) *searchState[NodeType, N, H] {
	// --- Apply options ---
	searchOptions := Options[NodeType]{ExitCondition: equalNodes[NodeType]}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.ExitCondition == nil {
		searchOptions.ExitCondition = equalNodes[NodeType]
	}

	// --- Initialize state ---
	s := &searchState[NodeType, N, H]{
		goal:          goalNode,
		neighbors:     neighbors,
		heuristic:     heuristic,
		exitCondition: searchOptions.ExitCondition,
		maxExpansions: searchOptions.MaxExpansions,
		frontier:      NewQueue[NodeType](),
		gScore:        make(map[NodeType]float64, len(sources)),
		cameFrom:      make(map[NodeType]NodeType),
		closed:        make(map[NodeType]bool, len(sources)),
	}
	// Sources are closed up front, so a cheaper route into one is never
	// taken and its seeded cost acts as a fixed lower bound.
	for _, source := range sources {
		s.gScore[source.Element] = source.Cost
		s.closed[source.Element] = true
		s.frontier.Push(source.Cost+heuristic.Estimate(source.Element, goalNode), source.Element)
	}
	return s
}

// advance pops one node and either finishes the search or expands it.
func (s *searchState[NodeType, N, H]) advance() {
	currentNode, _, ok := s.frontier.Pop()
	if !ok {
		s.done = true
		return
	}
	s.last = currentNode

	// Goal check
	if s.exitCondition(currentNode, s.goal) {
		s.done = true
		s.found = true
		return
	}
	if s.maxExpansions > 0 && s.expanded >= s.maxExpansions {
		s.done = true
		return
	}

	s.closed[currentNode] = true
	s.expanded++
	for _, neighbor := range s.neighbors.Neighbors(currentNode, s.gScore, s.closed) {
		currentG, exists := s.gScore[neighbor.ID]
		if exists && neighbor.Cost >= currentG {
			continue
		}
		s.cameFrom[neighbor.ID] = currentNode
		s.gScore[neighbor.ID] = neighbor.Cost
		s.frontier.Push(neighbor.Cost+s.heuristic.Estimate(neighbor.ID, s.goal), neighbor.ID)
	}
}

func (s *searchState[NodeType, N, H]) result() Result[NodeType] {
	return Result[NodeType]{
		Found:         s.found,
		Last:          s.last,
		CameFrom:      s.cameFrom,
		Closed:        s.closed,
		GScore:        s.gScore,
		Frontier:      s.frontier,
		ExpandedNodes: s.expanded,
	}
}
