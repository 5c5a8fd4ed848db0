// Package bestfirst provides a generic best-first search engine covering both
// A* and Dijkstra's algorithm.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The frontier is a lazy-deletion priority queue: improving the cost of a
// queued node pushes it again and the outdated entry is skipped when it
// surfaces, so no decrease-key is needed. Neighbor generation and the
// heuristic are supplied as type parameters; package grid provides the
// occupancy-grid implementations.
//
// A search holds no state outside the call, so independent searches may run
// concurrently.
package bestfirst
