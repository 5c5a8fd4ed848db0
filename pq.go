package bestfirst

import (
	"container/heap"
	"fmt"
	"slices"
)

type queueEntry[NodeType comparable] struct {
	Node     NodeType
	Cost     float64
	Sequence uint64
}

type entryHeap[NodeType comparable] []queueEntry[NodeType]

func (h entryHeap[NodeType]) Len() int           { return len(h) }
func (h entryHeap[NodeType]) Less(i, j int) bool { return h[i].Cost < h[j].Cost }
func (h entryHeap[NodeType]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[NodeType]) Push(x any) {
	*h = append(*h, x.(queueEntry[NodeType]))
}

func (h *entryHeap[NodeType]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// pendingIDs holds the sequence ids still in the heap for one node, in push
// order. latest is the last id issued for the node; it is the only id that
// may be returned by Pop.
type pendingIDs struct {
	ids    []uint64
	latest uint64
}

// Queue is a min-priority queue that allows the same node to be pushed many
// times. Pop only ever returns the freshest push of a node; older pushes are
// dropped when they reach the top of the heap. This replaces decrease-key:
// relaxing a queued node is a plain Push.
//
// A Queue is not safe for concurrent use.
type Queue[NodeType comparable] struct {
	entries entryHeap[NodeType]
	pending map[NodeType]*pendingIDs
	nextSeq uint64
}

// NewQueue returns an empty queue.
func NewQueue[NodeType comparable]() *Queue[NodeType] {
	return &Queue[NodeType]{pending: make(map[NodeType]*pendingIDs)}
}

// Len returns the number of heap entries, stale ones included.
func (q *Queue[NodeType]) Len() int { return q.entries.Len() }

// Push queues node with the given cost. Any earlier pending push of the same
// node becomes stale.
func (q *Queue[NodeType]) Push(cost float64, node NodeType) {
	q.nextSeq++
	seq := q.nextSeq
	heap.Push(&q.entries, queueEntry[NodeType]{Node: node, Cost: cost, Sequence: seq})

	p, ok := q.pending[node]
	if !ok {
		p = &pendingIDs{}
		q.pending[node] = p
	}
	p.ids = append(p.ids, seq)
	p.latest = seq
}

// Pop removes and returns the cheapest node whose freshest push is still
// queued, together with the cost of that push. ok is false once the heap
// holds no live entry.
func (q *Queue[NodeType]) Pop() (node NodeType, cost float64, ok bool) {
	for q.entries.Len() > 0 {
		entry := heap.Pop(&q.entries).(queueEntry[NodeType])
		if q.release(entry) {
			return entry.Node, entry.Cost, true
		}
	}
	var zero NodeType
	return zero, 0, false
}

// release drops entry's id from its node's pending stack and reports
// whether the entry was live.
func (q *Queue[NodeType]) release(entry queueEntry[NodeType]) bool {
	p, ok := q.pending[entry.Node]
	if !ok {
		panic(fmt.Sprintf("bestfirst: queue entry %d for %v has no pending ids", entry.Sequence, entry.Node))
	}
	live := entry.Sequence == p.latest
	if n := len(p.ids); n > 0 && p.ids[n-1] == entry.Sequence {
		p.ids = p.ids[:n-1]
	} else {
		i, found := slices.BinarySearch(p.ids, entry.Sequence)
		if !found {
			panic(fmt.Sprintf("bestfirst: queue entry %d for %v missing from pending ids", entry.Sequence, entry.Node))
		}
		p.ids = slices.Delete(p.ids, i, i+1)
	}
	if len(p.ids) == 0 {
		delete(q.pending, entry.Node)
	}
	return live
}

// Pending reports whether node has a live entry.
func (q *Queue[NodeType]) Pending(node NodeType) bool {
	p, ok := q.pending[node]
	if !ok {
		return false
	}
	n := len(p.ids)
	return n > 0 && p.ids[n-1] == p.latest
}

// Elements returns the nodes that still have a live entry, in no
// particular order.
func (q *Queue[NodeType]) Elements() []NodeType {
	nodes := make([]NodeType, 0, len(q.pending))
	for node := range q.pending {
		if q.Pending(node) {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
