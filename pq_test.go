package bestfirst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type popped struct {
	node string
	cost float64
}

func drain(q *Queue[string]) []popped {
	var out []popped
	for {
		node, cost, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, popped{node, cost})
	}
}

func TestQueue_FreshestPushWins(t *testing.T) {
	t.Run("decreasing cost", func(t *testing.T) {
		q := NewQueue[string]()
		q.Push(5, "a")
		q.Push(3, "a")
		q.Push(4, "b")

		assert.Equal(t, []popped{{"a", 3}, {"b", 4}}, drain(q))
		assert.Equal(t, 0, q.Len())
		assert.Empty(t, q.pending)
	})

	t.Run("increasing cost", func(t *testing.T) {
		q := NewQueue[string]()
		q.Push(1, "a")
		q.Push(6, "a")
		q.Push(4, "b")

		assert.Equal(t, []popped{{"b", 4}, {"a", 6}}, drain(q))
		assert.Empty(t, q.pending)
	})

	t.Run("many pushes of one node", func(t *testing.T) {
		q := NewQueue[string]()
		for _, c := range []float64{9, 7, 8, 2, 5} {
			q.Push(c, "a")
		}
		assert.Equal(t, []popped{{"a", 5}}, drain(q))
	})
}

func TestQueue_OrdersByCost(t *testing.T) {
	q := NewQueue[string]()
	q.Push(3, "c")
	q.Push(1, "a")
	q.Push(5, "e")
	q.Push(2, "b")
	q.Push(4, "d")

	assert.Equal(t, []popped{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}}, drain(q))
}

func TestQueue_RepushAfterPop(t *testing.T) {
	q := NewQueue[string]()
	q.Push(2, "a")
	node, cost, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", node)
	assert.Equal(t, 2.0, cost)

	q.Push(7, "a")
	node, cost, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", node)
	assert.Equal(t, 7.0, cost)

	_, _, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueue_PendingAndElements(t *testing.T) {
	q := NewQueue[string]()
	q.Push(5, "a")
	q.Push(3, "a")
	q.Push(4, "b")

	assert.True(t, q.Pending("a"))
	assert.True(t, q.Pending("b"))
	assert.False(t, q.Pending("z"))
	assert.ElementsMatch(t, []string{"a", "b"}, q.Elements())
	assert.Equal(t, 3, q.Len())

	node, _, _ := q.Pop()
	require.Equal(t, "a", node)

	// the stale push of a is still in the heap but no longer live
	assert.Equal(t, 2, q.Len())
	assert.False(t, q.Pending("a"))
	assert.Equal(t, []string{"b"}, q.Elements())
}

func TestQueue_EmptyPop(t *testing.T) {
	q := NewQueue[int]()
	node, cost, ok := q.Pop()
	assert.False(t, ok)
	assert.Zero(t, node)
	assert.Zero(t, cost)
}

func TestQueue_CorruptBookkeepingPanics(t *testing.T) {
	q := NewQueue[string]()
	q.Push(1, "a")
	delete(q.pending, "a")
	assert.Panics(t, func() { q.Pop() })

	q = NewQueue[string]()
	q.Push(1, "a")
	q.Push(2, "a")
	q.pending["a"].ids = []uint64{2}
	assert.Panics(t, func() { q.Pop() })
}
