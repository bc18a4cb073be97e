package search

import (
	"container/heap"
	"slices"
)

// record is one OPEN-set entry. Records are immutable once pushed;
// stale duplicates are filtered lazily at pop time by the CLOSED check.
type record struct {
	id   string
	path []string
	g    float64
	f    float64
	seq  int // insertion sequence, the final tie-break
}

// frontier abstracts the OPEN-set discipline. Snapshot returns the
// pending node IDs in a deterministic, strategy-appropriate order for
// trace capture.
type frontier interface {
	push(r record)
	pop() record
	empty() bool
	snapshot() []string
}

func newFrontier(s Strategy) frontier {
	switch s {
	case DFS:
		return &stackFrontier{}
	case AStar:
		return &heapFrontier{}
	default:
		return &queueFrontier{}
	}
}

// queueFrontier is the FIFO discipline used by BFS.
type queueFrontier struct {
	items []record
}

func (q *queueFrontier) push(r record) { q.items = append(q.items, r) }

func (q *queueFrontier) pop() record {
	r := q.items[0]
	q.items = q.items[1:]
	return r
}

func (q *queueFrontier) empty() bool { return len(q.items) == 0 }

func (q *queueFrontier) snapshot() []string { return ids(q.items) }

// stackFrontier is the LIFO discipline used by DFS. The snapshot lists
// bottom-to-top, so the next node to pop appears last.
type stackFrontier struct {
	items []record
}

func (s *stackFrontier) push(r record) { s.items = append(s.items, r) }

func (s *stackFrontier) pop() record {
	r := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return r
}

func (s *stackFrontier) empty() bool { return len(s.items) == 0 }

func (s *stackFrontier) snapshot() []string { return ids(s.items) }

// heapFrontier is the min-priority discipline used by A*: ordered by f,
// ties broken by smaller g, then by insertion sequence. The two-level
// tie-break keeps runs over the same graph bit-identical.
type heapFrontier struct {
	items recordHeap
}

func (h *heapFrontier) push(r record) { heap.Push(&h.items, r) }

func (h *heapFrontier) pop() record { return heap.Pop(&h.items).(record) }

func (h *heapFrontier) empty() bool { return len(h.items) == 0 }

func (h *heapFrontier) snapshot() []string {
	sorted := slices.Clone([]record(h.items))
	slices.SortFunc(sorted, compareRecords)
	return ids(sorted)
}

// recordHeap implements container/heap ordered by (f, g, seq).
type recordHeap []record

func (h recordHeap) Len() int           { return len(h) }
func (h recordHeap) Less(i, j int) bool { return compareRecords(h[i], h[j]) < 0 }
func (h recordHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *recordHeap) Push(x any)        { *h = append(*h, x.(record)) }
func (h *recordHeap) Pop() any {
	old := *h
	n := len(old)
	r := old[n-1]
	*h = old[:n-1]
	return r
}

func compareRecords(a, b record) int {
	switch {
	case a.f < b.f:
		return -1
	case a.f > b.f:
		return 1
	case a.g < b.g:
		return -1
	case a.g > b.g:
		return 1
	}
	return a.seq - b.seq
}

func ids(items []record) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.id
	}
	return out
}
