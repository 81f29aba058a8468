// Package bfs provides unweighted shortest-path search over a
// core.Graph. Edge capacities are ignored; every edge counts as one
// hop. Ties between equally short paths are broken by visiting
// neighbors in ascending ID order, so results are reproducible.
package bfs

import (
	"errors"

	"github.com/gammazero/deque"

	"github.com/miraki/flowsim/core"
)

// Sentinel errors for path search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexNotFound is returned when either endpoint is absent.
	ErrVertexNotFound = errors.New("bfs: vertex not found")
)

// ShortestPath returns the fewest-edge path from→to as a vertex
// sequence including both endpoints. An unreachable destination yields
// a nil path and a nil error: disconnection is a valid outcome, not a
// failure. from == to yields the single-element path.
//
// Complexity: O(V + E) time and memory.
func ShortestPath(g *core.Graph, from, to string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return nil, ErrVertexNotFound
	}
	if from == to {
		return []string{from}, nil
	}

	parent := map[string]string{from: from}

	var queue deque.Deque[string]
	queue.PushBack(from)
	for queue.Len() > 0 {
		u := queue.PopFront()
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range nbrs {
			if _, seen := parent[e.To]; seen {
				continue
			}
			parent[e.To] = u
			if e.To == to {
				return reconstruct(parent, from, to), nil
			}
			queue.PushBack(e.To)
		}
	}

	return nil, nil
}

// reconstruct walks parent links to→from and reverses the result.
func reconstruct(parent map[string]string, from, to string) []string {
	path := []string{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
