package flow

import (
	"github.com/gammazero/deque"

	"github.com/miraki/flowsim/core"
)

// EdmondsKarp computes the maximum flow from source to sink using BFS
// augmenting paths (shortest paths first).
//
// It returns the flow value together with a feasible per-edge
// Assignment. A disconnected pair yields Value 0 and an empty
// Assignment with a nil error.
//
// Errors: ErrGraphNil, ErrSameSourceSink, ErrSourceNotFound,
// ErrSinkNotFound, or the context's error on cancellation.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func EdmondsKarp(g *core.Graph, source, sink string, opts Options) (Result, error) {
	opts.normalize()
	if err := validate(g, source, sink); err != nil {
		return Result{}, err
	}

	capMap := residualCapacities(g)

	var value int64
	for {
		if err := opts.Ctx.Err(); err != nil {
			return Result{}, err
		}
		path, bottleneck := bfsAugmentingPath(capMap, source, sink)
		if bottleneck == 0 {
			break
		}
		value += bottleneck
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottleneck
			capMap[v][u] += bottleneck
		}
		if opts.OnAugment != nil {
			opts.OnAugment(bottleneck)
		}
	}

	return Result{Value: value, Assignment: assignment(g, capMap)}, nil
}

// bfsAugmentingPath finds the fewest-edge path source→sink with
// positive residual capacity and returns it with its bottleneck.
// Returns a zero bottleneck when no augmenting path remains.
func bfsAugmentingPath(capMap map[string]map[string]int64, source, sink string) ([]string, int64) {
	parent := make(map[string]string, len(capMap))
	bottle := map[string]int64{source: 0}

	var queue deque.Deque[string]
	queue.PushBack(source)
	for queue.Len() > 0 {
		u := queue.PopFront()
		for _, v := range sortedTargets(capMap[u]) {
			if _, seen := bottle[v]; seen {
				continue
			}
			b := capMap[u][v]
			if prev := bottle[u]; prev > 0 && prev < b {
				b = prev
			}
			parent[v] = u
			bottle[v] = b
			if v == sink {
				return reconstruct(parent, source, sink), b
			}
			queue.PushBack(v)
		}
	}

	return nil, 0
}

// reconstruct walks parent links sink→source and reverses the result.
func reconstruct(parent map[string]string, source, sink string) []string {
	path := []string{sink}
	for cur := sink; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
