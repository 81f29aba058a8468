package flow

import (
	"math"

	"github.com/gammazero/deque"

	"github.com/miraki/flowsim/core"
)

// Dinic computes the maximum flow from source to sink using level
// graphs and blocking flows. Contract and error set are identical to
// EdmondsKarp; only the augmentation order differs, so the Assignment
// may differ on ties while the Value is always the same.
//
// Complexity: O(E · √V) on unit-capacity networks, O(V² · E) worst
// case; O(V + E) memory.
func Dinic(g *core.Graph, source, sink string, opts Options) (Result, error) {
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

		// Level graph: BFS distance from source over positive residuals.
		level := levelGraph(capMap, source)
		if _, ok := level[sink]; !ok {
			break
		}

		// Admissible arcs: u→v with level[v] == level[u]+1, in sorted
		// order for deterministic pushes.
		next := make(map[string][]string, len(capMap))
		for u, row := range capMap {
			lu, ok := level[u]
			if !ok {
				continue
			}
			for _, v := range sortedTargets(row) {
				if level[v] == lu+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		// Blocking flow: repeated DFS pushes with per-vertex arc cursors.
		iter := make(map[string]int, len(next))
		for {
			if err := opts.Ctx.Err(); err != nil {
				return Result{}, err
			}
			pushed := dinicPush(capMap, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			value += pushed
			if opts.OnAugment != nil {
				opts.OnAugment(pushed)
			}
		}
	}

	return Result{Value: value, Assignment: assignment(g, capMap)}, nil
}

// levelGraph returns BFS distances from source over arcs with positive
// residual capacity; unreachable vertices are absent from the map.
func levelGraph(capMap map[string]map[string]int64, source string) map[string]int {
	level := map[string]int{source: 0}

	var queue deque.Deque[string]
	queue.PushBack(source)
	for queue.Len() > 0 {
		u := queue.PopFront()
		for _, v := range sortedTargets(capMap[u]) {
			if _, seen := level[v]; seen {
				continue
			}
			level[v] = level[u] + 1
			queue.PushBack(v)
		}
	}
	return level
}

// dinicPush sends flow along admissible arcs from u toward sink,
// updating residuals in place, and returns the amount actually sent.
func dinicPush(
	capMap map[string]map[string]int64,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		iter[u] = i
		v := next[u][i]
		capUV := capMap[u][v]
		if capUV <= 0 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		pushed := dinicPush(capMap, next, iter, v, sink, send)
		if pushed > 0 {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed
			return pushed
		}
	}
	iter[u] = len(next[u])

	return 0
}
