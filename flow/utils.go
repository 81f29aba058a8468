package flow

import (
	"sort"

	"github.com/miraki/flowsim/core"
)

// validate checks the shared preconditions of all max-flow entry points.
func validate(g *core.Graph, source, sink string) error {
	if g == nil {
		return ErrGraphNil
	}
	if source == sink {
		return ErrSameSourceSink
	}
	if !g.HasVertex(source) {
		return ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return ErrSinkNotFound
	}
	return nil
}

// residualCapacities builds the residual map capMap[u][v] from the
// graph's current capacities, with an inner map for every vertex so
// reverse arcs can be recorded without existence checks.
// Complexity: O(V + E)
func residualCapacities(g *core.Graph) map[string]map[string]int64 {
	vertices := g.Vertices()
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]int64)
	}
	for _, e := range g.Edges() {
		capMap[e.From][e.To] = e.Capacity
	}
	return capMap
}

// sortedTargets returns the keys of one residual row with positive
// capacity, in ascending order. Sorting pins the traversal order so a
// given graph always yields the same augmenting paths and Assignment.
func sortedTargets(row map[string]int64) []string {
	targets := make([]string, 0, len(row))
	for v, c := range row {
		if c > 0 {
			targets = append(targets, v)
		}
	}
	sort.Strings(targets)

	return targets
}

// assignment derives a feasible per-edge flow from the spent residual:
// flow(u→v) = capacity(u→v) − residual(u→v), clamped at zero. For
// antiparallel edge pairs this yields the net flow, which is itself a
// feasible assignment of the same value.
// Complexity: O(E)
func assignment(g *core.Graph, capMap map[string]map[string]int64) Assignment {
	asg := make(Assignment)
	for _, e := range g.Edges() {
		f := e.Capacity - capMap[e.From][e.To]
		if f <= 0 {
			continue
		}
		if asg[e.From] == nil {
			asg[e.From] = make(map[string]int64)
		}
		asg[e.From][e.To] = f
	}
	return asg
}
