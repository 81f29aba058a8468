// Package flow implements maximum-flow algorithms over a capacity
// network represented by *core.Graph.
//
// Two interchangeable algorithms are provided:
//
//   - EdmondsKarp
//     Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//     Time:   O(V · E²) worst case with integer capacities.
//     Memory: O(V + E) for the residual map and BFS queues.
//
//   - Dinic
//     Method: level graph construction + blocking-flow DFS.
//     Time:   O(E · √V) on unit-capacity networks, fast in practice elsewhere.
//     Memory: O(V + E) for level map, adjacency slices, and recursion state.
//
// Both return the same optimal flow value. The per-edge Assignment may
// differ between them when multiple optimal assignments exist; callers
// must only rely on the value and on the feasibility of the assignment.
//
// A disconnected source/sink pair is a valid input, not an error: the
// result is a zero value with an empty Assignment. Capacities are
// integral (int64), so augmentation terminates exactly with no epsilon
// handling.
//
// Determinism: core.Graph accessors iterate in sorted order and the
// residual search does the same, so repeated runs over the same graph
// produce the same Assignment.
package flow
