// Package attack implements capacity-degradation heuristics against a
// core.Graph and reports their impact on maximum flow.
//
// Two attacks are provided:
//
//   - Budgeted: one round. Rank the edges carrying positive flow by
//     (flow desc, capacity asc, endpoints asc), then greedily spend a total
//     capacity-reduction budget on them, highest value first. An edge
//     can give up at most capacity−1 so it stays traversable.
//
//   - MultiStep: several rounds on a working copy. Each round recomputes
//     max-flow, ranks candidates by flow or raw capacity (RankBy), and
//     halves the top edges. Reductions accumulate per edge across
//     rounds and are applied to the caller's graph once, at the end, so
//     no intermediate state is ever observable on the live graph.
//
// Both attacks mutate the caller's graph in place (capacities only —
// never topology) and return a Result with the flow before, the flow
// after, and every edge actually reduced. Callers wanting undo must
// Clone the graph beforehand.
//
// Edges with CanAttack == false are never selected. A disconnected
// source/sink pair is a valid input: both flows are zero, nothing is
// touched, and the error is nil.
package attack
