// Package flowsim models directed capacity networks and simulates
// capacity-degradation attacks against them.
//
// The module is organized as small, focused packages:
//
//	core/    — Graph and Edge types: capacities, attack flags, cloning
//	flow/    — maximum flow (Edmonds-Karp, Dinic) with per-edge assignments
//	bfs/     — unweighted shortest paths
//	attack/  — budgeted and multi-step degradation heuristics
//	adjlist/ — adjacency-list text format parser
//
// A typical session constructs a graph (directly or via adjlist), takes
// a Clone if undo is needed, runs an attack, and inspects the returned
// before/after flow values and affected edges:
//
//	g, _ := adjlist.ParseFile("graph.text", adjlist.WithNodePrefix("N"))
//	snapshot := g.Clone()
//	res, _ := attack.Budgeted(g, "N1", "N1036", 150)
//	fmt.Println(res.FlowBefore, res.FlowAfter) // g now holds the damaged network
//	_ = snapshot                               // restore point, if wanted
//
// Every operation runs to completion synchronously; a Graph assumes a
// single writer. The cmd/flowsim command exposes the same operations
// over adjacency-list files.
package flowsim
