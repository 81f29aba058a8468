package core_test

import (
	"fmt"

	"github.com/miraki/flowsim/core"
)

// ExampleGraph_Clone demonstrates the snapshot/restore pattern: clone
// before mutating, then read the pre-mutation state from the snapshot.
func ExampleGraph_Clone() {
	g := core.NewGraph()
	_ = g.AddEdge("N1", "N2", 10)
	_ = g.AddEdge("N2", "N3", 5)

	snapshot := g.Clone()
	_ = g.ReduceCapacity("N2", "N3", 3)

	live, _ := g.Capacity("N2", "N3")
	saved, _ := snapshot.Capacity("N2", "N3")
	fmt.Println(live, saved)
	// Output: 2 5
}
