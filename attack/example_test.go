package attack_test

import (
	"fmt"

	"github.com/miraki/flowsim/attack"
	"github.com/miraki/flowsim/core"
)

// ExampleBudgeted degrades the bottleneck of a two-hop chain.
func ExampleBudgeted() {
	g := core.NewGraph()
	_ = g.AddEdge("N1", "N2", 10)
	_ = g.AddEdge("N2", "N3", 5)

	res, _ := attack.Budgeted(g, "N1", "N3", 3)
	fmt.Printf("flow %d -> %d\n", res.FlowBefore, res.FlowAfter)
	for _, red := range res.Affected {
		fmt.Printf("%s->%s reduced by %d\n", red.From, red.To, red.Amount)
	}
	// Output:
	// flow 5 -> 2
	// N2->N3 reduced by 3
}

// ExampleMultiStep halves the most loaded edge twice.
func ExampleMultiStep() {
	g := core.NewGraph()
	_ = g.AddEdge("N1", "N2", 10)
	_ = g.AddEdge("N2", "N3", 5)

	res, _ := attack.MultiStep(g, "N1", "N3", 2, 1)
	fmt.Printf("flow %d -> %d, edges hit: %d\n", res.FlowBefore, res.FlowAfter, len(res.Affected))
	// Output: flow 5 -> 1, edges hit: 1
}
