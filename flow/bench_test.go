package flow_test

import (
	"fmt"
	"testing"

	"github.com/miraki/flowsim/core"
	"github.com/miraki/flowsim/flow"
)

// layeredGraph builds `layers` ranks of `width` vertices with full
// connections between adjacent ranks, source fanning into the first
// rank and the last rank draining into the sink.
func layeredGraph(layers, width int) *core.Graph {
	g := core.NewGraph()
	id := func(l, i int) string { return fmt.Sprintf("L%d_%d", l, i) }
	for i := 0; i < width; i++ {
		_ = g.AddEdge("S", id(0, i), 10)
		_ = g.AddEdge(id(layers-1, i), "T", 10)
	}
	for l := 0; l < layers-1; l++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				_ = g.AddEdge(id(l, i), id(l+1, j), int64(1+(i+j)%5))
			}
		}
	}
	return g
}

func BenchmarkEdmondsKarp(b *testing.B) {
	g := layeredGraph(6, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.EdmondsKarp(g, "S", "T", flow.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDinic(b *testing.B) {
	g := layeredGraph(6, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.Dinic(g, "S", "T", flow.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
