package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/miraki/flowsim/core"
	"github.com/miraki/flowsim/flow"
)

// DinicSuite exercises the level-graph implementation and checks it
// against EdmondsKarp on shared topologies.
type DinicSuite struct {
	suite.Suite
}

func (s *DinicSuite) TestSingleEdge() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge("A", "B", 7))

	res, err := flow.Dinic(g, "A", "B", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), res.Value)
}

func (s *DinicSuite) TestDisconnected() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge("A", "B", 5))
	g.AddVertex("Z")

	res, err := flow.Dinic(g, "A", "Z", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Value)
	require.Empty(s.T(), res.Assignment)
}

func (s *DinicSuite) TestMultipleAugmentations() {
	// S→{A,B}→C→T needs several blocking-flow phases.
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge("S", "A", 2))
	require.NoError(s.T(), g.AddEdge("S", "B", 1))
	require.NoError(s.T(), g.AddEdge("A", "C", 1))
	require.NoError(s.T(), g.AddEdge("B", "C", 1))
	require.NoError(s.T(), g.AddEdge("C", "T", 2))

	res, err := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Value)
	requireFeasible(s.T(), g, res, "S", "T")
}

func (s *DinicSuite) TestMatchesEdmondsKarp() {
	cases := []struct {
		name         string
		source, sink string
		build        func() *core.Graph
	}{
		{"diamond with cross edge", "S", "T", func() *core.Graph {
			g := core.NewGraph()
			_ = g.AddEdge("S", "A", 10)
			_ = g.AddEdge("S", "B", 10)
			_ = g.AddEdge("A", "B", 15)
			_ = g.AddEdge("A", "T", 10)
			_ = g.AddEdge("B", "T", 10)
			return g
		}},
		{"uneven diamond", "S", "T", func() *core.Graph {
			g := core.NewGraph()
			_ = g.AddEdge("S", "A", 6)
			_ = g.AddEdge("S", "B", 4)
			_ = g.AddEdge("A", "B", 2)
			_ = g.AddEdge("A", "T", 5)
			_ = g.AddEdge("B", "T", 6)
			return g
		}},
		{"chain", "N1", "N3", func() *core.Graph {
			g := core.NewGraph()
			_ = g.AddEdge("N1", "N2", 10)
			_ = g.AddEdge("N2", "N3", 5)
			return g
		}},
	}
	for _, tc := range cases {
		ek, err := flow.EdmondsKarp(tc.build(), tc.source, tc.sink, flow.DefaultOptions())
		require.NoError(s.T(), err, tc.name)
		dn, err := flow.Dinic(tc.build(), tc.source, tc.sink, flow.DefaultOptions())
		require.NoError(s.T(), err, tc.name)
		require.Equal(s.T(), ek.Value, dn.Value, tc.name)
	}
}

func (s *DinicSuite) TestPreconditionErrors() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge("A", "B", 5))

	_, err := flow.Dinic(g, "A", "A", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSameSourceSink)

	_, err = flow.Dinic(g, "ghost", "B", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
