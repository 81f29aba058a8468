package adjlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/miraki/flowsim/adjlist"
)

// ParserSuite exercises the adjacency-list reader.
type ParserSuite struct {
	suite.Suite
}

func (s *ParserSuite) TestBasicLine() {
	input := "0: (1, 10, 1.5, 1.0) (2, 5, 0.5, 0.0)\n1: (2, 7, 1, 1.0)\n"
	g, err := adjlist.Parse(strings.NewReader(input))
	require.NoError(s.T(), err)

	require.Equal(s.T(), 3, g.VertexCount())
	require.Equal(s.T(), 3, g.EdgeCount())

	e, err := g.Edge("0", "1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(10), e.Capacity)
	require.Equal(s.T(), 1.5, e.AttackCost)
	require.True(s.T(), e.CanAttack)

	e, err = g.Edge("0", "2")
	require.NoError(s.T(), err)
	require.False(s.T(), e.CanAttack, "flag 0.0 means off-limits")
}

func (s *ParserSuite) TestSkipsNoiseLines() {
	input := strings.Join([]string{
		"# capacity network dump",
		"",
		"not a node line",
		"3: (4, 2, 0, 1.0)",
	}, "\n")
	g, err := adjlist.Parse(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, g.EdgeCount())
	require.True(s.T(), g.HasEdge("3", "4"))
}

func (s *ParserSuite) TestIndentedLines() {
	input := "  0: (1, 5, 0, 1.0)\n\t1: (2, 3, 0, 1.0)\n"
	g, err := adjlist.Parse(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdge("0", "1"))
	require.True(s.T(), g.HasEdge("1", "2"), "leading whitespace is trimmed")
}

func (s *ParserSuite) TestMaxNodesCutoff() {
	input := "0: (1, 5, 0, 1.0) (9, 5, 0, 1.0)\n9: (1, 5, 0, 1.0)\n"
	g, err := adjlist.Parse(strings.NewReader(input), adjlist.WithMaxNodes(9))
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdge("0", "1"))
	require.False(s.T(), g.HasVertex("9"), "id at the cutoff is dropped")
	require.Equal(s.T(), 1, g.EdgeCount())
}

func (s *ParserSuite) TestInvalidMaxNodes() {
	_, err := adjlist.Parse(strings.NewReader(""), adjlist.WithMaxNodes(0))
	require.ErrorIs(s.T(), err, adjlist.ErrMaxNodes)
}

func (s *ParserSuite) TestNodePrefix() {
	input := "0: (1, 5, 0, 1.0)\n"
	g, err := adjlist.Parse(strings.NewReader(input), adjlist.WithNodePrefix("N"))
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdge("N1", "N2"), "raw id 0 relabels to N1")
}

func (s *ParserSuite) TestFloatCapacityTruncates() {
	input := "0: (1, 7.9, 0, 1.0)\n"
	g, err := adjlist.Parse(strings.NewReader(input))
	require.NoError(s.T(), err)
	c, err := g.Capacity("0", "1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), c)
}

func (s *ParserSuite) TestZeroCapacityClamped() {
	input := "0: (1, 0, 0, 1.0)\n"
	g, err := adjlist.Parse(strings.NewReader(input))
	require.NoError(s.T(), err)
	c, err := g.Capacity("0", "1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), c)
}

func (s *ParserSuite) TestSelfEdgeDropped() {
	input := "0: (0, 5, 0, 1.0) (1, 5, 0, 1.0)\n"
	g, err := adjlist.Parse(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.False(s.T(), g.HasEdge("0", "0"))
	require.True(s.T(), g.HasEdge("0", "1"))
}

func (s *ParserSuite) TestVertexOnlyLine() {
	input := "5:\n"
	g, err := adjlist.Parse(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasVertex("5"))
	require.Zero(s.T(), g.EdgeCount())
}

func (s *ParserSuite) TestMissingFile() {
	_, err := adjlist.ParseFile("/nonexistent/graph.text")
	require.Error(s.T(), err)
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}
