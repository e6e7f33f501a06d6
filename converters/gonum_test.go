package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/flowcase/converters"
	"github.com/katalvlaran/flowcase/network"
)

// TestMaxFlowToGonum checks node count, loop removal and zero-capacity arcs.
func TestMaxFlowToGonum(t *testing.T) {
	m := &network.MaxFlowInstance{
		VertexCount: 3,
		Sink:        2,
		Edges: []network.Edge{
			{From: 0, To: 1, Cap: 3},
			{From: 0, To: 1, Cap: 4},
			{From: 1, To: 1, Cap: 9},
			{From: 1, To: 2, Cap: 0},
		},
	}
	g := converters.MaxFlowToGonum(m)

	require.Equal(t, 3, g.Nodes().Len())
	assert.True(t, g.HasEdgeFromTo(0, 1))
	assert.False(t, g.HasEdgeFromTo(1, 2), "zero capacity carries nothing")
	assert.Equal(t, 1, g.Edges().Len(), "parallel edges collapse and loops are dropped")
	assert.False(t, converters.SinkReachable(m))

	m.Edges[3].Cap = 1
	assert.True(t, converters.SinkReachable(m))
}

// TestMinCostFlowToGonum covers negative lower bounds adding reverse arcs.
func TestMinCostFlowToGonum(t *testing.T) {
	m := &network.MinCostFlowInstance{
		VertexCount: 3,
		Supply:      []int64{0, 0, 0},
		Edges: []network.CostEdge{
			{From: 0, To: 1, Lower: 0, Cap: 2},
			{From: 1, To: 2, Lower: -3, Cap: -1},
		},
	}
	g := converters.MinCostFlowToGonum(m)

	assert.True(t, g.HasEdgeFromTo(0, 1))
	assert.False(t, g.HasEdgeFromTo(1, 2), "upper bound is negative")
	assert.True(t, g.HasEdgeFromTo(2, 1), "negative lower bound flows backwards")
	assert.Nil(t, g.Edge(int64(1), int64(0)))
}

// TestUnreachableDemands finds demand vertices cut off from every supply.
func TestUnreachableDemands(t *testing.T) {
	m := &network.MinCostFlowInstance{
		VertexCount: 4,
		Supply:      []int64{2, -1, 0, -1},
		Edges: []network.CostEdge{
			{From: 0, To: 1, Cap: 5, Cost: 1},
			{From: 3, To: 2, Cap: 5, Cost: 1},
		},
	}
	assert.Equal(t, []network.Vertex{3}, converters.UnreachableDemands(m))

	m.Edges = append(m.Edges, network.CostEdge{From: 1, To: 3, Cap: 1})
	assert.Empty(t, converters.UnreachableDemands(m))
}

// TestNodeIDs confirms gonum node IDs follow vertex indices.
func TestNodeIDs(t *testing.T) {
	g := converters.MaxFlowToGonum(&network.MaxFlowInstance{VertexCount: 2, Sink: 1})
	assert.Equal(t, simple.Node(1), g.Node(1))
}
