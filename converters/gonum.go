package converters

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/flowcase/network"
)

// MaxFlowToGonum returns the support graph of m: one node per vertex (IDs
// 0..n-1) and an arc u→v whenever some edge u→v has positive capacity.
// Parallel edges collapse into one arc and self-loops are dropped.
func MaxFlowToGonum(m *network.MaxFlowInstance) *simple.DirectedGraph {
	g := withNodes(m.VertexCount)
	for _, e := range m.Edges {
		if e.Cap > 0 {
			setArc(g, e.From, e.To)
		}
	}
	return g
}

// MinCostFlowToGonum returns the support graph of m. An edge whose bounds
// allow positive flow contributes u→v; one whose lower bound is negative
// also contributes v→u, since it may carry flow backwards.
func MinCostFlowToGonum(m *network.MinCostFlowInstance) *simple.DirectedGraph {
	g := withNodes(m.VertexCount)
	for _, e := range m.Edges {
		if e.Cap > 0 {
			setArc(g, e.From, e.To)
		}
		if e.Lower < 0 {
			setArc(g, e.To, e.From)
		}
	}
	return g
}

// SinkReachable reports whether m.Sink can be reached from m.Source along
// positive-capacity edges. When it cannot, the maximum flow is 0.
func SinkReachable(m *network.MaxFlowInstance) bool {
	g := MaxFlowToGonum(m)
	return topo.PathExistsIn(g, simple.Node(int64(m.Source)), simple.Node(int64(m.Sink)))
}

// UnreachableDemands lists, in vertex order, every vertex with negative
// supply that no vertex with positive supply can reach. A non-empty result
// proves the instance infeasible.
func UnreachableDemands(m *network.MinCostFlowInstance) []network.Vertex {
	g := MinCostFlowToGonum(m)

	// super source wired to every supplying vertex
	super := simple.Node(int64(m.VertexCount))
	g.AddNode(super)
	for i, b := range m.Supply {
		if b > 0 {
			g.SetEdge(g.NewEdge(super, simple.Node(int64(i))))
		}
	}

	var bfs traverse.BreadthFirst
	bfs.Walk(g, super, nil)

	var out []network.Vertex
	for i, b := range m.Supply {
		if b < 0 && !bfs.Visited(simple.Node(int64(i))) {
			out = append(out, network.Vertex(i))
		}
	}
	return out
}

func withNodes(n int) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	return g
}

// setArc adds u→v unless it is a loop; simple graphs reject self edges.
func setArc(g *simple.DirectedGraph, u, v network.Vertex) {
	if u == v {
		return
	}
	g.SetEdge(g.NewEdge(simple.Node(int64(u)), simple.Node(int64(v))))
}
