package network

import "fmt"

// Problem identifies which canonical schema an instance belongs to.
type Problem int

const (
	// MaxFlow is the max-flow schema: n m s t answer, then "u v cap" lines.
	MaxFlow Problem = iota

	// MinCostFlow is the min-cost b-flow schema: n m answer, n supply lines,
	// then "u v lower cap cost" lines.
	MinCostFlow
)

func (p Problem) String() string {
	switch p {
	case MaxFlow:
		return "maxflow"
	case MinCostFlow:
		return "mincostflow"
	default:
		return fmt.Sprintf("Problem(%d)", int(p))
	}
}

// Vertex is a vertex index. Only fields of this type are rebased by the
// index normalizer.
type Vertex int

// Rebase shifts a 1-based index to 0-based.
func (v Vertex) Rebase() Vertex { return v - 1 }

// InRange reports whether 0 <= v < n.
func (v Vertex) InRange(n int) bool { return v >= 0 && int(v) < n }

// Edge is a capacitated arc of a max-flow network.
type Edge struct {
	From, To Vertex
	Cap      int64
}

// CostEdge is an arc of a min-cost-flow network with a lower bound,
// capacity and per-unit cost (cost may be negative).
type CostEdge struct {
	From, To Vertex
	Lower    int64
	Cap      int64
	Cost     int64
}

// Instance is implemented by *MaxFlowInstance and *MinCostFlowInstance.
type Instance interface {
	Problem() Problem
	Validate() error
	ToZeroBased()
}

// MaxFlowInstance is a normalized max-flow test case.
//
// Edges keep the order of the source file; parallel edges are preserved.
// Expected is always feasible: the zero flow exists in every network.
type MaxFlowInstance struct {
	VertexCount int
	Edges       []Edge
	Source      Vertex
	Sink        Vertex
	Expected    Answer
}

// Problem returns MaxFlow.
func (*MaxFlowInstance) Problem() Problem { return MaxFlow }

// MinCostFlowInstance is a normalized min-cost b-flow test case.
//
// Supply[i] is the net outflow required at vertex i (negative for demand).
type MinCostFlowInstance struct {
	VertexCount int
	Edges       []CostEdge
	Supply      []int64
	Expected    Answer
}

// Problem returns MinCostFlow.
func (*MinCostFlowInstance) Problem() Problem { return MinCostFlow }

// Balance returns the sum of all supplies; a feasible instance balances to 0.
func (m *MinCostFlowInstance) Balance() int64 {
	var sum int64
	for _, b := range m.Supply {
		sum += b
	}
	return sum
}

// SourceSinkSupply builds the supply vector of a single-commodity instance:
// +amount at vertex 0, -amount at vertex n-1, zero elsewhere.
// With n == 1 both land on vertex 0 and cancel to [0].
func SourceSinkSupply(n int, amount int64) []int64 {
	supply := make([]int64, n)
	if n == 0 {
		return supply
	}
	supply[0] += amount
	supply[n-1] -= amount

	return supply
}
