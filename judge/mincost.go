package judge

import (
	"fmt"

	"github.com/katalvlaran/flowcase/network"
)

// ParseAOJMinCostFlow reads an AOJ GRL_6_B case.
//
// input:    "n m F" followed by m lines "u v c d", 0-based.
// expected: the minimum cost, or -1 when F units cannot be sent.
//
// The supply vector is {0: +F, n-1: -F}; every lower bound is 0.
func ParseAOJMinCostFlow(input, expected []byte) (*network.MinCostFlowInstance, error) {
	return parseAs[*network.MinCostFlowInstance](AOJGRL6B, input, expected)
}

func readAOJMinCostFlow(input, expected []byte) (*network.MinCostFlowInstance, error) {
	lines := splitLines(input)
	h, err := header(lines, 3)
	if err != nil {
		return nil, err
	}
	n, m, amount := int(h[0]), int(h[1]), h[2]

	if len(lines)-1 != m {
		return nil, fmt.Errorf("%w: declared %d, found %d", network.ErrEdgeCountMismatch, m, len(lines)-1)
	}
	recs, err := records(lines, 1, m, 4, network.ErrEdgeCountMismatch)
	if err != nil {
		return nil, err
	}
	edges := make([]network.CostEdge, m)
	for i, r := range recs {
		edges[i] = network.CostEdge{
			From: network.Vertex(r[0]),
			To:   network.Vertex(r[1]),
			Cap:  r[2],
			Cost: r[3],
		}
	}

	ans, err := minCostAnswer(expected)
	if err != nil {
		return nil, err
	}

	return &network.MinCostFlowInstance{
		VertexCount: n,
		Edges:       edges,
		Supply:      network.SourceSinkSupply(n, amount),
		Expected:    ans,
	}, nil
}

// ParseLibraryCheckerBFlow reads a Library Checker min_cost_b_flow case.
//
// input:    "n m", n lines "b_i", then m lines "s t l u c", 0-based.
// expected: first line is the minimum cost or "infeasible"; the potentials
// and flows that follow are ignored.
func ParseLibraryCheckerBFlow(input, expected []byte) (*network.MinCostFlowInstance, error) {
	return parseAs[*network.MinCostFlowInstance](LibraryCheckerBFlow, input, expected)
}

func readLibraryCheckerBFlow(input, expected []byte) (*network.MinCostFlowInstance, error) {
	lines := splitLines(input)
	h, err := header(lines, 2)
	if err != nil {
		return nil, err
	}
	n, m := int(h[0]), int(h[1])

	supplies, err := records(lines, 1, n, 1, network.ErrSupplyCountMismatch)
	if err != nil {
		return nil, err
	}
	if len(lines)-1-n != m {
		return nil, fmt.Errorf("%w: declared %d, found %d", network.ErrEdgeCountMismatch, m, len(lines)-1-n)
	}
	recs, err := records(lines, 1+n, m, 5, network.ErrEdgeCountMismatch)
	if err != nil {
		return nil, err
	}

	supply := make([]int64, n)
	for i, r := range supplies {
		supply[i] = r[0]
	}
	edges := make([]network.CostEdge, m)
	for i, r := range recs {
		edges[i] = network.CostEdge{
			From:  network.Vertex(r[0]),
			To:    network.Vertex(r[1]),
			Lower: r[2],
			Cap:   r[3],
			Cost:  r[4],
		}
	}

	ans, err := minCostAnswer(expected)
	if err != nil {
		return nil, err
	}

	return &network.MinCostFlowInstance{
		VertexCount: n,
		Edges:       edges,
		Supply:      supply,
		Expected:    ans,
	}, nil
}

func minCostAnswer(expected []byte) (network.Answer, error) {
	tok, err := expectedToken(expected)
	if err != nil {
		return network.Answer{}, err
	}
	return network.ParseAnswer(tok, true)
}
