package judge

import (
	"fmt"

	"github.com/katalvlaran/flowcase/network"
)

// ParseAOJMaxFlow reads an AOJ GRL_6_A case.
//
// input:    "n m" followed by m lines "u v c", 0-based.
// expected: the maximum flow on its first line.
//
// The source is vertex 0 and the sink vertex n-1.
func ParseAOJMaxFlow(input, expected []byte) (*network.MaxFlowInstance, error) {
	return parseAs[*network.MaxFlowInstance](AOJGRL6A, input, expected)
}

// readAOJMaxFlow builds the unvalidated instance of an AOJ GRL_6_A case.
func readAOJMaxFlow(input, expected []byte) (*network.MaxFlowInstance, error) {
	lines := splitLines(input)
	h, err := header(lines, 2)
	if err != nil {
		return nil, err
	}
	n, m := int(h[0]), int(h[1])

	edges, err := maxFlowEdges(lines, m)
	if err != nil {
		return nil, err
	}
	ans, err := maxFlowAnswer(expected)
	if err != nil {
		return nil, err
	}

	return &network.MaxFlowInstance{
		VertexCount: n,
		Edges:       edges,
		Source:      0,
		Sink:        network.Vertex(n - 1),
		Expected:    ans,
	}, nil
}

// ParseLibreOJMaxFlow reads a LibreOJ #101 case.
//
// input:    "n m s t" followed by m lines "u v c"; all indices 1-based.
// expected: the maximum flow on its first line.
//
// Indices are rebased to 0 before the instance is returned.
func ParseLibreOJMaxFlow(input, expected []byte) (*network.MaxFlowInstance, error) {
	return parseAs[*network.MaxFlowInstance](LibreOJ101, input, expected)
}

// readLibreOJMaxFlow keeps the file's 1-based indices.
func readLibreOJMaxFlow(input, expected []byte) (*network.MaxFlowInstance, error) {
	lines := splitLines(input)
	h, err := header(lines, 4)
	if err != nil {
		return nil, err
	}
	n, m := int(h[0]), int(h[1])

	edges, err := maxFlowEdges(lines, m)
	if err != nil {
		return nil, err
	}
	ans, err := maxFlowAnswer(expected)
	if err != nil {
		return nil, err
	}

	return &network.MaxFlowInstance{
		VertexCount: n,
		Edges:       edges,
		Source:      network.Vertex(h[2]),
		Sink:        network.Vertex(h[3]),
		Expected:    ans,
	}, nil
}

// maxFlowEdges parses exactly m "u v c" lines after the header.
func maxFlowEdges(lines []string, m int) ([]network.Edge, error) {
	if len(lines)-1 != m {
		return nil, fmt.Errorf("%w: declared %d, found %d", network.ErrEdgeCountMismatch, m, len(lines)-1)
	}
	recs, err := records(lines, 1, m, 3, network.ErrEdgeCountMismatch)
	if err != nil {
		return nil, err
	}
	edges := make([]network.Edge, m)
	for i, r := range recs {
		edges[i] = network.Edge{From: network.Vertex(r[0]), To: network.Vertex(r[1]), Cap: r[2]}
	}

	return edges, nil
}

// maxFlowAnswer reads a max-flow answer; judges never mark these infeasible,
// so -1 is not a sentinel here and is rejected later by validation.
func maxFlowAnswer(expected []byte) (network.Answer, error) {
	tok, err := expectedToken(expected)
	if err != nil {
		return network.Answer{}, err
	}
	ans, err := network.ParseAnswer(tok, false)
	if err != nil {
		return network.Answer{}, err
	}
	if ans.IsInfeasible() {
		return network.Answer{}, fmt.Errorf("%w: max flow cannot be %q", network.ErrUnparseableAnswer, tok)
	}

	return ans, nil
}
