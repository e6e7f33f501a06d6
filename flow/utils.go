package flow

import (
	"github.com/katalvlaran/flowcase/network"
)

// buildCapMap constructs the residual capacities of network m, aggregating
// parallel edges and ignoring loops.
//
// The returned capMap has structure: capMap[u][v] = total capacity u→v after
// summing all parallel edges; pairs whose total is 0 are removed.
//
// Steps:
//  1. Validate source and sink indices (O(1)).
//  2. Initialize capMap with one inner map per vertex (O(V)).
//  3. For each edge in file order (O(E)):
//     a. Reject endpoints outside [0, V) or negative capacity with EdgeError.
//     b. Skip self-loops.
//     c. capMap[u][v] += cap.
//  4. Drop zero-capacity entries.
//
// Complexity:
//
//	Time:   O(V + E).
//	Memory: O(V + E).
func buildCapMap(m *network.MaxFlowInstance) ([]map[network.Vertex]int64, error) {
	if !m.Source.InRange(m.VertexCount) {
		return nil, ErrSourceNotFound
	}
	if !m.Sink.InRange(m.VertexCount) {
		return nil, ErrSinkNotFound
	}

	capMap := make([]map[network.Vertex]int64, m.VertexCount)
	for u := range capMap {
		capMap[u] = make(map[network.Vertex]int64)
	}

	for _, e := range m.Edges {
		if !e.From.InRange(m.VertexCount) || !e.To.InRange(m.VertexCount) || e.Cap < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Cap}
		}
		if e.From == e.To {
			continue
		}
		capMap[e.From][e.To] += e.Cap
	}

	for u := range capMap {
		for v, c := range capMap[u] {
			if c == 0 {
				delete(capMap[u], v)
			}
		}
	}

	return capMap, nil
}
