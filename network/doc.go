// Package network defines the in-memory form of a converted flow test case.
//
// Two instance shapes exist, one per problem family:
//
//	MaxFlowInstance      — vertex count, capacitated edges, source, sink, max-flow value
//	MinCostFlowInstance  — vertex count, edges with lower bound / capacity / cost,
//	                       per-vertex supply vector, minimum cost or infeasible
//
// Vertex indices are a distinct type (Vertex) so every index-typed field goes
// through Vertex.Rebase when a 1-based source is normalized; capacities, costs
// and supplies are plain int64 and are never touched by the normalizer.
//
// Expected answers are an Answer value, a tagged variant of Feasible(value) and
// Infeasible. Judges that reuse "-1" as "no feasible flow" are translated at
// the adapter boundary, so a raw -1 never travels further as ambiguous data.
//
// Errors:
//
//	ErrMissingPairedFile   - expected-answer file absent for an input.
//	ErrMalformedHeader     - first line does not hold the required integer tuple.
//	ErrMalformedRecord     - a body line does not hold the required integer tuple.
//	ErrEdgeCountMismatch   - number of edge lines differs from the declared count.
//	ErrSupplyCountMismatch - number of supply lines differs from the vertex count.
//	ErrUnparseableAnswer   - answer token is neither an integer nor the sentinel.
//	ErrVertexOutOfRange    - an index-typed field falls outside [0, VertexCount).
//	ErrNegativeCapacity    - an edge has a capacity below zero.
//	ErrBadLowerBound       - a lower bound exceeds the capacity.
//	ErrSourceIsSink        - source and sink coincide.
//	ErrSupplyLength        - supply vector length differs from VertexCount.
//
// Wrap any of them in *FileError to attach the offending path.
package network
