// Package flow re-solves converted max-flow instances
// (*network.MaxFlowInstance) so the answer a judge ships with a test case
// can be cross-checked after conversion.
//
// Two solvers are provided:
//
//	EdmondsKarp  shortest augmenting paths by BFS        O(V·E²)
//	Dinic        BFS layering + DFS blocking flows       O(V²·E), O(E·√V) on unit capacities
//
// Both take the instance as-is: vertices are 0-based network.Vertex
// indices, capacities are int64, parallel edges are summed and self-loops
// are ignored.
//
// # API
//
//	opts := flow.DefaultOptions()
//	opts.Ctx = ctx                  // cancellation
//	opts.Verbose = true             // one debug line per augmentation
//	opts.Logger = logger            // zerolog sink for Verbose
//	opts.LevelRebuildInterval = 64  // Dinic only
//
//	value, residual, err := flow.Dinic(m, opts)
//
//	solve, err := flow.SolverByName("edmonds-karp") // or "dinic"
//
// The Residual reports the source side of a minimum cut
// (Residual.Reachable).
//
// # Errors
//
//	ErrSourceNotFound  source index outside [0, n)
//	ErrSinkNotFound    sink index outside [0, n)
//	EdgeError          negative capacity or endpoint outside [0, n)
//	ErrUnknownSolver   SolverByName with an unrecognized name
//	opts.Ctx.Err()     when the context is done
package flow
