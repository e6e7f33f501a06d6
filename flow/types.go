package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/flowcase/network"
)

// ErrSourceNotFound is returned when the source index is outside the network.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the sink index is outside the network.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// EdgeError is returned when an edge has a negative capacity or an endpoint
// outside the network.
type EdgeError struct {
	From, To network.Vertex
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: invalid edge %d→%d with capacity %d", e.From, e.To, e.Cap)
}

// FlowOptions configures both max-flow algorithms.
//   - Ctx: cancellation / timeout; nil means context.Background().
//   - Verbose: if true, logs each augmentation at debug level on Logger.
//   - Logger: sink for Verbose output; zero value discards.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Verbose              bool
	Logger               zerolog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
	}
}

// normalize fills in defaults for unset fields.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// Solver is the signature shared by Dinic and EdmondsKarp.
type Solver func(m *network.MaxFlowInstance, opts FlowOptions) (int64, *Residual, error)

// ErrUnknownSolver is returned by SolverByName for an unrecognized name.
var ErrUnknownSolver = errors.New("flow: unknown solver")

// Solver names accepted by SolverByName.
const (
	SolverDinic       = "dinic"
	SolverEdmondsKarp = "edmonds-karp"
)

// SolverByName maps "dinic" or "edmonds-karp" to its Solver.
func SolverByName(name string) (Solver, error) {
	switch name {
	case SolverDinic:
		return Dinic, nil
	case SolverEdmondsKarp:
		return EdmondsKarp, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
}

// Residual is the residual network left after a max-flow computation.
// Parallel edges are aggregated and self-loops dropped.
type Residual struct {
	capMap []map[network.Vertex]int64
}

// remaining returns the residual capacity on u→v (0 when absent).
func (r *Residual) remaining(u, v network.Vertex) int64 {
	if r == nil || !u.InRange(len(r.capMap)) {
		return 0
	}
	return r.capMap[u][v]
}

// Reachable returns the vertices reachable from source through positive
// residual capacity: the source side of a minimum cut.
func (r *Residual) Reachable(source network.Vertex) []bool {
	seen := make([]bool, len(r.capMap))
	if !source.InRange(len(r.capMap)) {
		return seen
	}
	for v, l := range bfsLevels(r.capMap, source) {
		seen[v] = l >= 0
	}

	return seen
}
