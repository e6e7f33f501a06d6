package convert

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/flowcase/canonical"
	"github.com/katalvlaran/flowcase/converters"
	"github.com/katalvlaran/flowcase/flow"
	"github.com/katalvlaran/flowcase/network"
)

// ErrAnswerMismatch indicates a canonical file whose expected answer
// contradicts what can be recomputed from its network.
var ErrAnswerMismatch = errors.New("convert: expected answer contradicts the network")

// VerifyInstance cross-checks the expected answer of inst.
//
// Max flow: the answer must equal the value solve computes (Dinic when
// solve is nil). A mismatch names the source side of the minimum cut found.
// Min-cost flow: a feasible answer requires balanced supplies and every
// demand vertex reachable from some supply vertex. Infeasible answers and
// cost values are not recomputed.
func VerifyInstance(ctx context.Context, inst network.Instance, solve flow.Solver) error {
	if solve == nil {
		solve = flow.Dinic
	}
	switch m := inst.(type) {
	case *network.MaxFlowInstance:
		want, ok := m.Expected.Int64()
		if !ok {
			return fmt.Errorf("%w: answer %s exceeds int64", ErrAnswerMismatch, m.Expected)
		}
		// short-circuit: no path means flow 0 without running the solver
		if !converters.SinkReachable(m) {
			if want != 0 {
				return fmt.Errorf("%w: sink unreachable but answer is %s", ErrAnswerMismatch, m.Expected)
			}
			return nil
		}
		opts := flow.DefaultOptions()
		opts.Ctx = ctx
		got, res, err := solve(m, opts)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: max flow is %d with cut side %v, answer is %s",
				ErrAnswerMismatch, got, cutSide(res, m.Source), m.Expected)
		}
	case *network.MinCostFlowInstance:
		if m.Expected.IsInfeasible() {
			return nil
		}
		if b := m.Balance(); b != 0 {
			return fmt.Errorf("%w: supplies sum to %d but answer is %s", ErrAnswerMismatch, b, m.Expected)
		}
		if cut := converters.UnreachableDemands(m); len(cut) > 0 {
			return fmt.Errorf("%w: demand vertices %v unreachable but answer is %s", ErrAnswerMismatch, cut, m.Expected)
		}
	default:
		return fmt.Errorf("convert: unsupported instance %T", inst)
	}

	return nil
}

// VerifyDir decodes every canonical file of problem p under dir and runs
// VerifyInstance on it. Failures are collected like ConvertDir does.
func (c *Converter) VerifyDir(ctx context.Context, p network.Problem, dir string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := c.log.With().Str("problem", p.String()).Str("dir", dir).Logger()

	paths, err := c.store.List(ctx, dir, canonical.Suffix)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, len(paths))
	for i, path := range paths {
		pairs[i] = Pair{Output: path}
	}

	report := &Report{}
	c.fanOut(ctx, pairs, func(pair Pair) {
		err := c.verifyFile(ctx, p, pair.Output)
		if err != nil {
			log.Warn().Err(err).Str("path", pair.Output).Msg("verification failed")
			report.fail(pair.Output, err)
			return
		}
		report.ok(pair.Output)
	})
	report.sort()

	log.Info().
		Int("verified", len(report.Converted)).
		Int("failed", len(report.Failed)).
		Msg("verification done")

	return report, ctx.Err()
}

func (c *Converter) verifyFile(ctx context.Context, p network.Problem, path string) error {
	body, err := c.store.Read(ctx, path)
	if err != nil {
		return network.AtPath(path, err)
	}
	inst, err := canonical.Decode(p, body)
	if err != nil {
		return network.AtPath(path, err)
	}
	return network.AtPath(path, VerifyInstance(ctx, inst, c.solver))
}

// cutSide lists the vertices left on the source side of a minimum cut.
func cutSide(res *flow.Residual, source network.Vertex) []network.Vertex {
	var side []network.Vertex
	for v, ok := range res.Reachable(source) {
		if ok {
			side = append(side, network.Vertex(v))
		}
	}
	return side
}
