package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/flowcase/network"
)

// Dinic returns the maximum s-t flow of m, computed by repeatedly layering
// the residual network by BFS distance and saturating it with blocking
// flows found by DFS.
//
// The residual network is returned alongside the value. Errors are
// ErrSourceNotFound, ErrSinkNotFound, an EdgeError, or opts.Ctx.Err().
//
// Steps:
//  1. Aggregate capacities (buildCapMap).
//  2. Layer the residual network from the source; stop when the sink has
//     no layer.
//  3. Keep only arcs that climb exactly one layer.
//  4. Push blocking flow along those arcs, re-layering early every
//     LevelRebuildInterval augmentations when that option is set.
//
// Time O(V²·E), O(E·√V) with unit capacities. Memory O(V + E).
func Dinic(m *network.MaxFlowInstance, opts FlowOptions) (maxFlow int64, residual *Residual, err error) {
	opts.normalize()
	ctx := opts.Ctx

	// 1) capacities
	capMap, err := buildCapMap(m)
	if err != nil {
		return 0, nil, err
	}
	if m.Source == m.Sink {
		return 0, &Residual{capMap: capMap}, nil
	}

	augments := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// 2) layers
		level := bfsLevels(capMap, m.Source)
		if level[m.Sink] < 0 {
			break
		}

		// 3) admissible arcs
		next := admissibleArcs(capMap, level)

		// 4) blocking flow
		iter := make([]int, len(capMap))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			sent := pushBlocking(ctx, capMap, next, iter, m.Source, m.Sink, math.MaxInt64)
			if sent == 0 {
				break
			}
			maxFlow += sent
			augments++
			if opts.Verbose {
				opts.Logger.Debug().Int64("pushed", sent).Int64("total", maxFlow).Msg("dinic augment")
			}
			if opts.LevelRebuildInterval > 0 && augments%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, &Residual{capMap: capMap}, nil
}

// bfsLevels returns the BFS distance of every vertex from source over arcs
// with positive capacity; unreachable vertices get -1.
func bfsLevels(capMap []map[network.Vertex]int64, source network.Vertex) []int {
	level := make([]int, len(capMap))
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []network.Vertex{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v, c := range capMap[u] {
			if c > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level
}

// admissibleArcs lists, per vertex, the heads of arcs that go one layer up.
func admissibleArcs(capMap []map[network.Vertex]int64, level []int) [][]network.Vertex {
	next := make([][]network.Vertex, len(capMap))
	for u, arcs := range capMap {
		if level[u] < 0 {
			continue
		}
		for v, c := range arcs {
			if c > 0 && level[v] == level[u]+1 {
				next[u] = append(next[u], v)
			}
		}
	}

	return next
}

// pushBlocking sends up to limit units from u to sink along admissible arcs
// and returns the amount sent. iter[u] skips arcs already known to be dead.
func pushBlocking(
	ctx context.Context,
	capMap []map[network.Vertex]int64,
	next [][]network.Vertex,
	iter []int,
	u, sink network.Vertex,
	limit int64,
) int64 {
	if u == sink {
		return limit
	}
	if ctx.Err() != nil {
		return 0
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		c := capMap[u][v]
		if c <= 0 {
			continue
		}
		if sent := pushBlocking(ctx, capMap, next, iter, v, sink, min(limit, c)); sent > 0 {
			capMap[u][v] -= sent
			capMap[v][u] += sent
			return sent
		}
	}

	return 0
}
