package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/flowcase/network"
)

// EdmondsKarp computes the maximum flow from m.Source to m.Sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual capacities after flow
//   - err: non-nil on out-of-range vertices, negative capacities or cancellation.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(m *network.MaxFlowInstance, opts FlowOptions) (maxFlow int64, residual *Residual, err error) {
	opts.normalize()
	ctx := opts.Ctx

	// 1) Build residual capacities (sum parallel edges, drop loops)
	capMap, err := buildCapMap(m)
	if err != nil {
		return 0, nil, err
	}
	if m.Source == m.Sink {
		return 0, &Residual{capMap: capMap}, nil
	}

	// 2) Main loop: find BFS augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		path, bottle := bfsAugmentingPath(ctx, capMap, m.Source, m.Sink)
		if len(path) == 0 {
			// an empty path also means the search was interrupted
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			break
		}
		if opts.Verbose {
			opts.Logger.Debug().Interface("path", path).Int64("flow", bottle).Msg("edmonds-karp augment")
		}
		maxFlow += bottle

		// 3) Augment along the path
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
	}

	return maxFlow, &Residual{capMap: capMap}, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path from source to
// sink with positive capacity, and returns that path plus its bottleneck.
// Returns nil if no path is found or ctx is done.
func bfsAugmentingPath(
	ctx context.Context,
	capMap []map[network.Vertex]int64,
	source, sink network.Vertex,
) ([]network.Vertex, int64) {
	// parent[v] = predecessor of v on the path; -1 marks unvisited
	parent := make([]network.Vertex, len(capMap))
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	// bottleneck[v] = bottleneck capacity from source→v
	bottleneck := make([]int64, len(capMap))
	bottleneck[source] = math.MaxInt64

	queue := []network.Vertex{source}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, 0
		default:
		}
		u := queue[0]
		queue = queue[1:]
		for v, c := range capMap[u] {
			if c <= 0 || parent[v] >= 0 {
				continue
			}
			parent[v] = u
			bottleneck[v] = min(bottleneck[u], c)
			if v == sink {
				path := []network.Vertex{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append([]network.Vertex{cur}, path...)
				}
				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
