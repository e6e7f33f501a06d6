package flow

import "github.com/katalvlaran/flowcase/network"

// Remaining exposes the residual capacity on u→v to the external tests.
func Remaining(r *Residual, u, v network.Vertex) int64 { return r.remaining(u, v) }
