// Package converters adapts converted flow instances to gonum/graph so the
// gonum toolbox (topo, traverse, path, ...) can analyse them.
//
//   - MaxFlowToGonum / MinCostFlowToGonum build the support graph.
//   - SinkReachable and UnreachableDemands are the cheap feasibility
//     diagnostics the verify pass runs before any flow computation.
//
// Node IDs equal the 0-based vertex indices of the instance.
package converters
