// Package flowcase normalizes online-judge flow test cases into one
// canonical text layout per problem family, so a single test runner can
// exercise max-flow and min-cost-flow solvers against every judge's data.
//
// 🚀 What does it cover?
//
//	AOJ GRL_6_A        x.in.in + x.in.out  →  x.txt   (max flow, 0-based)
//	LibreOJ #101       x.in    + x.out     →  x.txt   (max flow, 1-based)
//	AOJ GRL_6_B        x.in.in + x.in.out  →  x.txt   (min-cost flow, -1 = infeasible)
//	Library Checker    x.in    + x.out     →  x.txt   (min-cost b-flow)
//
// Canonical max flow:
//
//	n m s t answer
//	u v cap            (m lines)
//
// Canonical min-cost flow:
//
//	n m answer         (answer is a cost or the word "infeasible")
//	b_i                (n lines, supply > 0, demand < 0)
//	u v lower upper cost   (m lines)
//
// Lines are joined by a single "\n" with no trailing newline.
//
// Under the hood:
//
//	network/    — vertices, edges, answers, instances, validation & errors
//	judge/      — one adapter per judge format
//	canonical/  — deterministic encoder and the matching decoder
//	flow/       — Dinic & Edmonds–Karp for re-checking max-flow answers
//	converters/ — gonum views for reachability checks
//	convert/    — directory discovery, worker fan-out, reports, verify pass
//	config/     — viper configuration & zerolog logger
//	cmd/flowconv — the command-line entry point
//
//	go install github.com/katalvlaran/flowcase/cmd/flowconv@latest
package flowcase
