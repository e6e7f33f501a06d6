// Package canonical writes and reads the unified test-case text layout
// consumed by the max-flow / min-cost-flow test harness.
//
// Max-flow body:
//
//	n m source sink answer
//	from to capacity                 (m lines)
//
// Min-cost-flow body:
//
//	n m answer                       (answer may be the literal "infeasible")
//	supply                           (n lines, one per vertex in order)
//	from to lower capacity cost      (m lines)
//
// Every field is a base-10 integer, tokens are separated by one space,
// records by one newline, and a body never ends with a newline. Edge and
// supply order follow the source file because harnesses report edge indices.
//
// Encoding validates the instance first and builds the whole body in
// memory, so a failed conversion never yields a partial file.
package canonical
