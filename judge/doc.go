// Package judge holds the source adapters: one parser per judge format,
// each turning a raw (input, expected-answer) pair into a validated,
// 0-based network instance.
//
// Supported formats:
//
//	AOJGRL6A             AOJ GRL_6_A, max flow, 0-based, s=0, t=n-1
//	LibreOJ101           LibreOJ #101, max flow, 1-based, explicit s and t
//	AOJGRL6B             AOJ GRL_6_B, min-cost flow, F units from 0 to n-1, -1 = infeasible
//	LibraryCheckerBFlow  Library Checker min_cost_b_flow, per-vertex supplies and lower bounds
//
// Reading rules shared by every adapter:
//   - trailing blank lines are ignored, interior blank lines are malformed records;
//   - the number of edge lines must equal the declared count (ErrEdgeCountMismatch);
//   - edges and supplies keep the order of the file;
//   - only the first line of the expected-answer file is read.
//
// Adapters are pure: they never touch the file system and hold no state, so
// any number of pairs can be parsed concurrently.
package judge
