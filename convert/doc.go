// Package convert drives conversion of judge test-case directories into
// canonical files and the optional verify pass over the results.
//
// Directory contract:
//
//	AOJ (GRL_6_A, GRL_6_B)          x.in.in + x.in.out  →  x.txt
//	LibreOJ 101, Library Checker    x.in    + x.out     →  x.txt
//
// Output is written next to the input. Each pair is read, parsed, encoded
// and written independently; a failing pair is reported with its path and
// never touches other pairs or their outputs. Output bytes depend only on
// input bytes, so re-running over the same directory is byte-identical.
//
// File access goes through Store; AFSStore (viant/afs) is the default.
package convert
