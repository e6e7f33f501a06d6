// Package config loads flowconv settings (directories per judge, worker
// count, verify switch, logging) through Viper and builds the zerolog
// logger every other component receives.
//
// Keys and defaults:
//
//	root                                   "."
//	problem                                "all" | "maxflow" | "mincostflow"
//	dirs.aoj_grl_6_a                       "AOJ_GRL_6_A"
//	dirs.libre_oj_101                      "LibreOJ_101"
//	dirs.aoj_grl_6_b                       "AOJ_GRL_6_B"
//	dirs.library_checker_min_cost_b_flow   "LibraryChecker_min_cost_b_flow"
//	workers                                runtime.NumCPU()
//	verify                                 false
//	logging.level                          "info"
//	logging.console                        true
//
// Every key may be overridden by FLOWCONV_<KEY> with dots as underscores.
package config
