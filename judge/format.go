package judge

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flowcase/network"
)

// Format identifies a judge-specific raw test-case layout.
type Format int

const (
	// AOJGRL6A is AOJ GRL_6_A (maximum flow): "n m", then 0-based "u v c"
	// lines; source 0, sink n-1.
	AOJGRL6A Format = iota

	// LibreOJ101 is LibreOJ #101 (maximum flow): "n m s t", then "u v c"
	// lines, every index 1-based.
	LibreOJ101

	// AOJGRL6B is AOJ GRL_6_B (minimum cost flow): "n m F", then 0-based
	// "u v c d" lines; F units from 0 to n-1; answer -1 means infeasible.
	AOJGRL6B

	// LibraryCheckerBFlow is Library Checker min_cost_b_flow: "n m", n supply
	// lines, then 0-based "s t l u c" lines.
	LibraryCheckerBFlow
)

// Formats lists every supported format in canonical order.
var Formats = []Format{AOJGRL6A, LibreOJ101, AOJGRL6B, LibraryCheckerBFlow}

var formatNames = map[Format]string{
	AOJGRL6A:            "aoj_grl_6_a",
	LibreOJ101:          "libre_oj_101",
	AOJGRL6B:            "aoj_grl_6_b",
	LibraryCheckerBFlow: "library_checker_min_cost_b_flow",
}

// String returns the configuration key of f.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a configuration key (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("judge: unknown format %q", name)
}

// Problem returns the canonical schema f converts into.
func (f Format) Problem() network.Problem {
	switch f {
	case AOJGRL6B, LibraryCheckerBFlow:
		return network.MinCostFlow
	default:
		return network.MaxFlow
	}
}

// InputSuffix is the file-name suffix of raw inputs: AOJ doubles it.
func (f Format) InputSuffix() string {
	switch f {
	case AOJGRL6A, AOJGRL6B:
		return ".in.in"
	default:
		return ".in"
	}
}

// ExpectedSuffix replaces InputSuffix to name the expected-answer file:
// "x.in.in" pairs with "x.in.out", "x.in" with "x.out".
func (f Format) ExpectedSuffix() string {
	switch f {
	case AOJGRL6A, AOJGRL6B:
		return ".in.out"
	default:
		return ".out"
	}
}

// OneBased reports whether the raw format numbers vertices from 1.
func (f Format) OneBased() bool { return f == LibreOJ101 }
