package canonical_test

import (
	"fmt"

	"github.com/katalvlaran/flowcase/canonical"
	"github.com/katalvlaran/flowcase/judge"
	"github.com/katalvlaran/flowcase/network"
)

// ExampleEncodeMaxFlow converts a LibreOJ #101 case (1-based) into the
// canonical max-flow layout.
func ExampleEncodeMaxFlow() {
	inst, err := judge.ParseLibreOJMaxFlow([]byte("3 2 1 3\n1 2 4\n2 3 6\n"), []byte("4\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	body, _ := canonical.EncodeMaxFlow(inst)
	fmt.Println(string(body))
	// Output:
	// 3 2 0 2 4
	// 0 1 4
	// 1 2 6
}

// ExampleEncodeMinCostFlow shows the judge's -1 rendered as "infeasible".
func ExampleEncodeMinCostFlow() {
	inst, err := judge.ParseAOJMinCostFlow([]byte("3 2 10\n0 1 5 2\n1 2 5 3\n"), []byte("-1\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	body, _ := canonical.EncodeMinCostFlow(inst)
	fmt.Println(string(body))
	// Output:
	// 3 2 infeasible
	// 10
	// 0
	// -10
	// 0 1 0 5 2
	// 1 2 0 5 3
}

// ExampleDecode reads a canonical body back.
func ExampleDecode() {
	inst, err := canonical.Decode(network.MaxFlow, []byte("2 1 0 1 5\n0 1 5"))
	if err != nil {
		fmt.Println(err)
		return
	}
	m := inst.(*network.MaxFlowInstance)
	fmt.Println(m.VertexCount, len(m.Edges), m.Source, m.Sink, m.Expected)
	// Output:
	// 2 1 0 1 5
}
