package network_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowcase/network"
)

// TestParseAnswer_JudgeSentinel verifies that -1 becomes Infeasible only when
// the judge reserves it.
func TestParseAnswer_JudgeSentinel(t *testing.T) {
	a, err := network.ParseAnswer("-1", true)
	require.NoError(t, err)
	assert.True(t, a.IsInfeasible(), "-1 must be the infeasibility marker under a sentinel judge")
	assert.Equal(t, "infeasible", a.String())

	a, err = network.ParseAnswer("-1", false)
	require.NoError(t, err)
	assert.False(t, a.IsInfeasible(), "-1 is an ordinary cost elsewhere")
	assert.Equal(t, "-1", a.String())
}

// TestParseAnswer_Literal verifies that the literal token is accepted either way.
func TestParseAnswer_Literal(t *testing.T) {
	for _, sentinel := range []bool{true, false} {
		a, err := network.ParseAnswer(" infeasible\n", sentinel)
		require.NoError(t, err)
		assert.True(t, a.IsInfeasible())
	}
}

// TestParseAnswer_BigValue checks values beyond int64 survive verbatim.
func TestParseAnswer_BigValue(t *testing.T) {
	const huge = "123456789012345678901234567890"
	a, err := network.ParseAnswer(huge, true)
	require.NoError(t, err)
	assert.Equal(t, huge, a.String())
	_, ok := a.Int64()
	assert.False(t, ok, "value does not fit in int64")

	want, _ := new(big.Int).SetString(huge, 10)
	assert.True(t, a.Equal(network.FeasibleBig(want)))
}

// TestParseAnswer_Garbage ensures non-integers are rejected.
func TestParseAnswer_Garbage(t *testing.T) {
	for _, tok := range []string{"", "abc", "1.5", "12 13", "Infeasible"} {
		_, err := network.ParseAnswer(tok, true)
		assert.ErrorIs(t, err, network.ErrUnparseableAnswer, "token %q", tok)
	}
}

// TestAnswer_Equal covers the tagged-variant comparison rules.
func TestAnswer_Equal(t *testing.T) {
	assert.True(t, network.Feasible(5).Equal(network.Feasible(5)))
	assert.False(t, network.Feasible(5).Equal(network.Feasible(6)))
	assert.True(t, network.Infeasible().Equal(network.Infeasible()))
	assert.False(t, network.Infeasible().Equal(network.Feasible(-1)))
	assert.True(t, network.Answer{}.Equal(network.Feasible(0)), "zero value is Feasible(0)")
}

// TestToZeroBased_MaxFlow verifies every vertex field is shifted and nothing else.
func TestToZeroBased_MaxFlow(t *testing.T) {
	m := &network.MaxFlowInstance{
		VertexCount: 3,
		Source:      1,
		Sink:        3,
		Edges:       []network.Edge{{From: 1, To: 2, Cap: 4}, {From: 2, To: 3, Cap: 6}},
		Expected:    network.Feasible(4),
	}
	network.ToZeroBased(m)

	assert.Equal(t, network.Vertex(0), m.Source)
	assert.Equal(t, network.Vertex(2), m.Sink)
	assert.Equal(t, []network.Edge{{From: 0, To: 1, Cap: 4}, {From: 1, To: 2, Cap: 6}}, m.Edges)
	assert.Equal(t, 3, m.VertexCount)
	assert.True(t, m.Expected.Equal(network.Feasible(4)))
	require.NoError(t, m.Validate())
}

// TestToZeroBased_MinCostFlow verifies supplies are not shifted.
func TestToZeroBased_MinCostFlow(t *testing.T) {
	m := &network.MinCostFlowInstance{
		VertexCount: 2,
		Supply:      []int64{3, -3},
		Edges:       []network.CostEdge{{From: 1, To: 2, Lower: 1, Cap: 5, Cost: -2}},
	}
	m.ToZeroBased()

	assert.Equal(t, []int64{3, -3}, m.Supply)
	assert.Equal(t, []network.CostEdge{{From: 0, To: 1, Lower: 1, Cap: 5, Cost: -2}}, m.Edges)
}

// TestSourceSinkSupply checks the two-entry sparse vector and its balance.
func TestSourceSinkSupply(t *testing.T) {
	s := network.SourceSinkSupply(4, 7)
	assert.Equal(t, []int64{7, 0, 0, -7}, s)

	m := &network.MinCostFlowInstance{VertexCount: 4, Supply: s}
	assert.Zero(t, m.Balance())

	assert.Equal(t, []int64{0}, network.SourceSinkSupply(1, 7), "single vertex cancels out")
	assert.Empty(t, network.SourceSinkSupply(0, 7))
}

// TestValidate_MaxFlow covers each rejection path.
func TestValidate_MaxFlow(t *testing.T) {
	base := func() *network.MaxFlowInstance {
		return &network.MaxFlowInstance{
			VertexCount: 2,
			Sink:        1,
			Edges:       []network.Edge{{From: 0, To: 1, Cap: 5}},
			Expected:    network.Feasible(5),
		}
	}
	cases := []struct {
		name   string
		mutate func(*network.MaxFlowInstance)
		want   error
	}{
		{"ok", func(*network.MaxFlowInstance) {}, nil},
		{"no vertices", func(m *network.MaxFlowInstance) { m.VertexCount = 0 }, network.ErrVertexOutOfRange},
		{"sink out of range", func(m *network.MaxFlowInstance) { m.Sink = 2 }, network.ErrVertexOutOfRange},
		{"source negative", func(m *network.MaxFlowInstance) { m.Source = -1 }, network.ErrVertexOutOfRange},
		{"source is sink", func(m *network.MaxFlowInstance) { m.Sink = 0 }, network.ErrSourceIsSink},
		{"edge out of range", func(m *network.MaxFlowInstance) { m.Edges[0].To = 9 }, network.ErrVertexOutOfRange},
		{"negative cap", func(m *network.MaxFlowInstance) { m.Edges[0].Cap = -1 }, network.ErrNegativeCapacity},
		{"infeasible answer", func(m *network.MaxFlowInstance) { m.Expected = network.Infeasible() }, network.ErrUnparseableAnswer},
		{"negative answer", func(m *network.MaxFlowInstance) { m.Expected = network.Feasible(-3) }, network.ErrUnparseableAnswer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := base()
			tc.mutate(m)
			err := m.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidate_MinCostFlow covers supply length and bound checks.
func TestValidate_MinCostFlow(t *testing.T) {
	m := &network.MinCostFlowInstance{
		VertexCount: 2,
		Supply:      []int64{1},
		Edges:       []network.CostEdge{{From: 0, To: 1, Lower: -2, Cap: -1, Cost: 3}},
	}
	assert.ErrorIs(t, m.Validate(), network.ErrSupplyLength)

	m.Supply = []int64{1, -1}
	assert.NoError(t, m.Validate(), "negative bounds are allowed while lower <= cap")

	m.Edges[0].Lower = 0
	assert.ErrorIs(t, m.Validate(), network.ErrBadLowerBound)
}

// TestFileError ensures path context wraps but never hides the sentinel.
func TestFileError(t *testing.T) {
	err := network.AtPath("/tmp/a.in", network.ErrEdgeCountMismatch)
	assert.ErrorIs(t, err, network.ErrEdgeCountMismatch)
	assert.EqualError(t, err, "/tmp/a.in: network: edge count mismatch")

	again := network.AtPath("/tmp/b.in", err)
	var fe *network.FileError
	require.True(t, errors.As(again, &fe))
	assert.Equal(t, "/tmp/a.in", fe.Path, "innermost path wins")

	assert.NoError(t, network.AtPath("/tmp/c.in", nil))
}

// TestParseRecord checks width enforcement and field numbering in errors.
func TestParseRecord(t *testing.T) {
	got, err := network.ParseRecord(" 0  1\t-7 ", 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, -7}, got)

	_, err = network.ParseRecord("0 1", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 3 integers, got 2")

	_, err = network.ParseFields([]string{"4", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 2")
}
