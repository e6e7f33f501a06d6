package network

import "fmt"

// Validate checks the structural invariants of a max-flow instance.
func (m *MaxFlowInstance) Validate() error {
	if m.VertexCount <= 0 {
		return fmt.Errorf("%w: vertex count %d", ErrVertexOutOfRange, m.VertexCount)
	}
	if !m.Source.InRange(m.VertexCount) {
		return fmt.Errorf("%w: source %d, n=%d", ErrVertexOutOfRange, m.Source, m.VertexCount)
	}
	if !m.Sink.InRange(m.VertexCount) {
		return fmt.Errorf("%w: sink %d, n=%d", ErrVertexOutOfRange, m.Sink, m.VertexCount)
	}
	if m.Source == m.Sink {
		return fmt.Errorf("%w: %d", ErrSourceIsSink, m.Source)
	}
	for i, e := range m.Edges {
		if err := checkEndpoints(i, e.From, e.To, m.VertexCount); err != nil {
			return err
		}
		if e.Cap < 0 {
			return fmt.Errorf("%w: edge %d (%d->%d) cap %d", ErrNegativeCapacity, i, e.From, e.To, e.Cap)
		}
	}
	if v, ok := m.Expected.Value(); !ok || v.Sign() < 0 {
		return fmt.Errorf("%w: max flow must be a non-negative integer, got %s", ErrUnparseableAnswer, m.Expected)
	}

	return nil
}

// Validate checks the structural invariants of a min-cost-flow instance.
// Bounds may be negative (b-flow suites allow it) but lower must not exceed
// capacity. Balance is not checked: an unbalanced instance is an infeasible case.
func (m *MinCostFlowInstance) Validate() error {
	if m.VertexCount <= 0 {
		return fmt.Errorf("%w: vertex count %d", ErrVertexOutOfRange, m.VertexCount)
	}
	if len(m.Supply) != m.VertexCount {
		return fmt.Errorf("%w: %d supplies for %d vertices", ErrSupplyLength, len(m.Supply), m.VertexCount)
	}
	for i, e := range m.Edges {
		if err := checkEndpoints(i, e.From, e.To, m.VertexCount); err != nil {
			return err
		}
		if e.Lower > e.Cap {
			return fmt.Errorf("%w: edge %d lower %d cap %d", ErrBadLowerBound, i, e.Lower, e.Cap)
		}
	}

	return nil
}

func checkEndpoints(i int, from, to Vertex, n int) error {
	if !from.InRange(n) || !to.InRange(n) {
		return fmt.Errorf("%w: edge %d (%d->%d), n=%d", ErrVertexOutOfRange, i, from, to, n)
	}
	return nil
}
