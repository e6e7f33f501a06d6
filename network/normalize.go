package network

// ToZeroBased rebases every vertex-typed field of m (source, sink and both
// endpoints of every edge) from 1-based to 0-based, in place.
// Capacities and the expected answer are untouched.
func (m *MaxFlowInstance) ToZeroBased() {
	m.Source = m.Source.Rebase()
	m.Sink = m.Sink.Rebase()
	for i := range m.Edges {
		m.Edges[i].From = m.Edges[i].From.Rebase()
		m.Edges[i].To = m.Edges[i].To.Rebase()
	}
}

// ToZeroBased rebases both endpoints of every edge of m, in place.
// The supply vector is dense and indexed by position, so its values are
// never shifted.
func (m *MinCostFlowInstance) ToZeroBased() {
	for i := range m.Edges {
		m.Edges[i].From = m.Edges[i].From.Rebase()
		m.Edges[i].To = m.Edges[i].To.Rebase()
	}
}

// ToZeroBased applies the index normalizer to any instance.
func ToZeroBased(inst Instance) { inst.ToZeroBased() }
