package canonical

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/katalvlaran/flowcase/network"
)

// Suffix is the file-name suffix of canonical test-case files.
const Suffix = ".txt"

// Encode serializes any validated instance into its canonical body.
func Encode(inst network.Instance) ([]byte, error) {
	switch v := inst.(type) {
	case *network.MaxFlowInstance:
		return EncodeMaxFlow(v)
	case *network.MinCostFlowInstance:
		return EncodeMinCostFlow(v)
	default:
		return nil, fmt.Errorf("canonical: unsupported instance %T", inst)
	}
}

// EncodeMaxFlow renders
//
//	n m s t answer
//	u v cap        (m lines, file order)
//
// The body is composed in memory and has no trailing newline.
func EncodeMaxFlow(m *network.MaxFlowInstance) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	w := newLineWriter()
	w.line(int64(m.VertexCount), int64(len(m.Edges)), int64(m.Source), int64(m.Sink))
	w.token(m.Expected.String())
	for _, e := range m.Edges {
		w.line(int64(e.From), int64(e.To), e.Cap)
	}

	return w.bytes(), nil
}

// EncodeMinCostFlow renders
//
//	n m answer|infeasible
//	b_i            (n lines, vertex order)
//	u v lower cap cost (m lines, file order)
//
// The body is composed in memory and has no trailing newline.
func EncodeMinCostFlow(m *network.MinCostFlowInstance) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	w := newLineWriter()
	w.line(int64(m.VertexCount), int64(len(m.Edges)))
	w.token(m.Expected.String())
	for _, b := range m.Supply {
		w.line(b)
	}
	for _, e := range m.Edges {
		w.line(int64(e.From), int64(e.To), e.Lower, e.Cap, e.Cost)
	}

	return w.bytes(), nil
}

// Join concatenates canonical bodies with a single newline between them.
func Join(bodies ...[]byte) []byte {
	return bytes.Join(bodies, []byte{'\n'})
}

// lineWriter builds newline-separated records of space-separated tokens.
// A token appended with token() extends the current record.
type lineWriter struct {
	buf     bytes.Buffer
	started bool
}

func newLineWriter() *lineWriter { return &lineWriter{} }

func (w *lineWriter) line(vals ...int64) {
	if w.started {
		w.buf.WriteByte('\n')
	}
	w.started = true
	for i, v := range vals {
		if i > 0 {
			w.buf.WriteByte(' ')
		}
		w.buf.WriteString(strconv.FormatInt(v, 10))
	}
}

func (w *lineWriter) token(tok string) {
	w.buf.WriteByte(' ')
	w.buf.WriteString(tok)
}

func (w *lineWriter) bytes() []byte { return w.buf.Bytes() }
