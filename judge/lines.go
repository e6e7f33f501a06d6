package judge

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flowcase/network"
)

// splitLines breaks raw into trimmed lines and drops trailing blank lines.
// Interior blank lines are kept so record counting can reject them.
func splitLines(raw []byte) []string {
	lines := strings.Split(string(raw), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// header parses the first line into want integers and checks that the
// leading vertex count is positive and the edge count non-negative.
func header(lines []string, want int) ([]int64, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", network.ErrMalformedHeader)
	}
	h, err := network.ParseRecord(lines[0], want)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", network.ErrMalformedHeader, err)
	}
	if h[0] <= 0 || h[0] > maxVertices {
		return nil, fmt.Errorf("%w: vertex count %d", network.ErrMalformedHeader, h[0])
	}
	if h[1] < 0 {
		return nil, fmt.Errorf("%w: edge count %d", network.ErrMalformedHeader, h[1])
	}

	return h, nil
}

// maxVertices bounds the vertex count so a corrupt header cannot request
// an absurd supply vector.
const maxVertices = 1 << 26

// records parses the count lines following offset, each holding width integers.
// Missing or surplus lines are reported as mismatch.
func records(lines []string, offset, count, width int, mismatch error) ([][]int64, error) {
	body := lines[offset:]
	if len(body) < count {
		return nil, fmt.Errorf("%w: declared %d, found %d", mismatch, count, len(body))
	}
	out := make([][]int64, count)
	for i := 0; i < count; i++ {
		rec, err := network.ParseRecord(body[i], width)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", network.ErrMalformedRecord, offset+i+1, err)
		}
		out[i] = rec
	}

	return out, nil
}

// expectedToken returns the first line of an expected-answer file.
func expectedToken(raw []byte) (string, error) {
	lines := splitLines(raw)
	if len(lines) == 0 || lines[0] == "" {
		return "", fmt.Errorf("%w: empty answer file", network.ErrUnparseableAnswer)
	}
	return lines[0], nil
}
