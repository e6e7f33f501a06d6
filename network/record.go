package network

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRecord parses exactly width whitespace-separated base-10 integers
// from one line of a test-case file.
func ParseRecord(line string, width int) ([]int64, error) {
	fields := strings.Fields(line)
	if len(fields) != width {
		return nil, fmt.Errorf("want %d integers, got %d in %q", width, len(fields), line)
	}
	return ParseFields(fields)
}

// ParseFields parses every field as a base-10 int64.
func ParseFields(fields []string) ([]int64, error) {
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}
