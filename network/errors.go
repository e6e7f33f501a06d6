package network

import (
	"errors"
	"fmt"
)

// Sentinel errors for test-case conversion. Branch on them with errors.Is.
var (
	// ErrMissingPairedFile indicates the expected-answer file for an input is absent.
	ErrMissingPairedFile = errors.New("network: paired expected-answer file not found")

	// ErrMalformedHeader indicates the first line does not parse into the required integer tuple.
	ErrMalformedHeader = errors.New("network: malformed header")

	// ErrMalformedRecord indicates an edge or supply line does not parse.
	ErrMalformedRecord = errors.New("network: malformed record")

	// ErrEdgeCountMismatch indicates the number of edge lines differs from the declared count.
	ErrEdgeCountMismatch = errors.New("network: edge count mismatch")

	// ErrSupplyCountMismatch indicates the number of supply lines differs from the vertex count.
	ErrSupplyCountMismatch = errors.New("network: supply count mismatch")

	// ErrUnparseableAnswer indicates the expected answer is neither an integer nor the sentinel.
	ErrUnparseableAnswer = errors.New("network: unparseable expected answer")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("network: vertex index out of range")

	// ErrNegativeCapacity indicates an edge with capacity below zero.
	ErrNegativeCapacity = errors.New("network: negative capacity")

	// ErrBadLowerBound indicates a lower bound above the capacity.
	ErrBadLowerBound = errors.New("network: lower bound exceeds capacity")

	// ErrSourceIsSink indicates source and sink are the same vertex.
	ErrSourceIsSink = errors.New("network: source equals sink")

	// ErrSupplyLength indicates a supply vector whose length differs from VertexCount.
	ErrSupplyLength = errors.New("network: supply length differs from vertex count")
)

// FileError ties a conversion failure to the file that caused it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// AtPath wraps err with path unless err is nil or already a *FileError.
func AtPath(path string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FileError
	if errors.As(err, &fe) {
		return err
	}

	return &FileError{Path: path, Err: err}
}
