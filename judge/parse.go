package judge

import (
	"fmt"

	"github.com/katalvlaran/flowcase/network"
)

// Parse dispatches raw input and expected-answer bytes to the reader of f,
// rebases 1-based formats to 0-based and validates the result.
//
// Steps:
//  1. Read the instance as the judge numbers it.
//  2. If f.OneBased(), apply network.ToZeroBased.
//  3. Validate.
func Parse(f Format, input, expected []byte) (network.Instance, error) {
	// 1) read
	inst, err := read(f, input, expected)
	if err != nil {
		return nil, err
	}

	// 2) normalize indices
	if f.OneBased() {
		network.ToZeroBased(inst)
	}

	// 3) validate
	if err = inst.Validate(); err != nil {
		return nil, err
	}

	return inst, nil
}

// read returns a non-nil instance whenever err is nil.
func read(f Format, input, expected []byte) (network.Instance, error) {
	switch f {
	case AOJGRL6A:
		return wrap(readAOJMaxFlow(input, expected))
	case LibreOJ101:
		return wrap(readLibreOJMaxFlow(input, expected))
	case AOJGRL6B:
		return wrap(readAOJMinCostFlow(input, expected))
	case LibraryCheckerBFlow:
		return wrap(readLibraryCheckerBFlow(input, expected))
	default:
		return nil, fmt.Errorf("judge: unsupported format %v", f)
	}
}

// wrap keeps the interface nil rather than a typed nil pointer.
func wrap[T network.Instance](inst T, err error) (network.Instance, error) {
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// parseAs runs Parse for a format whose instance type is known.
func parseAs[T network.Instance](f Format, input, expected []byte) (T, error) {
	inst, err := Parse(f, input, expected)
	if err != nil {
		var zero T
		return zero, err
	}
	return inst.(T), nil
}
