package convert

import (
	"context"
	"strings"

	"github.com/katalvlaran/flowcase/canonical"
	"github.com/katalvlaran/flowcase/judge"
)

// Pair names the three files of one test case.
type Pair struct {
	Input    string
	Expected string
	Output   string
}

// stem strips the input suffix of format f from path.
func stem(f judge.Format, path string) string {
	return strings.TrimSuffix(path, f.InputSuffix())
}

// ExpectedPath locates the expected-answer file paired with an input:
// "x.in.in" → "x.in.out" for AOJ, "x.in" → "x.out" otherwise.
func ExpectedPath(f judge.Format, input string) string {
	return stem(f, input) + f.ExpectedSuffix()
}

// OutputPath names the canonical file written next to an input:
// "x.in.in" → "x.txt" for AOJ, "x.in" → "x.txt" otherwise.
func OutputPath(f judge.Format, input string) string {
	return stem(f, input) + canonical.Suffix
}

// PairFor builds the Pair of an input path.
func PairFor(f judge.Format, input string) Pair {
	return Pair{
		Input:    input,
		Expected: ExpectedPath(f, input),
		Output:   OutputPath(f, input),
	}
}

// Discover lists the test cases of format f under dir, sorted by input name.
func Discover(ctx context.Context, store Store, f judge.Format, dir string) ([]Pair, error) {
	inputs, err := store.List(ctx, dir, f.InputSuffix())
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(inputs))
	for _, in := range inputs {
		pairs = append(pairs, PairFor(f, in))
	}
	return pairs, nil
}
