package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/flowcase/judge"
)

func TestPairFor(t *testing.T) {
	cases := []struct {
		format judge.Format
		input  string
		want   Pair
	}{
		{judge.AOJGRL6A, "d/x.in.in", Pair{"d/x.in.in", "d/x.in.out", "d/x.txt"}},
		{judge.AOJGRL6B, "d/in1.in.in", Pair{"d/in1.in.in", "d/in1.in.out", "d/in1.txt"}},
		{judge.LibreOJ101, "d/1.in", Pair{"d/1.in", "d/1.out", "d/1.txt"}},
		{judge.LibraryCheckerBFlow, "d/example_00.in", Pair{"d/example_00.in", "d/example_00.out", "d/example_00.txt"}},
	}
	for _, tc := range cases {
		t.Run(tc.format.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, PairFor(tc.format, tc.input))
		})
	}
}

func TestReportMergeSorted(t *testing.T) {
	a := &Report{}
	a.ok("b.txt")
	a.fail("z.in", assert.AnError)
	b := &Report{}
	b.ok("a.txt")
	b.fail("c.in", assert.AnError)

	a.Merge(b)
	a.Merge(nil)
	assert.Equal(t, []string{"a.txt", "b.txt"}, a.Converted)
	assert.Equal(t, "c.in", a.Failed[0].Path)
	assert.Equal(t, "z.in", a.Failed[1].Path)
	assert.ErrorIs(t, a.Err(), assert.AnError)

	assert.NoError(t, (&Report{}).Err())
}
