package network

import (
	"fmt"
	"math/big"
	"strings"
)

// InfeasibleToken is the canonical literal written in place of a numeric answer.
const InfeasibleToken = "infeasible"

// judgeInfeasible is the value judges reserve to mean "no feasible flow".
const judgeInfeasible = -1

// Answer is the expected result of a test case: either Feasible with a value
// or Infeasible. The zero value is Feasible(0). Answers are immutable.
type Answer struct {
	infeasible bool
	value      *big.Int
}

// Feasible returns an answer carrying v.
func Feasible(v int64) Answer {
	return Answer{value: big.NewInt(v)}
}

// FeasibleBig returns an answer carrying a copy of v.
func FeasibleBig(v *big.Int) Answer {
	return Answer{value: new(big.Int).Set(v)}
}

// Infeasible returns the answer marking that no feasible flow exists.
func Infeasible() Answer {
	return Answer{infeasible: true}
}

// IsInfeasible reports whether a is the infeasibility marker.
func (a Answer) IsInfeasible() bool { return a.infeasible }

// Value returns the numeric answer and true, or nil and false when infeasible.
// The returned value is a copy.
func (a Answer) Value() (*big.Int, bool) {
	if a.infeasible {
		return nil, false
	}
	return new(big.Int).Set(a.num()), true
}

func (a Answer) num() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}
	return a.value
}

// Int64 returns the numeric answer when it is feasible and fits in int64.
func (a Answer) Int64() (int64, bool) {
	if a.infeasible || !a.num().IsInt64() {
		return 0, false
	}
	return a.num().Int64(), true
}

// Equal reports whether a and b denote the same answer.
func (a Answer) Equal(b Answer) bool {
	if a.infeasible || b.infeasible {
		return a.infeasible == b.infeasible
	}
	return a.num().Cmp(b.num()) == 0
}

// String renders the canonical token: decimal digits or "infeasible".
func (a Answer) String() string {
	if a.infeasible {
		return InfeasibleToken
	}
	return a.num().String()
}

// ParseAnswer reads a single expected-answer token.
//
// The literal "infeasible" always yields Infeasible. When judgeSentinel is
// true the judge-reserved value -1 yields Infeasible as well; otherwise -1 is
// an ordinary value. Anything that is not a base-10 integer is
// ErrUnparseableAnswer.
func ParseAnswer(token string, judgeSentinel bool) (Answer, error) {
	token = strings.TrimSpace(token)
	if token == InfeasibleToken {
		return Infeasible(), nil
	}
	v, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return Answer{}, fmt.Errorf("%w: %q", ErrUnparseableAnswer, token)
	}
	if judgeSentinel && v.IsInt64() && v.Int64() == judgeInfeasible {
		return Infeasible(), nil
	}

	return Answer{value: v}, nil
}
