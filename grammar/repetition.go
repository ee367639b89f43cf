package grammar

import (
	"fmt"
	"math"
)

// Unbounded is used as Repetition.Max to denote an unbounded repetition.
const Unbounded = math.MaxInt32

// Repetition is a closed interval [Min,Max] bounding how many times a
// syntax node's match may repeat before the engine moves on. Max may be
// Unbounded.
type Repetition struct {
	Min int
	Max int
}

// Once is the default, non-repeating bound [1,1].
var Once = Repetition{Min: 1, Max: 1}

// Optional is [0,1].
var Optional = Repetition{Min: 0, Max: 1}

// ZeroOrMore is [0,Unbounded].
var ZeroOrMore = Repetition{Min: 0, Max: Unbounded}

// OneOrMore is [1,Unbounded].
var OneOrMore = Repetition{Min: 1, Max: Unbounded}

// Exactly returns the bound [n,n].
func Exactly(n int) Repetition {
	return Repetition{Min: n, Max: n}
}

// Between returns the bound [m,n].
func Between(m, n int) Repetition {
	return Repetition{Min: m, Max: n}
}

// AtLeast returns the bound [m,Unbounded].
func AtLeast(m int) Repetition {
	return Repetition{Min: m, Max: Unbounded}
}

// AtMost returns the bound [0,n].
func AtMost(n int) Repetition {
	return Repetition{Min: 0, Max: n}
}

// String renders the repetition the way the engine's diagnostics do:
// "", "?", "*", "+", "{n}", "{m,n}", "{m,}", "{,n}".
func (r Repetition) String() string {
	switch {
	case r.Min == 1 && r.Max == 1:
		return ""
	case r.Min == 0 && r.Max == 1:
		return "?"
	case r.Min == 0 && r.Max == Unbounded:
		return "*"
	case r.Min == 1 && r.Max == Unbounded:
		return "+"
	case r.Min == r.Max:
		return fmt.Sprintf("{%d}", r.Min)
	case r.Max == Unbounded:
		return fmt.Sprintf("{%d,}", r.Min)
	case r.Min == 0:
		return fmt.Sprintf("{,%d}", r.Max)
	default:
		return fmt.Sprintf("{%d,%d}", r.Min, r.Max)
	}
}

// Saturated reports whether appearances has reached Max.
func (r Repetition) Saturated(appearances int) bool {
	return appearances >= r.Max
}

// Satisfied reports whether appearances has reached at least Min.
func (r Repetition) Satisfied(appearances int) bool {
	return appearances >= r.Min
}
