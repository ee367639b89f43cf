package engine

import (
	"fmt"

	"github.com/npillmayer/terp/grammar"
)

// UndefinedIDError is re-exported so callers needn't import package
// grammar just to type-switch on this one error.
type UndefinedIDError = grammar.UndefinedIDError

// UnmatchedError reports that the input does not fit the grammar: no
// live path reached an accepting state (SPEC_FULL.md §7, semantic
// errors).
type UnmatchedError struct {
	Location      fmt.Stringer
	PrefixSample  string
	ActualSample  string
	Expected      []string // printed forms of the expected syntax node(s)
}

func (e UnmatchedError) Error() string {
	return fmt.Sprintf("terp: unmatched at %s: expected %v, got %s (near %q)",
		e.Location, e.Expected, e.ActualSample, e.PrefixSample)
}

// MultipleMatchesError reports that the input fits the grammar in more
// than one way: more than one path reached an accepting state at EOF.
type MultipleMatchesError struct {
	Location     fmt.Stringer
	PrefixSample string
	Expected     []string
}

func (e MultipleMatchesError) Error() string {
	return fmt.Sprintf("terp: multiple matches at %s: %v (near %q)",
		e.Location, e.Expected, e.PrefixSample)
}

// EOFExpectedError reports that the parse had already accepted the
// input and a further push supplied additional, illegal symbols.
type EOFExpectedError struct {
	Location     fmt.Stringer
	PrefixSample string
	ActualSample string
}

func (e EOFExpectedError) Error() string {
	return fmt.Sprintf("terp: EOF expected at %s, got %s (near %q)",
		e.Location, e.ActualSample, e.PrefixSample)
}

// PreviousError is returned by every call made after the Context has
// already latched a fatal error.
type PreviousError struct {
	Cause error
}

func (e PreviousError) Error() string {
	return fmt.Sprintf("terp: parse already failed: %v", e.Cause)
}

func (e PreviousError) Unwrap() error { return e.Cause }
