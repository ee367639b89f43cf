package grammar

import "github.com/npillmayer/terp"

// MatchStatus is the four-valued result of a Matcher's attempt against a
// buffer prefix: whether it matched, and whether more input could still
// change the answer.
type MatchStatus int

const (
	// Matched means the prefix matched and further input will not extend
	// this match (Matched with N==0 is a valid, non-advancing match).
	Matched MatchStatus = iota
	// MatchedAndMore means the prefix matched, but accepting more input
	// could produce a longer match.
	MatchedAndMore
	// Unmatched means the prefix did not match and further input will
	// not change that.
	Unmatched
	// UnmatchedAndMore means the prefix does not match yet, but accepting
	// more input could still produce a match.
	UnmatchedAndMore
)

func (s MatchStatus) String() string {
	switch s {
	case Matched:
		return "Match"
	case MatchedAndMore:
		return "MatchAndMore"
	case Unmatched:
		return "Unmatch"
	case UnmatchedAndMore:
		return "UnmatchAndMore"
	default:
		return "?"
	}
}

// NeedsMore reports whether this status requires more input before the
// engine can commit to a decision (absent an EOF collapse).
func (s MatchStatus) NeedsMore() bool {
	return s == MatchedAndMore || s == UnmatchedAndMore
}

// IsMatch reports whether this status, taken at face value, is a match.
func (s MatchStatus) IsMatch() bool {
	return s == Matched || s == MatchedAndMore
}

// CollapseAtEOF folds the two "and more" statuses into their definitive
// counterpart, as required at end of input (§4.2.2 of the design notes).
func (s MatchStatus) CollapseAtEOF() MatchStatus {
	switch s {
	case MatchedAndMore:
		return Matched
	case UnmatchedAndMore:
		return Unmatched
	default:
		return s
	}
}

// MatchResult is what a Matcher reports for one attempt: a status and,
// for the two Match* variants, how many symbols of the buffer were
// consumed.
type MatchResult struct {
	Status MatchStatus
	N      int
}

// Match constructs a definitive match of n symbols.
func Match(n int) MatchResult { return MatchResult{Status: Matched, N: n} }

// MatchAndMore constructs a provisional match of n symbols that a longer
// buffer could extend.
func MatchAndMore(n int) MatchResult { return MatchResult{Status: MatchedAndMore, N: n} }

// NoMatch constructs a definitive non-match.
func NoMatch() MatchResult { return MatchResult{Status: Unmatched} }

// NoMatchYet constructs a provisional non-match that a longer buffer
// could still turn into a match.
func NoMatchYet() MatchResult { return MatchResult{Status: UnmatchedAndMore} }

// Matcher is the pure function every Terminal syntax node is built
// around: given the buffer starting at the terminal's match origin,
// decide whether (and how much of) it matches. Matchers must be
// deterministic and must not panic on an empty slice.
type Matcher interface {
	MatchAt(buffer []terp.Symbol) MatchResult

	// Label renders the matcher for diagnostics, e.g. "DIGIT", "'a'".
	Label() string
}

// MatcherFunc adapts a plain function plus a label into a Matcher.
type MatcherFunc struct {
	Fn    func(buffer []terp.Symbol) MatchResult
	label string
}

// NewMatcherFunc builds a Matcher out of a bare function and a diagnostic
// label.
func NewMatcherFunc(label string, fn func(buffer []terp.Symbol) MatchResult) MatcherFunc {
	return MatcherFunc{Fn: fn, label: label}
}

func (m MatcherFunc) MatchAt(buffer []terp.Symbol) MatchResult { return m.Fn(buffer) }
func (m MatcherFunc) Label() string                             { return m.label }
