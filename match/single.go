package match

import (
	"fmt"

	"github.com/npillmayer/terp"
	"github.com/npillmayer/terp/grammar"
)

// predicateMatcher matches exactly one symbol satisfying pred.
type predicateMatcher struct {
	label string
	pred  func(terp.Symbol) bool
}

func (m predicateMatcher) MatchAt(buffer []terp.Symbol) grammar.MatchResult {
	if len(buffer) == 0 {
		return grammar.NoMatchYet()
	}
	if m.pred(buffer[0]) {
		return grammar.Match(1)
	}
	return grammar.NoMatch()
}

func (m predicateMatcher) Label() string { return m.label }

// Predicate builds a one-symbol Matcher out of a bare predicate, labeled
// for diagnostics (e.g. "DIGIT", "ALPHA").
func Predicate(label string, pred func(terp.Symbol) bool) grammar.Matcher {
	return predicateMatcher{label: label, pred: pred}
}

// Single builds a Matcher that accepts exactly the given symbol.
func Single(sym terp.Symbol) grammar.Matcher {
	return predicateMatcher{
		label: fmt.Sprintf("%q", sym.String()),
		pred:  func(s terp.Symbol) bool { return s == sym },
	}
}

// Set builds a Matcher that accepts any of the given symbols.
func Set(label string, syms ...terp.Symbol) grammar.Matcher {
	in := make(map[terp.Symbol]struct{}, len(syms))
	for _, s := range syms {
		in[s] = struct{}{}
	}
	return predicateMatcher{
		label: label,
		pred: func(s terp.Symbol) bool {
			_, ok := in[s]
			return ok
		},
	}
}

// Range builds a Matcher that accepts any symbol s for which
// !less(s, lo) && !less(hi, s) — i.e. lo <= s <= hi under less.
func Range(label string, lo, hi terp.Symbol, less func(a, b terp.Symbol) bool) grammar.Matcher {
	return predicateMatcher{
		label: label,
		pred: func(s terp.Symbol) bool {
			return !less(s, lo) && !less(hi, s)
		},
	}
}
