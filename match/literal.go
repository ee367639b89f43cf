package match

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/npillmayer/terp"
	"github.com/npillmayer/terp/grammar"
)

// literalMatcher matches one fixed run of symbols exactly.
type literalMatcher struct {
	label string
	lit   []terp.Symbol
}

// Literal builds a Matcher that accepts exactly the given run of symbols
// and nothing else.
func Literal(label string, lit ...terp.Symbol) grammar.Matcher {
	return literalMatcher{label: label, lit: lit}
}

func (m literalMatcher) MatchAt(buffer []terp.Symbol) grammar.MatchResult {
	n := len(m.lit)
	limit := n
	if len(buffer) < limit {
		limit = len(buffer)
	}
	for i := 0; i < limit; i++ {
		if buffer[i] != m.lit[i] {
			return grammar.NoMatch()
		}
	}
	if len(buffer) >= n {
		return grammar.Match(n)
	}
	return grammar.NoMatchYet()
}

func (m literalMatcher) Label() string { return m.label }

// ByteSymbol is implemented by Symbol instantiations (such as byteloc's)
// whose underlying value is a single byte, which AltLiterals needs in
// order to drive an Aho-Corasick automaton.
type ByteSymbol interface {
	terp.Symbol
	Byte() byte
}

// altLiteralsMatcher is a Matcher for "one of these literal byte runs",
// backed by an Aho-Corasick automaton for the primary anchored-match
// check, as github.com/coregx/coregex does for large literal
// alternations. The automaton's Find/IsMatch API reports matches
// anywhere in a haystack, not specifically "is the whole buffer a
// strict prefix of some longer pattern" — the one extra bit the
// four-valued matcher contract needs — so that bookkeeping is computed
// directly against the (typically small) literal set alongside the
// automaton's anchored check.
type altLiteralsMatcher struct {
	label    string
	literals [][]byte
	automaton *ahocorasick.Automaton
}

// AltLiterals builds a Matcher that accepts any one of the given literal
// strings (byte sequences), preferring the longest literal that matches
// a given prefix.
func AltLiterals(literals ...string) grammar.Matcher {
	builder := ahocorasick.NewBuilder()
	lits := make([][]byte, len(literals))
	for i, l := range literals {
		b := []byte(l)
		lits[i] = b
		builder.AddPattern(b)
	}
	auto, err := builder.Build()
	if err != nil {
		// Reference matcher: a malformed literal set is a programmer
		// error, not a runtime condition callers need to recover from.
		panic(fmt.Sprintf("match.AltLiterals: %v", err))
	}
	return altLiteralsMatcher{
		label:     fmt.Sprintf("(%s)", strings.Join(literals, "|")),
		literals:  lits,
		automaton: auto,
	}
}

func (m altLiteralsMatcher) MatchAt(buffer []terp.Symbol) grammar.MatchResult {
	bs := make([]byte, len(buffer))
	for i, s := range buffer {
		bs[i] = s.(ByteSymbol).Byte()
	}

	// The automaton gives a fast anchored-match check across the whole
	// literal set; it does not itself distinguish "matched" from
	// "matched, but a longer literal could still extend it", so that
	// one bit is resolved against the (small) literal set directly.
	longest := -1
	if found := m.automaton.Find(bs, 0); found != nil && found.Start == 0 {
		longest = found.End
	}
	couldExtend := false
	for _, lit := range m.literals {
		if len(lit) <= len(bs) {
			if bytes.Equal(bs[:len(lit)], lit) && len(lit) > longest {
				longest = len(lit)
			}
			continue
		}
		if bytes.Equal(bs, lit[:len(bs)]) {
			couldExtend = true
		}
	}
	switch {
	case longest >= 0 && couldExtend:
		return grammar.MatchAndMore(longest)
	case longest >= 0:
		return grammar.Match(longest)
	case couldExtend:
		return grammar.NoMatchYet()
	default:
		return grammar.NoMatch()
	}
}

func (m altLiteralsMatcher) Label() string { return m.label }
