package match

import (
	"testing"

	"github.com/npillmayer/terp"
	"github.com/npillmayer/terp/byteloc"
	"github.com/npillmayer/terp/charloc"
	"github.com/npillmayer/terp/grammar"
)

func isDigit(s terp.Symbol) bool {
	r := rune(s.(charloc.Rune))
	return r >= '0' && r <= '9'
}

func TestPredicateMatcher(t *testing.T) {
	digit := Predicate("DIGIT", isDigit)

	if r := digit.MatchAt(nil); r.Status != grammar.UnmatchedAndMore {
		t.Errorf("empty buffer should need more input, got %s", r.Status)
	}
	if r := digit.MatchAt(charloc.Of("5")); r.Status != grammar.Matched || r.N != 1 {
		t.Errorf("'5' should match 1 symbol, got %s/%d", r.Status, r.N)
	}
	if r := digit.MatchAt(charloc.Of("x")); r.Status != grammar.Unmatched {
		t.Errorf("'x' should not match DIGIT, got %s", r.Status)
	}
}

func TestSingleMatcher(t *testing.T) {
	m := Single(charloc.Rune('a'))
	if r := m.MatchAt(charloc.Of("a")); r.Status != grammar.Matched {
		t.Errorf("expected match on 'a', got %s", r.Status)
	}
	if r := m.MatchAt(charloc.Of("b")); r.Status != grammar.Unmatched {
		t.Errorf("expected no match on 'b', got %s", r.Status)
	}
}

func TestRangeMatcher(t *testing.T) {
	m := Range("a-z", charloc.Rune('a'), charloc.Rune('z'), charloc.Less)
	if r := m.MatchAt(charloc.Of("m")); r.Status != grammar.Matched {
		t.Errorf("expected 'm' in a-z, got %s", r.Status)
	}
	if r := m.MatchAt(charloc.Of("M")); r.Status != grammar.Unmatched {
		t.Errorf("expected 'M' not in a-z, got %s", r.Status)
	}
}

func TestLiteralMatcher(t *testing.T) {
	m := Literal("terp", charloc.Of("terp")...)
	if r := m.MatchAt(charloc.Of("terp")); r.Status != grammar.Matched || r.N != 4 {
		t.Errorf("expected full literal match, got %s/%d", r.Status, r.N)
	}
	if r := m.MatchAt(charloc.Of("te")); r.Status != grammar.UnmatchedAndMore {
		t.Errorf("expected proper prefix to need more input, got %s", r.Status)
	}
	if r := m.MatchAt(charloc.Of("xerp")); r.Status != grammar.Unmatched {
		t.Errorf("expected mismatch, got %s", r.Status)
	}
}

func TestAltLiterals(t *testing.T) {
	m := AltLiterals("foo", "foobar", "baz")

	if r := m.MatchAt(byteloc.Of("foobar")); r.Status != grammar.Matched || r.N != 6 {
		t.Errorf("expected longest literal 'foobar' (6), got %s/%d", r.Status, r.N)
	}
	if r := m.MatchAt(byteloc.Of("foo")); r.Status != grammar.MatchedAndMore || r.N != 3 {
		t.Errorf("expected 'foo' to match but extendable to 'foobar', got %s/%d", r.Status, r.N)
	}
	if r := m.MatchAt(byteloc.Of("fo")); r.Status != grammar.UnmatchedAndMore {
		t.Errorf("expected proper prefix 'fo' to need more input, got %s", r.Status)
	}
	if r := m.MatchAt(byteloc.Of("qux")); r.Status != grammar.Unmatched {
		t.Errorf("expected 'qux' to not match, got %s", r.Status)
	}
}
