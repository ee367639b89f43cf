package engine_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/terp"
	"github.com/npillmayer/terp/charloc"
	"github.com/npillmayer/terp/engine"
	"github.com/npillmayer/terp/grammar"
	"github.com/npillmayer/terp/match"
)

func isDigit(s terp.Symbol) bool {
	r := rune(s.(charloc.Rune))
	return r >= '0' && r <= '9'
}

func digitTerminal() *grammar.Syntax {
	return grammar.Terminal(match.Predicate("DIGIT", isDigit))
}

// digit3Schema builds A := DIGIT{3} (scenarios 1-3, 8).
func digit3Schema() *grammar.Schema {
	s := grammar.NewSchema()
	s.Define("A", grammar.Repeat(digitTerminal(), grammar.Exactly(3)))
	return s
}

// ambiguousSchema builds A := DIGIT{3} | DIGIT{3,4} (scenario 4).
func ambiguousSchema() *grammar.Schema {
	s := grammar.NewSchema()
	branch1 := grammar.Seq(grammar.Repeat(digitTerminal(), grammar.Exactly(3)))
	branch2 := grammar.Seq(grammar.Repeat(digitTerminal(), grammar.Between(3, 4)))
	s.Define("A", grammar.Choice(branch1, branch2))
	return s
}

// nestedSchema builds B := ALPHA & A, A := DIGIT{3} (scenario 5).
func nestedSchema() *grammar.Schema {
	s := grammar.NewSchema()
	isAlpha := func(sym terp.Symbol) bool {
		r := rune(sym.(charloc.Rune))
		return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
	}
	s.Define("A", grammar.Repeat(digitTerminal(), grammar.Exactly(3)))
	s.Define("B", grammar.Seq(
		grammar.Terminal(match.Predicate("ALPHA", isAlpha)),
		grammar.Ref("A"),
	))
	return s
}

// anbnSchema builds P := 'a' & P & 'b' | "ab" (scenario 7, a^n b^n).
func anbnSchema() *grammar.Schema {
	s := grammar.NewSchema()
	inner := grammar.Seq(
		match1('a'),
		grammar.Ref("P"),
		match1('b'),
	)
	base := grammar.Seq(match2("ab"))
	s.Define("P", grammar.Choice(inner, base))
	return s
}

func match1(r rune) *grammar.Syntax {
	return grammar.Terminal(match.Single(charloc.Rune(r)))
}

func match2(lit string) *grammar.Syntax {
	return grammar.Terminal(match.Literal(lit, charloc.Of(lit)...))
}

func collect(t *testing.T) (func(terp.Event), *[]terp.Event) {
	events := &[]terp.Event{}
	return func(e terp.Event) {
		*events = append(*events, e)
	}, events
}

// TestScenario1FixedRepetitionAccept is SPEC_FULL.md §8 scenario 1.
func TestScenario1FixedRepetitionAccept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terp.engine")
	defer teardown()

	handler, events := collect(t)
	ctx, err := engine.New(digit3Schema(), "A", charloc.Start, handler)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := charloc.PushStr(ctx, "012"); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	if len(*events) != 3 {
		t.Fatalf("expected 3 events (Begin, Fragments, End), got %d: %v", len(*events), *events)
	}
	if (*events)[0].Kind != terp.Begin || (*events)[1].Kind != terp.Fragments || (*events)[2].Kind != terp.End {
		t.Errorf("unexpected event kinds: %v", *events)
	}
	if len((*events)[1].Syms) != 3 {
		t.Errorf("expected 3 fragment symbols, got %d", len((*events)[1].Syms))
	}
}

// TestScenario2FixedRepetitionRejectAtEOF is SPEC_FULL.md §8 scenario 2.
func TestScenario2FixedRepetitionRejectAtEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terp.engine")
	defer teardown()

	handler, _ := collect(t)
	ctx, err := engine.New(digit3Schema(), "A", charloc.Start, handler)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := charloc.PushStr(ctx, "01"); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	err = ctx.Finish()
	if err == nil {
		t.Fatal("expected Finish to fail for short input")
	}
	unmatched, ok := err.(engine.UnmatchedError)
	if !ok {
		t.Fatalf("expected UnmatchedError, got %T: %v", err, err)
	}
	if unmatched.ActualSample != "[EOF]" {
		t.Errorf("expected actual=[EOF], got %q", unmatched.ActualSample)
	}
}

// TestScenario3PostAcceptExtraSymbol is SPEC_FULL.md §8 scenario 3.
func TestScenario3PostAcceptExtraSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terp.engine")
	defer teardown()

	handler, _ := collect(t)
	ctx, err := engine.New(digit3Schema(), "A", charloc.Start, handler)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := charloc.PushStr(ctx, "012"); err != nil {
		t.Fatalf("first push failed: %v", err)
	}
	err = charloc.PushStr(ctx, "3")
	if err == nil {
		t.Fatal("expected second push to fail (EOF expected)")
	}
	if _, ok := err.(engine.EOFExpectedError); !ok {
		t.Fatalf("expected EOFExpectedError, got %T: %v", err, err)
	}
	if err2 := ctx.Finish(); err2 == nil {
		t.Fatal("expected latched failure on further calls")
	} else if _, ok := err2.(engine.PreviousError); !ok {
		t.Fatalf("expected PreviousError, got %T: %v", err2, err2)
	}
}

// TestScenario4AmbiguousGrammar is SPEC_FULL.md §8 scenario 4.
func TestScenario4AmbiguousGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terp.engine")
	defer teardown()

	handler, _ := collect(t)
	ctx, err := engine.New(ambiguousSchema(), "A", charloc.Start, handler)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := charloc.PushStr(ctx, "012"); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	err = ctx.Finish()
	if err == nil {
		t.Fatal("expected Finish to report ambiguity")
	}
	mm, ok := err.(engine.MultipleMatchesError)
	if !ok {
		t.Fatalf("expected MultipleMatchesError, got %T: %v", err, err)
	}
	want := map[string]bool{"[DIGIT{3}]": false, "[DIGIT{3,4}]": false}
	for _, label := range mm.Expected {
		if _, ok := want[label]; !ok {
			t.Errorf("unexpected derivation label %q", label)
			continue
		}
		want[label] = true
	}
	for label, seen := range want {
		if !seen {
			t.Errorf("expected derivation label %q among %v", label, mm.Expected)
		}
	}
}

// TestScenario5NestedNonTerminals is SPEC_FULL.md §8 scenario 5.
func TestScenario5NestedNonTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terp.engine")
	defer teardown()

	handler, events := collect(t)
	ctx, err := engine.New(nestedSchema(), "B", charloc.Start, handler)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := charloc.PushStr(ctx, "E012"); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	var kinds []terp.EventKind
	for _, e := range *events {
		kinds = append(kinds, e.Kind)
	}
	want := []terp.EventKind{terp.Begin, terp.Fragments, terp.Begin, terp.Fragments, terp.End, terp.End}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

// TestScenario7ContextFreeAnBn is SPEC_FULL.md §8 scenario 7.
func TestScenario7ContextFreeAnBn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terp.engine")
	defer teardown()

	for _, in := range []string{"ab", "aabb", "aaabbb"} {
		handler, _ := collect(t)
		ctx, err := engine.New(anbnSchema(), "P", charloc.Start, handler)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := charloc.PushStr(ctx, in); err != nil {
			t.Fatalf("push(%q) failed: %v", in, err)
		}
		if err := ctx.Finish(); err != nil {
			t.Errorf("finish(%q) should succeed, got %v", in, err)
		}
	}

	handler, _ := collect(t)
	ctx, err := engine.New(anbnSchema(), "P", charloc.Start, handler)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	err = charloc.PushStr(ctx, "aabbb")
	if err == nil {
		t.Fatal("expected push of 'aabbb' to be rejected by a^n b^n")
	}
	if _, ok := err.(engine.UnmatchedError); !ok {
		t.Errorf("expected UnmatchedError, got %T: %v", err, err)
	}
	if err := ctx.Finish(); err == nil {
		t.Error("expected Finish to report the latched failure")
	}
}

// TestScenario8ChunkInsensitivity is SPEC_FULL.md §8 scenario 8: all four
// partitions of "012" into non-empty chunks, plus a split with empty chunks.
func TestScenario8ChunkInsensitivity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terp.engine")
	defer teardown()

	splits := [][]string{
		{"012"},
		{"0", "12"},
		{"01", "2"},
		{"0", "1", "2"},
		{"", "0", "1", "2", ""},
	}
	var reference []terp.EventKind
	for i, chunks := range splits {
		handler, events := collect(t)
		ctx, err := engine.New(digit3Schema(), "A", charloc.Start, handler)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for _, c := range chunks {
			if err := charloc.PushStr(ctx, c); err != nil {
				t.Fatalf("push(%q) failed: %v", c, err)
			}
		}
		if err := ctx.Finish(); err != nil {
			t.Fatalf("finish failed for split %v: %v", chunks, err)
		}
		var kinds []terp.EventKind
		for _, e := range *events {
			kinds = append(kinds, e.Kind)
		}
		if i == 0 {
			reference = kinds
			continue
		}
		if len(kinds) != len(reference) {
			t.Errorf("split %v: expected %d events like the unsplit case, got %d", chunks, len(reference), len(kinds))
			continue
		}
		for j := range reference {
			if kinds[j] != reference[j] {
				t.Errorf("split %v: event %d kind mismatch: %s vs reference %s", chunks, j, kinds[j], reference[j])
			}
		}
	}
}
