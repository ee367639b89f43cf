package grammar

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSchemaDefineResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terp.grammar")
	defer teardown()

	s := NewSchema()
	term := Terminal(NewMatcherFunc("X", nil))
	s.Define("A", term)

	def, ok := s.Resolve("A")
	if !ok {
		t.Fatal("expected definition A to resolve")
	}
	if def.Kind != KindSequence {
		t.Errorf("Define should wrap a bare Terminal in a Sequence, got %s", def.Kind)
	}

	if _, ok := s.Resolve("B"); ok {
		t.Error("expected B to be undefined")
	}
	if _, err := s.ResolveOrError("B"); err == nil {
		t.Error("expected ResolveOrError(B) to fail")
	}
}

func TestSchemaEachIsOrdered(t *testing.T) {
	s := NewSchema()
	s.Define("B", Terminal(NewMatcherFunc("b", nil)))
	s.Define("A", Terminal(NewMatcherFunc("a", nil)))

	var seen []string
	s.Each(func(id ID, _ *Syntax) {
		seen = append(seen, id.(string))
	})
	if len(seen) != 2 || seen[0] != "A" || seen[1] != "B" {
		t.Errorf("expected lexicographic order [A B], got %v", seen)
	}
}

func TestSchemaDump(t *testing.T) {
	s := NewSchema()
	s.Define("A", Choice(Terminal(NewMatcherFunc("x", nil)), Terminal(NewMatcherFunc("y", nil))))
	var buf bytes.Buffer
	if err := s.Dump(&buf); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty dump output")
	}
}
