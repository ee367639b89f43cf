package grammar

import "fmt"

// ID identifies a top-level definition in a Schema. Client code
// typically uses a small comparable type (a string or an int-based enum);
// ID is kept as interface{} so the engine stays monomorphic over the
// client's choice, mirroring how the teacher's Tag/TokType identifiers
// are plain client-defined values rather than a fixed enum.
type ID interface{}

// Kind distinguishes the four Syntax node variants.
type Kind int

const (
	KindTerminal Kind = iota
	KindAlias
	KindSequence
	KindChoice
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "Terminal"
	case KindAlias:
		return "Alias"
	case KindSequence:
		return "Sequence"
	case KindChoice:
		return "Choice"
	default:
		return "?"
	}
}

// Syntax is one node of the immutable grammar tree. The Kind field
// selects which of Matcher / Alias / Children is meaningful:
//
//   - KindTerminal: Matcher is set, Children/Alias are unused.
//   - KindAlias:    Alias names a top-level definition in the Schema.
//   - KindSequence: Children are matched in order.
//   - KindChoice:   each of Children must itself be a Sequence; the
//     engine forks one path per branch.
//
// Every node carries a Repetition bound and a stable serial NodeID used
// for identity comparisons during path-equivalence merging.
type Syntax struct {
	NodeID     int
	Kind       Kind
	Rep        Repetition
	Matcher    Matcher
	Alias      ID
	Children   []*Syntax
	label      string // optional human-facing name, for diagnostics/Dump
}

// Label returns a diagnostic label for this node: its matcher's label
// for terminals, the alias ID for aliases, or a generic bracketed form
// for sequences/choices — mirroring the "[DIGIT{3}]" style used in
// SPEC_FULL.md's scenario diagnostics.
func (s *Syntax) Label() string {
	var inner string
	switch s.Kind {
	case KindTerminal:
		inner = s.Matcher.Label()
	case KindAlias:
		inner = fmt.Sprintf("%v", s.Alias)
	case KindSequence:
		inner = "seq"
		if s.label != "" {
			inner = s.label
		}
	case KindChoice:
		inner = "choice"
	}
	return fmt.Sprintf("[%s%s]", inner, s.Rep)
}

func (s *Syntax) String() string { return s.Label() }

// DistinguishingLabel renders the label that best identifies this node
// for an ambiguity diagnostic. A Sequence wrapping exactly one child —
// the shape Choice normalizes a bare Terminal/Alias branch into — has
// no label of its own worth showing (Label() would just say "[seq]"),
// so it defers to that child; every other node renders as Label().
func (s *Syntax) DistinguishingLabel() string {
	if s.Kind == KindSequence && len(s.Children) == 1 {
		return s.Children[0].Label()
	}
	return s.Label()
}

// --- construction -----------------------------------------------------

// idGen is a process-wide serial generator for Syntax.NodeID, mirroring
// the teacher's package-level serialID used for symbol/tag identity.
var idGen int

func nextNodeID() int {
	idGen++
	return idGen
}

// Terminal builds a leaf node wrapping m, with repetition Once unless
// overridden by Repeat.
func Terminal(m Matcher) *Syntax {
	return &Syntax{NodeID: nextNodeID(), Kind: KindTerminal, Rep: Once, Matcher: m}
}

// Ref builds a reference to a top-level definition named id.
func Ref(id ID) *Syntax {
	return &Syntax{NodeID: nextNodeID(), Kind: KindAlias, Rep: Once, Alias: id}
}

// Seq builds a Sequence of the given children, matched in order.
func Seq(children ...*Syntax) *Syntax {
	return &Syntax{NodeID: nextNodeID(), Kind: KindSequence, Rep: Once, Children: children}
}

// Choice builds an alternation. Each branch is normalized to a Sequence
// with repetition Once if it is not already one, matching the builder
// contract in SPEC_FULL.md §6.
func Choice(branches ...*Syntax) *Syntax {
	normalized := make([]*Syntax, len(branches))
	for i, b := range branches {
		if b.Kind != KindSequence {
			normalized[i] = Seq(b)
		} else {
			normalized[i] = b
		}
	}
	return &Syntax{NodeID: nextNodeID(), Kind: KindChoice, Rep: Once, Children: normalized}
}

// Repeat returns a copy of s with its repetition bound replaced by rep.
// Syntax nodes are otherwise immutable once built; Repeat is the one
// builder-time mutation allowed, applied before a node is linked into a
// Schema.
func Repeat(s *Syntax, rep Repetition) *Syntax {
	clone := *s
	clone.NodeID = nextNodeID()
	clone.Rep = rep
	return &clone
}

// Named attaches a diagnostic label to a Sequence; Label renders it in
// place of the generic "seq". Dump does not show it.
func Named(label string, s *Syntax) *Syntax {
	clone := *s
	clone.label = label
	return &clone
}
