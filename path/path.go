package path

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/terp"
	"github.com/npillmayer/terp/grammar"
)

// Path is one live interpretation of the input read so far: a call
// stack of Frames over the Schema's Syntax tree, plus a pending event
// buffer. The top-of-stack frame's current child is always a Terminal
// whenever the engine calls MatchAt.
type Path struct {
	Schema *grammar.Schema
	RootID grammar.ID
	Ignore map[grammar.ID]bool // definition IDs whose Begin/End are suppressed

	Stack  []Frame
	Events *EventBuffer

	// BranchTrail records, in order, the printed form of each Choice
	// branch this Path took — enough to tell two distinct derivations
	// of an ambiguous grammar apart in a MultipleMatches diagnostic,
	// without retaining the full fork history lr/sppf's Forest would.
	BranchTrail []string

	// FinalOffset is the global buffer offset this Path had consumed up
	// through once its call stack fully emptied with a match. Only
	// meaningful once Ascend has reported confirmed && matchedFinal.
	FinalOffset uint64
}

// New creates the single initial Path for a parse rooted at rootID: a
// one-frame stack over the root definition, with a Begin(rootID) event
// already queued (SPEC_FULL.md §4.3.1).
func New(schema *grammar.Schema, rootID grammar.ID, ignore map[grammar.ID]bool, start terp.Location) (*Path, error) {
	root, err := schema.ResolveOrError(rootID)
	if err != nil {
		return nil, err
	}
	p := &Path{
		Schema: schema,
		RootID: rootID,
		Ignore: ignore,
		Events: &EventBuffer{},
	}
	if !ignore[rootID] {
		p.Events.Push(terp.Event{Location: start, Kind: terp.Begin, ID: rootID})
	}
	p.Stack = push(nil, root, 0, start)
	return p, nil
}

// Clone returns an independent copy of p: an independent stack slice
// and an independent event buffer, so that forking on a Choice node
// never lets two forks share mutable state.
func (p *Path) Clone() *Path {
	clone := &Path{
		Schema:      p.Schema,
		RootID:      p.RootID,
		Ignore:      p.Ignore,
		Events:      p.Events.Clone(),
		Stack:       make([]Frame, len(p.Stack)),
		BranchTrail: append([]string{}, p.BranchTrail...),
		FinalOffset: p.FinalOffset,
	}
	copy(clone.Stack, p.Stack)
	return clone
}

// Depth returns the current call-stack depth.
func (p *Path) Depth() int { return len(p.Stack) }

// AtTerminal reports whether the top-of-stack frame's current child is
// a Terminal, i.e. the Path is ready for MatchAt.
func (p *Path) AtTerminal() bool {
	if len(p.Stack) == 0 {
		return false
	}
	child := top(p.Stack).Current()
	return child != nil && child.Kind == grammar.KindTerminal
}

// MatchBegin returns the global buffer offset the current terminal's
// match started at — the value the engine's buffer-reclamation pass
// minimizes over every live path.
func (p *Path) MatchBegin() uint64 {
	if len(p.Stack) == 0 {
		return 0
	}
	return top(p.Stack).MatchBegin
}

// Descend walks the Path down from its current position to its next
// Terminal, per SPEC_FULL.md §4.2.1: Alias references push the
// referenced definition (emitting Begin), Sequences push a new frame,
// and Choice forks one clone of the Path per branch. The result is
// always non-empty, and every returned Path's top frame is at a
// Terminal (or, in the degenerate case of an empty Sequence, already
// exhausted and ready for Ascend).
func (p *Path) Descend(loc terp.Location) ([]*Path, error) {
	for {
		f := top(p.Stack)
		child := f.Current()
		if child == nil {
			return []*Path{p}, nil
		}
		switch child.Kind {
		case grammar.KindTerminal:
			return []*Path{p}, nil
		case grammar.KindAlias:
			def, err := p.Schema.ResolveOrError(child.Alias)
			if err != nil {
				return nil, err
			}
			if !p.Ignore[child.Alias] {
				p.Events.Push(terp.Event{Location: loc, Kind: terp.Begin, ID: child.Alias})
			}
			p.Stack = push(p.Stack, def, f.MatchBegin, loc)
			nf := top(p.Stack)
			nf.OpenedAlias = true
			nf.AliasID = child.Alias
		case grammar.KindSequence:
			p.Stack = push(p.Stack, child, f.MatchBegin, loc)
		case grammar.KindChoice:
			results := make([]*Path, 0, len(child.Children))
			for _, branch := range child.Children {
				clone := p.Clone()
				clone.BranchTrail = append(clone.BranchTrail, branch.DistinguishingLabel())
				cf := top(clone.Stack)
				clone.Stack = push(clone.Stack, branch, cf.MatchBegin, loc)
				sub, err := clone.Descend(loc)
				if err != nil {
					return nil, err
				}
				results = append(results, sub...)
			}
			return results, nil
		}
	}
}

// MatchAt evaluates the current terminal's matcher against buffer,
// which must start at the terminal's match origin (buffer[0] ==
// symbol at MatchBegin+MatchLength). It reports whether this attempt
// matched, and whether the decision needs more input before it can be
// trusted (SPEC_FULL.md §4.2.2).
func (p *Path) MatchAt(buffer []terp.Symbol, eof bool, loc terp.Location) (matched bool, needsMore bool) {
	f := top(p.Stack)
	child := f.Current()
	if child.Rep.Saturated(f.Appearances) {
		return true, false
	}
	result := child.Matcher.MatchAt(buffer)
	if eof {
		result.Status = result.Status.CollapseAtEOF()
	}
	switch result.Status {
	case grammar.Matched:
		if result.N > 0 {
			syms := append([]terp.Symbol{}, buffer[:result.N]...)
			p.Events.Push(terp.Event{Location: loc, Kind: terp.Fragments, Syms: syms})
		}
		f.MatchLength += result.N
		return true, false
	case grammar.Unmatched:
		return false, false
	default:
		return false, true
	}
}

// Ascend walks the call stack upward from the top frame after a match
// decision, per SPEC_FULL.md §4.2.3: repeating a child under its
// repetition bound, advancing to the next child, popping exhausted
// frames (emitting End for Alias-opened ones), and bubbling the
// decision up to the parent. It returns whether the Path needs another
// Descend/MatchAt round (needsRedescend), whether the Path's overall
// verdict is now final (confirmed), and if so what that verdict is
// (matchedFinal).
func (p *Path) Ascend(matched bool, eof bool, loc terp.Location) (needsRedescend, confirmed, matchedFinal bool) {
	for {
		if len(p.Stack) == 0 {
			return false, true, matched
		}
		f := top(p.Stack)
		child := f.Current()

		switch {
		case child == nil:
			matched = true
		case matched:
			f.Appearances++
		case child.Rep.Satisfied(f.Appearances):
			matched = true
		default:
			return false, true, false
		}

		if child != nil && !child.Rep.Saturated(f.Appearances) && !eof {
			f.MatchBegin += uint64(f.MatchLength)
			f.MatchLength = 0
			f.ResumeLocation = loc
			return true, false, false
		}

		newBegin := f.MatchBegin
		nextIndex := f.Index + 1
		if child != nil {
			newBegin = f.MatchBegin + uint64(f.MatchLength)
		} else {
			nextIndex = f.Index
		}
		if nextIndex < len(f.Seq.Children) {
			f.ResetChild(nextIndex, newBegin, loc)
			return true, false, false
		}

		var popped Frame
		p.Stack, popped = pop(p.Stack)
		if popped.OpenedAlias {
			p.Events.Push(terp.Event{Kind: terp.End, ID: popped.AliasID, Location: loc})
		}
		if len(p.Stack) == 0 {
			p.FinalOffset = newBegin
			return false, true, true
		}
		parent := top(p.Stack)
		parent.MatchLength = int(newBegin - parent.MatchBegin)
		matched = true
	}
}

// CurrentLocation returns the location the top-of-stack frame last
// resumed matching at, or fallback if the Path's stack is empty.
func (p *Path) CurrentLocation(fallback terp.Location) terp.Location {
	if len(p.Stack) == 0 {
		return fallback
	}
	return top(p.Stack).ResumeLocation
}

// ExpectedLabel renders the syntax node the Path is currently waiting
// to match, for use in Unmatched/MultipleMatches diagnostics.
func (p *Path) ExpectedLabel() string {
	if len(p.Stack) == 0 {
		return "[EOF]"
	}
	child := top(p.Stack).Current()
	if child == nil {
		return "[EOF]"
	}
	return child.Label()
}

// DerivationLabel renders the distinguishing label of the last Choice
// branch this Path took, identifying which derivation of an ambiguous
// grammar it followed (e.g. "[DIGIT{3}]" vs. "[DIGIT{3,4}]"). Falls
// back to the root identifier for a Path that never forked.
func (p *Path) DerivationLabel() string {
	if len(p.BranchTrail) == 0 {
		return fmt.Sprintf("%v", p.RootID)
	}
	return p.BranchTrail[len(p.BranchTrail)-1]
}

// --- equivalence --------------------------------------------------------

// signature is the structural key hashed by Signature: the root
// identity plus, at every stack depth, the frame's Sequence node id,
// current child index, appearance count, and resume location, mirroring the per-item key
// lr/earley hashes its backlinks by.
type signature struct {
	Root  interface{}
	Stack []frameSig
}

type frameSig struct {
	NodeID      int
	Index       int
	Appearances int
	Location    string
}

// Signature returns a short structural hash suitable as a hashset/map
// key for a fast pre-check before the full Equivalent comparison, the
// way lr/earley.hash() keys its backlinks map with structhash instead
// of comparing lr.Item values pairwise.
func (p *Path) Signature() string {
	sig := signature{Root: p.RootID, Stack: make([]frameSig, len(p.Stack))}
	for i, f := range p.Stack {
		sig.Stack[i] = frameSig{
			NodeID:      f.Seq.NodeID,
			Index:       f.Index,
			Appearances: f.Appearances,
			Location:    f.ResumeLocation.String(),
		}
	}
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		// structhash only fails on unhashable types; signature is a
		// plain value struct, so this is unreachable in practice.
		panic(err)
	}
	return h
}

// Equivalent reports full structural equivalence per SPEC_FULL.md
// §4.2.4: same root identity, same stack shape (node id, appearances,
// location at every depth), equal event buffers, and the same
// BranchTrail, so two distinct derivations are never merged into one.
// Equivalent paths may be merged — discard either one.
func (p *Path) Equivalent(other *Path) bool {
	if p.RootID != other.RootID || len(p.Stack) != len(other.Stack) {
		return false
	}
	if len(p.BranchTrail) != len(other.BranchTrail) {
		return false
	}
	for i := range p.BranchTrail {
		if p.BranchTrail[i] != other.BranchTrail[i] {
			return false
		}
	}
	for i := range p.Stack {
		a, b := p.Stack[i], other.Stack[i]
		if a.Seq.NodeID != b.Seq.NodeID || a.Index != b.Index ||
			a.Appearances != b.Appearances || a.ResumeLocation != b.ResumeLocation {
			return false
		}
	}
	return p.Events.Equal(other.Events)
}
