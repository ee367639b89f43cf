package path

import (
	"github.com/npillmayer/terp"
	"github.com/npillmayer/terp/grammar"
	"github.com/npillmayer/terp/internal/xlog"
)

func tracer() interface {
	Debugf(string, ...interface{})
} {
	return xlog.Tracer("terp.path")
}

// Frame is one level of a Path's call stack: the Sequence being walked,
// the index of its currently-evaluated child, and the match state for
// that child. Frames are kept in a slice rather than linked by a parent
// pointer — unlike the teacher's DynamicMemoryFrame chain — so that
// forking a Path on a Choice is a single slice copy instead of a walk
// that rebuilds a parent chain node by node.
type Frame struct {
	Seq   *grammar.Syntax // the Sequence (or top-level definition) this frame walks
	Index int             // index of the child currently being matched

	// Per-child match state, reset every time Index advances.
	Appearances    int          // times the current child has matched so far
	MatchBegin     uint64       // global buffer offset the current child's match started at
	MatchLength    int          // symbols tentatively consumed by the current child
	ResumeLocation terp.Location // location at which the current child resumed matching

	OpenedAlias bool      // true if entering this frame emitted Begin(AliasID)
	AliasID     grammar.ID
}

// Current returns the child node this frame is presently evaluating, or
// nil if the frame has walked past its last child.
func (f *Frame) Current() *grammar.Syntax {
	if f.Index < 0 || f.Index >= len(f.Seq.Children) {
		return nil
	}
	return f.Seq.Children[f.Index]
}

// ResetChild clears the per-child match state for a fresh child at the
// given index, resuming at loc.
func (f *Frame) ResetChild(index int, begin uint64, loc terp.Location) {
	f.Index = index
	f.Appearances = 0
	f.MatchBegin = begin
	f.MatchLength = 0
	f.ResumeLocation = loc
}

// push appends a new frame onto the stack and returns it.
func push(stack []Frame, seq *grammar.Syntax, begin uint64, loc terp.Location) []Frame {
	tracer().Debugf("push frame %s", seq)
	return append(stack, Frame{Seq: seq, Index: 0, MatchBegin: begin, ResumeLocation: loc})
}

// pop removes and returns the top frame. It panics on an empty stack,
// mirroring runtime.MemoryFrameStack's guard against popping past the
// bottom — a Path should never attempt this; it is a programming error
// in the engine, not a recoverable runtime condition.
func pop(stack []Frame) ([]Frame, Frame) {
	if len(stack) == 0 {
		panic("path: attempt to pop frame from empty call stack")
	}
	top := stack[len(stack)-1]
	tracer().Debugf("pop frame %s", top.Seq)
	return stack[:len(stack)-1], top
}

// top returns a pointer to the top-of-stack frame. It panics on an
// empty stack, for the same reason as pop.
func top(stack []Frame) *Frame {
	if len(stack) == 0 {
		panic("path: attempt to access top frame of empty call stack")
	}
	return &stack[len(stack)-1]
}
