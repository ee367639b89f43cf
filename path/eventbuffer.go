package path

import "github.com/npillmayer/terp"

// EventBuffer is a Path's append-only, normalized log of pending
// events. Two folding rules apply at every Push:
//
//  1. a new Fragments event extends a tail Fragments event instead of
//     appending a second one;
//  2. a new End(x) immediately following a tail Begin(x) cancels both
//     (an empty span is elided).
type EventBuffer struct {
	events []terp.Event
}

// Push appends e, applying the fold rules.
func (b *EventBuffer) Push(e terp.Event) {
	if n := len(b.events); n > 0 {
		tail := &b.events[n-1]
		if e.Kind == terp.Fragments && tail.Kind == terp.Fragments {
			tail.Syms = append(tail.Syms, e.Syms...)
			tail.Location = e.Location
			return
		}
		if e.Kind == terp.End && tail.Kind == terp.Begin && tail.ID == e.ID {
			b.events = b.events[:n-1]
			return
		}
	}
	b.events = append(b.events, e)
}

// Len returns the number of (already folded) pending events.
func (b *EventBuffer) Len() int { return len(b.events) }

// At returns the i'th pending event.
func (b *EventBuffer) At(i int) terp.Event { return b.events[i] }

// Events returns the full pending slice, caller must not mutate it.
func (b *EventBuffer) Events() []terp.Event { return b.events }

// FlushForwardTo moves the first n pending events out to handler, in
// order, and discards them from the buffer.
func (b *EventBuffer) FlushForwardTo(n int, handler func(terp.Event)) {
	if n > len(b.events) {
		n = len(b.events)
	}
	for i := 0; i < n; i++ {
		handler(b.events[i])
	}
	b.events = append([]terp.Event{}, b.events[n:]...)
}

// ForwardMatchingLength returns the length of the longest common prefix
// of b and other's pending events, under full structural equality —
// the quantity the engine needs to decide how much of b is safe to
// flush across every live path (SPEC_FULL.md §4.3.5).
func (b *EventBuffer) ForwardMatchingLength(other *EventBuffer) int {
	n := len(b.events)
	if len(other.events) < n {
		n = len(other.events)
	}
	for i := 0; i < n; i++ {
		if !b.events[i].Equal(other.events[i]) {
			return i
		}
	}
	return n
}

// Equal reports whether b and other hold the same normalized event
// sequence, used by path-equivalence merging.
func (b *EventBuffer) Equal(other *EventBuffer) bool {
	if len(b.events) != len(other.events) {
		return false
	}
	for i, e := range b.events {
		if !e.Equal(other.events[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy, so forking a Path never lets two
// forks share the same backing array.
func (b *EventBuffer) Clone() *EventBuffer {
	clone := &EventBuffer{events: make([]terp.Event, len(b.events))}
	copy(clone.events, b.events)
	return clone
}
