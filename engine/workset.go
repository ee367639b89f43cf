package engine

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/terp/path"
)

// pathSet is one of the engine's three working sets (ongoing,
// prev_completed, prev_unmatched). It keeps paths in an arraylist for
// ordered iteration (delivery order must match acceptance order) and a
// hashset of structural signatures for an O(1) "maybe already present"
// pre-check before the full path.Equivalent comparison runs — the same
// two-tier shape lr/tables.go uses gods' list/set types for when
// building CFSM state sets, and the way lr/earley keys its backlinks
// map with a structhash signature before trusting an exact match.
type pathSet struct {
	paths *arraylist.List
	seen  *hashset.Set
}

func newPathSet() *pathSet {
	return &pathSet{paths: arraylist.New(), seen: hashset.New()}
}

// Add inserts p unless an already-present path is structurally
// equivalent to it (§4.2.4), in which case p is discarded and Add
// reports false.
func (s *pathSet) Add(p *path.Path) bool {
	sig := p.Signature()
	if s.seen.Contains(sig) {
		for _, v := range s.paths.Values() {
			if v.(*path.Path).Equivalent(p) {
				return false
			}
		}
	}
	s.seen.Add(sig)
	s.paths.Add(p)
	return true
}

// Clear empties the set.
func (s *pathSet) Clear() {
	s.paths.Clear()
	s.seen.Clear()
}

// Len returns the number of paths currently held.
func (s *pathSet) Len() int { return s.paths.Size() }

// Each iterates the set in insertion order.
func (s *pathSet) Each(f func(*path.Path)) {
	for _, v := range s.paths.Values() {
		f(v.(*path.Path))
	}
}

// Slice returns a snapshot slice of the held paths, in insertion order.
func (s *pathSet) Slice() []*path.Path {
	out := make([]*path.Path, 0, s.paths.Size())
	s.Each(func(p *path.Path) { out = append(out, p) })
	return out
}
