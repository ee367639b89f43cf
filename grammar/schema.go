package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/terp/internal/xlog"
)

func tracer() interface {
	Debugf(string, ...interface{})
	Errorf(string, ...interface{})
} {
	return xlog.Tracer("terp.grammar")
}

// Schema is the immutable collection of top-level definitions a parse
// context works against. It is built once (via NewSchema + Define) and
// then shared, read-only, by every Context/Path created from it —
// mirroring how a SymbolTable is built once per scope and resolved many
// times afterwards.
type Schema struct {
	definitions map[ID]*Syntax
	order       *treeset.Set // of string-rendered IDs, for deterministic Each/Dump order
}

// NewSchema creates an empty schema; definitions are added with Define.
func NewSchema() *Schema {
	return &Schema{
		definitions: make(map[ID]*Syntax),
		order:       treeset.NewWith(utils.StringComparator),
	}
}

// Define registers a top-level definition under id. The root must
// eventually be a Sequence; Define wraps bare Terminal/Alias/Choice
// values in an implicit Sequence with repetition Once, satisfying the
// "root must be a Sequence" contract without burdening callers.
// Overwrites any previous definition for id, returning the old one (or
// nil), the way SymbolTable.DefineTag reports the replaced tag.
func (s *Schema) Define(id ID, root *Syntax) *Syntax {
	if root.Kind != KindSequence {
		root = Seq(root)
	}
	old := s.definitions[id]
	s.definitions[id] = root
	s.order.Add(fmt.Sprintf("%v", id))
	tracer().Debugf("defining %v", id)
	return old
}

// Resolve looks up a top-level definition. The second return value
// reports whether it was found — callers that need a hard failure on a
// missing ID should use ResolveOrError.
func (s *Schema) Resolve(id ID) (*Syntax, bool) {
	def, ok := s.definitions[id]
	return def, ok
}

// ResolveOrError looks up a top-level definition, returning
// UndefinedIDError(id) if absent.
func (s *Schema) ResolveOrError(id ID) (*Syntax, error) {
	def, ok := s.Resolve(id)
	if !ok {
		return nil, UndefinedIDError{ID: id}
	}
	return def, nil
}

// Size returns the number of definitions in the schema.
func (s *Schema) Size() int {
	return len(s.definitions)
}

// Each iterates over every definition in a deterministic (lexicographic
// by rendered ID) order, the way SymbolTable.Each iterates a symbol
// table — except ordered, since diagnostics and Dump need stable output.
func (s *Schema) Each(f func(id ID, root *Syntax)) {
	for _, v := range s.order.Values() {
		key := v.(string)
		for id, root := range s.definitions {
			if fmt.Sprintf("%v", id) == key {
				f(id, root)
				break
			}
		}
	}
}

// UndefinedIDError reports that a grammar references a definition that
// was never added to the Schema — the engine's sole structural error
// (§7 of the design notes).
type UndefinedIDError struct {
	ID ID
}

func (e UndefinedIDError) Error() string {
	return fmt.Sprintf("terp: undefined id %v", e.ID)
}
