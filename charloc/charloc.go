/*
Package charloc is the built-in Symbol/Location instantiation for
Unicode scalar values, tracking line and column the way text/scanner
does (LF increments line and resets column; CR resets column).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package charloc

import (
	"fmt"

	"github.com/npillmayer/terp"
	"github.com/npillmayer/terp/engine"
)

// Rune is a terp.Symbol wrapping a single Unicode scalar value.
type Rune rune

var _ terp.Symbol = Rune(0)

func (r Rune) String() string { return string(rune(r)) }

// Of converts a Go string into the terp.Symbol sequence charloc deals
// in, one Rune per scalar value.
func Of(s string) []terp.Symbol {
	syms := make([]terp.Symbol, 0, len(s))
	for _, r := range s {
		syms = append(syms, Rune(r))
	}
	return syms
}

// Less orders two terp.Symbol values known to be Rune, for use with
// match.Range.
func Less(a, b terp.Symbol) bool {
	return a.(Rune) < b.(Rune)
}

// Location is a position into a character stream: an absolute offset,
// a 1-based line, and a column counting the runes read so far on the
// current line (0 at the start of a line), following text/scanner's
// CR/LF rules.
type Location struct {
	Pos        uint64
	Line, Col  int
}

var _ terp.Location = Location{}

// Start is the initial location of a character stream.
var Start = Location{Pos: 0, Line: 1, Col: 0}

func (l Location) Position() uint64 { return l.Pos }

func (l Location) String() string {
	return fmt.Sprintf("%d:%d(%d)", l.Line, l.Col, l.Pos)
}

func (l Location) Less(other terp.Location) bool {
	return l.Pos < other.(Location).Pos
}

// Advance folds a run of Rune symbols into a new Location, applying
// text/scanner's line/column rules: LF increments the line and resets
// the column; CR resets the column (without counting as a new line by
// itself, so a CRLF pair only increments the line once, on the LF);
// any other rune advances the column by one.
func (l Location) Advance(syms []terp.Symbol) terp.Location {
	for _, s := range syms {
		r := rune(s.(Rune))
		switch r {
		case '\n':
			l.Line++
			l.Col = 0
		case '\r':
			l.Col = 0
		default:
			l.Col++
		}
		l.Pos++
	}
	return l
}

// PushStr is a convenience wrapper around ctx.PushSeq for character
// contexts, pushing every Unicode scalar value of s in one call.
func PushStr(ctx *engine.Context, s string) error {
	return ctx.PushSeq(Of(s))
}
