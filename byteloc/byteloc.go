/*
Package byteloc is the built-in Symbol/Location instantiation for
unsigned 8-bit bytes, with a Location that is a bare offset.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package byteloc

import (
	"fmt"

	"github.com/npillmayer/terp"
)

// Byte is a terp.Symbol wrapping a single byte. It also implements
// match.ByteSymbol, so it can drive the Aho-Corasick-backed
// alternative-of-literals matcher.
type Byte byte

var _ terp.Symbol = Byte(0)

func (b Byte) String() string { return fmt.Sprintf("%#02x", byte(b)) }

// Byte returns the underlying byte value.
func (b Byte) Byte() byte { return byte(b) }

// Of converts a Go string into the terp.Symbol sequence byteloc deals
// in, one Byte per underlying byte (not per rune).
func Of(s string) []terp.Symbol {
	bs := []byte(s)
	syms := make([]terp.Symbol, len(bs))
	for i, b := range bs {
		syms[i] = Byte(b)
	}
	return syms
}

// Less orders two terp.Symbol values known to be Byte, for use with
// match.Range.
func Less(a, b terp.Symbol) bool {
	return a.(Byte) < b.(Byte)
}

// Location is a bare, zero-based offset into a byte stream.
type Location uint64

var _ terp.Location = Location(0)

// Start is the initial location of a byte stream.
var Start = Location(0)

func (l Location) Position() uint64 { return uint64(l) }

func (l Location) String() string { return fmt.Sprintf("%d", uint64(l)) }

func (l Location) Less(other terp.Location) bool {
	return l < other.(Location)
}

func (l Location) Advance(syms []terp.Symbol) terp.Location {
	return l + Location(len(syms))
}
