package engine

import (
	"strings"

	"github.com/npillmayer/terp"
)

// renderSymbols joins a run of symbols into a single diagnostic string.
func renderSymbols(syms []terp.Symbol) string {
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s.String())
	}
	return b.String()
}

// sampleAround builds the bounded "prefix ... [expected] [actual] ..."
// style window SPEC_FULL.md §4.4 describes: up to window symbols
// preceding the mismatch (prefixed with an ellipsis if more unshown
// input precedes it), and up to window symbols at/after the mismatch
// (suffixed with an ellipsis if more remains), or "[EOF]" if the
// mismatch point is at the end of the buffer.
func sampleAround(buffer []terp.Symbol, idx int, window int) (prefixSample, actualSample string) {
	start := idx - window
	ellipsisBefore := start > 0
	if start < 0 {
		start = 0
	}
	prefix := renderSymbols(buffer[start:idx])
	if ellipsisBefore {
		prefix = "..." + prefix
	}

	if idx >= len(buffer) {
		return prefix, "[EOF]"
	}
	end := idx + window
	ellipsisAfter := end < len(buffer)
	if end > len(buffer) {
		end = len(buffer)
	}
	actual := renderSymbols(buffer[idx:end])
	if ellipsisAfter {
		actual += "..."
	}
	return prefix, actual
}
