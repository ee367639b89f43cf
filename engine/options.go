package engine

import "github.com/npillmayer/terp/grammar"

// config mirrors the teacher's mode-bitfield-plus-Option pattern (see
// lr/scanner.Option, lr/earley.Option) as a plain struct of settings
// instead of a bitfield, since terp's options are not all booleans.
type config struct {
	ignore      map[grammar.ID]bool
	parallel    bool
	reclaimEvery int
	sampleWindow int
}

func defaultConfig() config {
	return config{
		ignore:       map[grammar.ID]bool{},
		parallel:     false,
		reclaimEvery: 1,
		sampleWindow: 12,
	}
}

// Option configures a Context at construction time.
type Option func(*config)

// WithIgnoredIDs suppresses Begin/End events for the given definition
// IDs — useful for hiding syntactic noise such as whitespace.
func WithIgnoredIDs(ids ...grammar.ID) Option {
	return func(c *config) {
		for _, id := range ids {
			c.ignore[id] = true
		}
	}
}

// WithParallelEvaluation toggles the optional intra-push fan-out of
// per-path match_at+ascend work, one goroutine per path (SPEC_FULL.md §5).
// Disabled by default; evaluation then proceeds one path at a time on
// the caller's goroutine.
func WithParallelEvaluation(b bool) Option {
	return func(c *config) { c.parallel = b }
}

// WithReclaimInterval sets how many successful PushSeq calls elapse
// between buffer-shrink passes (SPEC_FULL.md §9: the source leaves this
// cadence unspecified beyond "periodically and bounded"; terp exposes
// it rather than hard-coding a bit-pattern heuristic). 1 means shrink
// after every push.
func WithReclaimInterval(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.reclaimEvery = n
	}
}

// WithSampleWindow sets how many symbols of context precede the
// mismatch point in diagnostic messages (SPEC_FULL.md §4.4).
func WithSampleWindow(n int) Option {
	return func(c *config) { c.sampleWindow = n }
}
