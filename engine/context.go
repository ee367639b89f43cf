package engine

import (
	"sync"

	"github.com/npillmayer/terp"
	"github.com/npillmayer/terp/grammar"
	"github.com/npillmayer/terp/internal/xlog"
	"github.com/npillmayer/terp/path"
)

func tracer() interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Errorf(string, ...interface{})
} {
	return xlog.Tracer("terp.engine")
}

// Context is a parse in progress: it owns the input buffer and the
// three working sets of live Paths (SPEC_FULL.md §4.3), and drives them
// to a fixpoint on every PushSeq/Finish call.
type Context struct {
	schema  *grammar.Schema
	rootID  grammar.ID
	handler func(terp.Event)
	cfg     config

	buffer  []terp.Symbol
	bufHead uint64
	location terp.Location

	ongoing       *pathSet
	prevCompleted *pathSet
	prevUnmatched *pathSet
	maxUnmatchedLoc terp.Location
	haveUnmatchedLoc bool

	pushesSinceReclaim int
	failed             error
}

// New creates a Context parsing against schema, rooted at rootID, with
// start as the initial Location of the (empty) input. Events are
// delivered synchronously to handler as soon as they are confirmed
// across every live interpretation.
func New(schema *grammar.Schema, rootID grammar.ID, start terp.Location, handler func(terp.Event), opts ...Option) (*Context, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	initial, err := path.New(schema, rootID, cfg.ignore, start)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		schema:        schema,
		rootID:        rootID,
		handler:       handler,
		cfg:           cfg,
		location:      start,
		ongoing:       newPathSet(),
		prevCompleted: newPathSet(),
		prevUnmatched: newPathSet(),
	}
	ctx.ongoing.Add(initial)
	return ctx, nil
}

// Push feeds a single symbol into the parse. Equivalent to
// PushSeq([]terp.Symbol{item}).
func (ctx *Context) Push(item terp.Symbol) error {
	return ctx.PushSeq([]terp.Symbol{item})
}

// PushSeq feeds a run of symbols into the parse (SPEC_FULL.md §4.3.2).
func (ctx *Context) PushSeq(items []terp.Symbol) error {
	if ctx.failed != nil {
		return PreviousError{Cause: ctx.failed}
	}
	if len(items) == 0 {
		return nil
	}
	if ctx.ongoing.Len() == 0 && ctx.prevCompleted.Len() > 0 {
		idx := len(ctx.buffer)
		prefix, _ := sampleAround(ctx.buffer, idx, ctx.cfg.sampleWindow)
		actual := renderSymbols(items)
		err := EOFExpectedError{Location: ctx.location, PrefixSample: prefix, ActualSample: actual}
		ctx.failed = err
		return err
	}

	ctx.buffer = append(ctx.buffer, items...)
	ctx.location = ctx.location.Advance(items)
	tracer().Debugf("pushed %d symbols, now at %s", len(items), ctx.location)

	if err := ctx.proceed(false); err != nil {
		ctx.failed = err
		return err
	}
	ctx.flush()

	if ctx.ongoing.Len() == 0 && ctx.prevCompleted.Len() == 0 {
		err := ctx.buildUnmatchedError()
		ctx.failed = err
		return err
	}

	ctx.pushesSinceReclaim++
	if ctx.pushesSinceReclaim >= ctx.cfg.reclaimEvery {
		ctx.shrink()
		ctx.pushesSinceReclaim = 0
	}
	return nil
}

// Finish signals end of input (SPEC_FULL.md §4.3.3).
func (ctx *Context) Finish() error {
	if ctx.failed != nil {
		return PreviousError{Cause: ctx.failed}
	}
	for ctx.ongoing.Len() > 0 {
		if err := ctx.proceed(true); err != nil {
			ctx.failed = err
			return err
		}
	}
	switch ctx.prevCompleted.Len() {
	case 1:
		p := ctx.prevCompleted.Slice()[0]
		if !ctx.cfg.ignore[ctx.rootID] {
			p.Events.Push(terp.Event{Location: ctx.location, Kind: terp.End, ID: ctx.rootID})
		}
		p.Events.FlushForwardTo(p.Events.Len(), ctx.handler)
		return nil
	case 0:
		ctx.flush()
		err := ctx.buildUnmatchedError()
		ctx.failed = err
		return err
	default:
		ctx.flush()
		err := ctx.buildMultipleMatchesError()
		ctx.failed = err
		return err
	}
}

// bufferFrom returns the slice of the live buffer starting at the given
// global offset, which must be >= the buffer's current head.
func (ctx *Context) bufferFrom(begin uint64) []terp.Symbol {
	return ctx.buffer[begin-ctx.bufHead:]
}

// runParallel invokes fn(i) for every i in [0,n): serially when
// parallel is false or n<2, otherwise one goroutine per index. Each
// fn(i) must write only to its own slot of whatever it closes over —
// runParallel applies no further synchronization, matching SPEC_FULL.md
// §5's contract that per-path match_at/ascend/descend work is
// independent and only the merge back into the working sets must be
// single-writer (left to the caller, after runParallel returns).
func runParallel(parallel bool, n int, fn func(i int)) {
	if !parallel || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			fn(i)
		}()
	}
	wg.Wait()
}

// stepOutcome is the result of one independent per-path match_at+ascend
// round (and, if ascend demands it, the following descend) — the unit
// of work SPEC_FULL.md §5 allows onto a worker pool when more than one
// path is evaluating.
type stepOutcome struct {
	path         *path.Path
	needsMore    bool
	redescended  []*path.Path
	confirmed    bool
	matchedFinal bool
	err          error
}

// evalStep computes p's outcome for this round. It touches only p's
// own (owned) stack and event buffer plus the Context's read-only
// buffer/location, so it is safe to run concurrently with evalStep
// calls for every other path in the same round.
func (ctx *Context) evalStep(p *path.Path, eof bool) stepOutcome {
	var matched, needsMore bool
	if p.AtTerminal() {
		matched, needsMore = p.MatchAt(ctx.bufferFrom(p.MatchBegin()), eof, ctx.location)
	} else {
		matched = true // degenerate empty-sequence frame
	}
	if needsMore {
		return stepOutcome{path: p, needsMore: true}
	}
	needsRedescend, confirmed, matchedFinal := p.Ascend(matched, eof, ctx.location)
	if needsRedescend {
		descended, err := p.Descend(ctx.location)
		if err != nil {
			return stepOutcome{err: err}
		}
		return stepOutcome{redescended: descended}
	}
	if !confirmed {
		// Unreachable given Ascend's contract, but keep the fixpoint
		// well-defined if it ever returns otherwise.
		return stepOutcome{}
	}
	return stepOutcome{path: p, confirmed: true, matchedFinal: matchedFinal}
}

// proceed runs the descend/match/ascend cycle to a fixpoint, per
// SPEC_FULL.md §4.3.4. When the Context was built with
// WithParallelEvaluation(true) and more than one path is live, each
// round's independent per-path work fans out over one goroutine per
// path; the
// reduction back into the working sets always runs serially on the
// caller's goroutine (SPEC_FULL.md §5).
func (ctx *Context) proceed(eof bool) error {
	if !eof {
		ctx.prevCompleted.Clear()
		ctx.prevUnmatched.Clear()
		ctx.haveUnmatchedLoc = false
	}

	evaluating := newPathSet()
	ongoingSlice := ctx.ongoing.Slice()
	descended := make([][]*path.Path, len(ongoingSlice))
	errs := make([]error, len(ongoingSlice))
	runParallel(ctx.cfg.parallel, len(ongoingSlice), func(i int) {
		descended[i], errs[i] = ongoingSlice[i].Descend(ctx.location)
	})
	for i, err := range errs {
		if err != nil {
			tracer().Errorf("descend failed: %v", err)
			return err
		}
		for _, dp := range descended[i] {
			evaluating.Add(dp)
		}
	}
	ctx.ongoing.Clear()

	for evaluating.Len() > 0 {
		items := evaluating.Slice()
		outcomes := make([]stepOutcome, len(items))
		runParallel(ctx.cfg.parallel, len(items), func(i int) {
			outcomes[i] = ctx.evalStep(items[i], eof)
		})

		next := newPathSet()
		for _, oc := range outcomes {
			if oc.err != nil {
				tracer().Errorf("ascend/descend failed: %v", oc.err)
				return oc.err
			}
			switch {
			case oc.needsMore:
				ctx.ongoing.Add(oc.path)
			case oc.redescended != nil:
				for _, dp := range oc.redescended {
					next.Add(dp)
				}
			case oc.confirmed:
				ctx.route(oc.path, oc.matchedFinal)
			}
		}
		evaluating = next
	}
	return nil
}

// route files a confirmed Path into prev_completed or prev_unmatched,
// applying the position-dominance rule from SPEC_FULL.md §4.3.4.
func (ctx *Context) route(p *path.Path, matchedFinal bool) {
	if matchedFinal && p.FinalOffset >= ctx.location.Position() {
		tracer().Infof("path completed at %s", ctx.location)
		ctx.prevCompleted.Add(p)
		return
	}
	ctx.addUnmatched(p)
}

func (ctx *Context) addUnmatched(p *path.Path) {
	loc := p.CurrentLocation(ctx.location)
	if !ctx.haveUnmatchedLoc {
		ctx.maxUnmatchedLoc = loc
		ctx.haveUnmatchedLoc = true
		ctx.prevUnmatched.Add(p)
		return
	}
	switch {
	case loc.Position() > ctx.maxUnmatchedLoc.Position():
		ctx.prevUnmatched.Clear()
		ctx.maxUnmatchedLoc = loc
		ctx.prevUnmatched.Add(p)
	case loc.Position() == ctx.maxUnmatchedLoc.Position():
		ctx.prevUnmatched.Add(p)
	}
}

// flush delivers every event that is a common prefix across every
// currently live interpretation (SPEC_FULL.md §4.3.5). If no path is
// currently ongoing or completed — i.e. this call is about to report a
// failure — it falls back to the dominant prev_unmatched paths, so a
// failing push or Finish still surfaces whatever was confirmed before
// the failure point.
func (ctx *Context) flush() {
	stillOngoing := ctx.ongoing.Len()
	group := append(ctx.ongoing.Slice(), ctx.prevCompleted.Slice()...)
	sealed := false
	if len(group) == 0 {
		group = ctx.prevUnmatched.Slice()
		stillOngoing = 0 // prev_unmatched paths are final, never re-extended
		sealed = true
	}
	if len(group) == 0 {
		return
	}

	n := group[0].Events.Len()
	for _, p := range group[1:] {
		m := group[0].Events.ForwardMatchingLength(p.Events)
		if m < n {
			n = m
		}
	}

	// A path still in ongoing may extend its tail Fragments event with
	// a later push — the fold rule merges any adjacent Fragments
	// regardless of which terminal produced them (EventBuffer.Push) —
	// so flushing it now would split one logical fragment run across a
	// chunk boundary (SPEC_FULL.md I1/I2). Withhold it until something
	// seals it: a Begin/End in between, or the path's own completion.
	if !sealed && stillOngoing > 0 && n > 0 {
		if tail := group[0].Events.At(n - 1); tail.Kind == terp.Fragments {
			n--
		}
	}

	group[0].Events.FlushForwardTo(n, ctx.handler)
	for _, p := range group[1:] {
		p.Events.FlushForwardTo(n, func(terp.Event) {})
	}
}

// shrink reclaims the prefix of the buffer no live path still
// references (SPEC_FULL.md §4.3.6).
func (ctx *Context) shrink() {
	min, any := uint64(0), false
	consider := func(p *path.Path) {
		b := p.MatchBegin()
		if !any || b < min {
			min = b
			any = true
		}
	}
	ctx.ongoing.Each(consider)
	ctx.prevCompleted.Each(consider)
	ctx.prevUnmatched.Each(consider)
	if !any || min <= ctx.bufHead {
		return
	}
	drop := min - ctx.bufHead
	if drop > uint64(len(ctx.buffer)) {
		drop = uint64(len(ctx.buffer))
	}
	tracer().Debugf("reclaiming %d symbols from buffer head", drop)
	ctx.buffer = append([]terp.Symbol{}, ctx.buffer[drop:]...)
	ctx.bufHead += drop
}

func (ctx *Context) buildUnmatchedError() error {
	candidates := ctx.prevUnmatched.Slice()
	loc := ctx.location
	var expected []string
	for _, p := range candidates {
		expected = append(expected, p.ExpectedLabel())
		loc = p.CurrentLocation(ctx.location)
	}
	if len(expected) == 0 {
		expected = []string{"[EOF]"}
	}
	idx := int(loc.Position()) - int(ctx.bufHead)
	prefix, actual := sampleAround(ctx.buffer, idx, ctx.cfg.sampleWindow)
	return UnmatchedError{Location: loc, PrefixSample: prefix, ActualSample: actual, Expected: expected}
}

func (ctx *Context) buildMultipleMatchesError() error {
	candidates := ctx.prevCompleted.Slice()
	var expected []string
	for _, p := range candidates {
		expected = append(expected, p.DerivationLabel())
	}
	idx := len(ctx.buffer)
	prefix, _ := sampleAround(ctx.buffer, idx, ctx.cfg.sampleWindow)
	return MultipleMatchesError{Location: ctx.location, PrefixSample: prefix, Expected: expected}
}
