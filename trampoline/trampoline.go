/*
Package trampoline implements the worklist scheduler at the heart of this
engine: a FIFO call queue of pending thunks and a two-level memoization
table keyed by (parser identity, input position).

The two-level table shape — a map of maps, the outer keyed by identity and
the inner by position, leaf sets holding the payload — solves the same
problem a shared packed parse forest solves for finding (or lazily
creating) a node for a given span: cheap, correct identification of
previously-seen (parser, position) work so it is never redone.
*/
package trampoline

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ash-lang/gll/value"
)

func tracer() tracing.Trace {
	return tracing.Select("gll.trampoline")
}

// Position is an offset into the shared input buffer. Equality is plain
// integer equality, which keeps memoization keys cheap.
type Position = int

// Continuation receives one distinct result for the (parser, position) key
// it was registered against. The trampoline guarantees it fires exactly
// once per distinct result in that key's result set, regardless of whether
// the continuation or the result arrives first.
type Continuation func(value.Result)

// ParserFunc is the protocol every combinator implements: given a position,
// a trampoline to route recursive calls through, and a continuation,
// either invoke the continuation directly (deterministic success) or
// enqueue work on the trampoline.
type ParserFunc func(pos Position, tr *Trampoline, k Continuation)

// Node is a parser's stable identity. Every combinator instance is backed
// by exactly one *Node, constructed once; package combinator's constructors
// memoize on their arguments so that e.g. Terminal("a") called twice
// returns the same *Node — without that, recursive re-entry into "the same"
// parser would look like two different parsers to the memo table below,
// and left recursion would never terminate.
type Node struct {
	Name string // for tracing/debugging only; not part of identity
	Run  ParserFunc
}

// Parser is the handle callers and combinators hold onto. Its identity
// (for memoization) is its pointer value.
type Parser = *Node

// NewNode wraps a ParserFunc in a fresh, stable identity.
func NewNode(name string, run ParserFunc) Parser {
	return &Node{Name: name, Run: run}
}

// memoEntry is the payload at a (parser, position) leaf: every
// continuation ever registered here, and every distinct result discovered
// so far.
type memoEntry struct {
	continuations *arraylist.List    // ordered list of Continuation
	seen          map[string]struct{} // value.Fingerprint → present
	results       []value.Result     // insertion order, for replay
}

func newMemoEntry() *memoEntry {
	return &memoEntry{
		continuations: arraylist.New(),
		seen:          make(map[string]struct{}),
	}
}

// fire records a newly discovered result (if it is in fact new) and
// schedules every continuation currently registered against this entry to
// run against it. Called as the "inner continuation" a Push installs when
// it first invokes a parser.
func (e *memoEntry) fire(t *Trampoline, r value.Result) {
	fp := value.Fingerprint(r)
	if _, dup := e.seen[fp]; dup {
		tracer().Debugf("duplicate result %s, dropped", r.Value.String())
		return
	}
	e.seen[fp] = struct{}{}
	e.results = append(e.results, r)
	e.continuations.Each(func(_ int, c interface{}) {
		k := c.(Continuation)
		result := r
		t.PushStack(func() { k(result) })
	})
}

// Trampoline hosts the worklist and owns the memo table for a single
// in-flight parse: the memo table belongs exclusively to one trampoline,
// which belongs to one in-flight parse. It also carries the input string
// being parsed: parsers are immutable and shared across many parses, so the
// input cannot live on a Node and must travel with the per-parse trampoline
// instead.
type Trampoline struct {
	queue     *linkedlistqueue.Queue
	memo      map[Parser]map[Position]*memoEntry
	input     string
	debugDump bool
}

// Option configures a Trampoline at construction time, mirroring the
// bool-setter functional-option style earley.Option uses for things like
// GenerateTree/StoreTokens.
type Option func(*Trampoline)

// WithDebugDump makes Drain log the full memo table via DumpMemo once the
// call queue empties. Off by default; useful when diagnosing a grammar
// that produces far more ambiguity than expected.
func WithDebugDump(enabled bool) Option {
	return func(t *Trampoline) { t.debugDump = enabled }
}

// New creates an empty trampoline with an empty memo table, bound to input
// for the duration of one parse. Tests that never invoke Terminal-style
// input-reading combinators may pass "".
func New(input string, opts ...Option) *Trampoline {
	t := &Trampoline{
		queue: linkedlistqueue.New(),
		memo:  make(map[Parser]map[Position]*memoEntry),
		input: input,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Input returns the string being parsed by this trampoline's in-flight
// parse.
func (t *Trampoline) Input() string {
	return t.input
}

// HasNext reports whether the call queue is non-empty.
func (t *Trampoline) HasNext() bool {
	return !t.queue.Empty()
}

// Step pops one thunk from the call queue and executes it. A no-op when
// the queue is empty.
func (t *Trampoline) Step() {
	v, ok := t.queue.Dequeue()
	if !ok {
		return
	}
	thunk := v.(func())
	thunk()
}

// Drain runs the trampoline to completion: the call queue is drained to
// empty before the driver declares the parse complete.
func (t *Trampoline) Drain() {
	for t.HasNext() {
		t.Step()
	}
	if t.debugDump {
		t.DumpMemo()
	}
}

// DrainUntil steps the trampoline until either the queue empties or cond
// reports true, interleaving production with worklist drainage for a lazy
// result stream.
func (t *Trampoline) DrainUntil(cond func() bool) {
	for t.HasNext() && !cond() {
		t.Step()
	}
}

// PushStack appends a raw thunk onto the tail of the call queue. The queue
// is strict FIFO: LIFO would starve cyclically-dependent entries.
func (t *Trampoline) PushStack(thunk func()) {
	t.queue.Enqueue(thunk)
}

// Push is the memoizing invocation primitive. It locates or creates the
// per-parser sub-table, then within it the entry for position;
// if the entry is new, p is scheduled to run exactly once and k is
// subscribed to every result it ever produces; if the entry already
// existed, k is subscribed and immediately scheduled against every result
// already on file. Either way, k fires exactly once per distinct result,
// independent of arrival order.
func (t *Trampoline) Push(p Parser, pos Position, k Continuation) {
	sub, ok := t.memo[p]
	if !ok {
		sub = make(map[Position]*memoEntry)
		t.memo[p] = sub
	}
	entry, existed := sub[pos]
	if !existed {
		entry = newMemoEntry()
		sub[pos] = entry
		entry.continuations.Add(k)
		tracer().Debugf("new entry for %s@%d", p.Name, pos)
		t.PushStack(func() {
			p.Run(pos, t, func(r value.Result) { entry.fire(t, r) })
		})
		return
	}
	tracer().Debugf("existing entry for %s@%d: replaying %d result(s)", p.Name, pos, len(entry.results))
	entry.continuations.Add(k)
	for _, r := range entry.results {
		result := r
		t.PushStack(func() { k(result) })
	}
}

// DumpMemo logs the shape of the memo table at Debug level, for diagnosing
// non-terminating or highly ambiguous grammars. Keys are sorted first so
// the output is deterministic across runs.
func (t *Trampoline) DumpMemo() {
	parsers := maps.Keys(t.memo)
	// x/exp/slices.SortFunc at this module's pinned commit already takes the
	// cmp-style (negative/zero/positive) comparator the stdlib slices
	// package later adopted for go1.21, not the older bool-returning less.
	slices.SortFunc(parsers, func(a, b Parser) int { return strings.Compare(a.Name, b.Name) })
	for _, p := range parsers {
		positions := maps.Keys(t.memo[p])
		slices.Sort(positions)
		for _, pos := range positions {
			entry := t.memo[p][pos]
			tracer().Debugf("memo[%s, %d]: %d result(s), %d continuation(s)",
				p.Name, pos, len(entry.results), entry.continuations.Size())
		}
	}
}
