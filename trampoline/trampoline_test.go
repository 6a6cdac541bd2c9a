package trampoline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ash-lang/gll/value"
)

// countingTerminal returns a ParserFunc that matches the literal s at the
// current position exactly like combinator.Terminal will, plus a counter
// of how many times it actually ran (as opposed to being served from the
// memo table).
func countingTerminal(input, s string) (ParserFunc, *int) {
	runs := 0
	fn := func(pos Position, tr *Trampoline, k Continuation) {
		runs++
		if pos+len(s) <= len(input) && input[pos:pos+len(s)] == s {
			k(value.Result{Value: value.NewLeaf(s), Remaining: pos + len(s)})
		}
	}
	return fn, &runs
}

func TestPushMemoizesAcrossCallers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.trampoline")
	defer teardown()
	tr := New("aa")
	run, runs := countingTerminal("aa", "a")
	p := NewNode("a", run)

	var got []value.Result
	collect := func(r value.Result) { got = append(got, r) }

	tr.Push(p, 0, collect)
	tr.Push(p, 0, collect) // second caller at the same (parser, position)
	tr.Drain()

	if *runs != 1 {
		t.Errorf("expected parser to run exactly once, ran %d times", *runs)
	}
	if len(got) != 2 {
		t.Errorf("expected both callers to receive the result, got %d deliveries", len(got))
	}
}

func TestPushDedupesIdenticalResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.trampoline")
	defer teardown()
	tr := New("a")
	p := NewNode("ambiguous-a", func(pos Position, tr *Trampoline, k Continuation) {
		// Two different derivations producing the identical result.
		k(value.Result{Value: value.NewLeaf("a"), Remaining: pos + 1})
		k(value.Result{Value: value.NewLeaf("a"), Remaining: pos + 1})
	})
	var got []value.Result
	tr.Push(p, 0, func(r value.Result) { got = append(got, r) })
	tr.Drain()
	if len(got) != 1 {
		t.Errorf("expected duplicate identical results to be deduplicated, got %d", len(got))
	}
}

func TestPushFiresLateContinuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.trampoline")
	defer teardown()
	tr := New("a")
	p := NewNode("a", func(pos Position, tr *Trampoline, k Continuation) {
		k(value.Result{Value: value.NewLeaf("a"), Remaining: pos + 1})
	})
	var first, second []value.Result
	tr.Push(p, 0, func(r value.Result) { first = append(first, r) })
	tr.Drain() // result now on file in the memo entry, no pending continuations
	tr.Push(p, 0, func(r value.Result) { second = append(second, r) })
	tr.Drain()
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("expected both an early and a late continuation to receive the result once, got %d and %d", len(first), len(second))
	}
}

func TestQueueIsFIFO(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.trampoline")
	defer teardown()
	tr := New("")
	var order []int
	tr.PushStack(func() { order = append(order, 1) })
	tr.PushStack(func() { order = append(order, 2) })
	tr.PushStack(func() { order = append(order, 3) })
	tr.Drain()
	want := []int{1, 2, 3}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestWithDebugDumpDoesNotAffectResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.trampoline")
	defer teardown()
	tr := New("a", WithDebugDump(true))
	p := NewNode("a", func(pos Position, tr *Trampoline, k Continuation) {
		k(value.Result{Value: value.NewLeaf("a"), Remaining: pos + 1})
	})
	var got []value.Result
	tr.Push(p, 0, func(r value.Result) { got = append(got, r) })
	tr.Drain() // must not panic, and must still deliver the result
	if len(got) != 1 {
		t.Errorf("expected one result with debug dump enabled, got %d", len(got))
	}
}

// TestDirectLeftRecursionTerminates builds, by hand (bypassing package
// combinator), a parser equivalent to S ::= S "a" | "a" and checks that
// routing the recursive call through Push terminates instead of looping
// forever — memoization is the sole mechanism by which such cycles
// terminate.
func TestDirectLeftRecursionTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.trampoline")
	defer teardown()
	input := "aaa"
	tr := New(input)

	var s Parser
	s = NewNode("S", func(pos Position, tr *Trampoline, k Continuation) {
		// alt 1: S "a"
		tr.Push(s, pos, func(r value.Result) {
			if r.Remaining < len(input) && input[r.Remaining] == 'a' {
				k(value.Result{
					Value:     value.NewSeq(r.Value, value.NewLeaf("a")),
					Remaining: r.Remaining + 1,
				})
			}
		})
		// alt 2: "a"
		if pos < len(input) && input[pos] == 'a' {
			k(value.Result{Value: value.NewLeaf("a"), Remaining: pos + 1})
		}
	})

	var full []value.Result
	tr.Push(s, 0, func(r value.Result) {
		if r.Remaining == len(input) {
			full = append(full, r)
		}
	})
	tr.Drain()

	if len(full) == 0 {
		t.Fatalf("expected at least one full-match result for %q, got none", input)
	}
	for _, r := range full {
		if got := value.Flatten(r.Value); got != input {
			t.Errorf("full match leaves concatenate to %q, want %q", got, input)
		}
	}
}
