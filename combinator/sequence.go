package combinator

import (
	"github.com/ash-lang/gll/trampoline"
	"github.com/ash-lang/gll/value"
)

// Sequence builds a parser matching its children in order, delivering
// seq-node(v₁, …, vₙ) tagged "seq" together with the position following the
// last child. Strings among ps are implicitly converted to Terminal. An
// empty sequence degenerates to Epsilon. Memoized on the tuple of
// (converted) child parsers.
func Sequence(ps ...interface{}) Parser {
	children := asParsers(ps)
	if len(children) == 0 {
		return Epsilon
	}
	return reg.intern(tupleKey("sequence", children), func() Parser {
		return trampoline.NewNode("sequence", func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {
			sequenceFrom(children, 0, pos, nil, tr, k)
		})
	})
}

// sequenceFrom pushes children[i] at pos, and on each of its results,
// recurses into i+1 with the accumulated child values, until all children
// have been consumed, at which point it delivers the assembled seq node.
// Every intermediate invocation is routed through tr.Push, not called
// directly, so ambiguity and recursion in any child are handled correctly.
func sequenceFrom(children []Parser, i int, pos trampoline.Position, acc []value.Value, tr *trampoline.Trampoline, k trampoline.Continuation) {
	if i == len(children) {
		k(value.Result{Value: value.NewSeq(acc...), Remaining: pos})
		return
	}
	tr.Push(children[i], pos, func(r value.Result) {
		next := make([]value.Value, len(acc)+1)
		copy(next, acc)
		next[len(acc)] = r.Value
		sequenceFrom(children, i+1, r.Remaining, next, tr, k)
	})
}
