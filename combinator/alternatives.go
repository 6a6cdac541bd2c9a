package combinator

import (
	"github.com/ash-lang/gll/trampoline"
)

// Alternatives builds a parser that tries each child at the same position,
// sharing one continuation across all of them. Every child that
// succeeds calls the continuation independently, possibly more than once;
// deduplication across children is the memo table's job, not this
// combinator's. Strings among ps are implicitly converted to Terminal.
// Memoized on the tuple of (converted) child parsers.
func Alternatives(ps ...interface{}) Parser {
	children := asParsers(ps)
	return reg.intern(tupleKey("alternatives", children), func() Parser {
		return trampoline.NewNode("alternatives", func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {
			for _, child := range children {
				tr.Push(child, pos, k)
			}
		})
	})
}
