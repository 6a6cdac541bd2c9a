package combinator

import (
	"github.com/ash-lang/gll/trampoline"
	"github.com/ash-lang/gll/value"
)

// Epsilon always succeeds without consuming input, producing the Empty
// value. It is a singleton: there is exactly one epsilon parser, since it
// takes no arguments and every instance behaves identically.
var Epsilon Parser = trampoline.NewNode("epsilon", func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {
	k(value.Result{Value: value.NewEmpty(), Remaining: pos})
})
