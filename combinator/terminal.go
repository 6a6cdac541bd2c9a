package combinator

import (
	"strings"

	"github.com/ash-lang/gll/trampoline"
	"github.com/ash-lang/gll/value"
)

// Terminal builds a parser matching the literal match as a prefix of the
// remaining input. Memoized on match: Terminal("a") called twice returns
// the same *trampoline.Node. The empty literal is permitted and always
// succeeds without consuming input, producing ("", position).
func Terminal(match string) Parser {
	return reg.intern("terminal:"+match, func() Parser {
		return trampoline.NewNode("\""+match+"\"", func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {
			input := tr.Input()
			if pos > len(input) {
				return
			}
			if strings.HasPrefix(input[pos:], match) {
				k(value.Result{Value: value.NewLeaf(match), Remaining: pos + len(match)})
			}
		})
	})
}
