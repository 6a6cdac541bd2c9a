package combinator

import "github.com/ash-lang/gll/trampoline"

// Maybe(p) ≡ alternatives(epsilon, p): zero or one occurrence.
func Maybe(p Parser) Parser {
	return Alternatives(Epsilon, p)
}

// Many(p) ≡ alternatives(epsilon, sequence(p, many(p))): zero or more
// occurrences. The self-reference on the right-hand side is by identity:
// Many(p) must be able to appear inside its own definition before
// it exists. A placeholder node is created first and used as that
// self-reference; once the real alternatives node is built, the
// placeholder's Run is wired to forward to it. Every mention of Many(p) for
// the same p therefore shares one stable *trampoline.Node, which is what
// lets the trampoline's memo table terminate the recursion rather than
// unrolling it forever — the same forward-reference trick package grammar
// uses for DefineParser.
func Many(p Parser) Parser {
	return reg.intern(tupleKey("many", []Parser{p}), func() Parser {
		placeholder := trampoline.NewNode("many", nil)
		body := Alternatives(Epsilon, Sequence(p, placeholder))
		placeholder.Run = func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {
			tr.Push(body, pos, k)
		}
		return placeholder
	})
}

// Many1(p) ≡ sequence(p, many(p)): one or more occurrences.
func Many1(p Parser) Parser {
	return reg.intern(tupleKey("many1", []Parser{p}), func() Parser {
		return Sequence(p, Many(p))
	})
}
