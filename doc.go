/*
Package gll implements a general context-free parser combinator engine.

It parses arbitrary context-free grammars — including left-recursive,
ambiguous and cyclic ones — and returns the complete (possibly lazy) set of
successful parse results. Parser invocations are routed through a central
trampoline (package trampoline) that memoizes each (parser, input-position)
pair, collects all distinct sub-results and re-fires registered
continuations, so that direct and indirect left recursion terminate.

Package structure:

■ trampoline: the worklist scheduler and its memoization table.

■ value: the recursive parse-value sum type (leaf, sequence, reduced,
empty) and the result record built from it.

■ combinator: the continuation-passing parser protocol and the primitive
combinators (Terminal, Sequence, Alternatives, Reduce, Epsilon, Maybe,
Many, Many1).

■ grammar: a registry for named, forward-referenceable grammar rules.

The gll package itself is the driver: Parse creates a fresh trampoline,
seeds it with a parser, and exposes a lazy stream of full-match values.

License

Governed by a 3-Clause BSD license.
*/
package gll
