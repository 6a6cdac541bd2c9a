/*
Package combinator implements the parser-construction primitives built on
top of package trampoline's scheduler: Terminal, Sequence, Alternatives,
Reduce, Epsilon, Maybe, Many and Many1.

Every constructor here memoizes on its own arguments, returning the same
*trampoline.Node for equal arguments rather than building a fresh one each
call, the same resolve-or-create-by-key idiom package grammar uses for
named rules — for the same reason: identity stability. Package trampoline
keys its memo table on parser identity (a pointer), so two
structurally-identical but distinct *Node values for "the same" rule would
defeat memoization and, for left-recursive rules, prevent termination
entirely.
*/
package combinator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"

	"github.com/ash-lang/gll/trampoline"
	"github.com/ash-lang/gll/value"
)

func tracer() tracing.Trace {
	return tracing.Select("gll.combinator")
}

// Parser is re-exported from package trampoline so callers need not import
// it directly to hold onto a combinator result.
type Parser = trampoline.Parser

// registry canonicalizes constructor calls by a string key built from the
// constructor name and its arguments' identities, so that e.g. Terminal("a")
// called twice anywhere in a grammar returns the identical *trampoline.Node.
type registry struct {
	mu    sync.Mutex
	byKey map[string]Parser
}

var reg = &registry{byKey: make(map[string]Parser)}

// intern locates or creates the Parser for key, building it with build only
// on first request. The lock is not held while build runs, since builds
// such as Many's call other interning constructors.
func (r *registry) intern(key string, build func() Parser) Parser {
	r.mu.Lock()
	if p, ok := r.byKey[key]; ok {
		r.mu.Unlock()
		return p
	}
	r.mu.Unlock()
	p := build()
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byKey[key]; ok {
		return existing
	}
	r.byKey[key] = p
	return p
}

func identityKey(p Parser) string {
	return fmt.Sprintf("%p", p)
}

func tupleKey(tag string, ps []Parser) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = identityKey(p)
	}
	return tag + "(" + strings.Join(parts, ",") + ")"
}

// asParser converts a bare string into an interned Terminal, and passes any
// existing Parser through unchanged — the "implicit literal to Terminal"
// convenience Sequence and Alternatives grant their callers.
func asParser(x interface{}) Parser {
	switch v := x.(type) {
	case Parser:
		return v
	case string:
		return Terminal(v)
	default:
		panic(fmt.Sprintf("gll/combinator: %T is neither a Parser nor a string literal", x))
	}
}

func asParsers(xs []interface{}) []Parser {
	out := make([]Parser, len(xs))
	for i, x := range xs {
		out[i] = asParser(x)
	}
	return out
}
