/*
Package grammar binds named, possibly mutually-recursive grammar rules to
stable parser identities — a named parser is a handle whose body is
resolved lazily.

The registry here is a resolve-or-create by name symbol table, keyed in a
plain map: DefineParser hands back an existing placeholder
*trampoline.Node or mints one. The body is evaluated at once, but every
name it mentions resolves through Ref to a placeholder that is wired to
its real body when that rule is defined, which is what lets rule bodies
mention each other before any of them exist.
*/
package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/schuko/tracing"

	"github.com/ash-lang/gll/combinator"
	"github.com/ash-lang/gll/trampoline"
)

func tracer() tracing.Trace {
	return tracing.Select("gll.grammar")
}

// Parser is re-exported from package trampoline for callers that only
// import package grammar.
type Parser = trampoline.Parser

// Grammar is a named collection of rules, each bound once. It is the unit
// of forward reference resolution: DefineParser calls sharing a Grammar can
// mention each other's names regardless of definition order.
type Grammar struct {
	names  *linkedhashset.Set // declaration order, for debugging/dumps
	rules  map[string]*trampoline.Node
	frozen map[string]bool // true once a rule's real body has been wired in
}

// New creates an empty grammar.
func New() *Grammar {
	return &Grammar{
		names:  linkedhashset.New(),
		rules:  make(map[string]*trampoline.Node),
		frozen: make(map[string]bool),
	}
}

// Ref resolves name to its stable parser identity, creating a placeholder
// if this is the first mention of name. Rule bodies use Ref (directly, or
// indirectly through DefineParser's body closure calling g.Ref) to refer to
// other rules, including themselves and rules not yet defined.
//
// A placeholder that is never given a body via DefineParser or Stub simply
// never succeeds: an undeclared or stub production produces an empty
// result set, not a construction- or parse-time error, and the default
// placeholder body already behaves that way.
func (g *Grammar) Ref(name string) Parser {
	if p, ok := g.rules[name]; ok {
		return p
	}
	p := trampoline.NewNode(name, func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {})
	g.rules[name] = p
	g.names.Add(name)
	return p
}

// DefineParser binds name to the parser body() returns: a recursive
// grammar symbol where forward references are permitted, the body
// evaluated lazily enough that name can appear inside body. body is called
// immediately, but any reference
// to name (or to any other not-yet-defined rule) inside it resolves through
// Ref to a placeholder rather than panicking, and that placeholder is the
// very identity Ref(name) already returned to earlier callers — so once
// DefineParser wires the placeholder's Run, every existing reference to
// name observes the real body too.
//
// It is an error to call DefineParser twice for the same name.
func (g *Grammar) DefineParser(name string, body func(g *Grammar) Parser) Parser {
	if g.frozen[name] {
		panic(fmt.Sprintf("gll/grammar: rule %q already defined", name))
	}
	placeholder := g.Ref(name)
	real := body(g)
	placeholder.Run = func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {
		tr.Push(real, pos, k)
	}
	g.frozen[name] = true
	tracer().Debugf("defined rule %q", name)
	return placeholder
}

// Term is a convenience re-export so simple grammars need only import
// package grammar: a terminal with no semantic action attached.
func (g *Grammar) Term(literal string) Parser {
	return combinator.Terminal(literal)
}

// Names returns every rule name mentioned in the grammar so far (via Ref or
// DefineParser), in first-mention order.
func (g *Grammar) Names() []string {
	out := make([]string, 0, g.names.Size())
	it := g.names.Iterator()
	for it.Next() {
		out = append(out, it.Value().(string))
	}
	return out
}

// Undefined returns the names that have been referenced but never given a
// body via DefineParser. Leaving a rule undefined is not an error at
// construction time: such a rule simply produces an empty result set at
// parse time. Callers that want to document a deliberately always-failing
// rule, rather than one simply not yet written, should call Stub instead.
func (g *Grammar) Undefined() []string {
	var out []string
	for _, name := range g.Names() {
		if !g.frozen[name] {
			out = append(out, name)
		}
	}
	return out
}

// Stub explicitly marks name as a deliberate always-failing rule, as
// opposed to one simply not yet written. Behaviorally identical to an
// un-defined Ref, but freezes the name so a later accidental DefineParser
// for it panics instead of silently overriding the stub.
func (g *Grammar) Stub(name string) Parser {
	return g.DefineParser(name, func(g *Grammar) Parser {
		return trampoline.NewNode(name+":stub", func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {})
	})
}
