package main

/*
demogrammars.go holds the small fixture grammars named in the design
notes' concrete scenarios: arithmetic with reduced numbers/operators,
direct and indirect left recursion, exponential ambiguity, and the SICP
noun/verb/article/preposition sentence grammar. Each is built afresh every
time its name is loaded, with package grammar's registry giving each rule
its stable, forward-reference-safe identity.
*/

import (
	"github.com/ash-lang/gll/combinator"
	"github.com/ash-lang/gll/grammar"
)

type demo struct {
	name        string
	describe    string
	build       func() grammar.Parser
	exampleText string
}

var demos = map[string]*demo{
	"arithmetic": {
		name:        "arithmetic",
		describe:    `expr ::= expr op expr | "(" expr ")" | num ; num and op are reduced`,
		build:       buildArithmetic,
		exampleText: "1+2+3",
	},
	"left-recursion": {
		name:        "left-recursion",
		describe:    `S ::= S "a" | "a"`,
		build:       buildDirectLeftRecursion,
		exampleText: "aaa",
	},
	"indirect-left-recursion": {
		name:        "indirect-left-recursion",
		describe:    `A ::= B "a"; B ::= C "b"; C ::= B | A | "c"`,
		build:       buildIndirectLeftRecursion,
		exampleText: "cba",
	},
	"ambiguous-tail": {
		name:        "ambiguous-tail",
		describe:    `S ::= "a" S | "a" | ε`,
		build:       buildAmbiguousTail,
		exampleText: "aaa",
	},
	"exponential": {
		name:        "exponential",
		describe:    `S ::= "b" | S S | S S S`,
		build:       buildExponential,
		exampleText: "bbbbbbb",
	},
	"degenerate": {
		name:        "degenerate",
		describe:    `S ::= S | "a"`,
		build:       buildDegenerate,
		exampleText: "a",
	},
	"sentence": {
		name:        "sentence",
		describe:    "SICP-style noun/verb/article/preposition sentence grammar",
		build:       buildSentence,
		exampleText: "the student with the cat sleeps in the class ",
	},
}

func buildArithmetic() grammar.Parser {
	g := grammar.New()
	digit := combinator.Alternatives("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	num := combinator.Reduce(digit, "string->number")
	op := combinator.Reduce(combinator.Alternatives("+", "-"), "string->symbol")
	return g.DefineParser("expr", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Alternatives(
			combinator.Sequence(g.Ref("expr"), op, g.Ref("expr")),
			combinator.Sequence("(", g.Ref("expr"), ")"),
			num,
		)
	})
}

func buildDirectLeftRecursion() grammar.Parser {
	g := grammar.New()
	return g.DefineParser("S", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Alternatives(combinator.Sequence(g.Ref("S"), "a"), "a")
	})
}

func buildIndirectLeftRecursion() grammar.Parser {
	g := grammar.New()
	a := g.DefineParser("A", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Sequence(g.Ref("B"), "a")
	})
	g.DefineParser("B", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Sequence(g.Ref("C"), "b")
	})
	g.DefineParser("C", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Alternatives(g.Ref("B"), g.Ref("A"), "c")
	})
	return a
}

func buildAmbiguousTail() grammar.Parser {
	g := grammar.New()
	return g.DefineParser("S", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Alternatives(
			combinator.Sequence("a", g.Ref("S")),
			"a",
			combinator.Epsilon,
		)
	})
}

func buildExponential() grammar.Parser {
	g := grammar.New()
	return g.DefineParser("S", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Alternatives(
			"b",
			combinator.Sequence(g.Ref("S"), g.Ref("S")),
			combinator.Sequence(g.Ref("S"), g.Ref("S"), g.Ref("S")),
		)
	})
}

func buildDegenerate() grammar.Parser {
	g := grammar.New()
	return g.DefineParser("S", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Alternatives(g.Ref("S"), "a")
	})
}

// buildSentence adapts SICP's toy natural-language grammar (4.3.2): a
// sentence is a noun phrase followed by a verb phrase; a noun phrase is an
// article and a noun, optionally followed by a prepositional phrase (whose
// own noun phrase may carry another); a verb phrase is a verb optionally
// followed by a prepositional phrase. Words are separated by a single literal space,
// so leaves concatenate back to the input only when spaces are accounted
// for in the grammar itself, not inferred by the driver.
func buildSentence() grammar.Parser {
	g := grammar.New()
	article := combinator.Alternatives("the ", "a ")
	noun := combinator.Alternatives("student ", "professor ", "cat ", "class ")
	verb := combinator.Alternatives("studies ", "lectures ", "eats ", "sleeps ")
	preposition := combinator.Alternatives("for ", "to ", "in ", "by ", "with ")

	nounPhrase := g.DefineParser("noun-phrase", func(g *grammar.Grammar) grammar.Parser {
		simple := combinator.Sequence(article, noun)
		return combinator.Alternatives(
			simple,
			combinator.Sequence(simple, g.Ref("prep-phrase")),
		)
	})
	g.DefineParser("prep-phrase", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Sequence(preposition, g.Ref("noun-phrase"))
	})
	verbPhrase := g.DefineParser("verb-phrase", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Alternatives(
			verb,
			combinator.Sequence(verb, g.Ref("prep-phrase")),
		)
	})
	return g.DefineParser("sentence", func(g *grammar.Grammar) grammar.Parser {
		return combinator.Sequence(nounPhrase, verbPhrase)
	})
}
