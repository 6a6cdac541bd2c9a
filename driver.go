package gll

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/ash-lang/gll/trampoline"
	"github.com/ash-lang/gll/value"
)

func tracer() tracing.Trace {
	return tracing.Select("gll.driver")
}

// Parser is the handle every combinator and grammar rule is built as; it is
// re-exported here so callers need import nothing but this package to hold
// one and pass it to Parse.
type Parser = trampoline.Parser

// Option configures the trampoline a Parse call constructs. Re-exported so
// callers need not import package trampoline directly for e.g. WithDebugDump.
type Option = trampoline.Option

// WithDebugDump is re-exported from package trampoline for convenience.
func WithDebugDump(enabled bool) Option {
	return trampoline.WithDebugDump(enabled)
}

// Parse is the top-level entry point. It allocates a fresh trampoline and
// memo table, seeds it with p at position 0, and returns a lazy Results
// stream of every value that matches the whole of input.
//
// Parsers are immutable and built once at grammar-definition time; Parse
// may be called any number of times, for different inputs, against the
// same p — parser objects may be shared freely across parses.
func Parse(p Parser, input string, opts ...trampoline.Option) *Results {
	tr := trampoline.New(input, opts...)
	r := &Results{tr: tr, total: len(input)}
	tr.Push(p, 0, func(res value.Result) {
		if res.Remaining == r.total {
			r.pending = append(r.pending, res.Value)
		}
	})
	tracer().Debugf("parse started, input length %d", len(input))
	return r
}
