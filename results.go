package gll

import (
	"github.com/ash-lang/gll/trampoline"
	"github.com/ash-lang/gll/value"
)

// Results is the lazy stream of full-match values a Parse call returns.
// Its production rule: drain the trampoline until either the pending batch
// is non-empty or the trampoline is exhausted; hand back the batch
// (clearing it); the stream is done once the trampoline is empty and the
// batch it left behind has been delivered.
//
// This interleaving matters for infinite or highly ambiguous grammars: a
// caller that only consumes the first batch never forces the engine to
// exhaust the worklist — dropping a Results value before draining it
// releases the trampoline and its memo table, since nothing else
// references it.
type Results struct {
	tr      *trampoline.Trampoline
	pending []value.Value
	total   int
}

// Next drains the trampoline until it produces at least one full-match
// value or runs out of work, then returns that batch and clears it. The
// second return value is false once there is nothing left to deliver, ever
// — callers should stop calling Next at that point.
func (r *Results) Next() ([]value.Value, bool) {
	if len(r.pending) == 0 {
		r.tr.DrainUntil(func() bool { return len(r.pending) > 0 })
	}
	if len(r.pending) == 0 {
		return nil, false
	}
	batch := r.pending
	r.pending = nil
	return batch, true
}

// All drains the stream to completion and returns every full-match value,
// in discovery order. Equivalent to pulling every batch from Next and
// concatenating them; for a grammar with unbounded ambiguity this never
// returns.
func (r *Results) All() []value.Value {
	var all []value.Value
	for {
		batch, ok := r.Next()
		if !ok {
			return all
		}
		all = append(all, batch...)
	}
}

// First returns the first full-match value, if any, without forcing the
// rest of the stream.
func (r *Results) First() (value.Value, bool) {
	batch, ok := r.Next()
	if !ok {
		return value.Value{}, false
	}
	return batch[0], true
}
