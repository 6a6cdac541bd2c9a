package combinator

import (
	"fmt"

	"github.com/ash-lang/gll/trampoline"
	"github.com/ash-lang/gll/value"
)

// Reduce builds a parser that runs parser and, on success with value v,
// replaces v's tag with action:
//
//   - v empty            -> [action]
//   - v a seq-tagged node -> [action, c₁, …, cₖ] (action replaces "seq")
//   - anything else       -> [action, v]
//
// If action is nil, Reduce is the identity on parser. Memoized on the pair
// (parser, action). Reduce is the only combinator that installs a
// user-supplied tag into the value tree.
func Reduce(parser Parser, action interface{}) Parser {
	if action == nil {
		return parser
	}
	return reg.intern(tupleKey("reduce:"+actionKey(action), []Parser{parser}), func() Parser {
		return trampoline.NewNode("reduce", func(pos trampoline.Position, tr *trampoline.Trampoline, k trampoline.Continuation) {
			tr.Push(parser, pos, func(r value.Result) {
				k(value.Result{Value: reduceValue(r.Value, action), Remaining: r.Remaining})
			})
		})
	})
}

func reduceValue(v value.Value, action interface{}) value.Value {
	switch {
	case v.IsEmpty():
		return value.NewReduced(action)
	case v.Kind() == value.Seq && v.Tag() == value.SeqTag:
		return value.NewReduced(action, v.Children()...)
	default:
		return value.NewReduced(action, v)
	}
}

// actionKey renders action for use in a registry key. String tags (the
// common case for a rule's name) render verbatim; fmt's %p falls back to
// the underlying address for funcs, maps, slices and pointers, which is
// exactly as stable as the action value itself is.
func actionKey(action interface{}) string {
	if s, ok := action.(string); ok {
		return s
	}
	return fmt.Sprintf("%p", action)
}
