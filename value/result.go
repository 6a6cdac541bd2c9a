package value

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Result is the record every successful parse produces: a value together
// with the input position immediately following the matched span. Position
// is a byte offset into the shared input buffer, so equality is plain
// integer equality and stays cheap regardless of how large the input is.
type Result struct {
	Value     Value
	Remaining int
}

// canonical is the structure structhash hashes to fingerprint a Result. It
// mirrors a Value's shape as plain, hashable Go data: structhash walks
// exported fields via reflection and cannot see into Value's unexported
// ones, so canonical exists purely to give it something to walk.
type canonical struct {
	Kind      uint8
	Leaf      string
	Tag       string
	Children  []canonical
	Remaining int
}

func canonicalize(r Result) canonical {
	return canonical{
		Kind:      uint8(r.Value.kind),
		Leaf:      r.Value.leaf,
		Tag:       fmt.Sprintf("%v", r.Value.tag),
		Children:  canonicalizeAll(r.Value.children),
		Remaining: r.Remaining,
	}
}

func canonicalizeAll(vs []Value) []canonical {
	if vs == nil {
		return nil
	}
	out := make([]canonical, len(vs))
	for i, v := range vs {
		out[i] = canonicalize(Result{Value: v})
	}
	return out
}

// Fingerprint computes a stable string key for a Result, suitable for use
// as a deduplication key in a set keyed by structural equality. Two Results
// that are Equal always produce the same Fingerprint; the converse holds as
// long as tags stringify uniquely (true for the symbol/string tags used
// throughout this engine's combinators and tests).
//
// structhash.Hash over a purpose-built struct turns a value that would
// otherwise be expensive or impossible to compare directly into a cheap,
// stable map key.
func Fingerprint(r Result) string {
	h, err := structhash.Hash(canonicalize(r), 1)
	if err != nil {
		// structhash only errors on values it cannot reflect over (chans,
		// funcs, unsafe.Pointer) — canonical is built entirely from
		// strings, ints and slices thereof, so this cannot happen.
		panic(fmt.Sprintf("gll/value: unreachable hash failure: %v", err))
	}
	return h
}
