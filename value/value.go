/*
Package value implements the recursive parse-value sum type produced by
every parser in package combinator, together with the result record pairing
a value with the input position remaining after a successful match.

The shape follows a tagged-list convention familiar from Lisp-like
s-expressions, narrowed to the sum type this engine needs: a leaf string, a
sequence node, a reduced (semantic-action) node, or empty. Sequence and
reduced nodes both render as a tagged list [tag, child…] — for a
seq-tagged child, reduce (see package combinator) replaces the tag in place
rather than wrapping it in a new layer; any other child becomes the single
argument of the reduced node.
*/
package value

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("gll.value")
}

// Kind discriminates the variants of Value.
type Kind uint8

const (
	// Empty is produced by the epsilon combinator.
	Empty Kind = iota
	// Leaf is produced by a terminal: the literal it matched.
	Leaf
	// Seq is an ordered sequence of children, tagged (default tag: SeqTag).
	Seq
	// Reduced is the result of applying a semantic-action descriptor to a
	// child value.
	Reduced
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Leaf:
		return "leaf"
	case Seq:
		return "seq"
	case Reduced:
		return "reduced"
	default:
		return "invalid"
	}
}

// SeqTag is the default discriminator tag for sequence nodes, reportable
// verbatim in value trees that no Reduce has touched.
var SeqTag interface{} = "seq"

// Value is a recursive parse-value: Empty, a Leaf string, a Seq node
// (tag + ordered children), or a Reduced node (action descriptor + either
// a flattened argument list or a single child — see package combinator's
// Reduce for how that distinction arises).
//
// Value is a plain struct that holds a slice of children, so it is not
// comparable with == in Go; use Equal or a Fingerprint for structural
// comparisons (the memo table in package
// trampoline never compares Values with ==).
type Value struct {
	kind     Kind
	leaf     string
	tag      interface{}
	children []Value
}

// NewEmpty returns the Empty value.
func NewEmpty() Value {
	return Value{kind: Empty}
}

// NewLeaf returns a Leaf value wrapping a matched literal.
func NewLeaf(s string) Value {
	return Value{kind: Leaf, leaf: s}
}

// NewSeq returns a Seq node tagged with SeqTag, wrapping children in order.
func NewSeq(children ...Value) Value {
	return Value{kind: Seq, tag: SeqTag, children: children}
}

// NewReduced returns a Reduced node: an action descriptor paired with its
// (already flattened, per combinator.Reduce's rules) arguments.
func NewReduced(action interface{}, args ...Value) Value {
	return Value{kind: Reduced, tag: action, children: args}
}

// Kind reports which variant a Value is.
func (v Value) Kind() Kind { return v.kind }

// LeafString returns the matched literal for a Leaf value, or "" otherwise.
func (v Value) LeafString() string { return v.leaf }

// Tag returns the discriminator of a Seq or Reduced node (SeqTag, or the
// action descriptor installed by Reduce), or nil for Leaf/Empty.
func (v Value) Tag() interface{} { return v.tag }

// Children returns the ordered children of a Seq or Reduced node. Leaf and
// Empty values have no children.
func (v Value) Children() []Value { return v.children }

// IsEmpty reports whether this is the Empty value.
func (v Value) IsEmpty() bool { return v.kind == Empty }

// String renders a Value as a tagged list, e.g. (seq "a" "b") or "lit" for
// a bare leaf.
func (v Value) String() string {
	switch v.kind {
	case Empty:
		return "()"
	case Leaf:
		return fmt.Sprintf("%q", v.leaf)
	case Seq, Reduced:
		var b bytes.Buffer
		b.WriteString("(")
		fmt.Fprintf(&b, "%v", v.tag)
		for _, c := range v.children {
			b.WriteString(" ")
			b.WriteString(c.String())
		}
		b.WriteString(")")
		return b.String()
	default:
		return "<invalid value>"
	}
}

// Flatten concatenates every Leaf descendant of v, left to right, with no
// separator. Tests use it to check that a parse result "covers" the input,
// e.g. Flatten of a parse of "aaa" is "aaa".
func Flatten(v Value) string {
	var b bytes.Buffer
	flattenInto(&b, v)
	return b.String()
}

func flattenInto(b *bytes.Buffer, v Value) {
	switch v.kind {
	case Leaf:
		b.WriteString(v.leaf)
	case Seq, Reduced:
		for _, c := range v.children {
			flattenInto(b, c)
		}
	}
}

// Equal reports whether two Values are structurally identical: same kind,
// same leaf text, same tag (compared with ==) and recursively equal
// children in the same order. Package trampoline uses Fingerprint (cheaper,
// hash-based) rather than Equal for result-set deduplication, but Equal is
// kept as the ground truth and used in tests.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Empty:
		return true
	case Leaf:
		return a.leaf == b.leaf
	case Seq, Reduced:
		if !tagEqual(a.tag, b.tag) || len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// tagEqual compares two tags with ==, recovering from the runtime panic Go
// raises when an interface holds a non-comparable dynamic type (e.g. a
// semantic action represented as a func value). Non-comparable tags are
// never equal to anything but themselves by identity, which Fingerprint
// (using a func's pointer) and %v-formatting already handle consistently.
func tagEqual(a, b interface{}) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = fmt.Sprintf("%p", a) == fmt.Sprintf("%p", b)
		}
	}()
	return a == b
}
