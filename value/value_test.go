package value

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFlattenLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	v := NewLeaf("abc")
	if got := Flatten(v); got != "abc" {
		t.Errorf("Flatten(leaf) = %q, want %q", got, "abc")
	}
}

func TestFlattenSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	v := NewSeq(NewLeaf("a"), NewSeq(NewLeaf("b"), NewLeaf("c")))
	if got := Flatten(v); got != "abc" {
		t.Errorf("Flatten(seq) = %q, want %q", got, "abc")
	}
}

func TestFlattenEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	if got := Flatten(NewEmpty()); got != "" {
		t.Errorf("Flatten(empty) = %q, want empty string", got)
	}
}

func TestEqualLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	if !Equal(NewLeaf("x"), NewLeaf("x")) {
		t.Errorf("expected equal leaves")
	}
	if Equal(NewLeaf("x"), NewLeaf("y")) {
		t.Errorf("expected distinct leaves to differ")
	}
}

func TestEqualSeqOrderMatters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	a := NewSeq(NewLeaf("a"), NewLeaf("b"))
	b := NewSeq(NewLeaf("b"), NewLeaf("a"))
	if Equal(a, b) {
		t.Errorf("sequences with swapped children must not be equal")
	}
}

func TestEqualReducedTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	a := NewReduced("plus", NewLeaf("1"), NewLeaf("2"))
	b := NewReduced("plus", NewLeaf("1"), NewLeaf("2"))
	c := NewReduced("minus", NewLeaf("1"), NewLeaf("2"))
	if !Equal(a, b) {
		t.Errorf("expected reduced nodes with the same tag/args to be equal")
	}
	if Equal(a, c) {
		t.Errorf("expected reduced nodes with different tags to differ")
	}
}

func TestFingerprintMatchesEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	a := Result{Value: NewSeq(NewLeaf("a"), NewLeaf("b")), Remaining: 4}
	b := Result{Value: NewSeq(NewLeaf("a"), NewLeaf("b")), Remaining: 4}
	c := Result{Value: NewSeq(NewLeaf("a"), NewLeaf("b")), Remaining: 5}
	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("expected equal results to fingerprint identically")
	}
	if Fingerprint(a) == Fingerprint(c) {
		t.Errorf("expected different remaining positions to fingerprint differently")
	}
}

func TestFingerprintDistinguishesTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	a := Result{Value: NewReduced("plus", NewLeaf("1"))}
	b := Result{Value: NewReduced("minus", NewLeaf("1"))}
	if Fingerprint(a) == Fingerprint(b) {
		t.Errorf("expected different action tags to fingerprint differently")
	}
}

func TestStringRendersTaggedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.value")
	defer teardown()
	v := NewSeq(NewLeaf("a"), NewLeaf("b"))
	if got, want := v.String(), `(seq "a" "b")`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
