package domain

import (
	"reflect"
	"testing"
)

func TestPairWithinLimits(t *testing.T) {
	pair := Pair{
		Source: []string{"a", "b", "c"},
		Target: []string{"x", "y"},
	}

	if !pair.WithinLimits(3, 2) {
		t.Error("pair at exactly the caps should pass")
	}
	if !pair.WithinLimits(10, 10) {
		t.Error("pair below the caps should pass")
	}
	if pair.WithinLimits(2, 2) {
		t.Error("over-length source should fail")
	}
	if pair.WithinLimits(3, 1) {
		t.Error("over-length target should fail")
	}
}

func TestPairWithinLimits_ZeroCaps(t *testing.T) {
	empty := Pair{}
	if !empty.WithinLimits(0, 0) {
		t.Error("empty pair should pass zero caps")
	}

	pair := Pair{Source: []string{"a"}, Target: nil}
	if pair.WithinLimits(0, 0) {
		t.Error("non-empty source should fail a zero cap")
	}
}

func TestVocabulary_SetSemantics(t *testing.T) {
	vocab := NewVocabulary()
	vocab.Add("cat")
	vocab.Add("dog")
	vocab.Add("cat")

	if vocab.Size() != 2 {
		t.Errorf("expected size 2, got %d", vocab.Size())
	}
	if !vocab.Has("cat") || !vocab.Has("dog") {
		t.Errorf("expected cat and dog, got %v", vocab.Tokens())
	}
	if vocab.Has("bird") {
		t.Error("did not expect bird")
	}
}

func TestVocabulary_TokensSorted(t *testing.T) {
	vocab := NewVocabulary()
	for _, token := range []string{"zebra", "ant", "mole"} {
		vocab.Add(token)
	}

	want := []string{"ant", "mole", "zebra"}
	if got := vocab.Tokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
