package containers_test

import (
	"testing"

	"github.com/collectkit/go-collect/containers"
)

func TestOrderedSetPreservesFirstInsertionOrder(t *testing.T) {
	s := containers.NewOrderedSet[string]()
	s.Insert("b")
	s.Insert("a")
	s.Insert("b") // duplicate must neither append nor reorder
	s.Insert("c")
	assertSlice(t, s.All(), []string{"b", "a", "c"})
}

func TestOrderedSetHasAndLen(t *testing.T) {
	s := containers.NewOrderedSet[int]()
	s.Insert(1)
	s.Insert(1)
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if !s.Has(1) || s.Has(2) {
		t.Fatal("Has gave wrong answer")
	}
}

func TestOrderedSetAllReturnsCopy(t *testing.T) {
	s := containers.NewOrderedSet[int]()
	s.Insert(1)
	out := s.All()
	out[0] = 99
	assertSlice(t, s.All(), []int{1})
}

func TestOrderedSetValues(t *testing.T) {
	s := containers.NewOrderedSet[int]()
	for _, v := range []int{3, 1, 3, 2} {
		s.Insert(v)
	}
	var got []int
	for v := range s.Values() {
		got = append(got, v)
	}
	assertSlice(t, got, []int{3, 1, 2})
}

func TestOrderedSetToJSON(t *testing.T) {
	s := containers.NewOrderedSet[int]()
	s.Insert(2)
	s.Insert(1)
	b, err := s.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[2,1]" {
		t.Fatalf("ToJSON = %q, want %q", b, "[2,1]")
	}
}

func TestOrderedSetToYAML(t *testing.T) {
	s := containers.NewOrderedSet[string]()
	s.Insert("b")
	s.Insert("a")
	b, err := s.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	want := "- b\n- a\n"
	if string(b) != want {
		t.Fatalf("ToYAML = %q, want %q", b, want)
	}
}
