package containers_test

import (
	"sort"
	"testing"

	"github.com/collectkit/go-collect/containers"
)

func TestSetInsertCollapsesDuplicates(t *testing.T) {
	s := containers.NewSet[rune]()
	s.Insert('a')
	s.Insert('b')
	s.Insert('a')
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if !s.Has('a') || !s.Has('b') {
		t.Fatal("set is missing inserted elements")
	}
}

func TestSetOf(t *testing.T) {
	s := containers.SetOf(1, 2, 2, 3, 3, 3)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
}

func TestSetDelete(t *testing.T) {
	s := containers.SetOf("x", "y")
	if !s.Delete("x") {
		t.Fatal("Delete of present element should report true")
	}
	if s.Delete("x") {
		t.Fatal("Delete of absent element should report false")
	}
	if s.Has("x") {
		t.Fatal("deleted element still present")
	}
}

func TestSetAll(t *testing.T) {
	got := containers.SetOf(3, 1, 2).All()
	sort.Ints(got) // traversal order is unspecified
	assertSlice(t, got, []int{1, 2, 3})
}

func TestSetValues(t *testing.T) {
	s := containers.SetOf(1, 2, 3)
	var got []int
	for v := range s.Values() {
		got = append(got, v)
	}
	sort.Ints(got)
	assertSlice(t, got, []int{1, 2, 3})
}
