package containers_test

import (
	"testing"

	"github.com/collectkit/go-collect/containers"
)

func TestForwardListInsertFrontReversesArrivalOrder(t *testing.T) {
	l := containers.NewForwardList[int]()
	l.InsertFront(1)
	l.InsertFront(2)
	l.InsertFront(3)
	assertSlice(t, l.All(), []int{3, 2, 1})
}

func TestForwardListFront(t *testing.T) {
	l := containers.NewForwardList[string]()
	if _, ok := l.Front(); ok {
		t.Fatal("empty list should have no front")
	}
	l.InsertFront("a")
	l.InsertFront("b")
	v, ok := l.Front()
	if !ok || v != "b" {
		t.Fatalf("Front = %v, %v; want b, true", v, ok)
	}
}

func TestForwardListLen(t *testing.T) {
	l := containers.NewForwardList[int]()
	for i := 0; i < 5; i++ {
		l.InsertFront(i)
	}
	if l.Len() != 5 {
		t.Fatalf("Len = %d, want 5", l.Len())
	}
}

func TestForwardListValues(t *testing.T) {
	l := containers.NewForwardList[int]()
	l.InsertFront(1)
	l.InsertFront(2)
	var got []int
	for v := range l.Values() {
		got = append(got, v)
	}
	assertSlice(t, got, []int{2, 1})
}

func TestForwardListValuesEarlyBreak(t *testing.T) {
	l := containers.NewForwardList[int]()
	l.InsertFront(1)
	l.InsertFront(2)
	var got []int
	for v := range l.Values() {
		got = append(got, v)
		break
	}
	assertSlice(t, got, []int{2})
}
