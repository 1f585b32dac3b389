package seq_test

import (
	"fmt"
	"strconv"

	"github.com/collectkit/go-collect/seq"
)

func ExampleOf() {
	for v := range seq.Of("a", "b", "c") {
		fmt.Print(v)
	}
	// Output: abc
}

func ExampleRange() {
	fmt.Println(seq.Count(seq.Range(1, 21)))
	// Output: 20
}

func ExampleFilter() {
	evens := seq.Filter(seq.Range(1, 10), func(n int) bool { return n%2 == 0 })
	for v := range evens {
		fmt.Print(v, " ")
	}
	// Output: 2 4 6 8
}

func ExampleMap() {
	for s := range seq.Map(seq.Of(1, 2, 3), strconv.Itoa) {
		fmt.Printf("%q ", s)
	}
	// Output: "1" "2" "3"
}

func ExampleDrop() {
	for v := range seq.Drop(seq.Range(1, 21), 17) {
		fmt.Print(v, " ")
	}
	// Output: 18 19 20
}
