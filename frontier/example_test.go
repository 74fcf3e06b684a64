// Package frontier_test provides runnable examples for the frontier variants.
package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/frontier"
)

// fare is a tiny Candidate used by the examples.
type fare int64

func (f fare) Cost() int64 { return int64(f) }

// ExampleNewHeap demonstrates min-ordered extraction from the heap variant.
func ExampleNewHeap() {
	// 1) Create the heap-backed frontier.
	f := frontier.NewHeap()

	// 2) Queue candidates in arbitrary order.
	for _, c := range []fare{7, 3, 9, 1} {
		f.Push(c)
	}

	// 3) Extraction always yields the cheapest remaining candidate.
	for {
		c, ok := f.Pop()
		if !ok {
			break
		}
		fmt.Print(c.Cost(), " ")
	}
	// Output: 1 3 7 9
}

// ExampleNewScan shows the linear-scan variant honoring the same contract.
func ExampleNewScan() {
	f := frontier.NewScan()
	f.Push(fare(12))
	f.Push(fare(5))

	c, _ := f.Peek()
	fmt.Println("cheapest:", c.Cost(), "queued:", f.Len())
	// Output: cheapest: 5 queued: 2
}
