// This file implements the linear-scan frontier variant.

package frontier

// scanFrontier keeps candidates in insertion order and finds the minimum by
// scanning on extraction. Push O(1), Pop/Peek O(k).
type scanFrontier struct {
	items []Candidate
}

// NewScan returns an empty linear-scan Frontier.
func NewScan() Frontier {
	return &scanFrontier{}
}

// Push appends the candidate. Complexity: O(1) amortized.
func (f *scanFrontier) Push(c Candidate) {
	f.items = append(f.items, c)
}

// Pop scans all candidates for the minimum cost, removes it, and returns it.
// The strict < comparison keeps the earliest-inserted candidate among equal
// costs, and removal preserves the order of the remainder, so ties stay FIFO.
// Complexity: O(k).
func (f *scanFrontier) Pop() (Candidate, bool) {
	if len(f.items) == 0 {
		return nil, false
	}

	// 1) Locate the minimum; strict < keeps the earliest equal-cost entry.
	best := 0
	for i := 1; i < len(f.items); i++ {
		if f.items[i].Cost() < f.items[best].Cost() {
			best = i
		}
	}

	// 2) Remove in place, preserving relative order of the remainder.
	c := f.items[best]
	f.items = append(f.items[:best], f.items[best+1:]...)

	return c, true
}

// Peek scans for the minimum without removing it. Complexity: O(k).
func (f *scanFrontier) Peek() (Candidate, bool) {
	if len(f.items) == 0 {
		return nil, false
	}

	best := 0
	for i := 1; i < len(f.items); i++ {
		if f.items[i].Cost() < f.items[best].Cost() {
			best = i
		}
	}

	return f.items[best], true
}

// Len returns the candidate count. Complexity: O(1).
func (f *scanFrontier) Len() int { return len(f.items) }
