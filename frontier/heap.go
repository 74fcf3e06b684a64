// This file implements the binary-heap frontier variant on container/heap.

package frontier

import "container/heap"

// heapFrontier wraps a container/heap min-heap keyed by candidate cost.
// Push/Pop O(log k), Peek O(1).
type heapFrontier struct {
	pq candidatePQ
	// seq is a monotonic insertion counter used to keep equal-cost
	// candidates FIFO; a bare cost comparison would leave tie order to
	// sift mechanics.
	seq uint64
}

// NewHeap returns an empty binary-heap Frontier.
func NewHeap() Frontier {
	f := &heapFrontier{}
	heap.Init(&f.pq)

	return f
}

// Push inserts the candidate, stamped with the next sequence number.
// Complexity: O(log k).
func (f *heapFrontier) Push(c Candidate) {
	f.seq++
	heap.Push(&f.pq, &heapEntry{c: c, seq: f.seq})
}

// Pop removes and returns the minimum-cost candidate (earliest inserted
// among equal costs). Complexity: O(log k).
func (f *heapFrontier) Pop() (Candidate, bool) {
	if f.pq.Len() == 0 {
		return nil, false
	}

	return heap.Pop(&f.pq).(*heapEntry).c, true
}

// Peek reads the root without removing it. Complexity: O(1).
func (f *heapFrontier) Peek() (Candidate, bool) {
	if f.pq.Len() == 0 {
		return nil, false
	}

	return f.pq[0].c, true
}

// Len returns the candidate count. Complexity: O(1).
func (f *heapFrontier) Len() int { return f.pq.Len() }

// heapEntry pairs a candidate with its insertion sequence number.
type heapEntry struct {
	c   Candidate
	seq uint64
}

// candidatePQ is a min-heap of *heapEntry ordered by cost ascending, then by
// insertion sequence ascending for equal costs.
type candidatePQ []*heapEntry

// Len returns the number of entries in the heap.
func (pq candidatePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost wins; equal costs fall back to
// insertion order.
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].c.Cost() != pq[j].c.Cost() {
		return pq[i].c.Cost() < pq[j].c.Cost()
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries in the heap.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new entry; called by heap.Push, x must be *heapEntry.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*heapEntry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return entry
}
