// Package frontier provides min-ordered candidate collections for greedy
// graph search: the working set of not-yet-finalized path candidates from
// which the cheapest is repeatedly extracted.
//
// Two interchangeable strategies implement the same Frontier contract:
//
//   - NewScan: a linear-scan list. Push is an O(1) append; Pop scans all k
//     current candidates for the minimum and removes it in O(k).
//     Simple, cache-friendly, and competitive on small frontiers.
//   - NewHeap: a binary min-heap on container/heap. Push and Pop cost
//     O(log k); Peek reads the root in O(1).
//
// The contract, identical for both:
//
//   - Push always succeeds and grows the candidate count by one.
//   - Pop returns ok=false only when the frontier holds zero candidates.
//   - After every Pop, the returned candidate's cost is ≤ the cost of every
//     candidate still held — the correctness-critical invariant of greedy
//     shortest-path selection, maintained across arbitrary Push/Pop
//     interleavings, not just on a pre-filled collection.
//   - Equal-cost candidates come out in insertion order (FIFO), so a run
//     over a fixed insertion sequence is deterministic.
//
// A frontier depends on nothing but the comparison key: any item exposing
// Cost() int64 can be queued. Duplicate items for the same logical
// destination may coexist; deduplication is the search layer's concern.
package frontier
