// This file declares the Candidate and Frontier contracts shared by the
// scan and heap implementations.

package frontier

// Candidate is any item that can be queued in a Frontier. The accumulated
// cost is the only thing a frontier ever inspects.
type Candidate interface {
	// Cost returns the accumulated total used for min-ordering.
	Cost() int64
}

// Frontier is a min-ordered collection of search candidates.
//
// Implementations are not safe for concurrent use; each search invocation
// owns its frontier exclusively.
type Frontier interface {
	// Push inserts a candidate. It always succeeds.
	Push(c Candidate)

	// Pop removes and returns the minimum-cost candidate.
	// ok is false only when the frontier is empty.
	Pop() (c Candidate, ok bool)

	// Peek returns the minimum-cost candidate without removing it.
	// ok is false only when the frontier is empty.
	Peek() (c Candidate, ok bool)

	// Len returns the number of queued candidates.
	Len() int
}
