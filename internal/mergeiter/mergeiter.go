// Package mergeiter implements a reusable, lazy, pull-driven merge of two
// already-sorted sequences, tagging each yielded element with its origin.
//
// It mirrors the ordered-chain iterator in original_source/src/iter_utils.rs:
// a direction (there, a std::cmp::Ordering) decides which head to consume on
// each pull, and ties resolve toward the second ("B") input by construction.
package mergeiter

// Direction selects which strict comparison result means "consume from A".
type Direction int

const (
	// Ascending consumes from A when A's head compares strictly less than
	// B's head (A sorts smaller-first).
	Ascending Direction = iota
	// Descending consumes from A when A's head compares strictly greater
	// than B's head (A sorts larger-first).
	Descending
	// equalDirection is not a legal configuration; it exists only so
	// NewChain can reject it the way the original rejects
	// Ordering::Equal at construction.
	equalDirection
)

// Tag identifies which input sequence an element came from.
type Tag int

const (
	Left Tag = iota
	Right
)

// Tagged pairs a yielded element with the sequence it originated from.
type Tagged[T any] struct {
	Tag   Tag
	Value T
}

// CompareFunc returns a negative number if a sorts before b, zero if equal,
// and a positive number if a sorts after b — the same contract as cmp.Compare.
type CompareFunc[T any] func(a, b T) int

// Chain lazily interleaves two already-sorted slices A and B under a total
// order and direction, tagging each element with its origin. On each pull:
//
//  1. if both inputs are exhausted, it ends;
//  2. if only one input has a next element, that element is yielded;
//  3. otherwise the heads are compared: if the head of A satisfies the
//     direction against the head of B (strictly), A is consumed; otherwise
//     B is consumed. Ties therefore resolve in favor of B — this is the
//     documented tie-break convention, not an incidental detail.
//
// Chain is single-pass: once exhausted it cannot be restarted; construct a
// fresh Chain instead.
type Chain[T any] struct {
	a, b []T
	i, j int
	cmp  CompareFunc[T]
	dir  Direction
}

// NewChain constructs a Chain over a and b under cmp and dir. dir must be
// Ascending or Descending; passing equalDirection (or any other value)
// panics, mirroring the original's assert_ne!(cmp, Ordering::Equal).
func NewChain[T any](a, b []T, cmp CompareFunc[T], dir Direction) *Chain[T] {
	if cmp == nil {
		panic("mergeiter: cmp must not be nil")
	}
	if dir != Ascending && dir != Descending {
		panic("mergeiter: direction must be Ascending or Descending, not equal")
	}
	return &Chain[T]{a: a, b: b, cmp: cmp, dir: dir}
}

// aWins reports whether the head of A satisfies the direction against the
// head of B strictly — the sole tie-break rule of this iterator.
func (c *Chain[T]) aWins(headA, headB T) bool {
	r := c.cmp(headA, headB)
	if c.dir == Ascending {
		return r < 0
	}
	return r > 0
}

// Next pulls the next tagged element, or returns ok=false once both inputs
// are exhausted.
func (c *Chain[T]) Next() (Tagged[T], bool) {
	aHas := c.i < len(c.a)
	bHas := c.j < len(c.b)

	switch {
	case !aHas && !bHas:
		return Tagged[T]{}, false
	case aHas && !bHas:
		v := c.a[c.i]
		c.i++
		return Tagged[T]{Tag: Left, Value: v}, true
	case !aHas && bHas:
		v := c.b[c.j]
		c.j++
		return Tagged[T]{Tag: Right, Value: v}, true
	default:
		if c.aWins(c.a[c.i], c.b[c.j]) {
			v := c.a[c.i]
			c.i++
			return Tagged[T]{Tag: Left, Value: v}, true
		}
		v := c.b[c.j]
		c.j++
		return Tagged[T]{Tag: Right, Value: v}, true
	}
}

// Take pulls up to n tagged elements, stopping early if the chain is
// exhausted first.
func (c *Chain[T]) Take(n int) []Tagged[T] {
	out := make([]Tagged[T], 0, n)
	for len(out) < n {
		v, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Drain pulls every remaining tagged element.
func (c *Chain[T]) Drain() []Tagged[T] {
	var out []Tagged[T]
	for {
		v, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
