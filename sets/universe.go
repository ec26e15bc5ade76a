package sets

import (
	"sort"
	"strconv"
	"strings"

	set "github.com/hashicorp/go-set/v3"
)

// Universe is a finite, immutable carrier of points.
//
// Description:
//
//	A Universe fixes the set of all points a filter, relation or
//	uniformity may mention. It keeps a stable element order (first
//	occurrence wins) and an index map, so canonical keys for sets of
//	points can be computed deterministically.
//
// Universes are never mutated after construction; derived carriers
// (pairs, products, sums, restrictions) are built as new values.
type Universe[T comparable] struct {
	elems []T
	index map[T]int
}

// NewUniverse builds a Universe from elems, dropping duplicates while
// keeping the first occurrence order.
//
// Time Complexity: O(n)
func NewUniverse[T comparable](elems ...T) *Universe[T] {
	u := &Universe[T]{index: make(map[T]int, len(elems))}
	for _, x := range elems {
		if _, ok := u.index[x]; ok {
			continue
		}
		u.index[x] = len(u.elems)
		u.elems = append(u.elems, x)
	}

	return u
}

// Elems returns the carrier's points in stable order.
// The returned slice is a copy and may be modified freely.
func (u *Universe[T]) Elems() []T {
	out := make([]T, len(u.elems))
	copy(out, u.elems)

	return out
}

// Size returns the number of points in the carrier.
func (u *Universe[T]) Size() int { return len(u.elems) }

// Contains reports whether x is a point of the carrier.
func (u *Universe[T]) Contains(x T) bool {
	_, ok := u.index[x]

	return ok
}

// Index returns the stable position of x, or -1 if x is not a point.
func (u *Universe[T]) Index(x T) int {
	i, ok := u.index[x]
	if !ok {
		return -1
	}

	return i
}

// Set returns a fresh Set holding every point of the carrier.
//
// Time Complexity: O(n)
func (u *Universe[T]) Set() *set.Set[T] {
	return set.From(u.elems)
}

// Empty returns a fresh empty Set over the carrier's element type.
func (u *Universe[T]) Empty() *set.Set[T] {
	return set.New[T](0)
}

// Where returns the subset of points satisfying pred.
//
// Time Complexity: O(n)
func (u *Universe[T]) Where(pred func(T) bool) *set.Set[T] {
	s := set.New[T](len(u.elems))
	for _, x := range u.elems {
		if pred(x) {
			s.Insert(x)
		}
	}

	return s
}

// Key returns a canonical string for s relative to this universe:
// the sorted indices of its points. Two sets of carrier points are
// equal iff their keys coincide, which makes Key suitable for
// deduplication in filter bases.
//
// Points of s outside the carrier are ignored.
//
// Time Complexity: O(|s| log |s|)
func (u *Universe[T]) Key(s *set.Set[T]) string {
	idx := make([]int, 0, s.Size())
	for _, x := range s.Slice() {
		if i, ok := u.index[x]; ok {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)

	var b strings.Builder
	for i, n := range idx {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

// Restrict builds the sub-carrier holding only the points of s,
// preserving this universe's element order.
//
// Time Complexity: O(n)
func (u *Universe[T]) Restrict(s *set.Set[T]) *Universe[T] {
	kept := make([]T, 0, s.Size())
	for _, x := range u.elems {
		if s.Contains(x) {
			kept = append(kept, x)
		}
	}

	return NewUniverse(kept...)
}
