package rel

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/sets"
)

// Rel is a finite binary relation on a single carrier: a set of ordered
// pairs of carrier points. The zero Rel is not valid; obtain relations
// from the constructors.
type Rel[T comparable] struct {
	u     *sets.Universe[T]
	pairs *set.Set[sets.Pair[T]]
}

// New builds the relation holding exactly the given pairs, dropping any
// pair with a coordinate outside the carrier.
//
// Time Complexity: O(k) for k pairs.
func New[T comparable](u *sets.Universe[T], pairs ...sets.Pair[T]) Rel[T] {
	s := set.New[sets.Pair[T]](len(pairs))
	for _, p := range pairs {
		if u.Contains(p.X) && u.Contains(p.Y) {
			s.Insert(p)
		}
	}

	return Rel[T]{u: u, pairs: s}
}

// FromSet wraps an existing pair set as a relation on u, clipping pairs
// outside the carrier.
func FromSet[T comparable](u *sets.Universe[T], s *set.Set[sets.Pair[T]]) Rel[T] {
	out := set.New[sets.Pair[T]](s.Size())
	for _, p := range s.Slice() {
		if u.Contains(p.X) && u.Contains(p.Y) {
			out.Insert(p)
		}
	}

	return Rel[T]{u: u, pairs: out}
}

// FromPred builds the relation of all carrier pairs satisfying pred.
//
// Time Complexity: O(n²) for carrier size n.
func FromPred[T comparable](u *sets.Universe[T], pred func(x, y T) bool) Rel[T] {
	s := set.New[sets.Pair[T]](0)
	for _, x := range u.Elems() {
		for _, y := range u.Elems() {
			if pred(x, y) {
				s.Insert(sets.P(x, y))
			}
		}
	}

	return Rel[T]{u: u, pairs: s}
}

// Id returns the diagonal relation {(x,x) | x ∈ u} — the identity of
// composition and the reflexivity witness of every uniformity.
func Id[T comparable](u *sets.Universe[T]) Rel[T] {
	s := set.New[sets.Pair[T]](u.Size())
	for _, x := range u.Elems() {
		s.Insert(sets.P(x, x))
	}

	return Rel[T]{u: u, pairs: s}
}

// Full returns the total relation u × u.
func Full[T comparable](u *sets.Universe[T]) Rel[T] {
	return FromPred(u, func(T, T) bool { return true })
}

// Empty returns the empty relation on u.
func Empty[T comparable](u *sets.Universe[T]) Rel[T] {
	return Rel[T]{u: u, pairs: set.New[sets.Pair[T]](0)}
}

// Universe returns the carrier the relation lives on.
func (r Rel[T]) Universe() *sets.Universe[T] { return r.u }

// Contains reports whether (x,y) is related.
func (r Rel[T]) Contains(x, y T) bool {
	return r.pairs.Contains(sets.P(x, y))
}

// Has reports whether the pair p is related.
func (r Rel[T]) Has(p sets.Pair[T]) bool { return r.pairs.Contains(p) }

// Size returns the number of related pairs.
func (r Rel[T]) Size() int { return r.pairs.Size() }

// Pairs returns a copy of the underlying pair set.
func (r Rel[T]) Pairs() *set.Set[sets.Pair[T]] { return r.pairs.Copy() }

// Slice returns the related pairs in unspecified order.
func (r Rel[T]) Slice() []sets.Pair[T] { return r.pairs.Slice() }

// Ball returns {y | (x,y) ∈ r}, the set of points within r of x.
//
// The relational triangle law — y ∈ Ball(x,V) and z ∈ Ball(y,W) imply
// z ∈ Ball(x,V∘W) — is the single structural fact standing in for the
// metric triangle inequality everywhere downstream.
//
// Time Complexity: O(|r|)
func (r Rel[T]) Ball(x T) *set.Set[T] {
	out := set.New[T](0)
	for _, p := range r.pairs.Slice() {
		if p.X == x {
			out.Insert(p.Y)
		}
	}

	return out
}
