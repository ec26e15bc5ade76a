package rel

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/sets"
)

// Compose returns V ∘ W = {(x,y) | ∃z, (x,z) ∈ V ∧ (z,y) ∈ W}.
//
// The middle-point convention is fixed: V takes the first step, W the
// second. Compose is associative, has Id as a two-sided identity, and
// is monotone in both arguments — all three laws are pinned by tests.
//
// Time Complexity: O(|V|·n) pair lookups for carrier size n.
func Compose[T comparable](v, w Rel[T]) Rel[T] {
	out := set.New[sets.Pair[T]](0)
	for _, p := range v.pairs.Slice() {
		for _, y := range w.Ball(p.Y).Slice() {
			out.Insert(sets.P(p.X, y))
		}
	}

	return Rel[T]{u: v.u, pairs: out}
}

// Swap returns the relation with every pair's coordinates exchanged.
//
// Time Complexity: O(|r|)
func Swap[T comparable](r Rel[T]) Rel[T] {
	out := set.New[sets.Pair[T]](r.pairs.Size())
	for _, p := range r.pairs.Slice() {
		out.Insert(p.Swap())
	}

	return Rel[T]{u: r.u, pairs: out}
}

// Symmetrize returns r ∩ Swap(r): the largest symmetric sub-relation.
// It is idempotent and monotone, and its result is always symmetric.
//
// Time Complexity: O(|r|)
func Symmetrize[T comparable](r Rel[T]) Rel[T] {
	return Inter(r, Swap(r))
}

// IsSymmetric reports whether r equals its own swap.
func IsSymmetric[T comparable](r Rel[T]) bool {
	return r.pairs.Equal(Swap(r).pairs)
}

// IsReflexive reports whether r contains the full diagonal of its
// carrier.
func IsReflexive[T comparable](r Rel[T]) bool {
	return Within(Id(r.u), r)
}

// Inter returns the intersection of two relations on the same carrier.
func Inter[T comparable](a, b Rel[T]) Rel[T] {
	return Rel[T]{u: a.u, pairs: sets.Narrow(a.pairs.Intersect(b.pairs))}
}

// Union returns the union of two relations on the same carrier.
func Union[T comparable](a, b Rel[T]) Rel[T] {
	return Rel[T]{u: a.u, pairs: sets.Narrow(a.pairs.Union(b.pairs))}
}

// Within reports whether a ⊆ b as sets of pairs.
func Within[T comparable](a, b Rel[T]) bool {
	return sets.Within(a.pairs, b.pairs)
}

// Equal reports whether a and b relate exactly the same pairs.
func Equal[T comparable](a, b Rel[T]) bool {
	return a.pairs.Equal(b.pairs)
}
