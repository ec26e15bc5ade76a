package uniform

import (
	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/sets"
)

// Discrete returns the finest uniformity on u: the principal filter at
// the diagonal. Every relation containing the diagonal is an entourage,
// every subset is open. This is the bottom of the lattice of cores.
func Discrete[T comparable](u *sets.Universe[T]) Core[T] {
	pu := sets.Pairs(u)

	return trusted(u, filter.Principal(pu, rel.Id(u).Pairs()))
}

// Indiscrete returns the coarsest uniformity on u: the only entourage
// is all of u × u, and only ∅ and the carrier are open. This is the top
// of the lattice of cores.
func Indiscrete[T comparable](u *sets.Universe[T]) Core[T] {
	return trusted(u, filter.Top(sets.Pairs(u)))
}

// LE reports a ≤ b in the lattice of cores: a's uniformity is finer
// (has more entourages) than b's.
func LE[T comparable](a, b Core[T]) bool {
	return filter.LE(a.f, b.f)
}

// Equal reports whether a and b have exactly the same entourages.
func Equal[T comparable](a, b Core[T]) bool {
	return filter.Equal(a.f, b.f)
}

// MeetCores returns the infimum of a and b: the filter meet of their
// uniformities. Each axiom has the shape F ≤ derived(F) and derived is
// monotone, so the meet inherits reflexivity, symmetry and the triangle
// without re-verification.
//
// Errors: ErrCarrierMismatch when the cores live on different carriers.
func MeetCores[T comparable](a, b Core[T]) (Core[T], error) {
	if a.u != b.u {
		return Core[T]{}, ErrCarrierMismatch
	}

	return trusted(a.u, filter.Meet(a.f, b.f)), nil
}

// SupCores returns the supremum of a and b: the least core above both.
//
// Description:
//
//	The filter join of two uniformities need not satisfy the triangle
//	axiom, so the supremum is defined as the infimum of all cores above
//	both operands. On a finite carrier every core is principal at a
//	reflexive, symmetric, transitive kernel, so the least core above
//	both is principal at the transitive closure of the union of the two
//	kernels — computed here by composing to a fixpoint.
//
// Errors: ErrCarrierMismatch when the cores live on different carriers.
//
// Complexity: O(n) compositions of O(n³) each, for carrier size n.
func SupCores[T comparable](a, b Core[T]) (Core[T], error) {
	if a.u != b.u {
		return Core[T]{}, ErrCarrierMismatch
	}

	k := rel.Union(a.Ker(), b.Ker())
	for {
		next := rel.Union(k, rel.Compose(k, k))
		if rel.Equal(next, k) {
			break
		}
		k = next
	}

	return trusted(a.u, filter.Principal(a.pu, k.Pairs())), nil
}
