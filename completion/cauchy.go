package completion

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/sets"
	"github.com/velatiq/unispace/uniform"
)

// Square lifts a filter on points to the filter on pairs generated by
// the squares b×b of its members — the "F ×ᶠ F along the diagonal"
// construction Cauchy-ness is phrased with. Squaring is monotone, so
// the lift is well-defined.
func Square[T comparable](pu *sets.Universe[sets.Pair[T]], f filter.Filter[T]) filter.Filter[sets.Pair[T]] {
	h := filter.NewMonotone(func(b *set.Set[T]) *set.Set[sets.Pair[T]] {
		out := set.New[sets.Pair[T]](b.Size() * b.Size())
		for _, x := range b.Slice() {
			for _, y := range b.Slice() {
				out.Insert(sets.P(x, y))
			}
		}

		return out
	})

	return filter.LiftSet(f, h, pu)
}

// Cauchy reports whether F is a Cauchy filter on sp: non-trivial, and
// Square(F) ≤ 𝓤 — every entourage contains the square of some member.
// This is the uniform-space generalization of a Cauchy sequence:
// members become arbitrarily "small" in the entourage sense.
//
// Complexity: O(p·q·n²) for uniformity basis p, filter basis q.
func Cauchy[T comparable](sp uniform.Space[T], f filter.Filter[T]) bool {
	return f.NeBot() && filter.LE(Square(sp.PairUniverse(), f), sp.Filter())
}

// Converges reports whether F converges to x: F refines the
// neighborhood filter of x.
func Converges[T comparable](sp uniform.Space[T], f filter.Filter[T], x T) bool {
	return filter.LE(f, sp.Nhds(x))
}

// Separated reports whether distinct points of sp are told apart by
// some entourage — equivalently, the kernel of the uniformity is
// exactly the diagonal. Separation is what makes limits unique and the
// extension ψ a function rather than a relation.
func Separated[T comparable](sp uniform.Space[T]) bool {
	return rel.Equal(sp.Ker(), rel.Id(sp.Universe()))
}

// Complete is the limit capability a target type supplies: given a
// Cauchy filter, produce a point it converges to. The second result is
// false only when the filter has no limit, which a genuinely complete
// space never reports on a Cauchy input.
//
// For concrete carriers the capability may run an actual limiting
// procedure; for finite models ExhaustiveLimits searches the carrier.
type Complete[T comparable] interface {
	Limit(f filter.Filter[T]) (T, bool)
}

// ExhaustiveLimits is the finite-carrier Complete implementation: scan
// the carrier in stable order and return the first point the filter
// converges to. On a separated space the convergent point is unique,
// so scan order never matters there.
type ExhaustiveLimits[T comparable] struct {
	Space uniform.Space[T]
}

// Limit searches the carrier for a convergence point of f.
//
// Complexity: O(n) convergence checks of O(p·q·n) each.
func (e ExhaustiveLimits[T]) Limit(f filter.Filter[T]) (T, bool) {
	for _, x := range e.Space.Universe().Elems() {
		if Converges(e.Space, f, x) {
			return x, true
		}
	}

	var zero T

	return zero, false
}

// IsComplete decides completeness of sp under the given limit
// capability by checking every Cauchy filter on the carrier. Filters
// over a finite carrier are principal, so enumerating the non-empty
// subsets enumerates them all.
//
// Complexity: O(2ⁿ) principal filters for carrier size n; meant for
// the small models this library computes over.
func IsComplete[T comparable](sp uniform.Space[T], lim Complete[T]) bool {
	u := sp.Universe()
	elems := u.Elems()
	for mask := 1; mask < 1<<len(elems); mask++ {
		s := set.New[T](0)
		for i, x := range elems {
			if mask&(1<<i) != 0 {
				s.Insert(x)
			}
		}
		f := filter.Principal(u, s)
		if !Cauchy(sp, f) {
			continue
		}
		x, ok := lim.Limit(f)
		if !ok || !Converges(sp, f, x) {
			return false
		}
	}

	return true
}
