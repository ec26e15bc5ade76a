package completion

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/sets"
	"github.com/velatiq/unispace/uniform"
)

// Completeness transfer: each constructor below builds a derived space
// together with a Complete capability obtained by transporting Cauchy
// filters through uniformly inducing maps — map into the known-complete
// side, take the limit there, comap the answer back. No algorithm
// beyond the map/comap Galois pair is involved.

// ClosedComplete restricts a complete space to a closed subset and
// returns the subspace with its inherited limit capability.
//
// A limit of a Cauchy filter living on s stays in the closure of s, so
// closedness is exactly what keeps the transported limit inside the
// subspace.
//
// Errors: ErrNotClosed when s is not closed in sp.
func ClosedComplete[T comparable](sp uniform.Space[T], lim Complete[T], s *set.Set[T]) (uniform.Space[T], Complete[T], error) {
	if !sp.Closure(s).EqualSet(s.Intersect(sp.Universe().Set())) {
		return uniform.Space[T]{}, nil, ErrNotClosed
	}
	sub := sp.Universe().Restrict(s)
	space := uniform.NewSpace(uniform.ComapCore(sub, ident[T], sp.Core))

	return space, subLimits[T]{ambient: sp, lim: lim, sub: sub}, nil
}

func ident[T comparable](x T) T { return x }

type subLimits[T comparable] struct {
	ambient uniform.Space[T]
	lim     Complete[T]
	sub     *sets.Universe[T]
}

// Limit pushes the filter into the ambient space, takes the limit
// there, and keeps it only if it landed back in the subspace.
func (l subLimits[T]) Limit(f filter.Filter[T]) (T, bool) {
	pushed := filter.Map(ident[T], l.ambient.Universe(), f)
	x, ok := l.lim.Limit(pushed)
	if !ok || !l.sub.Contains(x) {
		var zero T

		return zero, false
	}

	return x, true
}

// ProdComplete builds the product of two complete spaces with the
// componentwise limit capability: a Cauchy filter on the product
// pushes to Cauchy filters along both projections, and the pair of
// their limits is the product limit.
func ProdComplete[A, B comparable](
	spa uniform.Space[A], la Complete[A],
	spb uniform.Space[B], lb Complete[B],
) (uniform.Space[sets.Prod[A, B]], Complete[sets.Prod[A, B]]) {
	space := uniform.NewSpace(uniform.ProdCore(spa.Core, spb.Core))

	return space, prodLimits[A, B]{spa: spa, la: la, spb: spb, lb: lb}
}

type prodLimits[A, B comparable] struct {
	spa uniform.Space[A]
	la  Complete[A]
	spb uniform.Space[B]
	lb  Complete[B]
}

func (l prodLimits[A, B]) Limit(f filter.Filter[sets.Prod[A, B]]) (sets.Prod[A, B], bool) {
	a, okA := l.la.Limit(filter.Map(sets.Fst[A, B], l.spa.Universe(), f))
	b, okB := l.lb.Limit(filter.Map(sets.Snd[A, B], l.spb.Universe(), f))
	if !okA || !okB {
		return sets.Prod[A, B]{}, false
	}

	return sets.Prod[A, B]{A: a, B: b}, true
}

// SumComplete builds the disjoint union of two complete spaces. A
// non-trivial Cauchy filter on the sum is eventually confined to one
// summand — no entourage bridges the two — so its kernel decides the
// side, and the limit transports through that injection alone.
func SumComplete[A, B comparable](
	spa uniform.Space[A], la Complete[A],
	spb uniform.Space[B], lb Complete[B],
) (uniform.Space[sets.Sum[A, B]], Complete[sets.Sum[A, B]]) {
	space := uniform.NewSpace(uniform.SumCore(spa.Core, spb.Core))

	return space, sumLimits[A, B]{spa: spa, la: la, spb: spb, lb: lb, sum: space.Universe()}
}

type sumLimits[A, B comparable] struct {
	spa uniform.Space[A]
	la  Complete[A]
	spb uniform.Space[B]
	lb  Complete[B]
	sum *sets.Universe[sets.Sum[A, B]]
}

func (l sumLimits[A, B]) Limit(f filter.Filter[sets.Sum[A, B]]) (sets.Sum[A, B], bool) {
	ker := f.Ker()
	if ker.Empty() {
		return sets.Sum[A, B]{}, false
	}

	right := true
	for _, x := range ker.Slice() {
		if !x.IsRight {
			right = false

			break
		}
	}
	if right {
		b, ok := l.lb.Limit(filter.Comap(l.spb.Universe(), sets.InR[A, B], f))
		if !ok {
			return sets.Sum[A, B]{}, false
		}

		return sets.InR[A, B](b), true
	}

	// A Cauchy kernel never straddles both summands; anything left over
	// on the right is the caller feeding a non-Cauchy filter.
	a, ok := l.la.Limit(filter.Comap(l.spa.Universe(), sets.InL[A, B], f))
	if !ok {
		return sets.Sum[A, B]{}, false
	}

	return sets.InL[A, B](a), true
}
