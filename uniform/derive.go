package uniform

import (
	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/sets"
)

// PairMap lifts a point map f to pairs: (x,y) ↦ (f x, f y). The pair
// maps of projections, injections and embeddings all come from here.
func PairMap[A, B comparable](f func(A) B) func(sets.Pair[A]) sets.Pair[B] {
	return func(p sets.Pair[A]) sets.Pair[B] {
		return sets.P(f(p.X), f(p.Y))
	}
}

// ComapCore pulls the uniformity of c back along e into the carrier
// dom — the induced (subspace) uniformity. Preimages under e×e
// preserve all three axioms, so no re-verification runs.
func ComapCore[B, A comparable](dom *sets.Universe[B], e func(B) A, c Core[A]) Core[B] {
	pb := sets.Pairs(dom)

	return trusted(dom, filter.Comap(pb, PairMap(e), c.f))
}

// ProdCore returns the product uniformity on the product carrier: the
// meet of the two projections' pullbacks. The meet direction matters —
// an entourage of the product must restrict to an entourage in each
// factor simultaneously.
func ProdCore[A, B comparable](ca Core[A], cb Core[B]) Core[sets.Prod[A, B]] {
	pu := sets.ProdUniverse(ca.u, cb.u)
	left := ComapCore(pu, sets.Fst[A, B], ca)
	right := ComapCore(pu, sets.Snd[A, B], cb)

	// Same carrier value by construction, so MeetCores cannot fail.
	out, _ := MeetCores(left, right)

	return out
}

// SumCore returns the disjoint-union uniformity on the sum carrier:
// the join of the two injections' pushforwards.
//
// The join — not the meet — is what keeps the summands apart: a basis
// entourage is a union of a left-left image and a right-right image,
// so no generating entourage (and no kernel) ever relates a left point
// to a right point. Taking the meet instead would admit cross pairs.
func SumCore[A, B comparable](ca Core[A], cb Core[B]) Core[sets.Sum[A, B]] {
	su := sets.SumUniverse(ca.u, cb.u)
	pu := sets.Pairs(su)
	left := filter.Map(PairMap(sets.InL[A, B]), pu, ca.f)
	right := filter.Map(PairMap(sets.InR[A, B]), pu, cb.f)

	return trusted(su, filter.Join(left, right))
}

// UniformlyContinuous reports whether f maps ca uniformly into cb:
// the pullback of every cb-entourage under f×f is a ca-entourage,
// i.e. 𝓤(ca) ≤ comap(f×f, 𝓤(cb)).
func UniformlyContinuous[A, B comparable](f func(A) B, ca Core[A], cb Core[B]) bool {
	return filter.LE(ca.f, filter.Comap(ca.pu, PairMap(f), cb.f))
}

// UniformInducing reports whether e's pullback of cb's uniformity is
// exactly ca's — the witness that ca is the subspace structure e
// induces. Composition of inducing maps stays inducing by the comap
// functor law.
func UniformInducing[A, B comparable](e func(A) B, ca Core[A], cb Core[B]) bool {
	return filter.Equal(ca.f, filter.Comap(ca.pu, PairMap(e), cb.f))
}
