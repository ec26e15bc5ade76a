package filter

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/sets"
)

// Comap pulls F back along f into the carrier dom: a subset s of dom is
// a member iff s contains f⁻¹(m) for some member m of F.
//
// Guarantees (pinned by tests):
//   - Comap is monotone in F.
//   - Contravariant functor law: pulling back along g∘f equals pulling
//     back along g, then along f. Uniform-inducing composition depends
//     on this holding exactly.
//
// Time Complexity: O(p·|dom|) for basis size p.
func Comap[T, U comparable](dom *sets.Universe[T], f func(T) U, F Filter[U]) Filter[T] {
	basis := make([]*set.Set[T], len(F.basis))
	for i, b := range F.basis {
		basis[i] = sets.Preimage(dom, f, b)
	}

	return derived(dom, basis)
}

// Map pushes F forward along f into the carrier cod: a subset s of cod
// is a member iff f⁻¹(s) is a member of F.
//
// Map and Comap form a Galois pair:
//
//	Map(f, cod, F) ≤ G  ⟺  F ≤ Comap(dom, f, G)
//
// Time Complexity: O(p) image computations for basis size p.
func Map[T, U comparable](f func(T) U, cod *sets.Universe[U], F Filter[T]) Filter[U] {
	basis := make([]*set.Set[U], len(F.basis))
	for i, b := range F.basis {
		basis[i] = sets.Image(f, b)
	}

	return derived(cod, basis)
}

// Lift is the nested composition ⨅_{s ∈ F} g(s): a set is a member iff
// it is a member of g(s) for some member s of F. Because g is monotone
// and the basis directed, the infimum over all members equals the
// infimum over the basis, whose bases union into a directed basis.
//
// Time Complexity: O(p) applications of g for basis size p.
func Lift[T, U comparable](F Filter[T], g MonotoneLift[T, U]) Filter[U] {
	var (
		cod   *sets.Universe[U]
		basis []*set.Set[U]
	)
	for _, b := range F.basis {
		gb := g.Apply(b)
		cod = gb.u
		basis = append(basis, gb.basis...)
	}

	return derived(cod, basis)
}

// LiftSet is the set-map variant of Lift (lift'): the filter generated
// by {h(s) : s ∈ F}, which for monotone h has basis {h(b) : b ∈ basis}.
//
// Time Complexity: O(p) applications of h for basis size p.
func LiftSet[T, U comparable](F Filter[T], h Monotone[T, U], cod *sets.Universe[U]) Filter[U] {
	basis := make([]*set.Set[U], len(F.basis))
	for i, b := range F.basis {
		basis[i] = h.Apply(b)
	}

	return derived(cod, basis)
}
