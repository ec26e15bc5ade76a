// Package uniform implements uniform space cores — filters of entourages
// satisfying the reflexivity, symmetry and triangle axioms — together
// with the derived topology, the entourage-basis shrink combinators and
// the complete lattice of cores on a fixed carrier.
//
// 🚀 What is a uniformity here?
//
//	A Core bundles a finite carrier with a filter on its pairs whose
//	every member contains the diagonal, is stable under swap, and admits
//	a half-sized member (V with V∘V inside it). NewCore validates the
//	three axioms once, against the generating basis, and returns an
//	immutable handle; downstream code never re-validates.
//
// ✨ Key operations:
//   - NewCore / Verify       — axiom-checked construction (errgroup-parallel)
//   - Space, Ball, Nhds      — derived topology; the neighborhood filter of
//     x is exactly the pullback of 𝓤 under y↦(x,y)
//   - Half / HalfSymm /
//     ThirdSymm              — the reusable shrink-then-symmetrize step
//   - OpenMember /
//     ClosedMember           — open, closed and open-symmetric entourage bases
//   - Discrete / Indiscrete,
//     MeetCores / SupCores   — the lattice of cores (⊥ = diagonal-principal)
//   - ComapCore / ProdCore /
//     SumCore                — induced, product and disjoint-sum uniformities
//
// ⚠️ Variance trap:
//
//	The product uniformity is the meet of the two projections' pullbacks;
//	the sum uniformity is the join of the two injections' pushforwards.
//	Getting either backwards silently relates cross pairs in sums or
//	collapses factors in products; both directions are pinned by tests.
//
// Cores and Spaces are immutable values safe for concurrent sharing.
//
// Complexity: NewCore costs O(p²·n³) in the worst case for basis size p
// and carrier size n (the triangle check composes basis entries); every
// shrink combinator is O(p·n³); topology queries are O(p·n) per point.
package uniform
