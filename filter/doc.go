// Package filter implements the lattice of filters — upward-closed,
// finite-intersection-closed families of subsets of a finite carrier,
// the algebra of "eventually true" conditions.
//
// 🚀 What is a filter here?
//
//	A Filter is represented symbolically by a non-empty, downward-directed
//	generating basis: a subset of the carrier is a member iff it contains
//	some basis set. The full member family (exponential in the carrier
//	size) is never materialized; every operation rewrites bases.
//
// ✨ Key operations:
//   - Principal(u, s)   — supersets of s
//   - Comap(dom, f, F)  — pullback; satisfies the contravariant functor law
//   - Map(f, cod, F)    — pushforward; Galois-adjoint to Comap:
//     Map(f, cod, F) ≤ G  ⟺  F ≤ Comap(dom, f, G)
//   - Lift / LiftSet    — nested composition along a monotone set map
//   - Meet / Join       — the complete lattice structure; the empty meet
//     is Top (only the whole carrier is a member), the empty join is Bot
//     (every subset, including ∅, is a member)
//
// Ordering follows the "finer ≤ coarser" convention: F ≤ G iff every
// member of G is a member of F. Bot is the least filter, Top the
// greatest.
//
// ⚠️ Monotonicity contract:
//
//	Lift and LiftSet require a monotone set map. Monotonicity cannot be
//	observed from a function value, so callers certify it by wrapping the
//	function in Monotone/MonotoneLift; supplying a non-monotone function
//	produces an ill-defined filter, not an error.
//
// Filters are immutable values: every operation returns a new Filter and
// any Filter may be shared across goroutines without synchronization.
//
// Complexity: with basis sizes p and q, Meet/Join cost O(p·q) set
// operations, Comap/Map/LiftSet cost O(p), and membership tests cost
// O(p) inclusion checks.
package filter
