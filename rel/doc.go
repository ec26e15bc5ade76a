// Package rel implements the relation algebra on ordered pairs that the
// uniformity layer is built from: composition, swap, symmetrization and
// the diagonal, all as plain finite-set operations with no filters in
// sight.
//
// ✨ Key operations:
//   - Id(u)            — the diagonal {(x,x)}
//   - Compose(V, W)    — {(x,y) | ∃z, (x,z)∈V ∧ (z,y)∈W}
//   - Swap(V)          — coordinate exchange
//   - Symmetrize(V)    — V ∩ Swap(V): idempotent, symmetric, ⊆ V
//   - Ball(V, x)       — {y | (x,y)∈V}, the relational metric ball
//
// ⚠️ Composition convention:
//
//	Compose(V, W) relates x to y when a middle point z is within V of x
//	and y is within W of z — V is applied first. The order matters for
//	every derived shrink argument; the associativity and identity tests
//	in this package pin the convention down.
//
// Relations are immutable values: every operation returns a new Rel and
// any Rel may be shared across goroutines without synchronization.
//
// Complexity: over a carrier of n points, Compose costs O(n³) pair
// lookups in the worst case; Swap, Symmetrize and Ball cost O(|V|).
package rel
