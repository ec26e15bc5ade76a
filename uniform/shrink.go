package uniform

import (
	"github.com/velatiq/unispace/rel"
)

// Half returns a member V with V ∘ V ⊆ s — the triangle axiom made
// effective. s itself must be a member.
//
// Algorithm: scan the generating basis for a half; the triangle axiom
// guarantees one exists for every member, so a miss means s was not an
// entourage (or the core was built with WithoutVerify on bad data).
//
// Errors: ErrNotEntourage if s is not a member; ErrNoTriangle if no
// basis entry halves it.
//
// Complexity: O(p·n³) for basis size p, carrier size n.
func (c Core[T]) Half(s rel.Rel[T]) (rel.Rel[T], error) {
	if !c.Member(s) {
		return rel.Rel[T]{}, ErrNotEntourage
	}
	for _, v := range c.basis {
		if rel.Within(rel.Compose(v, v), s) {
			return v, nil
		}
	}

	return rel.Rel[T]{}, ErrNoTriangle
}

// HalfSymm returns a symmetric member T with T ∘ T ⊆ s.
//
// This is the reusable shrink-then-symmetrize step: first Half finds V
// with V∘V ⊆ s, then Symmetrize(V) — still a member, since V and its
// swap both are — composes into Symmetrize(V)∘Symmetrize(V) ⊆ V∘V ⊆ s
// by monotonicity of composition. Every tighter basis extraction in
// this package is built by iterating this one step.
func (c Core[T]) HalfSymm(s rel.Rel[T]) (rel.Rel[T], error) {
	v, err := c.Half(s)
	if err != nil {
		return rel.Rel[T]{}, err
	}

	return rel.Symmetrize(v), nil
}

// ThirdSymm returns a symmetric member W with W ∘ W ∘ W ⊆ s, by
// applying HalfSymm twice: shrink s to V, shrink V to W; then W ⊆ V by
// reflexivity and W∘W∘W ⊆ V∘V ⊆ s. The three-fold bound is what the
// extension engine's squeeze argument needs.
func (c Core[T]) ThirdSymm(s rel.Rel[T]) (rel.Rel[T], error) {
	v, err := c.HalfSymm(s)
	if err != nil {
		return rel.Rel[T]{}, err
	}

	return c.HalfSymm(v)
}
