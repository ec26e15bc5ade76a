package uniform

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/sets"
)

// Space is a Core together with its derived topology. A set s is open
// iff every point of s has some entourage ball around it inside s; the
// neighborhood filter of x is exactly the pullback of the uniformity
// under y ↦ (x,y), and all continuity reasoning downstream reduces to
// that equality.
type Space[T comparable] struct {
	Core[T]
}

// NewSpace derives the topology of c. It cannot fail: the derived
// open-set predicate is compatible with any valid core.
func NewSpace[T comparable](c Core[T]) Space[T] {
	return Space[T]{Core: c}
}

// NewSpaceWith checks that a caller-supplied open-set predicate
// coincides with the topology derived from c, once, over every subset
// of the carrier, and returns the space on success.
//
// Errors: ErrTopologyMismatch naming nothing — the caller's predicate
// is the suspect, and any disagreeing subset disqualifies it.
//
// Complexity: O(2ⁿ) subsets for carrier size n; meant for the small
// carriers this package models.
func NewSpaceWith[T comparable](c Core[T], isOpen func(*set.Set[T]) bool) (Space[T], error) {
	sp := NewSpace(c)
	elems := c.u.Elems()
	for mask := 0; mask < 1<<len(elems); mask++ {
		s := set.New[T](0)
		for i, x := range elems {
			if mask&(1<<i) != 0 {
				s.Insert(x)
			}
		}
		if isOpen(s) != sp.IsOpen(s) {
			return Space[T]{}, ErrTopologyMismatch
		}
	}

	return sp, nil
}

// Ball returns {y | (x,y) ∈ v}, the entourage ball of v around x.
func (sp Space[T]) Ball(x T, v rel.Rel[T]) *set.Set[T] {
	return v.Ball(x)
}

// IsOpen reports whether s is open in the derived topology: every
// point of s has a basis-entourage ball inside s.
//
// Complexity: O(|s|·p·n) for basis size p, carrier size n.
func (sp Space[T]) IsOpen(s *set.Set[T]) bool {
	for _, x := range s.Slice() {
		if !sp.ballWithin(x, s) {
			return false
		}
	}

	return true
}

func (sp Space[T]) ballWithin(x T, s *set.Set[T]) bool {
	for _, v := range sp.basis {
		if sets.Within(v.Ball(x), s) {
			return true
		}
	}

	return false
}

// Nhds returns the neighborhood filter of x: the pullback of the
// uniformity under y ↦ (x,y). Its basis is the entourage balls around
// x, and the derived IsOpen agrees with it by construction.
func (sp Space[T]) Nhds(x T) filter.Filter[T] {
	return filter.Comap(sp.u, func(y T) sets.Pair[T] { return sets.P(x, y) }, sp.f)
}

// Interior returns the largest open subset of s: the points with some
// basis ball inside s. Reflexivity puts the interior inside s.
func (sp Space[T]) Interior(s *set.Set[T]) *set.Set[T] {
	return sp.u.Where(func(x T) bool { return sp.ballWithin(x, s) })
}

// Closure returns the smallest closed superset of s: the points whose
// every basis ball meets s.
func (sp Space[T]) Closure(s *set.Set[T]) *set.Set[T] {
	return sp.u.Where(func(x T) bool {
		for _, v := range sp.basis {
			if v.Ball(x).Intersect(s).Empty() {
				return false
			}
		}

		return true
	})
}

// Dense reports whether s is topologically dense: its closure is the
// whole carrier.
func (sp Space[T]) Dense(s *set.Set[T]) bool {
	return sp.Closure(s).Size() == sp.u.Size()
}

// InteriorRel returns the interior of v in the product topology on
// pairs: (x,y) is interior iff some basis entourage W has
// Ball(x,W) × Ball(y,W) ⊆ v.
//
// Complexity: O(|v|·p·n²).
func (sp Space[T]) InteriorRel(v rel.Rel[T]) rel.Rel[T] {
	return rel.FromPred(sp.u, func(x, y T) bool {
		for _, w := range sp.basis {
			if sp.boxWithin(w.Ball(x), w.Ball(y), v) {
				return true
			}
		}

		return false
	})
}

// ClosureRel returns the closure of v in the product topology on
// pairs: (x,y) is in it iff every basis box around (x,y) meets v.
func (sp Space[T]) ClosureRel(v rel.Rel[T]) rel.Rel[T] {
	return rel.FromPred(sp.u, func(x, y T) bool {
		for _, w := range sp.basis {
			if !sp.boxMeets(w.Ball(x), w.Ball(y), v) {
				return false
			}
		}

		return true
	})
}

func (sp Space[T]) boxWithin(a, b *set.Set[T], v rel.Rel[T]) bool {
	for _, x := range a.Slice() {
		for _, y := range b.Slice() {
			if !v.Contains(x, y) {
				return false
			}
		}
	}

	return true
}

func (sp Space[T]) boxMeets(a, b *set.Set[T], v rel.Rel[T]) bool {
	for _, x := range a.Slice() {
		for _, y := range b.Slice() {
			if v.Contains(x, y) {
				return true
			}
		}
	}

	return false
}

// OpenMember returns an open member of the uniformity inside s.
//
// The interior of s itself does the job: for any symmetric member W
// with W∘W∘W ⊆ s, every (x,y) ∈ W has Ball(x,W)×Ball(y,W) ⊆ W∘W∘W, so
// W sits inside InteriorRel(s), making the interior a member.
//
// Errors: ErrNotEntourage if s is not a member.
func (sp Space[T]) OpenMember(s rel.Rel[T]) (rel.Rel[T], error) {
	if !sp.Member(s) {
		return rel.Rel[T]{}, ErrNotEntourage
	}

	return sp.InteriorRel(s), nil
}

// OpenSymmMember returns an open symmetric member inside s. Swap is a
// homeomorphism of the pair space under the symmetry axiom, so the
// symmetrization of an open member stays open, and both halves being
// members keeps their intersection one.
func (sp Space[T]) OpenSymmMember(s rel.Rel[T]) (rel.Rel[T], error) {
	o, err := sp.OpenMember(s)
	if err != nil {
		return rel.Rel[T]{}, err
	}

	return rel.Symmetrize(o), nil
}

// ClosedMember returns a closed member of the uniformity inside s:
// shrink s to a symmetric W with W∘W∘W ⊆ s, then take the closure of
// W, which stays inside W∘W∘W and hence inside s. The completion
// engine needs closed entourages for well-defined limit points.
//
// Errors: ErrNotEntourage if s is not a member; ErrNoTriangle from the
// shrink on a malformed core.
func (sp Space[T]) ClosedMember(s rel.Rel[T]) (rel.Rel[T], error) {
	w, err := sp.ThirdSymm(s)
	if err != nil {
		return rel.Rel[T]{}, err
	}

	return sp.ClosureRel(w), nil
}
