package filter

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/sets"
)

// Filter is an upward-closed, finite-intersection-closed family of
// subsets of a finite carrier, represented by a generating basis.
//
// Invariants (maintained by every constructor in this package):
//   - the basis is non-empty;
//   - the basis is downward-directed: any two basis sets contain a third;
//   - every basis set lies within the carrier.
//
// A subset s of the carrier is a member iff s contains some basis set.
// Directedness makes the intersection of all basis sets (the kernel)
// itself a member, so filters over finite carriers are principal — a
// fact the uniformity lattice exploits.
//
// The zero Filter is not valid; obtain filters from the constructors.
type Filter[T comparable] struct {
	u     *sets.Universe[T]
	basis []*set.Set[T]
}

// Principal returns the filter of all supersets of s (clipped to the
// carrier).
//
// Time Complexity: O(|s|)
func Principal[T comparable](u *sets.Universe[T], s *set.Set[T]) Filter[T] {
	return Filter[T]{u: u, basis: []*set.Set[T]{sets.Narrow(s.Intersect(u.Set()))}}
}

// Top returns the greatest filter: its only member is the whole carrier.
func Top[T comparable](u *sets.Universe[T]) Filter[T] {
	return Principal(u, u.Set())
}

// Bot returns the least filter: every subset, including ∅, is a member.
// Bot represents an unsatisfiable eventual condition and is a legitimate
// value — no operation in this package rejects it.
func Bot[T comparable](u *sets.Universe[T]) Filter[T] {
	return Principal(u, u.Empty())
}

// New returns the filter generated by the given family: members are the
// supersets of finite intersections of family sets. With an empty family
// it returns Top(u).
//
// Algorithm:
//  1. Clip every set to the carrier.
//  2. Close the family under pairwise intersection (restores the
//     directed-basis invariant for an arbitrary family).
//  3. Normalize (deduplicate, drop redundant supersets).
//
// Time Complexity: O(k²) set intersections for k distinct closure sets.
func New[T comparable](u *sets.Universe[T], family ...*set.Set[T]) Filter[T] {
	if len(family) == 0 {
		return Top(u)
	}

	seen := make(map[string]bool, len(family))
	work := make([]*set.Set[T], 0, len(family))
	add := func(s *set.Set[T]) {
		k := u.Key(s)
		if !seen[k] {
			seen[k] = true
			work = append(work, s)
		}
	}
	carrier := u.Set()
	for _, s := range family {
		add(sets.Narrow(s.Intersect(carrier)))
	}
	// Fixpoint closure under pairwise intersection.
	for i := 0; i < len(work); i++ {
		for j := 0; j < i; j++ {
			add(sets.Narrow(work[i].Intersect(work[j])))
		}
	}

	return Filter[T]{u: u, basis: normalize(u, work)}
}

// Universe returns the carrier the filter lives on.
func (f Filter[T]) Universe() *sets.Universe[T] { return f.u }

// Basis returns a copy of the generating basis.
func (f Filter[T]) Basis() []*set.Set[T] {
	out := make([]*set.Set[T], len(f.basis))
	for i, b := range f.basis {
		out[i] = b.Copy()
	}

	return out
}

// Contains reports whether s is a member, i.e. contains some basis set.
// Membership is monotone: if Contains(s) and s ⊆ t then Contains(t).
//
// Time Complexity: O(p) inclusion checks for basis size p.
func (f Filter[T]) Contains(s *set.Set[T]) bool {
	for _, b := range f.basis {
		if sets.Within(b, s) {
			return true
		}
	}

	return false
}

// Ker returns the kernel — the intersection of all members, which by the
// directed-basis invariant is itself the smallest member.
//
// Time Complexity: O(p) set intersections.
func (f Filter[T]) Ker() *set.Set[T] {
	return sets.Inter(f.basis...)
}

// NeBot reports whether the filter is non-trivial, i.e. ∅ is not a
// member. "Non-triviality" is a property callers check when they need
// it (e.g. before a limit search); the lattice itself never enforces it.
func (f Filter[T]) NeBot() bool {
	return !f.Ker().Empty()
}

// normalize deduplicates a basis and drops sets that are strict
// supersets of another basis set; neither change affects the generated
// filter, and both keep the basis directed.
func normalize[T comparable](u *sets.Universe[T], basis []*set.Set[T]) []*set.Set[T] {
	uniq := make([]*set.Set[T], 0, len(basis))
	seen := make(map[string]bool, len(basis))
	for _, b := range basis {
		k := u.Key(b)
		if !seen[k] {
			seen[k] = true
			uniq = append(uniq, b)
		}
	}

	kept := make([]*set.Set[T], 0, len(uniq))
	for i, b := range uniq {
		redundant := false
		for j, c := range uniq {
			if i != j && sets.Within(c, b) && !c.Equal(b) {
				redundant = true

				break
			}
		}
		if !redundant {
			kept = append(kept, b)
		}
	}

	return kept
}

// derived builds a filter from an already-directed basis produced by one
// of the lattice operations; it only normalizes.
func derived[T comparable](u *sets.Universe[T], basis []*set.Set[T]) Filter[T] {
	return Filter[T]{u: u, basis: normalize(u, basis)}
}
