package filter

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/sets"
)

// LE reports F ≤ G in the "finer ≤ coarser" order: every member of G is
// a member of F. Bot is least, Top is greatest.
//
// Time Complexity: O(p·q) inclusion checks for basis sizes p, q.
func LE[T comparable](f, g Filter[T]) bool {
	for _, b := range g.basis {
		if !f.Contains(b) {
			return false
		}
	}

	return true
}

// Equal reports whether F and G have exactly the same members.
func Equal[T comparable](f, g Filter[T]) bool {
	return LE(f, g) && LE(g, f)
}

// Meet returns the infimum F ⊓ G: the coarsest filter finer than both.
// Its members are the supersets of m ∩ n for members m of F, n of G.
//
// Time Complexity: O(p·q) set intersections.
func Meet[T comparable](f, g Filter[T]) Filter[T] {
	basis := make([]*set.Set[T], 0, len(f.basis)*len(g.basis))
	for _, a := range f.basis {
		for _, b := range g.basis {
			basis = append(basis, sets.Narrow(a.Intersect(b)))
		}
	}

	return derived(f.u, basis)
}

// Join returns the supremum F ⊔ G: the finest filter coarser than both.
// Its members are exactly the common members of F and G, generated by
// the pairwise unions of their bases.
//
// Time Complexity: O(p·q) set unions.
func Join[T comparable](f, g Filter[T]) Filter[T] {
	basis := make([]*set.Set[T], 0, len(f.basis)*len(g.basis))
	for _, a := range f.basis {
		for _, b := range g.basis {
			basis = append(basis, sets.Narrow(a.Union(b)))
		}
	}

	return derived(f.u, basis)
}

// MeetAll folds Meet over the family; the empty meet is Top(u).
func MeetAll[T comparable](u *sets.Universe[T], fs ...Filter[T]) Filter[T] {
	out := Top(u)
	for _, f := range fs {
		out = Meet(out, f)
	}

	return out
}

// JoinAll folds Join over the family; the empty join is Bot(u).
func JoinAll[T comparable](u *sets.Universe[T], fs ...Filter[T]) Filter[T] {
	out := Bot(u)
	for _, f := range fs {
		out = Join(out, f)
	}

	return out
}
