package sets

import (
	set "github.com/hashicorp/go-set/v3"
)

// Within reports whether a ⊆ b.
//
// go-set's Subset reads the other way around; every inclusion check in
// this module goes through Within so the direction is fixed in one place.
func Within[T comparable](a, b *set.Set[T]) bool {
	return b.Subset(a)
}

// Narrow rebuilds a go-set Collection as a concrete *set.Set.
//
// go-set's Union and Intersect return the Collection interface; every
// call site in this module narrows the result back through Narrow so
// the conversion lives in one place.
func Narrow[T comparable](col set.Collection[T]) *set.Set[T] {
	out := set.New[T](col.Size())
	out.InsertSet(col)

	return out
}

// Image returns f(s), the forward image of s under f.
//
// Time Complexity: O(|s|)
func Image[T, U comparable](f func(T) U, s *set.Set[T]) *set.Set[U] {
	out := set.New[U](s.Size())
	for _, x := range s.Slice() {
		out.Insert(f(x))
	}

	return out
}

// Preimage returns f⁻¹(s) within the domain carrier dom.
//
// Time Complexity: O(|dom|)
func Preimage[T, U comparable](dom *Universe[T], f func(T) U, s *set.Set[U]) *set.Set[T] {
	return dom.Where(func(x T) bool { return s.Contains(f(x)) })
}

// Inter returns the intersection of all given sets.
// With no arguments it returns an empty set.
func Inter[T comparable](ss ...*set.Set[T]) *set.Set[T] {
	if len(ss) == 0 {
		return set.New[T](0)
	}
	out := ss[0].Copy()
	for _, s := range ss[1:] {
		out = Narrow(out.Intersect(s))
	}

	return out
}

// Union returns the union of all given sets.
// With no arguments it returns an empty set.
func Union[T comparable](ss ...*set.Set[T]) *set.Set[T] {
	out := set.New[T](0)
	for _, s := range ss {
		out = Narrow(out.Union(s))
	}

	return out
}
