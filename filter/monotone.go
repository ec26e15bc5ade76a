package filter

import (
	set "github.com/hashicorp/go-set/v3"
)

// Monotone wraps a set map h with the caller's certificate that h is
// monotone: s ⊆ t implies h(s) ⊆ h(t).
//
// Monotonicity cannot be checked from a function value and is not
// re-verified per call; passing a non-monotone function to LiftSet
// yields an ill-defined filter (garbage in, garbage out — by contract,
// not a runtime error).
type Monotone[T, U comparable] struct {
	fn func(*set.Set[T]) *set.Set[U]
}

// NewMonotone wraps fn, which the caller certifies to be monotone.
func NewMonotone[T, U comparable](fn func(*set.Set[T]) *set.Set[U]) Monotone[T, U] {
	return Monotone[T, U]{fn: fn}
}

// Apply evaluates the wrapped map.
func (m Monotone[T, U]) Apply(s *set.Set[T]) *set.Set[U] { return m.fn(s) }

// MonotoneLift wraps a set-to-filter map g with the caller's certificate
// that g is monotone: s ⊆ t implies g(s) ≤ g(t) in the filter order.
// The same no-verification contract as Monotone applies.
type MonotoneLift[T, U comparable] struct {
	fn func(*set.Set[T]) Filter[U]
}

// NewMonotoneLift wraps fn, which the caller certifies to be monotone.
func NewMonotoneLift[T, U comparable](fn func(*set.Set[T]) Filter[U]) MonotoneLift[T, U] {
	return MonotoneLift[T, U]{fn: fn}
}

// Apply evaluates the wrapped map.
func (m MonotoneLift[T, U]) Apply(s *set.Set[T]) Filter[U] { return m.fn(s) }
