package uniform

import (
	"fmt"

	set "github.com/hashicorp/go-set/v3"
	"golang.org/x/sync/errgroup"

	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/sets"
)

// Core is a validated uniformity: a filter on the pairs of a finite
// carrier whose every member contains the diagonal, is stable under
// swap, and admits a half-sized member. The axioms are checked once by
// NewCore; a Core in hand certifies them.
//
// Cores are immutable; derive new ones with the lattice operations and
// the ComapCore/ProdCore/SumCore constructors.
type Core[T comparable] struct {
	u     *sets.Universe[T]
	pu    *sets.Universe[sets.Pair[T]]
	f     filter.Filter[sets.Pair[T]]
	basis []rel.Rel[T]
}

// CoreOption configures NewCore's axiom verification.
type CoreOption func(*coreConfig)

type coreConfig struct {
	skipVerify bool
	sequential bool
}

// WithoutVerify skips axiom verification. For cores produced by an
// axiom-preserving construction the caller has already certified; a
// hand-built filter passed with this option is the caller's liability.
func WithoutVerify() CoreOption {
	return func(c *coreConfig) { c.skipVerify = true }
}

// WithSequentialVerify checks basis entries one at a time instead of
// concurrently. Useful when the carrier is tiny and goroutine overhead
// dominates, or when deterministic first-error reporting matters.
func WithSequentialVerify() CoreOption {
	return func(c *coreConfig) { c.sequential = true }
}

// NewCore validates the three uniformity axioms for F over the carrier
// u and returns the certified core.
//
// Description:
//
//	Membership in F is "contains some basis set", so checking each axiom
//	on every basis entry covers every member: a superset of a reflexive
//	member is reflexive, the swap of a superset contains the swap of the
//	basis entry, and a half for a basis entry halves every superset.
//
// Errors: ErrNotReflexive, ErrNotSymmetric, ErrNoTriangle, each wrapped
// with the offending basis entry's index.
//
// Complexity: O(p²·n³) worst case for basis size p, carrier size n;
// entries are verified concurrently unless WithSequentialVerify is set.
func NewCore[T comparable](u *sets.Universe[T], F filter.Filter[sets.Pair[T]], opts ...CoreOption) (Core[T], error) {
	var cfg coreConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	c := trusted(u, F)
	if cfg.skipVerify {
		return c, nil
	}
	if err := c.verify(cfg.sequential); err != nil {
		return Core[T]{}, err
	}

	return c, nil
}

// trusted wraps a filter as a Core without verification; internal
// constructors that preserve the axioms go through here.
func trusted[T comparable](u *sets.Universe[T], F filter.Filter[sets.Pair[T]]) Core[T] {
	raw := F.Basis()
	basis := make([]rel.Rel[T], len(raw))
	for i, b := range raw {
		basis[i] = rel.FromSet(u, b)
	}

	return Core[T]{u: u, pu: F.Universe(), f: F, basis: basis}
}

// Verify re-checks the three axioms; useful for fixtures assembled by
// hand with WithoutVerify.
func (c Core[T]) Verify() error { return c.verify(false) }

func (c Core[T]) verify(sequential bool) error {
	check := func(i int) error {
		b := c.basis[i]
		if !rel.IsReflexive(b) {
			return fmt.Errorf("basis[%d]: %w", i, ErrNotReflexive)
		}
		if !c.Member(rel.Swap(b)) {
			return fmt.Errorf("basis[%d]: %w", i, ErrNotSymmetric)
		}
		if _, err := c.Half(b); err != nil {
			return fmt.Errorf("basis[%d]: %w", i, ErrNoTriangle)
		}

		return nil
	}

	if sequential {
		for i := range c.basis {
			if err := check(i); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	for i := range c.basis {
		g.Go(func() error { return check(i) })
	}

	return g.Wait()
}

// Universe returns the point carrier.
func (c Core[T]) Universe() *sets.Universe[T] { return c.u }

// PairUniverse returns the carrier of ordered pairs the uniformity
// filter lives on.
func (c Core[T]) PairUniverse() *sets.Universe[sets.Pair[T]] { return c.pu }

// Filter returns the uniformity as a plain filter on pairs.
func (c Core[T]) Filter() filter.Filter[sets.Pair[T]] { return c.f }

// Basis returns the generating entourages as relations.
func (c Core[T]) Basis() []rel.Rel[T] {
	out := make([]rel.Rel[T], len(c.basis))
	copy(out, c.basis)

	return out
}

// Member reports whether v is an entourage, i.e. a member of the
// uniformity filter.
func (c Core[T]) Member(v rel.Rel[T]) bool {
	return c.f.Contains(v.Pairs())
}

// MemberSet is Member for a raw pair set.
func (c Core[T]) MemberSet(s *set.Set[sets.Pair[T]]) bool {
	return c.f.Contains(s)
}

// Ker returns the smallest entourage (the kernel of the uniformity),
// which on a finite carrier always exists and generates the filter.
func (c Core[T]) Ker() rel.Rel[T] {
	return rel.FromSet(c.u, c.f.Ker())
}
