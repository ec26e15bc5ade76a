package completion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/sets"
	"github.com/velatiq/unispace/uniform"
)

// discreteSpace builds the discrete space on the given points.
func discreteSpace(points ...int) uniform.Space[int] {
	return uniform.NewSpace(uniform.Discrete(sets.NewUniverse(points...)))
}

// partitionSpace builds the space of the equivalence relation with the
// given classes — the workhorse fixture for glued carriers.
func partitionSpace(t *testing.T, u *sets.Universe[int], classes ...[]int) uniform.Space[int] {
	t.Helper()

	e := rel.FromPred(u, func(x, y int) bool {
		for _, cl := range classes {
			var hasX, hasY bool
			for _, p := range cl {
				hasX = hasX || p == x
				hasY = hasY || p == y
			}
			if hasX && hasY {
				return true
			}
		}

		return false
	})
	c, err := uniform.NewCore(u, filter.Principal(sets.Pairs(u), e.Pairs()))
	require.NoError(t, err, "partition cores must pass the axioms")

	return uniform.NewSpace(c)
}

// noLimits is a deliberately broken Complete capability, for exercising
// the completeness validation paths.
type noLimits[T comparable] struct{}

func (noLimits[T]) Limit(filter.Filter[T]) (T, bool) {
	var zero T

	return zero, false
}
