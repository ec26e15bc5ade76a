package completion_test

import (
	"testing"

	set "github.com/hashicorp/go-set/v3"
	"github.com/stretchr/testify/assert"

	"github.com/velatiq/unispace/completion"
	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/sets"
)

// TestCauchy_Discrete verifies Cauchy-ness on the discrete space:
// exactly the point filters qualify.
func TestCauchy_Discrete(t *testing.T) {
	sp := discreteSpace(0, 1, 2)
	u := sp.Universe()

	assert.True(t, completion.Cauchy(sp, filter.Principal(u, set.From([]int{1}))),
		"a point filter is Cauchy")
	assert.False(t, completion.Cauchy(sp, filter.Principal(u, set.From([]int{0, 1}))),
		"a two-point square never fits inside the diagonal")
	assert.False(t, completion.Cauchy(sp, filter.Bot(u)), "the trivial filter is not Cauchy")
	assert.False(t, completion.Cauchy(sp, filter.Top(u)),
		"the whole-carrier filter is not Cauchy on a discrete space")
}

// TestCauchy_Glued verifies a whole class is "small" when its points
// are glued together.
func TestCauchy_Glued(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	sp := partitionSpace(t, u, []int{0, 1}, []int{2, 3})

	assert.True(t, completion.Cauchy(sp, filter.Principal(u, set.From([]int{0, 1}))),
		"a glued class squares into the kernel")
	assert.False(t, completion.Cauchy(sp, filter.Principal(u, set.From([]int{1, 2}))),
		"a class transversal does not")
}

// TestConverges_And_Limits verifies convergence and the exhaustive
// limit search, including non-uniqueness on a glued carrier.
func TestConverges_And_Limits(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	sp := partitionSpace(t, u, []int{0, 1}, []int{2, 3})
	lim := completion.ExhaustiveLimits[int]{Space: sp}

	class := filter.Principal(u, set.From([]int{2, 3}))
	assert.True(t, completion.Converges(sp, class, 2), "a class converges to its points")
	assert.True(t, completion.Converges(sp, class, 3), "glued limits are not unique")
	assert.False(t, completion.Converges(sp, class, 0), "and not to other classes")

	x, ok := lim.Limit(class)
	assert.True(t, ok, "the search must find a limit")
	assert.Equal(t, 2, x, "stable carrier order picks the first convergent point")

	_, ok = completion.ExhaustiveLimits[int]{Space: discreteSpace(0, 1)}.
		Limit(filter.Principal(sets.NewUniverse(0, 1), set.From([]int{0, 1})))
	assert.False(t, ok, "a non-Cauchy filter has no limit on a discrete space")
}

// TestSeparated verifies the kernel-is-diagonal characterization.
func TestSeparated(t *testing.T) {
	assert.True(t, completion.Separated(discreteSpace(0, 1, 2)), "discrete spaces are separated")

	u := sets.NewUniverse(0, 1)
	assert.False(t, completion.Separated(partitionSpace(t, u, []int{0, 1})),
		"glued points break separation")
}

// TestIsComplete verifies every finite space is complete under the
// exhaustive capability, and that a broken capability is caught.
func TestIsComplete(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	discrete := discreteSpace(0, 1, 2, 3)
	glued := partitionSpace(t, u, []int{0, 1}, []int{2, 3})

	assert.True(t, completion.IsComplete(discrete, completion.ExhaustiveLimits[int]{Space: discrete}),
		"finite discrete spaces are complete")
	assert.True(t, completion.IsComplete(glued, completion.ExhaustiveLimits[int]{Space: glued}),
		"finite glued spaces are complete")
	assert.False(t, completion.IsComplete(discrete, noLimits[int]{}),
		"a capability that never answers fails the completeness check")
}
