package uniform_test

import (
	"testing"

	set "github.com/hashicorp/go-set/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/sets"
	"github.com/velatiq/unispace/uniform"
)

// TestBall_TriangleLaw exhausts the relational triangle law on a
// 4-point model: y ∈ Ball(x,V) and z ∈ Ball(y,W) imply
// z ∈ Ball(x,V∘W), for every point triple and every entourage pair
// drawn from the discrete uniformity plus a 0–1–2 chain entourage.
func TestBall_TriangleLaw(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	sp := uniform.NewSpace(uniform.Discrete(u))

	chain := rel.Union(rel.Id(u), rel.New(u,
		sets.P(0, 1), sets.P(1, 0), sets.P(1, 2), sets.P(2, 1)))
	require.True(t, sp.Member(chain), "under the discrete uniformity the chain is an entourage")

	entourages := []rel.Rel[int]{rel.Id(u), chain, rel.Full(u)}
	for _, v := range entourages {
		for _, w := range entourages {
			vw := rel.Compose(v, w)
			for _, x := range u.Elems() {
				for _, y := range sp.Ball(x, v).Slice() {
					for _, z := range sp.Ball(y, w).Slice() {
						assert.True(t, sp.Ball(x, vw).Contains(z),
							"triangle law must hold for x=%d y=%d z=%d", x, y, z)
					}
				}
			}
		}
	}
}

// TestNhds_IsComapOfUniformity verifies the load-bearing equality: the
// neighborhood filter of x is the pullback of 𝓤 under y ↦ (x,y),
// which for a partition core is the principal filter at x's class.
func TestNhds_IsComapOfUniformity(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	sp := uniform.NewSpace(partitionCore(t, u, []int{0, 1}, []int{2, 3}))

	for _, x := range u.Elems() {
		direct := sp.Nhds(x)
		pulled := filter.Comap(u, func(y int) sets.Pair[int] { return sets.P(x, y) }, sp.Filter())
		assert.True(t, filter.Equal(direct, pulled), "Nhds(%d) must be the comap pullback", x)
	}

	assert.True(t, sp.Nhds(0).Contains(set.From([]int{0, 1})), "x's class is a neighborhood")
	assert.False(t, sp.Nhds(0).Contains(set.From([]int{0})),
		"glued points cannot be separated by a neighborhood")
}

// TestTopology_PartitionOpens verifies opens are exactly unions of
// partition classes, with Interior/Closure/Dense agreeing.
func TestTopology_PartitionOpens(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	sp := uniform.NewSpace(partitionCore(t, u, []int{0, 1}, []int{2, 3}))

	assert.True(t, sp.IsOpen(set.From([]int{0, 1})), "a whole class is open")
	assert.True(t, sp.IsOpen(u.Set()), "the carrier is open")
	assert.True(t, sp.IsOpen(u.Empty()), "∅ is open")
	assert.False(t, sp.IsOpen(set.From([]int{0})), "half a class is not open")

	assert.Empty(t, sp.Interior(set.From([]int{0, 2})).Slice(),
		"a transversal of classes has empty interior")
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, sp.Closure(set.From([]int{0, 2})).Slice(),
		"a transversal meeting every class is dense")
	assert.True(t, sp.Dense(set.From([]int{0, 2})), "Dense must agree with Closure")
	assert.False(t, sp.Dense(set.From([]int{0, 1})), "one class is not dense")
}

// TestNewSpaceWith verifies predicate coincidence checking.
func TestNewSpaceWith(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2)
	core := partitionCore(t, u, []int{0, 1}, []int{2})

	classOpen := func(s *set.Set[int]) bool {
		return s.Contains(0) == s.Contains(1) // unions of {0,1} and {2}
	}
	_, err := uniform.NewSpaceWith(core, classOpen)
	assert.NoError(t, err, "the derived topology must be accepted")

	_, err = uniform.NewSpaceWith(core, func(*set.Set[int]) bool { return true })
	assert.ErrorIs(t, err, uniform.ErrTopologyMismatch,
		"claiming every set open must be rejected on a glued carrier")
}

// TestShrink_Combinators verifies Half, HalfSymm and ThirdSymm produce
// members with the promised composition bounds.
func TestShrink_Combinators(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	c := partitionCore(t, u, []int{0, 1}, []int{2, 3})
	s := rel.Union(c.Ker(), rel.New(u, sets.P(0, 2))) // a non-symmetric member

	half, err := c.Half(s)
	require.NoError(t, err, "every member must admit a half")
	assert.True(t, c.Member(half), "the half is a member")
	assert.True(t, rel.Within(rel.Compose(half, half), s), "half∘half ⊆ s")

	hs, err := c.HalfSymm(s)
	require.NoError(t, err, "shrink-then-symmetrize must succeed")
	assert.True(t, rel.IsSymmetric(hs), "HalfSymm result is symmetric")
	assert.True(t, c.Member(hs), "HalfSymm result is a member")
	assert.True(t, rel.Within(rel.Compose(hs, hs), s), "symmetrized half keeps the bound")

	ts, err := c.ThirdSymm(s)
	require.NoError(t, err, "two-step shrink must succeed")
	assert.True(t, rel.IsSymmetric(ts), "ThirdSymm result is symmetric")
	assert.True(t, rel.Within(rel.Compose(rel.Compose(ts, ts), ts), s), "ts∘ts∘ts ⊆ s")

	_, err = c.Half(rel.New(u, sets.P(0, 0)))
	assert.ErrorIs(t, err, uniform.ErrNotEntourage, "non-members must be rejected")
}

// TestShrink_CombinedGenerators verifies the shrink combinators on a
// core generated from two incomparable equivalence relations: the
// composition bounds must hold against each generator, not just the
// kernel.
func TestShrink_CombinedGenerators(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	left := partitionCore(t, u, []int{0, 1}, []int{2}, []int{3})
	right := partitionCore(t, u, []int{0}, []int{1}, []int{2, 3})

	c, err := uniform.NewCore(u,
		filter.New(sets.Pairs(u), left.Ker().Pairs(), right.Ker().Pairs()))
	require.NoError(t, err, "incomparable equivalence generators must validate")

	for _, s := range []rel.Rel[int]{left.Ker(), right.Ker(), rel.Union(left.Ker(), right.Ker())} {
		require.True(t, c.Member(s), "each generator stays a member of the combined core")

		ts, err := c.ThirdSymm(s)
		require.NoError(t, err, "combined core must shrink every member")
		assert.True(t, rel.IsSymmetric(ts), "shrink result is symmetric")
		assert.True(t, c.Member(ts), "shrink result is a member")
		assert.True(t, rel.Within(rel.Compose(rel.Compose(ts, ts), ts), s),
			"ts∘ts∘ts ⊆ s against each generator")
	}
}

// TestInteriorClosureRel verifies the product-topology operators on
// relations for a partition core.
func TestInteriorClosureRel(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2)
	sp := uniform.NewSpace(partitionCore(t, u, []int{0, 1}, []int{2}))
	e := sp.Ker()

	assert.True(t, rel.Equal(sp.InteriorRel(e), e),
		"the kernel equivalence is its own interior")
	assert.True(t, rel.Equal(sp.ClosureRel(rel.Id(u)), e),
		"the diagonal closes up to the kernel equivalence")
	assert.True(t, rel.Equal(sp.ClosureRel(e), e), "the kernel is closed")
}

// TestOpenClosedMembers verifies the open / closed / open-symmetric
// entourage basis extractors return members inside the input.
func TestOpenClosedMembers(t *testing.T) {
	u := sets.NewUniverse(0, 1, 2, 3)
	sp := uniform.NewSpace(partitionCore(t, u, []int{0, 1}, []int{2, 3}))
	s := rel.Union(sp.Ker(), rel.New(u, sets.P(0, 2)))

	open, err := sp.OpenMember(s)
	require.NoError(t, err, "members must yield an open member")
	assert.True(t, sp.Member(open), "open member is a member")
	assert.True(t, rel.Within(open, s), "open member sits inside s")
	assert.True(t, rel.Equal(sp.InteriorRel(open), open), "open member is open")

	osym, err := sp.OpenSymmMember(s)
	require.NoError(t, err, "members must yield an open symmetric member")
	assert.True(t, rel.IsSymmetric(osym) && sp.Member(osym), "open symmetric member")
	assert.True(t, rel.Equal(sp.InteriorRel(osym), osym), "symmetrization stays open")

	closed, err := sp.ClosedMember(s)
	require.NoError(t, err, "members must yield a closed member")
	assert.True(t, sp.Member(closed), "closed member is a member")
	assert.True(t, rel.Within(closed, s), "closed member sits inside s")
	assert.True(t, rel.Equal(sp.ClosureRel(closed), closed), "closed member is closed")

	_, err = sp.OpenMember(rel.Id(u))
	assert.ErrorIs(t, err, uniform.ErrNotEntourage,
		"the bare diagonal is no entourage of a glued carrier")
}
