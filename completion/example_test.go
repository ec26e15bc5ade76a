package completion_test

import (
	"fmt"

	"github.com/velatiq/unispace/completion"
	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/sets"
	"github.com/velatiq/unispace/uniform"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewExtension
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A discrete 4-point carrier β = {0,1,2,3} sits densely inside
//	α = {0,1,2,3,4}, whose extra "ideal" point 4 is glued to 3. The
//	constant-slope map f(b) = 10·(b+1) into the discrete target
//	γ = {10,20,30,40} extends uniquely to ψ : α → γ; the ideal point
//	inherits the value of the point it is glued to.
//
// Pipeline:
//
//	ψ(a) = lim map(f, comap(e, 𝓝(a)))
//
// Use case:
//
//	The finite-model shape of completing ℚ to ℝ and extending a
//	uniformly continuous map to the completion.
//
// Complexity: O(2ⁿ) one-off validation, O(p·q·n²) per Eval.
func ExampleNewExtension() {
	beta := uniform.NewSpace(uniform.Discrete(sets.NewUniverse(0, 1, 2, 3)))

	alphaU := sets.NewUniverse(0, 1, 2, 3, 4)
	glued := rel.FromPred(alphaU, func(x, y int) bool {
		return x == y || (x >= 3 && y >= 3)
	})
	alphaCore, _ := uniform.NewCore(alphaU, filter.Principal(sets.Pairs(alphaU), glued.Pairs()))
	alpha := uniform.NewSpace(alphaCore)

	emb, err := completion.NewEmbedding(beta, alpha, func(b int) int { return b })
	if err != nil {
		fmt.Println("embed error:", err)

		return
	}

	target := uniform.NewSpace(uniform.Discrete(sets.NewUniverse(10, 20, 30, 40)))
	ext, err := completion.NewExtension(emb,
		func(b int) int { return 10 * (b + 1) },
		target,
		completion.ExhaustiveLimits[int]{Space: target})
	if err != nil {
		fmt.Println("extend error:", err)

		return
	}

	for _, a := range []int{0, 3, 4} {
		v, _ := ext.Eval(a)
		fmt.Printf("ψ(%d) = %d\n", a, v)
	}
	fmt.Println("agrees:", ext.Agrees() == nil)
	fmt.Println("continuous:", ext.Continuous() == nil)
	// Output:
	// ψ(0) = 10
	// ψ(3) = 40
	// ψ(4) = 40
	// agrees: true
	// continuous: true
}
