package completion

import (
	"fmt"

	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/filter"
	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/uniform"
)

// Extension is the unique continuous extension ψ : α → γ of a
// uniformly continuous f : β → γ along a dense uniform embedding
// e : β ↪ α, evaluated point by point through the pull/push/limit
// pipeline. NewExtension validates every precondition; afterwards Eval
// is total up to the limit capability keeping its contract.
type Extension[B, A, G comparable] struct {
	emb    Embedding[B, A]
	f      func(B) G
	target uniform.Space[G]
	lim    Complete[G]
}

// NewExtension validates the extension preconditions once:
//
//   - f must be uniformly continuous from the embedded space into the
//     target (ErrNotUniformlyContinuous);
//   - the target must be separated, so limits are unique and ψ is a
//     function (ErrNotSeparated);
//   - the target must be complete under the supplied limit capability,
//     checked over every Cauchy filter on its carrier (ErrNotComplete).
//
// Violating a precondition is a construction-time error, never a
// runtime failure of Eval.
func NewExtension[B, A, G comparable](
	emb Embedding[B, A],
	f func(B) G,
	target uniform.Space[G],
	lim Complete[G],
) (Extension[B, A, G], error) {
	if !uniform.UniformlyContinuous(f, emb.dom.Core, target.Core) {
		return Extension[B, A, G]{}, ErrNotUniformlyContinuous
	}
	if !Separated(target) {
		return Extension[B, A, G]{}, ErrNotSeparated
	}
	if !IsComplete(target, lim) {
		return Extension[B, A, G]{}, ErrNotComplete
	}

	return Extension[B, A, G]{emb: emb, f: f, target: target, lim: lim}, nil
}

// Eval computes ψ(a):
//
//  1. Pull the neighborhood filter 𝓝(a) back through e. Density keeps
//     the pullback non-trivial; uniform inducing keeps it Cauchy.
//  2. Push it forward through f; uniform continuity keeps it Cauchy.
//  3. Let the target's completeness capability pick the limit —
//     unique, since the target is separated.
//
// Errors: ErrNoLimit only when the limit capability breaks its
// contract on a Cauchy input; with a validated Extension that is a bug
// in the capability, not a modeled failure.
func (x Extension[B, A, G]) Eval(a A) (G, error) {
	pulled := filter.Comap(x.emb.dom.Universe(), x.emb.e, x.emb.cod.Nhds(a))
	pushed := filter.Map(x.f, x.target.Universe(), pulled)

	c, ok := x.lim.Limit(pushed)
	if !ok {
		var zero G

		return zero, fmt.Errorf("Eval(%v): %w", a, ErrNoLimit)
	}

	return c, nil
}

// Fn returns ψ as a plain function, for handing to the continuity and
// uniqueness checkers. It panics only if Eval does, i.e. never on a
// validated Extension with a law-abiding limit capability.
func (x Extension[B, A, G]) Fn() func(A) G {
	return func(a A) G {
		g, err := x.Eval(a)
		if err != nil {
			panic(err)
		}

		return g
	}
}

// Agrees certifies ψ∘e = f: the extension reproduces f exactly on the
// dense image.
//
// Errors: ErrNotExtending wrapped with the first disagreeing point.
func (x Extension[B, A, G]) Agrees() error {
	for _, b := range x.emb.dom.Universe().Elems() {
		got, err := x.Eval(x.emb.e(b))
		if err != nil {
			return err
		}
		if got != x.f(b) {
			return fmt.Errorf("Agrees at %v: got %v, want %v: %w", b, got, x.f(b), ErrNotExtending)
		}
	}

	return nil
}

// Continuous certifies that ψ is uniformly continuous by the
// three-entourage squeeze, one target basis entourage at a time.
//
// Algorithm, for a target entourage D:
//
//  1. Shrink D to a closed symmetric S with S∘S∘S ⊆ D (ThirdSymm
//     followed by ClosedMember — closedness keeps limit points of
//     S-close filters S-close, which the outer links below need).
//  2. Find an ambient modulus m: an α-entourage whose e-pairs f maps
//     into S. Uniform continuity plus uniform inducing guarantee one
//     among the basis entourages.
//  3. Tighten m to an open symmetric U with U∘U∘U ⊆ m. Open balls of U
//     are honest neighborhoods, so density supplies witnesses inside.
//  4. For every (x₁,x₂) ∈ U, find dense witnesses b₁, b₂ with
//     e(bᵢ) ∈ Ball(xᵢ,U) and verify the chain
//     (ψx₁, f b₁) ∈ S, (f b₁, f b₂) ∈ S, (f b₂, ψx₂) ∈ S,
//     which squeezes (ψx₁, ψx₂) into S∘S∘S ⊆ D.
//
// A nil return certifies U as a continuity modulus for every D.
//
// Errors: ErrNoWitness when density fails to supply a witness (a model
// with a stale Embedding), ErrNotContinuous when a chain link breaks.
func (x Extension[B, A, G]) Continuous() error {
	cod, target := x.emb.cod, x.target
	for _, d := range target.Basis() {
		s, err := x.closedThird(d)
		if err != nil {
			return err
		}
		m, err := x.modulus(s)
		if err != nil {
			return err
		}
		u, err := x.openThird(m)
		if err != nil {
			return err
		}
		for _, p := range u.Slice() {
			b1, err := x.witness(cod.Ball(p.X, u))
			if err != nil {
				return fmt.Errorf("Continuous at %v: %w", p.X, err)
			}
			b2, err := x.witness(cod.Ball(p.Y, u))
			if err != nil {
				return fmt.Errorf("Continuous at %v: %w", p.Y, err)
			}
			if err := x.chain(p.X, p.Y, b1, b2, s); err != nil {
				return err
			}
		}
	}

	return nil
}

// closedThird shrinks d to a closed symmetric S with S∘S∘S ⊆ d.
func (x Extension[B, A, G]) closedThird(d rel.Rel[G]) (rel.Rel[G], error) {
	w, err := x.target.ThirdSymm(d)
	if err != nil {
		return rel.Rel[G]{}, err
	}

	return x.target.ClosedMember(w)
}

// modulus finds an ambient entourage m with (e b₁, e b₂) ∈ m implying
// (f b₁, f b₂) ∈ s, by scanning the ambient basis.
func (x Extension[B, A, G]) modulus(s rel.Rel[G]) (rel.Rel[A], error) {
	elems := x.emb.dom.Universe().Elems()
	for _, m := range x.emb.cod.Basis() {
		ok := true
		for _, b1 := range elems {
			for _, b2 := range elems {
				if m.Contains(x.emb.e(b1), x.emb.e(b2)) && !s.Contains(x.f(b1), x.f(b2)) {
					ok = false

					break
				}
			}
			if !ok {
				break
			}
		}
		if ok {
			return m, nil
		}
	}

	return rel.Rel[A]{}, ErrNotUniformlyContinuous
}

// openThird tightens m to an open symmetric U with U∘U∘U ⊆ m.
func (x Extension[B, A, G]) openThird(m rel.Rel[A]) (rel.Rel[A], error) {
	w, err := x.emb.cod.ThirdSymm(m)
	if err != nil {
		return rel.Rel[A]{}, err
	}

	return x.emb.cod.OpenSymmMember(w)
}

// witness finds a domain point whose image lies in the (open, inhabited)
// ball — the density step of the squeeze.
func (x Extension[B, A, G]) witness(ball *set.Set[A]) (B, error) {
	for _, b := range x.emb.dom.Universe().Elems() {
		if ball.Contains(x.emb.e(b)) {
			return b, nil
		}
	}

	var zero B

	return zero, ErrNoWitness
}

// chain verifies the three S-links of the squeeze between ψx₁ and ψx₂.
func (x Extension[B, A, G]) chain(x1, x2 A, b1, b2 B, s rel.Rel[G]) error {
	p1, err := x.Eval(x1)
	if err != nil {
		return err
	}
	p2, err := x.Eval(x2)
	if err != nil {
		return err
	}
	f1, f2 := x.f(b1), x.f(b2)
	if !s.Contains(p1, f1) || !s.Contains(f1, f2) || !s.Contains(f2, p2) {
		return fmt.Errorf("chain (%v,%v): %w", x1, x2, ErrNotContinuous)
	}

	return nil
}

// ContinuousFn checks topological continuity of an arbitrary candidate
// g : α → γ: at every point, the pushforward of the neighborhood
// filter refines the neighborhood filter of the image.
func ContinuousFn[A, G comparable](dom uniform.Space[A], target uniform.Space[G], g func(A) G) bool {
	for _, a := range dom.Universe().Elems() {
		pushed := filter.Map(g, target.Universe(), dom.Nhds(a))
		if !filter.LE(pushed, target.Nhds(g(a))) {
			return false
		}
	}

	return true
}

// UniqueExtension certifies the uniqueness half of the extension
// theorem: two continuous maps g1, g2 into a separated target that
// agree with each other on the dense image of emb agree everywhere.
//
// A nil return means g1 = g2 pointwise. Precondition failures are
// reported first: a candidate "extension" differing from the true one
// at a non-dense point necessarily fails the continuity check.
//
// Errors: ErrNotSeparated, ErrNotContinuous (naming the candidate),
// ErrNotExtending when g1 and g2 already differ on the dense image.
func UniqueExtension[B, A, G comparable](
	emb Embedding[B, A],
	target uniform.Space[G],
	g1, g2 func(A) G,
) error {
	if !Separated(target) {
		return ErrNotSeparated
	}
	if !ContinuousFn(emb.cod, target, g1) {
		return fmt.Errorf("first candidate: %w", ErrNotContinuous)
	}
	if !ContinuousFn(emb.cod, target, g2) {
		return fmt.Errorf("second candidate: %w", ErrNotContinuous)
	}
	for _, b := range emb.dom.Universe().Elems() {
		if a := emb.e(b); g1(a) != g2(a) {
			return fmt.Errorf("dense point %v: %w", a, ErrNotExtending)
		}
	}
	// Unreachable on sound inputs: continuity + density + separation
	// force pointwise equality. Guarded anyway for hand-built models.
	for _, a := range emb.cod.Universe().Elems() {
		if g1(a) != g2(a) {
			return fmt.Errorf("point %v: %w", a, ErrNotExtending)
		}
	}

	return nil
}
