// Package completion implements the completion and extension engine:
// given a dense, uniformly-inducing embedding e : β ↪ α and a uniformly
// continuous f : β → γ into a complete separated target, it computes
// the unique continuous extension ψ : α → γ and certifies it.
//
// 🚀 The pipeline (Extension.Eval):
//
//	ψ(a) = lim  map(f, comap(e, 𝓝(a)))
//
//	Pull the neighborhood filter of a back through the dense embedding
//	(never ⊥, always Cauchy), push it through f (uniform continuity
//	keeps it Cauchy), and let the target's completeness capability pick
//	the limit — unique because the target is separated.
//
// ✨ Key operations:
//   - Cauchy / Converges / Separated — filter-level predicates
//   - Complete / ExhaustiveLimits    — the limit capability and its
//     finite-carrier default implementation
//   - NewEmbedding                   — dense + uniformly-inducing witness,
//     validated once
//   - NewExtension / Eval / Agrees /
//     Continuous                     — construction and certification of ψ
//   - UniqueExtension                — any two continuous maps agreeing
//     with f on the dense image coincide
//   - ClosedComplete / ProdComplete /
//     SumComplete                    — completeness transfer along
//     comap/map, no new algorithm
//
// Preconditions are validated at construction and reported as sentinel
// errors; after NewExtension succeeds, Eval is total up to the limit
// capability keeping its contract.
//
// The continuity certifier follows the three-entourage squeeze: shrink
// a target entourage D to a closed symmetric S with S∘S∘S ⊆ D, then
// squeeze (ψx₁, ψx₂) between density witnesses whose images are
// pairwise within S. This is the one genuinely hard argument in the
// package; everything else is Galois-pair bookkeeping.
package completion
