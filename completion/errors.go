package completion

import "errors"

// Sentinel errors for precondition validation and certification.
var (
	// ErrNotInducing indicates the embedding's pullback of the codomain
	// uniformity is not exactly the domain uniformity.
	ErrNotInducing = errors.New("completion: embedding is not uniformly inducing")

	// ErrNotDense indicates the embedding's image is not topologically dense.
	ErrNotDense = errors.New("completion: embedding image is not dense")

	// ErrNotUniformlyContinuous indicates the map to extend is not uniformly continuous.
	ErrNotUniformlyContinuous = errors.New("completion: map is not uniformly continuous")

	// ErrNotComplete indicates a Cauchy filter on the target with no limit.
	ErrNotComplete = errors.New("completion: target is not complete")

	// ErrNotSeparated indicates two target points no entourage tells apart.
	ErrNotSeparated = errors.New("completion: target is not separated")

	// ErrNoLimit indicates the limit capability failed on a Cauchy filter.
	ErrNoLimit = errors.New("completion: limit capability returned no point")

	// ErrNoWitness indicates density failed to supply a witness in an open ball.
	ErrNoWitness = errors.New("completion: no dense witness in open ball")

	// ErrNotContinuous indicates a candidate extension failing the continuity check.
	ErrNotContinuous = errors.New("completion: candidate extension is not continuous")

	// ErrNotExtending indicates ψ∘e disagreeing with f at some domain point.
	ErrNotExtending = errors.New("completion: extension disagrees with f on the dense image")

	// ErrNotClosed indicates a completeness transfer onto a non-closed subset.
	ErrNotClosed = errors.New("completion: subset is not closed")
)
