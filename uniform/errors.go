package uniform

import "errors"

// Sentinel errors for uniformity construction and basis extraction.
var (
	// ErrNotReflexive indicates a uniformity member missing part of the diagonal.
	ErrNotReflexive = errors.New("uniform: member does not contain the diagonal")

	// ErrNotSymmetric indicates a member whose swap is not itself a member.
	ErrNotSymmetric = errors.New("uniform: swap of member is not a member")

	// ErrNoTriangle indicates a member with no half-sized member V, V∘V ⊆ member.
	ErrNoTriangle = errors.New("uniform: no half-sized member for triangle axiom")

	// ErrNotEntourage indicates a relation passed where a uniformity member is required.
	ErrNotEntourage = errors.New("uniform: relation is not a member of the uniformity")

	// ErrCarrierMismatch indicates cores or relations over different carriers were combined.
	ErrCarrierMismatch = errors.New("uniform: operands live on different carriers")

	// ErrTopologyMismatch indicates a supplied open-set predicate disagreeing
	// with the topology derived from the core.
	ErrTopologyMismatch = errors.New("uniform: supplied topology disagrees with the derived one")
)
