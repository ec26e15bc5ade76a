// Package unispace is your in-memory playground for building, querying,
// and completing uniform spaces — the algebra of "uniform closeness"
// that generalizes metric spaces, computed over finite carrier models.
//
// 🚀 What is unispace?
//
//	A compact, immutable-value library that brings together:
//		• Finite carriers: enumerable universes, pairs, products & sums
//		• Filter lattice: principal filters, comap/map, lift, meet & join
//		• Relation algebra: composition, swap, symmetrization, diagonal
//		• Uniformities: axiom-checked cores, balls, derived topology
//		• Entourage bases: shrink-then-symmetrize, open/closed refinement
//		• Completion: dense uniform embeddings & unique continuous extension
//
// ✨ Why choose unispace?
//
//   - Everything is a value – filters, entourages and spaces are immutable,
//     so any of them can be shared across goroutines without locks
//   - Axioms checked once – constructors validate reflexivity, symmetry and
//     the triangle (composition) axiom up front; downstream code never does
//   - Exact semantics – composition order, lattice variance and the
//     Galois law between map and comap are pinned down by exhaustive tests
//   - Pure Go core – one small set dependency, no cgo, no hidden state
//
// Under the hood, everything is organized under five subpackages:
//
//	sets/       — finite universes, sets of elements & ordered pairs
//	filter/     — the "eventually" lattice: principal, comap, map, lift
//	rel/        — relation algebra on pairs: compose, swap, symmetrize
//	uniform/    — uniformity cores, balls, topology & the core lattice
//	completion/ — Cauchy filters, dense embeddings, continuous extension
//
// Quick ASCII intuition:
//
//	    x ──V── z ──W── y
//
//	a point z within V of x and within W of y certifies (x,y) ∈ V∘W —
//	the single relational fact standing in for every triangle inequality.
//
// Dive into the per-package docs and example tests for usage patterns,
// from 3-point toy uniformities to the full dense-embedding extension.
//
//	go get github.com/velatiq/unispace
package unispace
