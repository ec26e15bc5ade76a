// Package sets provides the finite carrier layer underneath the filter,
// relation and uniformity packages.
//
// The sets package provides:
//
//   - Universe, an immutable enumerable carrier with a stable element
//     order and O(1) index lookup, so subset and equality queries over
//     "all points" are decidable.
//   - Set values backed by hashicorp/go-set, plus direction-safe helpers
//     (Within, Image, Preimage) so inclusion checks read left-to-right.
//   - Pair, the ordered pair of two points of one carrier — the element
//     type of every relation and uniformity.
//   - Prod and Sum, the product and disjoint-union carriers with their
//     projections and injections, used by the product/sum uniformities.
//
// Universes are best kept small: the layers above quantify over them
// (closure, interior, limit search are all O(|U|) per query or worse),
// which is exactly what makes every lattice property exhaustively
// testable.
//
// See the examples in this package and filter for usage patterns.
package sets
