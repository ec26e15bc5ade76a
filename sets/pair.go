package sets

// Pair is an ordered pair of points of a single carrier.
// It is the element type of relations and uniformity filters.
type Pair[T comparable] struct {
	X, Y T
}

// P is shorthand for constructing a Pair.
func P[T comparable](x, y T) Pair[T] { return Pair[T]{X: x, Y: y} }

// Swap returns the pair with its coordinates exchanged.
func (p Pair[T]) Swap() Pair[T] { return Pair[T]{X: p.Y, Y: p.X} }

// Pairs builds the carrier of all ordered pairs over u, in row-major
// order of u's stable element order.
//
// Time Complexity: O(n²)
func Pairs[T comparable](u *Universe[T]) *Universe[Pair[T]] {
	elems := make([]Pair[T], 0, u.Size()*u.Size())
	for _, x := range u.elems {
		for _, y := range u.elems {
			elems = append(elems, Pair[T]{X: x, Y: y})
		}
	}

	return NewUniverse(elems...)
}

// Prod is a point of the product carrier of two (possibly different)
// carriers.
type Prod[A, B comparable] struct {
	A A
	B B
}

// Fst projects a product point onto its first coordinate.
func Fst[A, B comparable](p Prod[A, B]) A { return p.A }

// Snd projects a product point onto its second coordinate.
func Snd[A, B comparable](p Prod[A, B]) B { return p.B }

// ProdUniverse builds the product carrier of ua and ub.
//
// Time Complexity: O(|ua|·|ub|)
func ProdUniverse[A, B comparable](ua *Universe[A], ub *Universe[B]) *Universe[Prod[A, B]] {
	elems := make([]Prod[A, B], 0, ua.Size()*ub.Size())
	for _, a := range ua.elems {
		for _, b := range ub.elems {
			elems = append(elems, Prod[A, B]{A: a, B: b})
		}
	}

	return NewUniverse(elems...)
}

// Sum is a point of the disjoint-union carrier of two carriers.
// Exactly one of Left/Right is meaningful, selected by IsRight.
type Sum[A, B comparable] struct {
	Left    A
	Right   B
	IsRight bool
}

// InL injects a left-summand point into the disjoint union.
func InL[A, B comparable](a A) Sum[A, B] { return Sum[A, B]{Left: a} }

// InR injects a right-summand point into the disjoint union.
func InR[A, B comparable](b B) Sum[A, B] { return Sum[A, B]{Right: b, IsRight: true} }

// SumUniverse builds the disjoint-union carrier of ua and ub,
// left summand first.
//
// Time Complexity: O(|ua|+|ub|)
func SumUniverse[A, B comparable](ua *Universe[A], ub *Universe[B]) *Universe[Sum[A, B]] {
	elems := make([]Sum[A, B], 0, ua.Size()+ub.Size())
	for _, a := range ua.elems {
		elems = append(elems, InL[A, B](a))
	}
	for _, b := range ub.elems {
		elems = append(elems, InR[A, B](b))
	}

	return NewUniverse(elems...)
}
