package collections

import "fmt"

// Pair is an immutable ordered pair. Both components are copied in on
// construction and copied out by the accessors.
type Pair[A any, B any] struct {
	a A
	b B
}

func NewPair[A any, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{
		a: Clone(a),
		b: Clone(b),
	}
}

func (p Pair[A, B]) First() A {
	return Clone(p.a)
}

func (p Pair[A, B]) Second() B {
	return Clone(p.b)
}

func (p Pair[A, B]) Clone() Pair[A, B] {
	return NewPair(p.a, p.b)
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.a, p.b)
}

func PairEqual[A any, B any](ea EqualFunc[A], eb EqualFunc[B]) EqualFunc[Pair[A, B]] {
	return func(x, y Pair[A, B]) bool {
		return ea(x.a, y.a) && eb(x.b, y.b)
	}
}

// locator addresses one stored element: bucket index and position inside the bucket.
type locator = Pair[int, int]

var locatorEqual = PairEqual(Equal[int], Equal[int])
