package collections

import "github.com/tuannh982/grayset/utils/math"

// HashFunc maps a value to a bucket index in [0, buckets).
// It must be deterministic and total for every buckets > 0.
type HashFunc[V any] func(buckets int, v V) int

type EqualFunc[V any] func(a, b V) bool

type Equaler[V any] interface {
	Equal(other V) bool
}

type Cloner[V any] interface {
	Clone() V
}

func Equal[V comparable](a, b V) bool {
	return a == b
}

func EqualOf[V Equaler[V]](a, b V) bool {
	return a.Equal(b)
}

// Clone returns a deep copy of v when V knows how to copy itself,
// otherwise v is returned as is.
func Clone[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}

func IntHash(buckets int, v int) int {
	return math.Mod(v, buckets)
}

// PairHash combines the bucket indexes of both components.
func PairHash[V any](h HashFunc[V]) HashFunc[Pair[V, V]] {
	return func(buckets int, p Pair[V, V]) int {
		return math.Mod(h(buckets, p.a)+h(buckets, p.b), buckets)
	}
}
