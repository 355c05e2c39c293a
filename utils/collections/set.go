package collections

import "iter"

// HashSet is a fixed-bucket hash table iterated in insertion order.
// Operators never modify their operands and always return a new set that
// carries the receiver's unique/multiset mode.
type HashSet[V any] interface {
	Add(v V)
	Remove(v V)
	Contains(v V) bool
	IsMultiset() bool
	Count() int
	BucketCount() int
	All() iter.Seq[V]
	Entries() []V
	Intersection(other HashSet[V]) HashSet[V]
	Union(other HashSet[V]) HashSet[V]
	Difference(other HashSet[V]) HashSet[V]
	SymmetricDifference(other HashSet[V]) HashSet[V]
	Complement(universal HashSet[V]) HashSet[V]
	Multiplicity(v V) int
	Analysis() []Pair[V, int]
	String() string
	strategy() (HashFunc[V], EqualFunc[V])
}
