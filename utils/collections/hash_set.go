package collections

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

type hashSet[V any] struct {
	buckets  []*linkedList[V]
	unique   bool
	registry *linkedList[locator]
	hashFunc HashFunc[V]
	equal    EqualFunc[V]
}

// NewHashSet creates a set with a fixed number of buckets. A unique set drops
// duplicates on Add, a multiset keeps them.
func NewHashSet[V any](buckets int, unique bool, hash HashFunc[V], equal EqualFunc[V]) (HashSet[V], error) {
	return newHashSet(buckets, unique, hash, equal)
}

func NewUniqueSet[V any](buckets int, hash HashFunc[V], equal EqualFunc[V]) (HashSet[V], error) {
	return newHashSet(buckets, true, hash, equal)
}

func NewMultiset[V any](buckets int, hash HashFunc[V], equal EqualFunc[V]) (HashSet[V], error) {
	return newHashSet(buckets, false, hash, equal)
}

func NewComparableSet[V comparable](buckets int, unique bool, hash HashFunc[V]) (HashSet[V], error) {
	return newHashSet(buckets, unique, hash, Equal[V])
}

func newHashSet[V any](buckets int, unique bool, hash HashFunc[V], equal EqualFunc[V]) (*hashSet[V], error) {
	if buckets <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "bucket count must be greater than 0, got %d", buckets)
	}
	if hash == nil || equal == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "hash and equal functions are required")
	}
	s := &hashSet[V]{
		buckets:  make([]*linkedList[V], buckets),
		unique:   unique,
		registry: newLinkedList(locatorEqual),
		hashFunc: hash,
		equal:    equal,
	}
	for i := range s.buckets {
		s.buckets[i] = newLinkedList(equal)
	}
	return s, nil
}

// derive creates an empty set sharing the strategies and mode of s.
// buckets is always positive at the call sites.
func (s *hashSet[V]) derive(buckets int) *hashSet[V] {
	result, err := newHashSet(buckets, s.unique, s.hashFunc, s.equal)
	if err != nil {
		panic(err)
	}
	return result
}

func (s *hashSet[V]) bucket(v V) (int, *linkedList[V]) {
	key := s.hashFunc(len(s.buckets), v)
	return key, s.buckets[key]
}

func (s *hashSet[V]) Add(v V) {
	key, slot := s.bucket(v)
	if s.unique && slot.Exists(v) {
		return
	}
	slot.Append(v)
	s.registry.Append(NewPair(key, slot.Size()-1))
}

func (s *hashSet[V]) Remove(v V) {
	key, slot := s.bucket(v)
	position, ok := slot.RemoveByValue(v)
	if !ok {
		return
	}
	s.registry.RemoveByValue(NewPair(key, position))
	s.registry.rewrite(func(loc locator) locator {
		if loc.a == key && loc.b > position {
			return NewPair(key, loc.b-1)
		}
		return loc
	})
}

func (s *hashSet[V]) Contains(v V) bool {
	_, slot := s.bucket(v)
	if slot.Size() == 0 {
		return false
	}
	return slot.Exists(v)
}

func (s *hashSet[V]) IsMultiset() bool {
	return !s.unique
}

func (s *hashSet[V]) Count() int {
	return s.registry.Size()
}

func (s *hashSet[V]) BucketCount() int {
	return len(s.buckets)
}

func (s *hashSet[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, loc := range s.registry.All() {
			v, err := s.buckets[loc.a].Get(loc.b)
			if err != nil {
				panic(errors.Wrapf(err, "dangling locator %v", loc))
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (s *hashSet[V]) Entries() []V {
	arr := make([]V, 0, s.Count())
	for v := range s.All() {
		arr = append(arr, v)
	}
	return arr
}

func (s *hashSet[V]) Intersection(other HashSet[V]) HashSet[V] {
	result := s.derive(max(s.BucketCount(), other.BucketCount()))
	for v := range other.All() {
		if s.Contains(v) {
			result.Add(v)
		}
	}
	return result
}

func (s *hashSet[V]) Union(other HashSet[V]) HashSet[V] {
	result := s.derive(s.BucketCount() + other.BucketCount())
	for v := range s.All() {
		result.Add(v)
	}
	for v := range other.All() {
		result.Add(v)
	}
	return result
}

func (s *hashSet[V]) Difference(other HashSet[V]) HashSet[V] {
	result := s.derive(max(s.BucketCount(), other.BucketCount()))
	for v := range s.All() {
		if !other.Contains(v) {
			result.Add(v)
		}
	}
	return result
}

func (s *hashSet[V]) SymmetricDifference(other HashSet[V]) HashSet[V] {
	return s.Difference(other).Union(other.Difference(s))
}

func (s *hashSet[V]) Complement(universal HashSet[V]) HashSet[V] {
	result := s.derive(universal.BucketCount())
	for v := range universal.All() {
		if !s.Contains(v) {
			result.Add(v)
		}
	}
	return result
}

func (s *hashSet[V]) Multiplicity(v V) int {
	count := 0
	for u := range s.All() {
		if s.equal(u, v) {
			count++
		}
	}
	return count
}

func (s *hashSet[V]) Analysis() []Pair[V, int] {
	distinct, _ := newHashSet(len(s.buckets), true, s.hashFunc, s.equal)
	for v := range s.All() {
		distinct.Add(v)
	}
	arr := make([]Pair[V, int], 0, distinct.Count())
	for v := range distinct.All() {
		arr = append(arr, NewPair(v, s.Multiplicity(v)))
	}
	return arr
}

func (s *hashSet[V]) strategy() (HashFunc[V], EqualFunc[V]) {
	return s.hashFunc, s.equal
}

func (s *hashSet[V]) String() string {
	ss := make([]string, 0, s.Count())
	for v := range s.All() {
		ss = append(ss, fmt.Sprint(v))
	}
	return "{" + strings.Join(ss, ", ") + "}"
}

// Sum pairs the i-th element of a with the i-th element of b, in iteration
// order, for i < min(a.Count(), b.Count()). A nil hash combines the element
// hash of a with PairHash.
func Sum[V any](a, b HashSet[V], hash HashFunc[Pair[V, V]]) (HashSet[Pair[V, V]], error) {
	result, err := newPairSet(a, min(a.Count(), b.Count()), hash)
	if err != nil {
		return nil, errors.Wrap(err, "sum")
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for va := range a.All() {
		vb, ok := next()
		if !ok {
			break
		}
		result.Add(NewPair(va, vb))
	}
	return result, nil
}

// Product pairs every element of a with every element of b.
func Product[V any](a, b HashSet[V], hash HashFunc[Pair[V, V]]) (HashSet[Pair[V, V]], error) {
	result, err := newPairSet(a, a.Count()*b.Count(), hash)
	if err != nil {
		return nil, errors.Wrap(err, "product")
	}
	for va := range a.All() {
		for vb := range b.All() {
			result.Add(NewPair(va, vb))
		}
	}
	return result, nil
}

func newPairSet[V any](a HashSet[V], buckets int, hash HashFunc[Pair[V, V]]) (*hashSet[Pair[V, V]], error) {
	elemHash, elemEqual := a.strategy()
	if hash == nil {
		hash = PairHash(elemHash)
	}
	return newHashSet(buckets, !a.IsMultiset(), hash, PairEqual(elemEqual, elemEqual))
}
