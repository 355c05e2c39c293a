package collections

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func newIntSet(t *testing.T, buckets int, unique bool, values ...int) HashSet[int] {
	s, err := NewComparableSet(buckets, unique, IntHash)
	require.Nil(t, err)
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func sorted(arr []int) []int {
	sort.Ints(arr)
	return arr
}

func TestHashSet(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	hash := func(buckets int, v *Mock) int {
		return len(v.A) % buckets
	}
	equals := func(a, b *Mock) bool {
		return a.A == b.A
	}
	s, err := NewUniqueSet(4, hash, equals)
	require.Nil(t, err)
	s.Add(&Mock{
		A: "aa",
		B: 22,
	})
	s.Add(&Mock{
		A: "aa",
		B: 22,
	})
	s.Add(&Mock{
		A: "bb",
		B: 55,
	})
	require.Equal(t, 2, s.Count())
	require.Equal(t, true, s.Contains(&Mock{
		A: "aa",
	}))
	require.Equal(t, true, s.Contains(&Mock{
		A: "bb",
	}))
	require.Equal(t, false, s.Contains(&Mock{
		A: "cc",
	}))
	require.Equal(t, false, s.Contains(&Mock{
		A: "ccc",
	}))
	require.Equal(t, 2, len(s.Entries()))
	s.Remove(&Mock{
		A: "bb",
	})
	require.Equal(t, false, s.Contains(&Mock{
		A: "bb",
	}))
	require.Equal(t, 1, s.Count())
}

func TestHashSetInvalidConfiguration(t *testing.T) {
	_, err := NewComparableSet(0, true, IntHash)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewComparableSet(-3, false, IntHash)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewHashSet[int](4, true, nil, Equal[int])
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestHashSetModes(t *testing.T) {
	unique := newIntSet(t, 4, true, 3, 3)
	require.Equal(t, 1, unique.Count())
	require.Equal(t, false, unique.IsMultiset())
	multi := newIntSet(t, 4, false, 3, 3)
	require.Equal(t, 2, multi.Count())
	require.Equal(t, true, multi.IsMultiset())
	require.Equal(t, 2, multi.Multiplicity(3))
	require.Equal(t, 0, multi.Multiplicity(4))
}

func TestHashSetInsertionOrder(t *testing.T) {
	s := newIntSet(t, 3, true, 7, 1, 4, 9, 0, 3)
	require.Equal(t, []int{7, 1, 4, 9, 0, 3}, s.Entries())
	// iteration is restartable
	require.Equal(t, s.Entries(), s.Entries())
	first := make([]int, 0)
	for v := range s.All() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []int{7, 1}, first)
}

func TestHashSetRemove(t *testing.T) {
	s := newIntSet(t, 3, true, 0, 3, 6, 1, 9, 4)
	s.Remove(3)
	require.Equal(t, []int{0, 6, 1, 9, 4}, s.Entries())
	s.Remove(0)
	require.Equal(t, []int{6, 1, 9, 4}, s.Entries())
	s.Remove(9)
	require.Equal(t, []int{6, 1, 4}, s.Entries())
	s.Add(12)
	require.Equal(t, []int{6, 1, 4, 12}, s.Entries())
	require.Equal(t, 4, s.Count())
	// absent values leave the set untouched
	s.Remove(42)
	s.Remove(3)
	require.Equal(t, 4, s.Count())
	require.Equal(t, []int{6, 1, 4, 12}, s.Entries())
	for _, v := range []int{6, 1, 4, 12} {
		s.Remove(v)
	}
	require.Equal(t, 0, s.Count())
	require.Equal(t, 0, len(s.Entries()))
	s.Remove(6)
	require.Equal(t, 0, s.Count())
}

func TestHashSetRemoveMultiset(t *testing.T) {
	s := newIntSet(t, 2, false, 1, 3, 1, 2, 1)
	s.Remove(1)
	require.Equal(t, []int{3, 1, 2, 1}, s.Entries())
	require.Equal(t, 2, s.Multiplicity(1))
	s.Remove(1)
	require.Equal(t, []int{3, 2, 1}, s.Entries())
}

func TestHashSetAlgebra(t *testing.T) {
	a := newIntSet(t, 4, true, 1, 2, 3, 4)
	b := newIntSet(t, 6, true, 3, 4, 5, 6, 7)

	inter := a.Intersection(b)
	require.Equal(t, 6, inter.BucketCount())
	require.Equal(t, []int{3, 4}, inter.Entries())
	require.Equal(t, sorted(inter.Entries()), sorted(b.Intersection(a).Entries()))

	union := a.Union(b)
	require.Equal(t, 10, union.BucketCount())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, union.Entries())

	diff := a.Difference(b)
	require.Equal(t, 6, diff.BucketCount())
	require.Equal(t, []int{1, 2}, diff.Entries())
	require.Equal(t, []int{5, 6, 7}, b.Difference(a).Entries())

	sym := a.SymmetricDifference(b)
	require.Equal(t, []int{1, 2, 5, 6, 7}, sym.Entries())
	require.Equal(t, sym.Entries(), a.Difference(b).Union(b.Difference(a)).Entries())

	// operands are untouched
	require.Equal(t, []int{1, 2, 3, 4}, a.Entries())
	require.Equal(t, []int{3, 4, 5, 6, 7}, b.Entries())
}

func TestHashSetComplement(t *testing.T) {
	u := newIntSet(t, 8, true, 0, 1, 2, 3, 4, 5, 6, 7)
	a := newIntSet(t, 4, true, 1, 4, 6)
	c := a.Complement(u)
	require.Equal(t, 8, c.BucketCount())
	require.Equal(t, []int{0, 2, 3, 5, 7}, c.Entries())
	require.Equal(t, sorted(u.Entries()), sorted(a.Union(c).Entries()))
	require.Equal(t, 0, a.Intersection(c).Count())
}

func TestHashSetResultMode(t *testing.T) {
	a := newIntSet(t, 4, false, 1, 1, 2)
	b := newIntSet(t, 4, true, 1, 2)
	union := a.Union(b)
	require.Equal(t, true, union.IsMultiset())
	require.Equal(t, 5, union.Count())
	require.Equal(t, false, b.Union(a).IsMultiset())
	require.Equal(t, 2, b.Union(a).Count())
}

func TestSum(t *testing.T) {
	a := newIntSet(t, 4, true, 1, 2, 3, 4)
	b := newIntSet(t, 4, true, 7, 8)
	sum, err := Sum(a, b, nil)
	require.Nil(t, err)
	require.Equal(t, 2, sum.Count())
	require.Equal(t, 2, sum.BucketCount())
	require.Equal(t, "{(1, 7), (2, 8)}", sum.String())
	require.Equal(t, true, sum.Contains(NewPair(2, 8)))
	require.Equal(t, false, sum.Contains(NewPair(1, 8)))

	sum, err = Sum(b, a, nil)
	require.Nil(t, err)
	require.Equal(t, "{(7, 1), (8, 2)}", sum.String())

	empty := newIntSet(t, 4, true)
	_, err = Sum(a, empty, nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestProduct(t *testing.T) {
	a := newIntSet(t, 4, false, 1, 2, 2)
	b := newIntSet(t, 4, false, 5, 6)
	product, err := Product(a, b, nil)
	require.Nil(t, err)
	require.Equal(t, a.Count()*b.Count(), product.Count())
	require.Equal(t, true, product.IsMultiset())
	require.Equal(t, 2, product.Multiplicity(NewPair(2, 6)))
	require.Equal(t, NewPair(1, 5), product.Entries()[0])

	unique := newIntSet(t, 4, true, 1, 2)
	product, err = Product(unique, b, func(buckets int, p Pair[int, int]) int {
		return 0
	})
	require.Nil(t, err)
	require.Equal(t, 4, product.Count())
	require.Equal(t, "{(1, 5), (1, 6), (2, 5), (2, 6)}", product.String())

	_, err = Product(newIntSet(t, 4, true), b, nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestAnalysis(t *testing.T) {
	s := newIntSet(t, 3, false, 4, 1, 4, 4, 7, 1)
	analysis := s.Analysis()
	require.Equal(t, []Pair[int, int]{NewPair(4, 3), NewPair(1, 2), NewPair(7, 1)}, analysis)
	total := 0
	for _, p := range analysis {
		total += p.Second()
	}
	require.Equal(t, s.Count(), total)
}

func TestHashSetOwnsValues(t *testing.T) {
	hash := func(buckets int, m mockBox) int {
		return len(m.v) % buckets
	}
	equals := func(a, b mockBox) bool {
		return len(a.v) == len(b.v) && (len(a.v) == 0 || a.v[0] == b.v[0])
	}
	s, err := NewUniqueSet(2, hash, equals)
	require.Nil(t, err)
	box := mockBox{v: []int{1}}
	s.Add(box)
	box.v[0] = 2
	require.Equal(t, true, s.Contains(mockBox{v: []int{1}}))
	for v := range s.All() {
		v.v[0] = 5
	}
	require.Equal(t, true, s.Contains(mockBox{v: []int{1}}))
}

func TestPair(t *testing.T) {
	p := NewPair("a", 1)
	require.Equal(t, "a", p.First())
	require.Equal(t, 1, p.Second())
	require.Equal(t, "(a, 1)", p.String())
	eq := PairEqual(Equal[string], Equal[int])
	require.Equal(t, true, eq(p, NewPair("a", 1)))
	require.Equal(t, false, eq(p, NewPair("a", 2)))
	h := PairHash(IntHash)
	require.Equal(t, 1, h(4, NewPair(2, 3)))
}
