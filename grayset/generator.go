package grayset

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/tuannh982/grayset/grayset/commons"
	"github.com/tuannh982/grayset/utils/collections"
)

func newSet(buckets int, multiset bool) (collections.HashSet[commons.Gray], error) {
	return collections.NewHashSet(buckets, !multiset, commons.GrayHash, commons.GrayEqual)
}

func code(power int, value int) (commons.Gray, error) {
	g, err := commons.NewGray(power)
	if err != nil {
		return g, err
	}
	commons.ImportGray(&g, value)
	return g, nil
}

// Universe holds the gray code of every value in [0, 2^power).
func Universe(power int, buckets int) (collections.HashSet[commons.Gray], error) {
	set, err := newSet(buckets, false)
	if err != nil {
		return nil, errors.Wrap(err, "universe")
	}
	for value := 0; value < 1<<power; value++ {
		g, err := code(power, value)
		if err != nil {
			return nil, errors.Wrap(err, "universe")
		}
		set.Add(g)
	}
	return set, nil
}

// Random keeps each code of the universe with probability 1/2.
func Random(power int, buckets int, rnd *rand.Rand) (collections.HashSet[commons.Gray], error) {
	set, err := newSet(buckets, false)
	if err != nil {
		return nil, errors.Wrap(err, "random")
	}
	for value := 0; value < 1<<power; value++ {
		g, err := code(power, value)
		if err != nil {
			return nil, errors.Wrap(err, "random")
		}
		if rnd.Float64() > 0.5 {
			set.Add(g)
		}
	}
	return set, nil
}

// RandomBag draws 2^power codes uniformly with replacement into a multiset.
func RandomBag(power int, buckets int, rnd *rand.Rand) (collections.HashSet[commons.Gray], error) {
	set, err := newSet(buckets, true)
	if err != nil {
		return nil, errors.Wrap(err, "random bag")
	}
	n := 1 << power
	for i := 0; i < n; i++ {
		g, err := code(power, rnd.Intn(n))
		if err != nil {
			return nil, errors.Wrap(err, "random bag")
		}
		set.Add(g)
	}
	return set, nil
}
