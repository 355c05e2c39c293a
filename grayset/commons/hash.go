package commons

import (
	"github.com/tuannh982/grayset/utils/collections"
	"github.com/tuannh982/grayset/utils/math"
)

func BitVectorHash(buckets int, b BitVector) int {
	return b.Mod(buckets)
}

func GrayHash(buckets int, g Gray) int {
	return g.Mod(buckets)
}

func RuneHash(buckets int, r rune) int {
	return math.Mod(int(r), buckets)
}

func RunePairHash(buckets int, p collections.Pair[rune, rune]) int {
	return math.Mod(int(p.First())+int(p.Second()), buckets)
}

var GrayPairHash = collections.PairHash(GrayHash)

var (
	BitVectorEqual = collections.EqualOf[BitVector]
	GrayEqual      = collections.EqualOf[Gray]
)
