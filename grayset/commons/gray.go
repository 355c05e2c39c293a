package commons

import "golang.org/x/exp/constraints"

// Gray is a bit vector holding a binary-reflected Gray code.
type Gray struct {
	BitVector
}

func NewGray(width int) (Gray, error) {
	b, err := NewBitVector(width)
	if err != nil {
		return Gray{}, err
	}
	return Gray{BitVector: b}, nil
}

// ImportValue stores the Gray code of n.
func (g *Gray) ImportValue(n uint64) {
	g.LoadUint64(n ^ (n >> 1))
}

func ImportGray[T constraints.Integer](g *Gray, n T) {
	g.ImportValue(uint64(n))
}

// Decode returns the integer whose Gray code is stored in g.
func (g Gray) Decode() (uint64, error) {
	code, err := g.Uint64()
	if err != nil {
		return 0, err
	}
	n := code
	for shift := code >> 1; shift != 0; shift >>= 1 {
		n ^= shift
	}
	return n, nil
}

func (g Gray) Equal(other Gray) bool {
	return g.BitVector.Equal(other.BitVector)
}

func (g Gray) Clone() Gray {
	return Gray{BitVector: g.BitVector.Clone()}
}
