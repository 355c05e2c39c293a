package commons

import (
	"bytes"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
	"github.com/tuannh982/grayset/utils/collections"
	"github.com/tuannh982/grayset/utils/math"
	"golang.org/x/exp/constraints"
)

const byteBits = 8

// BitVector is a fixed-width sequence of bits. Bit 0 is the least significant.
type BitVector struct {
	width int
	pool  []byte
}

func NewBitVector(width int) (BitVector, error) {
	if width <= 0 {
		return BitVector{}, errors.Wrapf(collections.ErrInvalidConfiguration, "bit vector width must be greater than 0, got %d", width)
	}
	return BitVector{
		width: width,
		pool:  make([]byte, math.DivCeil(width, byteBits)),
	}, nil
}

func (b BitVector) Width() int {
	return b.width
}

func (b BitVector) checkIndex(index int) error {
	if index < 0 || index >= b.width {
		return errors.Wrapf(collections.ErrIndexOutOfRange, "bit %d, width %d", index, b.width)
	}
	return nil
}

func offset(index int) (int, byte) {
	return math.DivFloor(index, byteBits), byte(1) << (index % byteBits)
}

func (b *BitVector) Set(index int, value bool) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.set(index, value)
	return nil
}

func (b *BitVector) set(index int, value bool) {
	pos, mask := offset(index)
	if value {
		b.pool[pos] |= mask
	} else {
		b.pool[pos] &^= mask
	}
}

func (b BitVector) Get(index int) (bool, error) {
	if err := b.checkIndex(index); err != nil {
		return false, err
	}
	return b.get(index), nil
}

func (b BitVector) get(index int) bool {
	pos, mask := offset(index)
	return b.pool[pos]&mask != 0
}

// Uint64 returns the unsigned value of the vector. Vectors wider than 64 bits
// are rejected instead of being truncated.
func (b BitVector) Uint64() (uint64, error) {
	if b.width > 64 {
		return 0, errors.Wrapf(ErrIntegerOverflow, "width %d", b.width)
	}
	var value uint64
	for i := 0; i < b.width; i++ {
		if b.get(i) {
			value |= uint64(1) << i
		}
	}
	return value, nil
}

// LoadUint64 sets bit i to (v>>i)&1 for every i in [0, width). Bits of v
// beyond the width are dropped, bits beyond 64 are cleared.
func (b *BitVector) LoadUint64(v uint64) {
	for i := 0; i < b.width; i++ {
		b.set(i, i < 64 && (v>>i)&1 == 1)
	}
}

func LoadInteger[T constraints.Integer](b *BitVector, v T) {
	b.LoadUint64(uint64(v))
}

// Mod returns value mod n for any width, evaluating the bits from the most significant one.
func (b BitVector) Mod(n int) int {
	r := 0
	for i := b.width - 1; i >= 0; i-- {
		r = r * 2 % n
		if b.get(i) {
			r = (r + 1) % n
		}
	}
	return r
}

func (b BitVector) OnesCount() int {
	count := 0
	for _, x := range b.pool {
		count += bits.OnesCount8(x)
	}
	return count
}

func (b BitVector) Equal(other BitVector) bool {
	return b.width == other.width && bytes.Equal(b.pool, other.pool)
}

func (b BitVector) Clone() BitVector {
	return BitVector{
		width: b.width,
		pool:  bytes.Clone(b.pool),
	}
}

func (b BitVector) String() string {
	var sb strings.Builder
	sb.Grow(b.width)
	for i := b.width - 1; i >= 0; i-- {
		if b.get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
