package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Sign byte values.
const (
	negative byte = 0xff
	zero     byte = 0x00
	positive byte = 0x01
)

// Block is a sign-magnitude integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i.
func FromBig(i *big.Int) Block {
	return Block{
		Value:    new(big.Int).Abs(i).Bytes(),
		Negative: i.Sign() < 0,
	}
}

// Big returns the block as a big integer.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// IsZero reports whether the magnitude is zero.
func (b Block) IsZero() bool {
	for _, v := range b.Value {
		if v != 0 {
			return false
		}
	}

	return true
}

// Wrap reduces the magnitude of i modulo 2^bits, keeping the sign.
func Wrap(i *big.Int, bits uint64) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))

	w := new(big.Int).Abs(i)
	w.And(w, mask)
	if i.Sign() < 0 {
		w.Neg(w)
	}

	return w
}

// Schema for a fixed width integer.
type Schema struct {
	// Bits is the magnitude width. It must be a multiple of 8.
	Bits uint64
}

// Size returns the encoded size in bytes: one sign byte plus the magnitude.
func (s Schema) Size() int {
	return 1 + int(s.Bits/8)
}

// Marshal writes the sign byte followed by the big-endian magnitude
// right-aligned in Bits/8 bytes.
func (s Schema) Marshal(b Block) (data []byte, err error) {
	defer Error.WrapP(&err)

	if s.Bits == 0 || s.Bits%8 != 0 {
		return nil, Error.New("invalid schema: bits=%d", s.Bits)
	}

	// Note: leading zero bytes are allowed in Value, only the significant
	// magnitude has to fit.
	i := new(big.Int).SetBytes(b.Value)
	if uint64(i.BitLen()) > s.Bits {
		return nil, Error.New("too large: bits=%d max=%d", i.BitLen(), s.Bits)
	}

	data = make([]byte, s.Size())

	switch {
	case i.Sign() == 0:
		data[0] = zero
	case b.Negative:
		data[0] = negative
	default:
		data[0] = positive
	}

	i.FillBytes(data[1:])

	return data, nil
}

// Unmarshal parses data written by Marshal.
func (s Schema) Unmarshal(data []byte, b *Block) (err error) {
	defer Error.WrapP(&err)

	if len(data) != s.Size() {
		return Error.New("invalid size: got=%d want=%d", len(data), s.Size())
	}

	value := make([]byte, len(data)-1)
	copy(value, data[1:])

	blk := Block{Value: value}

	switch data[0] {
	case negative:
		blk.Negative = true
	case positive:
	case zero:
		if !blk.IsZero() {
			return Error.New("invalid sign: zero sign with non-zero magnitude")
		}
	default:
		return Error.New("invalid sign: %08b", data[0])
	}

	*b = blk

	return nil
}
