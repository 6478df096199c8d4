package decimal

import (
	"encoding/binary"
	"math/big"

	"github.com/calebcase/oops"

	"github.com/softwareventures/decimal/integer"
)

// Schemas for the binary layouts. See the package documentation.
var (
	bytesSchema    = integer.Schema{Bits: 64}
	extendedSchema = integer.Schema{Bits: 104}
)

var (
	bigScale = big.NewInt(Scale)
	bigHalf  = big.NewInt(Scale / 2)
)

// Bytes returns the 9 byte encoding of d.
func (d Decimal) Bytes() (out [9]byte) {
	data, err := d.MarshalBinary()
	if err != nil {
		// A 64 bit magnitude always fits the schema.
		panic(err)
	}

	copy(out[:], data)

	return out
}

// FromBytes decodes the 9 byte encoding of a decimal. Any negative sign byte
// is treated as -1 and any positive one as +1. Units beyond 32 bits wrap.
func FromBytes(data [9]byte) Decimal {
	return fromMagnitude(sign(data[0]), new(big.Int).SetBytes(data[1:]))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	neg, units, billionths := d.magnitude()

	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(units)*Scale+uint64(billionths))

	data, err = bytesSchema.Marshal(integer.Block{
		Value:    value,
		Negative: neg,
	})
	if err != nil {
		return nil, oops.Trace(err)
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Unlike FromBytes it
// rejects data that is not exactly 9 bytes and sign bytes other than -1, 0
// and +1.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	blk := integer.Block{}

	err = bytesSchema.Unmarshal(data, &blk)
	if err != nil {
		return oops.Trace(err)
	}

	*d = fromBlock(blk)

	return nil
}

// MulBytesExtended multiplies two 9 byte encoded decimals without rounding.
// The result has a 13 byte magnitude counted in 10^-18; magnitudes beyond
// 104 bits wrap.
func MulBytesExtended(a, b [9]byte) (out [14]byte) {
	x := new(big.Int).SetBytes(a[1:])
	y := new(big.Int).SetBytes(b[1:])

	p := integer.Wrap(new(big.Int).Mul(x, y), extendedSchema.Bits)

	switch sign(a[0]) * sign(b[0]) {
	case -1:
		p.Neg(p)
	case 0:
		p.SetInt64(0)
	}

	data, err := extendedSchema.Marshal(integer.FromBig(p))
	if err != nil {
		// The product was wrapped to the schema width.
		panic(err)
	}

	copy(out[:], data)

	return out
}

// FromBytesExtended rounds a product from MulBytesExtended half away from zero
// back to a decimal.
func FromBytesExtended(data [14]byte) Decimal {
	q, r := new(big.Int).QuoRem(new(big.Int).SetBytes(data[1:]), bigScale, new(big.Int))
	if r.Cmp(bigHalf) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	return fromMagnitude(sign(data[0]), q)
}

func fromBlock(blk integer.Block) Decimal {
	s := 1
	switch {
	case blk.IsZero():
		s = 0
	case blk.Negative:
		s = -1
	}

	return fromMagnitude(s, new(big.Int).SetBytes(blk.Value))
}

// fromMagnitude builds a decimal from a sign and a magnitude in billionths.
func fromMagnitude(s int, m *big.Int) Decimal {
	if s == 0 {
		return Zero
	}

	units, billionths := new(big.Int).QuoRem(m, bigScale, new(big.Int))
	units = integer.Wrap(units, 32)

	if s < 0 {
		return New(-units.Int64(), -billionths.Int64())
	}

	return New(units.Int64(), billionths.Int64())
}

// sign interprets a sign byte as a two's complement int8.
func sign(b byte) int {
	switch v := int8(b); {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}

	return 0
}
