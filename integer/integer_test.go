package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    Block
		data   []byte
	}

	tcs := []TC{
		{
			name:   "0",
			schema: Schema{Bits: 64},
			blk: Block{
				Value: []byte{
					0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0000,
					0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0000,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0000,
				0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0000,
				0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0000,
			},
		},
		{
			name:   "+1",
			schema: Schema{Bits: 64},
			blk: Block{
				Value: []byte{
					0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0000,
					0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0001,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0001,
				0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0000,
				0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0001,
			},
		},
		{
			name:   "-1",
			schema: Schema{Bits: 64},
			blk: Block{
				Value: []byte{
					0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0000,
					0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0001,
				},
				Negative: true,
			},
			data: []byte{
				0b1111_1111,
				0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0000,
				0b0000_0000, 0b0000_0000, 0b0000_0000, 0b0000_0001,
			},
		},
		{
			name:   "+32767",
			schema: Schema{Bits: 16},
			blk: Block{
				Value: []byte{
					0b0111_1111, 0b1111_1111,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0001,
				0b0111_1111, 0b1111_1111,
			},
		},
		{
			name:   "-65535",
			schema: Schema{Bits: 16},
			blk: Block{
				Value: []byte{
					0b1111_1111, 0b1111_1111,
				},
				Negative: true,
			},
			data: []byte{
				0b1111_1111,
				0b1111_1111, 0b1111_1111,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.schema.Marshal(tc.blk)
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
				require.Len(t, data, tc.schema.Size())
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := Block{}
				err := tc.schema.Unmarshal(tc.data, &blk)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				// These checks ensure that our test case name matches the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Equal(t, 0, i.Cmp(blk.Big()))
			})
		})
	}
}

func TestMarshalShortValue(t *testing.T) {
	data, err := Schema{Bits: 32}.Marshal(Block{Value: []byte{0x01, 0x02}, Negative: true})
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0x00, 0x00, 0x01, 0x02}, data)
}

func TestMarshalNegativeZero(t *testing.T) {
	data, err := Schema{Bits: 8}.Marshal(Block{Value: []byte{0x00}, Negative: true})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00}, data)
}

func TestMarshalErrors(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    Block
	}

	tcs := []TC{
		{
			name:   "zero bits",
			schema: Schema{},
			blk:    Block{Value: []byte{0x01}},
		},
		{
			name:   "unaligned bits",
			schema: Schema{Bits: 12},
			blk:    Block{Value: []byte{0x01}},
		},
		{
			name:   "too large",
			schema: Schema{Bits: 8},
			blk:    Block{Value: []byte{0x01, 0x00}},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			_, err := tc.schema.Marshal(tc.blk)
			require.Error(t, err)
			require.True(t, Error.Has(err))
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	type TC struct {
		name string
		data []byte
	}

	tcs := []TC{
		{
			name: "short",
			data: []byte{0x01, 0x00},
		},
		{
			name: "long",
			data: []byte{0x01, 0x00, 0x00, 0x00},
		},
		{
			name: "sign 2",
			data: []byte{0x02, 0x00, 0x01},
		},
		{
			name: "sign -2",
			data: []byte{0xfe, 0x00, 0x01},
		},
		{
			name: "zero sign non-zero magnitude",
			data: []byte{0x00, 0x00, 0x01},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			blk := Block{}
			err := Schema{Bits: 16}.Unmarshal(tc.data, &blk)
			require.Error(t, err)
			require.True(t, Error.Has(err))
		})
	}
}

func TestBig(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "255", "-256", "18446744073709551615", "-340282366920938463463374607431768211455"} {
		t.Run(s, func(t *testing.T) {
			i, ok := new(big.Int).SetString(s, 10)
			require.True(t, ok)

			blk := FromBig(i)
			require.Equal(t, i.Sign() < 0, blk.Negative)
			require.Equal(t, 0, i.Cmp(blk.Big()))
		})
	}
}

func TestWrap(t *testing.T) {
	type TC struct {
		in   string
		bits uint64
		out  string
	}

	tcs := []TC{
		{in: "255", bits: 8, out: "255"},
		{in: "256", bits: 8, out: "0"},
		{in: "257", bits: 8, out: "1"},
		{in: "-257", bits: 8, out: "-1"},
		{in: "340282366920938463463374607431768211455", bits: 104, out: "20282409603651670423947251286015"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.in), func(t *testing.T) {
			in, ok := new(big.Int).SetString(tc.in, 10)
			require.True(t, ok)

			out, ok := new(big.Int).SetString(tc.out, 10)
			require.True(t, ok)

			require.Equal(t, 0, out.Cmp(Wrap(in, tc.bits)))
		})
	}
}
