package decimal

import (
	"math"
	"strings"
)

// maxUnitDigits is the number of digits in math.MaxInt32.
const maxUnitDigits = 10

// Parse returns the decimal for text. The accepted form is an optional sign,
// up to 10 integer digits and an optional point followed by up to 9
// fractional digits, e.g. "-12.5", "+.25" or "7.". Either the integer digits
// or the fractional digits may be omitted but not both. ok is false for any
// other input or when the integer part exceeds math.MaxInt32.
func Parse(text string) (d Decimal, ok bool) {
	s := text

	var neg bool
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac, point := strings.Cut(s, ".")

	switch {
	case len(whole) > maxUnitDigits:
		return Zero, false
	case len(frac) > MaxFractionDigits:
		return Zero, false
	case len(whole) == 0 && len(frac) == 0:
		return Zero, false
	case len(whole) == 0 && !point:
		return Zero, false
	}

	var units int64
	for i := 0; i < len(whole); i++ {
		c := whole[i]
		if c < '0' || c > '9' {
			return Zero, false
		}

		units = units*10 + int64(c-'0')
	}

	if units > math.MaxInt32 {
		return Zero, false
	}

	// Fractional digits are right padded to nine places.
	var billionths int64
	for i := 0; i < MaxFractionDigits; i++ {
		billionths *= 10

		if i >= len(frac) {
			continue
		}

		c := frac[i]
		if c < '0' || c > '9' {
			return Zero, false
		}

		billionths += int64(c - '0')
	}

	if neg {
		units, billionths = -units, -billionths
	}

	return Decimal{
		units:      int32(units),
		billionths: int32(billionths),
	}, true
}

// MustParse is like Parse but panics if text is not a valid decimal.
func MustParse(text string) Decimal {
	d, ok := Parse(text)
	if !ok {
		panic(Error.New("invalid decimal: %q", text))
	}

	return d
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	v, ok := Parse(string(text))
	if !ok {
		return Error.New("invalid decimal: %q", text)
	}

	*d = v

	return nil
}
