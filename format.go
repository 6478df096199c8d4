package decimal

import (
	"strconv"
	"strings"
)

var pow10 = [...]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
}

// String returns the shortest decimal representation of d, e.g. "-2.25".
func (d Decimal) String() string {
	if d.billionths == 0 {
		return strconv.FormatInt(int64(d.units), 10)
	}

	neg, units, billionths := d.magnitude()

	sb := &strings.Builder{}
	if neg {
		sb.WriteByte('-')
	}

	sb.WriteString(strconv.FormatInt(units, 10))
	sb.WriteByte('.')
	sb.WriteString(strings.TrimRight(fraction(billionths), "0"))

	return sb.String()
}

// StringFixed returns d rounded half away from zero to fractionDigits
// fractional digits. fractionDigits is clamped to [0, 9]. When it is 0 the
// decimal point is omitted.
func (d Decimal) StringFixed(fractionDigits int) string {
	fractionDigits = clampDigits(fractionDigits)

	neg, units, billionths := d.magnitude()
	units, billionths = quantize(units, billionths, fractionDigits, halfUp)

	sb := &strings.Builder{}
	if neg && (units != 0 || billionths != 0) {
		sb.WriteByte('-')
	}

	sb.WriteString(strconv.FormatInt(units, 10))

	if fractionDigits > 0 {
		sb.WriteByte('.')
		sb.WriteString(fraction(billionths)[:fractionDigits])
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// fraction renders billionths as exactly nine digits.
func fraction(billionths int64) string {
	s := strconv.FormatInt(billionths, 10)

	return strings.Repeat("0", MaxFractionDigits-len(s)) + s
}

func clampDigits(fractionDigits int) int {
	switch {
	case fractionDigits < 0:
		return 0
	case fractionDigits > MaxFractionDigits:
		return MaxFractionDigits
	}

	return fractionDigits
}
