package decimal

// Ordering is the result of comparing two decimals.
type Ordering int

// Orderings.
const (
	Before Ordering = -1
	Equal  Ordering = 0
	After  Ordering = 1
)

// rounding is applied to a magnitude when fractional digits are dropped.
type rounding int

const (
	towardZero rounding = iota
	awayFromZero
	halfUp
)

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return New(-int64(d.units), -int64(d.billionths))
}

// Add returns d + e.
func (d Decimal) Add(e Decimal) Decimal {
	return New(
		int64(d.units)+int64(e.units),
		int64(d.billionths)+int64(e.billionths),
	)
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns d * e rounded half away from zero to nine fractional digits.
func (d Decimal) Mul(e Decimal) Decimal {
	dneg, du, db := d.magnitude()
	eneg, eu, eb := e.magnitude()

	x := groups(du, db)
	y := groups(eu, eb)

	// z[6] is the ones group of the result; z[0..2] are below a billionth.
	var z [11]int64

	for i := range x {
		for j := range y {
			z[i+j] += x[i] * y[j]
		}
	}

	var carry int64
	for k := range z {
		z[k] += carry
		carry = z[k] / 1000
		z[k] %= 1000
	}

	rest := z[0] + z[1]*1e3 + z[2]*1e6
	billionths := z[3] + z[4]*1e3 + z[5]*1e6
	units := z[6] + z[7]*1e3 + z[8]*1e6 + z[9]*1e9 + z[10]*1e12 + carry*1e15

	if 2*rest >= Scale {
		billionths++
	}

	if dneg != eneg {
		units, billionths = -units, -billionths
	}

	return New(units, billionths)
}

// groups splits a magnitude into base 1000 digits, least significant first.
// The last group holds everything above a million units.
func groups(units, billionths int64) [6]int64 {
	return [6]int64{
		billionths % 1000,
		billionths / 1e3 % 1000,
		billionths / 1e6,
		units % 1000,
		units / 1e3 % 1000,
		units / 1e6,
	}
}

// Compare returns the ordering of a relative to b.
func Compare(a, b Decimal) Ordering {
	switch {
	case a.units < b.units:
		return Before
	case a.units > b.units:
		return After
	case a.billionths < b.billionths:
		return Before
	case a.billionths > b.billionths:
		return After
	}

	return Equal
}

// Cmp returns -1, 0 or +1 when d is less than, equal to or greater than e.
func (d Decimal) Cmp(e Decimal) int {
	return int(Compare(d, e))
}

func (d Decimal) LessThan(e Decimal) bool           { return Compare(d, e) == Before }
func (d Decimal) LessThanOrEqual(e Decimal) bool    { return Compare(d, e) != After }
func (d Decimal) GreaterThan(e Decimal) bool        { return Compare(d, e) == After }
func (d Decimal) GreaterThanOrEqual(e Decimal) bool { return Compare(d, e) != Before }
func (d Decimal) Equal(e Decimal) bool              { return Compare(d, e) == Equal }
func (d Decimal) NotEqual(e Decimal) bool           { return Compare(d, e) != Equal }

// Max returns the greater of a and b, or b when they are equal.
func Max(a, b Decimal) Decimal {
	if a.GreaterThan(b) {
		return a
	}

	return b
}

// Min returns the lesser of a and b, or a when they are equal.
func Min(a, b Decimal) Decimal {
	if a.LessThanOrEqual(b) {
		return a
	}

	return b
}

// Floor returns the greatest decimal with at most fractionDigits fractional
// digits that is not greater than d. fractionDigits is clamped to [0, 9].
func (d Decimal) Floor(fractionDigits int) Decimal {
	if d.Sign() < 0 {
		return d.quantize(fractionDigits, awayFromZero)
	}

	return d.quantize(fractionDigits, towardZero)
}

// Ceil returns the least decimal with at most fractionDigits fractional
// digits that is not less than d. fractionDigits is clamped to [0, 9].
func (d Decimal) Ceil(fractionDigits int) Decimal {
	if d.Sign() < 0 {
		return d.quantize(fractionDigits, towardZero)
	}

	return d.quantize(fractionDigits, awayFromZero)
}

// Round returns d rounded half away from zero to fractionDigits fractional
// digits. fractionDigits is clamped to [0, 9].
func (d Decimal) Round(fractionDigits int) Decimal {
	return d.quantize(fractionDigits, halfUp)
}

// Trunc returns the whole units of d.
func (d Decimal) Trunc() Decimal {
	return Decimal{units: d.units}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.Sign() < 0 {
		return d.Neg()
	}

	return d
}

// IsInteger reports whether d has no fractional part.
func (d Decimal) IsInteger() bool {
	return d.billionths == 0
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool {
	return d == Zero
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	switch {
	case d.units < 0 || d.billionths < 0:
		return -1
	case d.units > 0 || d.billionths > 0:
		return 1
	}

	return 0
}

func (d Decimal) quantize(fractionDigits int, mode rounding) Decimal {
	neg, units, billionths := d.magnitude()
	units, billionths = quantize(units, billionths, clampDigits(fractionDigits), mode)

	if neg {
		units, billionths = -units, -billionths
	}

	return New(units, billionths)
}

// quantize drops the billionths below fractionDigits from a magnitude,
// carrying into units when the fraction rounds up to a whole unit.
func quantize(units, billionths int64, fractionDigits int, mode rounding) (int64, int64) {
	step := pow10[MaxFractionDigits-fractionDigits]
	q, r := billionths/step, billionths%step

	switch mode {
	case awayFromZero:
		if r > 0 {
			q++
		}
	case halfUp:
		if 2*r >= step && r > 0 {
			q++
		}
	}

	billionths = q * step
	if billionths >= Scale {
		units++
		billionths -= Scale
	}

	return units, billionths
}
