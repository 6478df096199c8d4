package decimal

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

const (
	// Scale is the number of billionths in one unit.
	Scale = 1_000_000_000

	// MaxFractionDigits is the number of fractional digits a decimal holds.
	MaxFractionDigits = 9
)

// Decimal is a fixed point base 10 decimal number. The zero value is 0.
type Decimal struct {
	units      int32
	billionths int32
}

var (
	// Zero is 0.
	Zero = Decimal{}

	// One is 1.
	One = Decimal{units: 1}

	// NegOne is -1.
	NegOne = Decimal{units: -1}

	// Epsilon is the smallest positive decimal, 0.000000001.
	Epsilon = Decimal{billionths: 1}

	// MaxDecimal is the largest decimal, 2147483647.999999999.
	MaxDecimal = Decimal{units: math.MaxInt32, billionths: Scale - 1}

	// MinDecimal is the smallest decimal, -2147483648.999999999.
	MinDecimal = Decimal{units: math.MinInt32, billionths: -(Scale - 1)}
)

// Parts is a loosely specified decimal. Units may be fractional and
// billionths may be fractional or out of range.
type Parts struct {
	Units      float64
	Billionths float64
}

// Normalize returns the decimal for p.
//
// Units are floored and their fractional remainder moves into billionths.
// Billionths are rounded half away from zero and whole units are carried out
// of them. If either part is not finite the result is Zero.
func Normalize(p Parts) Decimal {
	units := math.Floor(p.Units)
	if !finite(units) {
		return Zero
	}

	billionths := math.Round((p.Units-units)*Scale) + math.Round(p.Billionths)
	if !finite(billionths) {
		return Zero
	}

	carry := math.Trunc(billionths / Scale)
	billionths = math.Mod(billionths, Scale)
	units += carry

	return align(wrap(units), int32(billionths))
}

// New returns the decimal units + billionths * 10^-9.
func New(units, billionths int64) Decimal {
	units += billionths / Scale
	billionths %= Scale

	return align(int32(units), int32(billionths))
}

// NewFromInt returns the decimal for a whole number.
func NewFromInt(units int64) Decimal {
	return New(units, 0)
}

// NewFromFloat64 returns the decimal closest to f. Non-finite values return
// Zero.
func NewFromFloat64(f float64) Decimal {
	return Normalize(Parts{Units: f})
}

// Units returns the whole number part.
func (d Decimal) Units() int32 {
	return d.units
}

// Billionths returns the fractional part in 10^-9.
func (d Decimal) Billionths() int32 {
	return d.billionths
}

// magnitude splits d into its sign and the absolute values of its parts.
func (d Decimal) magnitude() (neg bool, units, billionths int64) {
	units, billionths = int64(d.units), int64(d.billionths)
	if units < 0 || billionths < 0 {
		return true, -units, -billionths
	}

	return false, units, billionths
}

// align makes units and billionths share a sign. Both inputs must already be
// in range.
func align(units, billionths int32) Decimal {
	switch {
	case units > 0 && billionths < 0:
		units--
		billionths += Scale
	case units < 0 && billionths > 0:
		units++
		billionths -= Scale
	}

	return Decimal{
		units:      units,
		billionths: billionths,
	}
}

// wrap truncates a whole float to 32 bits the way an integer conversion
// would.
func wrap(f float64) int32 {
	return int32(int64(math.Mod(f, 1<<32)))
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
