// Package numeric implements Number, Laskin's arbitrary-precision
// dimensional magnitude: a decimal value with an optional unit that
// participates in arithmetic, comparison, and transcendental operations.
// Magnitudes are github.com/shopspring/decimal values; binary operators
// convert both operands to base units, operate, and renormalize the
// result into the largest catalog unit that fits.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"

	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/units"
)

// Number is a magnitude with an optional unit. Unit == nil means
// dimensionless.
type Number struct {
	Value decimal.Decimal
	Unit  *units.Unit
}

// FromInt builds a dimensionless integral Number.
func FromInt(n int64) Number {
	return Number{Value: decimal.NewFromInt(n)}
}

// FromFloat builds a dimensionless Number from a float64, used for
// transcendental results.
func FromFloat(f float64) Number {
	return Number{Value: decimal.NewFromFloat(f)}
}

// HasUnit reports whether n carries a unit.
func (n Number) HasUnit() bool {
	return n.Unit != nil
}

// DropUnit returns a copy of n with its unit removed.
func (n Number) DropUnit() Number {
	return Number{Value: n.Value}
}

// WithUnit returns a copy of n reinterpreted (not converted) under u. Used
// by the parser when a literal like "5kg" is read whole.
func (n Number) WithUnit(u units.Unit) Number {
	return Number{Value: n.Value, Unit: &u}
}

// InBase returns n converted to the base unit of its quantity; a bare
// number is returned unchanged. Used by hosts that display the
// pre-renormalization magnitude next to the normal rendering.
func (n Number) InBase() Number {
	if n.Unit == nil || n.Unit.IsBase() {
		return n
	}
	base := units.BaseOf(n.Unit.Quantity)
	return Number{Value: toBaseDecimal(n), Unit: &base}
}

// IsIntegral reports whether the magnitude has no fractional part.
func (n Number) IsIntegral() bool {
	return n.Value.Equal(n.Value.Truncate(0))
}

// ToLong converts the magnitude to an int64, raising Range if it is not
// integral or does not fit.
func (n Number) ToLong() (int64, error) {
	if !n.IsIntegral() {
		return 0, lerr.New(lerr.Range, "number does not fit in a 64-bit integer: %s has a fractional part", n.String())
	}
	bi := n.Value.BigInt()
	if !bi.IsInt64() {
		return 0, lerr.New(lerr.Range, "number out of 64-bit integer range: %s", n.String())
	}
	return bi.Int64(), nil
}

// String renders the number as base-10 decimal with no exponent,
// trailing zeros trimmed, and the unit symbol appended directly with no
// separator ("5m", "1.5kg").
func (n Number) String() string {
	s := n.Value.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if n.Unit != nil {
		s += n.Unit.Symbol
	}
	return s
}
