package numeric

import (
	"github.com/shopspring/decimal"

	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/units"
)

// Add, Sub, Mul and Div implement the dimensional unit algebra: operands
// of different quantities never combine, and a common quantity's result
// is renormalized after the underlying decimal operation.

func Add(a, b Number) (Number, error) { return binary("+", a, b) }
func Sub(a, b Number) (Number, error) { return binary("-", a, b) }
func Mul(a, b Number) (Number, error) { return binary("*", a, b) }

func Div(a, b Number) (Number, error) {
	if b.Value.IsZero() {
		return Number{}, lerr.New(lerr.Range, "division by zero")
	}
	return binary("/", a, b)
}

func apply(op string, x, y decimal.Decimal) decimal.Decimal {
	switch op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*":
		return x.Mul(y)
	case "/":
		return x.DivRound(y, 34)
	default:
		panic("numeric: unknown operator " + op)
	}
}

func binary(op string, a, b Number) (Number, error) {
	switch {
	case a.Unit == nil && b.Unit == nil:
		return Number{Value: apply(op, a.Value, b.Value)}, nil

	case a.Unit != nil && b.Unit != nil:
		if a.Unit.Quantity != b.Unit.Quantity {
			return Number{}, lerr.New(lerr.Unit, "incompatible units: %s and %s", a.Unit.Quantity, b.Unit.Quantity)
		}
		q := a.Unit.Quantity
		abase := toBaseDecimal(a)
		bbase := toBaseDecimal(b)
		resultBase := apply(op, abase, bbase)
		return renormalize(q, resultBase), nil

	default:
		if op == "+" || op == "-" {
			return Number{}, lerr.New(lerr.Unit, "%s requires both operands to carry the same unit, or neither", op)
		}
		// mul/div with a bare number: result keeps the unit of the
		// other (unit-bearing) operand.
		var u units.Unit
		if a.Unit != nil {
			u = *a.Unit
		} else {
			u = *b.Unit
		}
		return Number{Value: apply(op, a.Value, b.Value), Unit: &u}, nil
	}
}

// Compare orders a and b. Numbers of different quantities are never
// comparable. A bare number may appear on the left of a unit-bearing
// number (compared against its raw magnitude); the reverse raises Type.
func Compare(a, b Number) (int, error) {
	switch {
	case a.Unit == nil && b.Unit == nil:
		return a.Value.Cmp(b.Value), nil

	case a.Unit != nil && b.Unit != nil:
		if a.Unit.Quantity != b.Unit.Quantity {
			return 0, lerr.New(lerr.Unit, "incompatible units: %s and %s", a.Unit.Quantity, b.Unit.Quantity)
		}
		return toBaseDecimal(a).Cmp(toBaseDecimal(b)), nil

	case a.Unit == nil && b.Unit != nil:
		// bare number on the left: compared against the raw magnitude.
		return a.Value.Cmp(b.Value), nil

	default:
		return 0, lerr.New(lerr.Type, "a unit-bearing number may not be compared against a bare number on its right")
	}
}

func toBaseDecimal(n Number) decimal.Decimal {
	if n.Unit == nil {
		return n.Value
	}
	return decimal.NewFromBigRat(n.Unit.ToBaseRatio(), 40).Mul(n.Value)
}

// renormalize picks, among the catalog units of q (descending by
// multiplier), the first whose multiplier is <= the base magnitude, and
// expresses the result in that unit. Ties favor the larger unit: the
// catalog is walked largest-first with a "<=" test, so exactly 1000m
// comes out as 1km.
func renormalize(q units.Quantity, baseMagnitude decimal.Decimal) Number {
	abs := baseMagnitude.Abs()
	all := units.AllOf(q)

	chosen := all[len(all)-1] // fall back to the smallest unit
	for _, u := range all {
		threshold := decimal.NewFromBigRat(u.ToBaseRatio(), 40)
		if threshold.LessThanOrEqual(abs) {
			chosen = u
			break
		}
	}

	fromBase := decimal.NewFromBigRat(chosen.FromBaseRatio(), 40)
	return Number{Value: baseMagnitude.Mul(fromBase), Unit: &chosen}
}
