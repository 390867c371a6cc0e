package numeric

import (
	"math"

	"github.com/shopspring/decimal"

	lerr "github.com/laskin-lang/laskin/errors"
)

// unary applies a float64 transcendental function to n's magnitude,
// carrying its unit through unchanged. domain reports whether the input
// is within the function's domain; when it is not, a Domain error is
// raised instead.
func unary(n Number, domain func(float64) bool, f func(float64) float64, name string) (Number, error) {
	x, _ := n.Value.Float64()
	if domain != nil && !domain(x) {
		return Number{}, lerr.New(lerr.Domain, "%s(%s) is not representable in the reals", name, n.String())
	}
	return Number{Value: decimal.NewFromFloat(f(x)), Unit: n.Unit}, nil
}

func Exp(n Number) (Number, error)    { return unary(n, nil, math.Exp, "exp") }
func Exp2(n Number) (Number, error)   { return unary(n, nil, math.Exp2, "exp2") }
func Expm1(n Number) (Number, error)  { return unary(n, nil, math.Expm1, "expm1") }
func Sqrt(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x >= 0 }, math.Sqrt, "sqrt")
}
func Cbrt(n Number) (Number, error) { return unary(n, nil, math.Cbrt, "cbrt") }
func Log(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x > 0 }, math.Log, "log")
}
func Log2(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x > 0 }, math.Log2, "log2")
}
func Log10(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x > 0 }, math.Log10, "log10")
}
func Log1p(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x > -1 }, math.Log1p, "log1p")
}

func Sin(n Number) (Number, error)  { return unary(n, nil, math.Sin, "sin") }
func Cos(n Number) (Number, error)  { return unary(n, nil, math.Cos, "cos") }
func Tan(n Number) (Number, error)  { return unary(n, nil, math.Tan, "tan") }
func Asin(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x >= -1 && x <= 1 }, math.Asin, "asin")
}
func Acos(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x >= -1 && x <= 1 }, math.Acos, "acos")
}
func Atan(n Number) (Number, error) { return unary(n, nil, math.Atan, "atan") }

func Sinh(n Number) (Number, error) { return unary(n, nil, math.Sinh, "sinh") }
func Cosh(n Number) (Number, error) { return unary(n, nil, math.Cosh, "cosh") }
func Tanh(n Number) (Number, error) { return unary(n, nil, math.Tanh, "tanh") }
func Asinh(n Number) (Number, error) { return unary(n, nil, math.Asinh, "asinh") }
func Acosh(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x >= 1 }, math.Acosh, "acosh")
}
func Atanh(n Number) (Number, error) {
	return unary(n, func(x float64) bool { return x > -1 && x < 1 }, math.Atanh, "atanh")
}

// Hypot and Atan2 are the two binary transcendentals in the catalog.
func Hypot(a, b Number) (Number, error) {
	x, _ := a.Value.Float64()
	y, _ := b.Value.Float64()
	return Number{Value: decimal.NewFromFloat(math.Hypot(x, y))}, nil
}

// Pow raises base to exponent. A unit-bearing exponent is accepted
// without raising Unit; its unit is simply discarded.
func Pow(base, exponent Number) (Number, error) {
	x, _ := base.Value.Float64()
	y, _ := exponent.Value.Float64()
	return Number{Value: decimal.NewFromFloat(math.Pow(x, y)), Unit: base.Unit}, nil
}

func Atan2(a, b Number) (Number, error) {
	x, _ := a.Value.Float64()
	y, _ := b.Value.Float64()
	return Number{Value: decimal.NewFromFloat(math.Atan2(x, y))}, nil
}

// Deg converts a number assumed to be in radians to degrees, and Rad the
// reverse; both drop any unit.
func Deg(n Number) Number {
	return Number{Value: n.Value.Mul(decimal.NewFromFloat(180 / math.Pi))}
}

func Rad(n Number) Number {
	return Number{Value: n.Value.Mul(decimal.NewFromFloat(math.Pi / 180))}
}

// InRange reports whether n's magnitude falls within [lo, hi], raising
// Range if lo > hi.
func InRange(n, lo, hi Number) (bool, error) {
	c, err := Compare(lo, hi)
	if err != nil {
		return false, err
	}
	if c > 0 {
		return false, lerr.New(lerr.Range, "invalid range: %s > %s", lo.String(), hi.String())
	}
	cl, err := Compare(n, lo)
	if err != nil {
		return false, err
	}
	ch, err := Compare(n, hi)
	if err != nil {
		return false, err
	}
	return cl >= 0 && ch <= 0, nil
}

// Clamp restricts n's magnitude to [lo, hi].
func Clamp(n, lo, hi Number) (Number, error) {
	c, err := Compare(lo, hi)
	if err != nil {
		return Number{}, err
	}
	if c > 0 {
		return Number{}, lerr.New(lerr.Range, "invalid range: %s > %s", lo.String(), hi.String())
	}
	if cl, err := Compare(n, lo); err != nil {
		return Number{}, err
	} else if cl < 0 {
		return lo, nil
	}
	if ch, err := Compare(n, hi); err != nil {
		return Number{}, err
	} else if ch > 0 {
		return hi, nil
	}
	return n, nil
}
