package engine

import (
	"github.com/laskin-lang/laskin/chronology"
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/numeric"
	"github.com/laskin-lang/laskin/value"
)

// registerNumbers installs the number: word family.
func registerNumbers(c *Context) {
	c.def("number:has-unit?", func(e value.Engine) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(n.HasUnit()))
		return nil
	})
	c.def("number:unit", func(e value.Engine) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		if !n.HasUnit() {
			e.Push(value.NewString(""))
			return nil
		}
		e.Push(value.NewString(n.Unit.Symbol))
		return nil
	})
	c.def("number:unit-type", func(e value.Engine) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		if !n.HasUnit() {
			return lerr.New(lerr.Type, "number has no unit")
		}
		e.Push(value.NewString(n.Unit.Quantity.String()))
		return nil
	})
	c.def("number:drop-unit", func(e value.Engine) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(n.DropUnit()))
		return nil
	})

	c.def("number:range", func(e value.Engine) error {
		hi, err := popNumber(e)
		if err != nil {
			return err
		}
		lo, err := popNumber(e)
		if err != nil {
			return err
		}
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		ok, err := numeric.InRange(n, lo, hi)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(ok))
		return nil
	})
	c.def("number:clamp", func(e value.Engine) error {
		hi, err := popNumber(e)
		if err != nil {
			return err
		}
		lo, err := popNumber(e)
		if err != nil {
			return err
		}
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		r, err := numeric.Clamp(n, lo, hi)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(r))
		return nil
	})

	c.def("number:times", func(e value.Engine) error {
		body, err := popQuote(e)
		if err != nil {
			return err
		}
		count, err := popLong(e)
		if err != nil {
			return err
		}
		for i := int64(0); i < count; i++ {
			if err := body.Call(e); err != nil {
				return err
			}
		}
		return nil
	})

	registerUnaryTranscendental(c, "number:exp", numeric.Exp)
	registerUnaryTranscendental(c, "number:exp2", numeric.Exp2)
	registerUnaryTranscendental(c, "number:expm1", numeric.Expm1)
	registerUnaryTranscendental(c, "number:sqrt", numeric.Sqrt)
	registerUnaryTranscendental(c, "number:cbrt", numeric.Cbrt)
	registerUnaryTranscendental(c, "number:log", numeric.Log)
	registerUnaryTranscendental(c, "number:log2", numeric.Log2)
	registerUnaryTranscendental(c, "number:log10", numeric.Log10)
	registerUnaryTranscendental(c, "number:log1p", numeric.Log1p)
	registerUnaryTranscendental(c, "number:sin", numeric.Sin)
	registerUnaryTranscendental(c, "number:cos", numeric.Cos)
	registerUnaryTranscendental(c, "number:tan", numeric.Tan)
	registerUnaryTranscendental(c, "number:asin", numeric.Asin)
	registerUnaryTranscendental(c, "number:acos", numeric.Acos)
	registerUnaryTranscendental(c, "number:atan", numeric.Atan)
	registerUnaryTranscendental(c, "number:sinh", numeric.Sinh)
	registerUnaryTranscendental(c, "number:cosh", numeric.Cosh)
	registerUnaryTranscendental(c, "number:tanh", numeric.Tanh)
	registerUnaryTranscendental(c, "number:asinh", numeric.Asinh)
	registerUnaryTranscendental(c, "number:acosh", numeric.Acosh)
	registerUnaryTranscendental(c, "number:atanh", numeric.Atanh)

	registerBinaryTranscendental(c, "number:hypot", numeric.Hypot)
	registerBinaryTranscendental(c, "number:atan2", numeric.Atan2)
	registerBinaryTranscendental(c, "number:pow", numeric.Pow)

	c.def("number:deg", func(e value.Engine) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numeric.Deg(n)))
		return nil
	})
	c.def("number:rad", func(e value.Engine) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numeric.Rad(n)))
		return nil
	})

	c.def("number:>month", func(e value.Engine) error {
		n, err := popLong(e)
		if err != nil {
			return err
		}
		if n < 1 || n > 12 {
			return lerr.New(lerr.Range, "%d is not a valid month number", n)
		}
		e.Push(value.NewMonth(chronology.Month(n)))
		return nil
	})
	c.def("number:>weekday", func(e value.Engine) error {
		n, err := popLong(e)
		if err != nil {
			return err
		}
		if n < 0 || n > 6 {
			return lerr.New(lerr.Range, "%d is not a valid weekday number", n)
		}
		e.Push(value.NewWeekday(chronology.Weekday(n)))
		return nil
	})
}

func registerUnaryTranscendental(c *Context, name string, f func(numeric.Number) (numeric.Number, error)) {
	c.def(name, func(e value.Engine) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		r, err := f(n)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(r))
		return nil
	})
}

func registerBinaryTranscendental(c *Context, name string, f func(a, b numeric.Number) (numeric.Number, error)) {
	c.def(name, func(e value.Engine) error {
		b, err := popNumber(e)
		if err != nil {
			return err
		}
		a, err := popNumber(e)
		if err != nil {
			return err
		}
		r, err := f(a, b)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(r))
		return nil
	})
}
