package engine

import "github.com/laskin-lang/laskin/value"

// registerComparisonAndArithmetic installs "= <> < > <= >= + - * / max min",
// each popping its two operands in stack order (a pushed, then b, so b is
// popped first) and pushing a single result.
func registerComparisonAndArithmetic(c *Context) {
	binaryCompare := func(name string, pred func(cmp int) bool) {
		c.def(name, func(e value.Engine) error {
			b, err := e.Pop()
			if err != nil {
				return err
			}
			a, err := e.Pop()
			if err != nil {
				return err
			}
			cmp, err := a.Compare(b)
			if err != nil {
				return err
			}
			e.Push(value.NewBoolean(pred(cmp)))
			return nil
		})
	}

	c.def("=", func(e value.Engine) error {
		b, err := e.Pop()
		if err != nil {
			return err
		}
		a, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(a.Equal(b)))
		return nil
	})
	c.def("<>", func(e value.Engine) error {
		b, err := e.Pop()
		if err != nil {
			return err
		}
		a, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(!a.Equal(b)))
		return nil
	})
	binaryCompare("<", func(cmp int) bool { return cmp < 0 })
	binaryCompare(">", func(cmp int) bool { return cmp > 0 })
	binaryCompare("<=", func(cmp int) bool { return cmp <= 0 })
	binaryCompare(">=", func(cmp int) bool { return cmp >= 0 })

	binaryArith := func(name string, op func(a, b value.Value) (value.Value, error)) {
		c.def(name, func(e value.Engine) error {
			b, err := e.Pop()
			if err != nil {
				return err
			}
			a, err := e.Pop()
			if err != nil {
				return err
			}
			r, err := op(a, b)
			if err != nil {
				return err
			}
			e.Push(r)
			return nil
		})
	}
	binaryArith("+", value.Add)
	binaryArith("-", value.Sub)
	binaryArith("*", value.Mul)
	binaryArith("/", value.Div)

	c.def("max", func(e value.Engine) error {
		b, err := e.Pop()
		if err != nil {
			return err
		}
		a, err := e.Pop()
		if err != nil {
			return err
		}
		cmp, err := a.Compare(b)
		if err != nil {
			return err
		}
		if cmp >= 0 {
			e.Push(a)
		} else {
			e.Push(b)
		}
		return nil
	})
	c.def("min", func(e value.Engine) error {
		b, err := e.Pop()
		if err != nil {
			return err
		}
		a, err := e.Pop()
		if err != nil {
			return err
		}
		cmp, err := a.Compare(b)
		if err != nil {
			return err
		}
		if cmp <= 0 {
			e.Push(a)
		} else {
			e.Push(b)
		}
		return nil
	})
}
