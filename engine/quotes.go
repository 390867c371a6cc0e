package engine

import "github.com/laskin-lang/laskin/value"

// registerQuotes installs the quote: combinator family. quote:compose,
// quote:curry and quote:negate each build a fresh native quote whose body
// is a closure over the popped operands, so composed quotes stay
// first-class values on the stack; quote:call and quote:dip run the
// popped quote immediately.
func registerQuotes(c *Context) {
	c.def("quote:call", func(e value.Engine) error {
		q, err := popQuote(e)
		if err != nil {
			return err
		}
		return q.Call(e)
	})

	c.def("quote:compose", func(e value.Engine) error {
		right, err := popQuote(e)
		if err != nil {
			return err
		}
		left, err := popQuote(e)
		if err != nil {
			return err
		}
		e.Push(value.NewQuote(value.NewNativeQuote("quote:compose", func(e value.Engine) error {
			if err := left.Call(e); err != nil {
				return err
			}
			return right.Call(e)
		})))
		return nil
	})

	c.def("quote:curry", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		arg, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(value.NewQuote(value.NewNativeQuote("quote:curry", func(e value.Engine) error {
			e.Push(arg)
			return quote.Call(e)
		})))
		return nil
	})

	c.def("quote:negate", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		e.Push(value.NewQuote(value.NewNativeQuote("quote:negate", func(e value.Engine) error {
			if err := quote.Call(e); err != nil {
				return err
			}
			b, err := popBoolean(e)
			if err != nil {
				return err
			}
			e.Push(value.NewBoolean(!b))
			return nil
		})))
		return nil
	})

	c.def("quote:dip", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		v, err := e.Pop()
		if err != nil {
			return err
		}
		if err := quote.Call(e); err != nil {
			return err
		}
		e.Push(v)
		return nil
	})
}
