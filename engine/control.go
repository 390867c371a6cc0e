package engine

import "github.com/laskin-lang/laskin/value"

// registerControl installs if, if-else, while and quit.
func registerControl(c *Context) {
	c.def("if", func(e value.Engine) error {
		body, err := popQuote(e)
		if err != nil {
			return err
		}
		cond, err := popBoolean(e)
		if err != nil {
			return err
		}
		if cond {
			return body.Call(e)
		}
		return nil
	})

	c.def("if-else", func(e value.Engine) error {
		elseBody, err := popQuote(e)
		if err != nil {
			return err
		}
		thenBody, err := popQuote(e)
		if err != nil {
			return err
		}
		cond, err := popBoolean(e)
		if err != nil {
			return err
		}
		if cond {
			return thenBody.Call(e)
		}
		return elseBody.Call(e)
	})

	c.def("while", func(e value.Engine) error {
		body, err := popQuote(e)
		if err != nil {
			return err
		}
		cond, err := popQuote(e)
		if err != nil {
			return err
		}
		for {
			if err := cond.Call(e); err != nil {
				return err
			}
			ok, err := popBoolean(e)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := body.Call(e); err != nil {
				return err
			}
		}
	})

	c.def("quit", func(e value.Engine) error {
		return &QuitError{Code: 0}
	})
}
