package engine

import "github.com/laskin-lang/laskin/value"

func registerBooleans(c *Context) {
	c.def("boolean:not", func(e value.Engine) error {
		a, err := popBoolean(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(!a))
		return nil
	})
	c.def("boolean:and", func(e value.Engine) error {
		b, err := popBoolean(e)
		if err != nil {
			return err
		}
		a, err := popBoolean(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(a && b))
		return nil
	})
	c.def("boolean:or", func(e value.Engine) error {
		b, err := popBoolean(e)
		if err != nil {
			return err
		}
		a, err := popBoolean(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(a || b))
		return nil
	})
	c.def("boolean:xor", func(e value.Engine) error {
		b, err := popBoolean(e)
		if err != nil {
			return err
		}
		a, err := popBoolean(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(a != b))
		return nil
	})
}
