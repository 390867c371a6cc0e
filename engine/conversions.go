package engine

import "github.com/laskin-lang/laskin/value"

// registerConversions installs >string and >source.
func registerConversions(c *Context) {
	c.def(">string", func(e value.Engine) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(value.NewString(v.ToString()))
		return nil
	})
	c.def(">source", func(e value.Engine) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(value.NewString(v.ToSource()))
		return nil
	})
}
