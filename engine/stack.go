package engine

import "github.com/laskin-lang/laskin/value"

func registerStack(c *Context) {
	c.def("dup", func(e value.Engine) error {
		v, err := e.Peek()
		if err != nil {
			return err
		}
		e.Push(v)
		return nil
	})

	c.def("drop", func(e value.Engine) error {
		_, err := e.Pop()
		return err
	})

	c.def("nip", func(e value.Engine) error {
		b, err := e.Pop()
		if err != nil {
			return err
		}
		if _, err := e.Pop(); err != nil {
			return err
		}
		e.Push(b)
		return nil
	})

	c.def("over", func(e value.Engine) error {
		b, err := e.Pop()
		if err != nil {
			return err
		}
		a, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(a)
		e.Push(b)
		e.Push(a)
		return nil
	})

	c.def("rot", func(e value.Engine) error {
		cc, err := e.Pop()
		if err != nil {
			return err
		}
		b, err := e.Pop()
		if err != nil {
			return err
		}
		a, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(b)
		e.Push(cc)
		e.Push(a)
		return nil
	})

	c.def("swap", func(e value.Engine) error {
		b, err := e.Pop()
		if err != nil {
			return err
		}
		a, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(b)
		e.Push(a)
		return nil
	})

	c.def("tuck", func(e value.Engine) error {
		b, err := e.Pop()
		if err != nil {
			return err
		}
		a, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(b)
		e.Push(a)
		e.Push(b)
		return nil
	})

	c.def("depth", func(e value.Engine) error {
		e.Push(value.NewNumber(numberFromInt(int64(e.Depth()))))
		return nil
	})

	c.def("clear", func(e value.Engine) error {
		e.Clear()
		return nil
	})
}
