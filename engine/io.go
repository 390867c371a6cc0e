package engine

import (
	"fmt"
	"strings"

	"github.com/laskin-lang/laskin/value"
)

// registerIO installs "." (print-and-newline) and ".s" (stack preview).
func registerIO(c *Context) {
	c.def(".", func(e value.Engine) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}
		e.Write(v.ToString() + "\n")
		return nil
	})

	c.def(".s", func(e value.Engine) error {
		ctx, ok := e.(*Context)
		if !ok {
			return nil
		}
		stack := ctx.Stack()
		if len(stack) > ctx.stackPreview {
			stack = stack[len(stack)-ctx.stackPreview:]
		}
		parts := make([]string, len(stack))
		for i, v := range stack {
			parts[i] = v.ToString()
		}
		e.Write(fmt.Sprintf("%s\n", strings.Join(parts, ", ")))
		return nil
	})
}
