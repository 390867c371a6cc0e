package engine

import (
	"github.com/laskin-lang/laskin/numeric"
	"github.com/laskin-lang/laskin/value"
)

// registerConstants installs the plain (non-quote) dictionary values:
// true, false, pi and e. Because they are not quotes, symbol resolution
// pushes them directly rather than calling them.
func registerConstants(c *Context) {
	c.Define("true", value.NewBoolean(true))
	c.Define("false", value.NewBoolean(false))
	c.Define("pi", value.NewNumber(numeric.FromFloat(3.14159265358979323846)))
	c.Define("e", value.NewNumber(numeric.FromFloat(2.71828182845904523536)))
}
