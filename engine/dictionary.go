package engine

import (
	"os"
	"unicode/utf8"

	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/parser"
	"github.com/laskin-lang/laskin/value"
)

// registerDictionaryWords installs lookup, define and include.
func registerDictionaryWords(c *Context) {
	c.def("lookup", func(e value.Engine) error {
		key, err := popString(e)
		if err != nil {
			return err
		}
		v, ok := e.Lookup(key)
		if !ok {
			return lerr.New(lerr.Name, "no dictionary entry for %q", key)
		}
		e.Push(v)
		return nil
	})

	c.def("define", func(e value.Engine) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}
		key, err := popString(e)
		if err != nil {
			return err
		}
		e.Define(key, v)
		return nil
	})

	c.def("include", func(e value.Engine) error {
		path, err := popString(e)
		if err != nil {
			return err
		}
		data, ioErr := os.ReadFile(path)
		if ioErr != nil {
			return lerr.New(lerr.System, "could not read %q: %v", path, ioErr)
		}
		if !utf8.Valid(data) {
			return lerr.New(lerr.System, "%q is not valid UTF-8", path)
		}
		quote, perr := parser.ParseScript(string(data), 1)
		if perr != nil {
			return perr
		}
		ctx, ok := e.(*Context)
		if !ok {
			return quote.Call(e)
		}
		ctx.beginInclude()
		defer ctx.endInclude()
		return ctx.Execute(quote.Nodes())
	})
}
