package ast

import (
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/value"
)

// Definition is "-> name": it pops one value and binds it in the
// dictionary. It is only valid in statement position.
type Definition struct {
	pos
	Name string
}

func NewDefinition(line, col int, name string) *Definition {
	return &Definition{pos: pos{line, col}, Name: name}
}

func (n *Definition) Source() string { return "-> " + n.Name }

func (n *Definition) Execute(e value.Engine) error {
	v, err := e.Pop()
	if err != nil {
		return wrapPos(err, n.line, n.col)
	}
	e.Define(n.Name, v)
	return nil
}

// Evaluate always fails: a definition in expression position raises
// Syntax.
func (n *Definition) Evaluate(e value.Engine) (value.Value, error) {
	return value.Value{}, lerr.At(lerr.Syntax, n.line, n.col, "a definition is not valid in expression position")
}
