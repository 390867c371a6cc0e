package ast

import "github.com/laskin-lang/laskin/value"

// Literal pushes a precomputed value. A parenthesized quote
// body is represented as a Literal whose value is a user Quote built from
// the parsed statement nodes.
type Literal struct {
	pos
	Value value.Value
}

func NewLiteral(line, col int, v value.Value) *Literal {
	return &Literal{pos: pos{line, col}, Value: v}
}

func (n *Literal) Execute(e value.Engine) error {
	e.Push(n.Value)
	return nil
}

func (n *Literal) Evaluate(e value.Engine) (value.Value, error) {
	return n.Value, nil
}

func (n *Literal) Source() string {
	return n.Value.ToSource()
}
