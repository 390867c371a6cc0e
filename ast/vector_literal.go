package ast

import (
	"strings"

	"github.com/laskin-lang/laskin/value"
)

// VectorLiteral is "[ … ]": each child is an expression, evaluated fresh
// on every execution so that e.g. a "drop" inside it reads the stack at
// the time the literal runs.
type VectorLiteral struct {
	pos
	Children []value.Executable
}

func NewVectorLiteral(line, col int, children []value.Executable) *VectorLiteral {
	return &VectorLiteral{pos: pos{line, col}, Children: children}
}

func (n *VectorLiteral) Source() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.Source()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (n *VectorLiteral) Evaluate(e value.Engine) (value.Value, error) {
	elems := make([]value.Value, len(n.Children))
	for i, c := range n.Children {
		v, err := c.Evaluate(e)
		if err != nil {
			return value.Value{}, err
		}
		elems[i] = v
	}
	return value.NewVector(elems), nil
}

func (n *VectorLiteral) Execute(e value.Engine) error {
	v, err := n.Evaluate(e)
	if err != nil {
		return err
	}
	e.Push(v)
	return nil
}
