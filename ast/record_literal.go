package ast

import (
	"fmt"
	"strings"

	"github.com/laskin-lang/laskin/value"
)

// RecordLiteral is "{ "k": expr, … }": ordered key→expression pairs,
// evaluated fresh each time the literal runs.
type RecordLiteral struct {
	pos
	Keys     []string
	Children []value.Executable
}

func NewRecordLiteral(line, col int, keys []string, children []value.Executable) *RecordLiteral {
	return &RecordLiteral{pos: pos{line, col}, Keys: keys, Children: children}
}

func (n *RecordLiteral) Source() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = fmt.Sprintf("%q: %s", n.Keys[i], c.Source())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (n *RecordLiteral) Evaluate(e value.Engine) (value.Value, error) {
	rec := value.NewEmptyRecord()
	for i, c := range n.Children {
		v, err := c.Evaluate(e)
		if err != nil {
			return value.Value{}, err
		}
		rec = rec.Set(n.Keys[i], v)
	}
	return value.NewRecord(rec), nil
}

func (n *RecordLiteral) Execute(e value.Engine) error {
	v, err := n.Evaluate(e)
	if err != nil {
		return err
	}
	e.Push(v)
	return nil
}
