// Package ast defines Laskin's five abstract syntax tree node kinds:
// literal, vector-literal, record-literal, symbol and definition.
// Nodes are immutable after construction and each one
// satisfies value.Executable structurally — this package imports value
// for Value/Quote payloads, but value never imports ast, which is what
// keeps the two packages from forming a cycle (see value.Executable's
// doc comment).
package ast

import lerr "github.com/laskin-lang/laskin/errors"

// pos is embedded by every node to carry its source position.
type pos struct {
	line int
	col  int
}

func (p pos) Position() (line, col int) { return p.line, p.col }

// wrapPos attaches a node's source position to an error raised below it,
// unless the error already carries one of its own.
func wrapPos(err error, line, col int) error {
	if le, ok := err.(*lerr.Error); ok {
		return lerr.WithPosition(le, line, col)
	}
	return err
}
