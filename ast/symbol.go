package ast

import (
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/chronology"
	"github.com/laskin-lang/laskin/numeric"
	"github.com/laskin-lang/laskin/value"
)

// Symbol is a bare identifier, resolved at execution or evaluation time.
type Symbol struct {
	pos
	ID string
}

func NewSymbol(line, col int, id string) *Symbol {
	return &Symbol{pos: pos{line, col}, ID: id}
}

func (n *Symbol) Source() string { return n.ID }

// Execute implements statement-position symbol resolution: typed
// dispatch (when the stack is non-empty) is tried before a plain lookup,
// then number/date/time literal fallback, then Name failure.
func (n *Symbol) Execute(e value.Engine) error {
	if e.Depth() > 0 {
		top, err := e.Peek()
		if err != nil {
			return wrapPos(err, n.line, n.col)
		}
		typedKey := top.Kind().String() + ":" + n.ID
		if v, ok := e.Lookup(typedKey); ok {
			return dispatch(e, v)
		}
	}
	if v, ok := e.Lookup(n.ID); ok {
		return dispatch(e, v)
	}
	if numeric.IsValid(n.ID) {
		num, err := numeric.Parse(n.ID)
		if err != nil {
			return wrapPos(err, n.line, n.col)
		}
		e.Push(value.NewNumber(num))
		return nil
	}
	if chronology.IsDate(n.ID) {
		d, err := chronology.ParseDate(n.ID)
		if err != nil {
			return wrapPos(err, n.line, n.col)
		}
		e.Push(value.NewDate(d))
		return nil
	}
	if chronology.IsTime(n.ID) {
		t, err := chronology.ParseTime(n.ID)
		if err != nil {
			return wrapPos(err, n.line, n.col)
		}
		e.Push(value.NewTime(t))
		return nil
	}
	return lerr.At(lerr.Name, n.line, n.col, "unrecognized symbol %q", n.ID)
}

func dispatch(e value.Engine, v value.Value) error {
	if v.IsQuote() {
		return v.Quote().Call(e)
	}
	e.Push(v)
	return nil
}

// Evaluate implements expression-position symbol resolution: a narrower
// set of bare words is recognized, and nothing falls through to a
// dictionary lookup.
func (n *Symbol) Evaluate(e value.Engine) (value.Value, error) {
	switch n.ID {
	case "true":
		return value.NewBoolean(true), nil
	case "false":
		return value.NewBoolean(false), nil
	case "drop":
		v, err := e.Pop()
		if err != nil {
			return value.Value{}, wrapPos(err, n.line, n.col)
		}
		return v, nil
	}
	if numeric.IsValid(n.ID) {
		num, err := numeric.Parse(n.ID)
		if err != nil {
			return value.Value{}, wrapPos(err, n.line, n.col)
		}
		return value.NewNumber(num), nil
	}
	if chronology.IsDate(n.ID) {
		d, err := chronology.ParseDate(n.ID)
		if err != nil {
			return value.Value{}, wrapPos(err, n.line, n.col)
		}
		return value.NewDate(d), nil
	}
	if chronology.IsTime(n.ID) {
		t, err := chronology.ParseTime(n.ID)
		if err != nil {
			return value.Value{}, wrapPos(err, n.line, n.col)
		}
		return value.NewTime(t), nil
	}
	if m, ok := chronology.MonthFromName(n.ID); ok {
		return value.NewMonth(m), nil
	}
	if w, ok := chronology.WeekdayFromName(n.ID); ok {
		return value.NewWeekday(w), nil
	}
	return value.Value{}, lerr.At(lerr.Name, n.line, n.col, "unrecognized symbol %q", n.ID)
}
