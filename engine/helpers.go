package engine

import (
	"github.com/laskin-lang/laskin/chronology"
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/numeric"
	"github.com/laskin-lang/laskin/value"
)

// QuitError is returned by the "quit" built-in to unwind out of the
// current execution cleanly; a host collaborator (CLI or REPL) catches it
// and exits without printing it as an ordinary error.
type QuitError struct{ Code int }

func (e *QuitError) Error() string { return "quit requested" }

func popNumber(e value.Engine) (numeric.Number, error) {
	v, err := e.Pop()
	if err != nil {
		return numeric.Number{}, err
	}
	if !v.IsNumber() {
		return numeric.Number{}, lerr.New(lerr.Type, "expected a number, got %s", v.Kind())
	}
	return v.Number(), nil
}

func popString(e value.Engine) (string, error) {
	v, err := e.Pop()
	if err != nil {
		return "", err
	}
	if !v.IsString() {
		return "", lerr.New(lerr.Type, "expected a string, got %s", v.Kind())
	}
	return v.Text(), nil
}

func popBoolean(e value.Engine) (bool, error) {
	v, err := e.Pop()
	if err != nil {
		return false, err
	}
	if !v.IsBoolean() {
		return false, lerr.New(lerr.Type, "expected a boolean, got %s", v.Kind())
	}
	return v.Bool(), nil
}

func popVector(e value.Engine) ([]value.Value, error) {
	v, err := e.Pop()
	if err != nil {
		return nil, err
	}
	if !v.IsVector() {
		return nil, lerr.New(lerr.Type, "expected a vector, got %s", v.Kind())
	}
	return v.Vector(), nil
}

func popRecord(e value.Engine) (*value.Record, error) {
	v, err := e.Pop()
	if err != nil {
		return nil, err
	}
	if !v.IsRecord() {
		return nil, lerr.New(lerr.Type, "expected a record, got %s", v.Kind())
	}
	return v.Record(), nil
}

func popQuote(e value.Engine) (*value.Quote, error) {
	v, err := e.Pop()
	if err != nil {
		return nil, err
	}
	if !v.IsQuote() {
		return nil, lerr.New(lerr.Type, "expected a quote, got %s", v.Kind())
	}
	return v.Quote(), nil
}

func popDate(e value.Engine) (chronology.Date, error) {
	v, err := e.Pop()
	if err != nil {
		return chronology.Date{}, err
	}
	if !v.IsDate() {
		return chronology.Date{}, lerr.New(lerr.Type, "expected a date, got %s", v.Kind())
	}
	return v.Date(), nil
}

func popTime(e value.Engine) (chronology.Time, error) {
	v, err := e.Pop()
	if err != nil {
		return chronology.Time{}, err
	}
	if !v.IsTime() {
		return chronology.Time{}, lerr.New(lerr.Type, "expected a time, got %s", v.Kind())
	}
	return v.Time(), nil
}

func popMonth(e value.Engine) (chronology.Month, error) {
	v, err := e.Pop()
	if err != nil {
		return 0, err
	}
	if !v.IsMonth() {
		return 0, lerr.New(lerr.Type, "expected a month, got %s", v.Kind())
	}
	return v.Month(), nil
}

func popWeekday(e value.Engine) (chronology.Weekday, error) {
	v, err := e.Pop()
	if err != nil {
		return 0, err
	}
	if !v.IsWeekday() {
		return 0, lerr.New(lerr.Type, "expected a weekday, got %s", v.Kind())
	}
	return v.Weekday(), nil
}

func popLong(e value.Engine) (int64, error) {
	n, err := popNumber(e)
	if err != nil {
		return 0, err
	}
	return n.ToLong()
}

func numberFromInt(n int64) numeric.Number { return numeric.FromInt(n) }
