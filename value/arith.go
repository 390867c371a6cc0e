package value

import (
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/numeric"
)

// Add implements the "+" dispatch table: number+number, vector+vector
// (pointwise), string+string (concatenation), date/time+number
// (day/second offsets), and month/weekday+integer (cyclic wrap, the
// integer may sit on either side).
func Add(a, b Value) (Value, error) {
	switch {
	case a.kind == NumberKind && b.kind == NumberKind:
		n, err := numeric.Add(a.number, b.number)
		return NewNumber(n), err
	case a.kind == VectorKind && b.kind == VectorKind:
		return zipVectors(a.vector, b.vector, Add)
	case a.kind == StringKind && b.kind == StringKind:
		return NewString(a.text + b.text), nil
	case a.kind == DateKind && b.kind == NumberKind:
		return addDateNumber(a, b, 1)
	case a.kind == TimeKind && b.kind == NumberKind:
		return addTimeNumber(a, b, 1)
	case a.kind == MonthKind && b.kind == NumberKind:
		return addMonthNumber(a.month, b, 1)
	case a.kind == NumberKind && b.kind == MonthKind:
		return addMonthNumber(b.month, a, 1)
	case a.kind == WeekdayKind && b.kind == NumberKind:
		return addWeekdayNumber(a.weekday, b, 1)
	case a.kind == NumberKind && b.kind == WeekdayKind:
		return addWeekdayNumber(b.weekday, a, 1)
	default:
		return Value{}, typeMismatch("+", a, b)
	}
}

// Sub implements "-": number-number, vector-vector, record-record (key
// deletion regardless of the deleted value), date/time-number,
// month/weekday-integer (cyclic wrap), and date-date / time-time
// offsets.
func Sub(a, b Value) (Value, error) {
	switch {
	case a.kind == NumberKind && b.kind == NumberKind:
		n, err := numeric.Sub(a.number, b.number)
		return NewNumber(n), err
	case a.kind == VectorKind && b.kind == VectorKind:
		return zipVectors(a.vector, b.vector, Sub)
	case a.kind == RecordKind && b.kind == RecordKind:
		return subRecords(a.record, b.record), nil
	case a.kind == DateKind && b.kind == NumberKind:
		return addDateNumber(a, b, -1)
	case a.kind == TimeKind && b.kind == NumberKind:
		return addTimeNumber(a, b, -1)
	case a.kind == MonthKind && b.kind == NumberKind:
		return addMonthNumber(a.month, b, -1)
	case a.kind == WeekdayKind && b.kind == NumberKind:
		return addWeekdayNumber(a.weekday, b, -1)
	case a.kind == DateKind && b.kind == DateKind:
		days := a.date.Sub(b.date)
		u, _ := unitDays()
		return NewNumber(numeric.Number{Value: numeric.FromInt(days).Value, Unit: u}), nil
	case a.kind == TimeKind && b.kind == TimeKind:
		secs := a.time.Sub(b.time)
		u, _ := unitSeconds()
		return NewNumber(numeric.Number{Value: numeric.FromInt(secs).Value, Unit: u}), nil
	default:
		return Value{}, typeMismatch("-", a, b)
	}
}

// Mul implements "*": number*number and vector*number (broadcast).
func Mul(a, b Value) (Value, error) {
	switch {
	case a.kind == NumberKind && b.kind == NumberKind:
		n, err := numeric.Mul(a.number, b.number)
		return NewNumber(n), err
	case a.kind == VectorKind && b.kind == NumberKind:
		return broadcastVector(a.vector, b, Mul)
	default:
		return Value{}, typeMismatch("*", a, b)
	}
}

// Div implements "/": number/number and vector/number (broadcast).
func Div(a, b Value) (Value, error) {
	switch {
	case a.kind == NumberKind && b.kind == NumberKind:
		n, err := numeric.Div(a.number, b.number)
		return NewNumber(n), err
	case a.kind == VectorKind && b.kind == NumberKind:
		return broadcastVector(a.vector, b, Div)
	default:
		return Value{}, typeMismatch("/", a, b)
	}
}

func typeMismatch(op string, a, b Value) error {
	return lerr.New(lerr.Type, "%s is not defined for %s and %s", op, a.kind, b.kind)
}

func zipVectors(a, b []Value, op func(Value, Value) (Value, error)) (Value, error) {
	if len(a) != len(b) {
		return Value{}, lerr.New(lerr.Range, "vectors have different lengths (%d and %d)", len(a), len(b))
	}
	out := make([]Value, len(a))
	for i := range a {
		v, err := op(a[i], b[i])
		if err != nil {
			return Value{}, err
		}
		out[i] = v
	}
	return NewVector(out), nil
}

func broadcastVector(v []Value, scalar Value, op func(Value, Value) (Value, error)) (Value, error) {
	out := make([]Value, len(v))
	for i := range v {
		r, err := op(v[i], scalar)
		if err != nil {
			return Value{}, err
		}
		out[i] = r
	}
	return NewVector(out), nil
}

func subRecords(a, b *Record) Value {
	result := a.Clone()
	for _, k := range b.Keys() {
		result = result.Delete(k)
	}
	return NewRecord(result)
}
