// Package value implements Value, Laskin's polymorphic runtime datum: a
// closed sum type over booleans, numbers, strings, vectors, records,
// quotes, dates, times, months and weekdays. Go has no sum types, so the
// variants collapse into one discriminated struct: a Kind tag gives
// equality, ordering and arithmetic one exhaustive switch to maintain
// instead of N interface implementations scattered across files.
package value

import (
	"github.com/laskin-lang/laskin/chronology"
	"github.com/laskin-lang/laskin/numeric"
)

// Kind tags which variant a Value currently holds.
type Kind int

const (
	Boolean Kind = iota
	NumberKind
	StringKind
	VectorKind
	RecordKind
	QuoteKind
	DateKind
	TimeKind
	MonthKind
	WeekdayKind
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case VectorKind:
		return "vector"
	case RecordKind:
		return "record"
	case QuoteKind:
		return "quote"
	case DateKind:
		return "date"
	case TimeKind:
		return "time"
	case MonthKind:
		return "month"
	case WeekdayKind:
		return "weekday"
	default:
		return "unknown"
	}
}

// Value is copied by value at every stack push; none of its fields are
// mutated after construction except through the Record and Quote helper
// types, which themselves return new values rather than mutating in
// place.
type Value struct {
	kind    Kind
	boolean bool
	number  numeric.Number
	text    string
	vector  []Value
	record  *Record
	quote   *Quote
	date    chronology.Date
	time    chronology.Time
	month   chronology.Month
	weekday chronology.Weekday
}

func (v Value) Kind() Kind { return v.kind }

func NewBoolean(b bool) Value { return Value{kind: Boolean, boolean: b} }
func NewNumber(n numeric.Number) Value { return Value{kind: NumberKind, number: n} }
func NewString(s string) Value { return Value{kind: StringKind, text: s} }

// NewVector copies elems so the caller's backing array cannot alias the
// new Value.
func NewVector(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: VectorKind, vector: cp}
}

func NewRecord(r *Record) Value { return Value{kind: RecordKind, record: r} }
func NewQuote(q *Quote) Value   { return Value{kind: QuoteKind, quote: q} }
func NewDate(d chronology.Date) Value { return Value{kind: DateKind, date: d} }
func NewTime(t chronology.Time) Value { return Value{kind: TimeKind, time: t} }
func NewMonth(m chronology.Month) Value { return Value{kind: MonthKind, month: m} }
func NewWeekday(w chronology.Weekday) Value { return Value{kind: WeekdayKind, weekday: w} }

func (v Value) Bool() bool                { return v.boolean }
func (v Value) Number() numeric.Number    { return v.number }
func (v Value) Text() string              { return v.text }
func (v Value) Vector() []Value           { return v.vector }
func (v Value) Record() *Record           { return v.record }
func (v Value) Quote() *Quote             { return v.quote }
func (v Value) Date() chronology.Date     { return v.date }
func (v Value) Time() chronology.Time     { return v.time }
func (v Value) Month() chronology.Month   { return v.month }
func (v Value) Weekday() chronology.Weekday { return v.weekday }

func (v Value) IsBoolean() bool { return v.kind == Boolean }
func (v Value) IsNumber() bool  { return v.kind == NumberKind }
func (v Value) IsString() bool  { return v.kind == StringKind }
func (v Value) IsVector() bool  { return v.kind == VectorKind }
func (v Value) IsRecord() bool  { return v.kind == RecordKind }
func (v Value) IsQuote() bool   { return v.kind == QuoteKind }
func (v Value) IsDate() bool    { return v.kind == DateKind }
func (v Value) IsTime() bool    { return v.kind == TimeKind }
func (v Value) IsMonth() bool   { return v.kind == MonthKind }
func (v Value) IsWeekday() bool { return v.kind == WeekdayKind }
