package value

import "github.com/laskin-lang/laskin/numeric"

// Equal implements structural equality within a variant; values of
// different variants always compare unequal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Boolean:
		return v.boolean == other.boolean
	case NumberKind:
		return numbersStructurallyEqual(v.number, other.number)
	case StringKind:
		return v.text == other.text
	case VectorKind:
		if len(v.vector) != len(other.vector) {
			return false
		}
		for i := range v.vector {
			if !v.vector[i].Equal(other.vector[i]) {
				return false
			}
		}
		return true
	case RecordKind:
		return recordsEqual(v.record, other.record)
	case QuoteKind:
		return quotesEqual(v.quote, other.quote)
	case DateKind:
		return v.date == other.date
	case TimeKind:
		return v.time == other.time
	case MonthKind:
		return v.month == other.month
	case WeekdayKind:
		return v.weekday == other.weekday
	default:
		return false
	}
}

// numbersStructurallyEqual requires the same unit (or the absence of one
// on both sides) rather than base-magnitude equivalence: 1000m and 1km
// compare equal under arithmetic but are distinct literal values.
func numbersStructurallyEqual(a, b numeric.Number) bool {
	if a.HasUnit() != b.HasUnit() {
		return false
	}
	if a.HasUnit() && a.Unit.Symbol != b.Unit.Symbol {
		return false
	}
	return a.Value.Equal(b.Value)
}

func recordsEqual(a, b *Record) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}

func quotesEqual(a, b *Quote) bool {
	if a.IsNative() || b.IsNative() {
		return false
	}
	return a.Source() == b.Source()
}
