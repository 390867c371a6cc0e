package value

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString is the human-readable form: no quoting of strings, no brackets
// around flat values.
func (v Value) ToString() string {
	switch v.kind {
	case Boolean:
		return strconv.FormatBool(v.boolean)
	case NumberKind:
		return v.number.String()
	case StringKind:
		return v.text
	case VectorKind:
		parts := make([]string, len(v.vector))
		for i, e := range v.vector {
			parts[i] = e.ToString()
		}
		return strings.Join(parts, ", ")
	case RecordKind:
		parts := make([]string, 0, v.record.Len())
		v.record.ForEach(func(k string, val Value) error {
			parts = append(parts, fmt.Sprintf("%s: %s", k, val.ToString()))
			return nil
		})
		return strings.Join(parts, ", ")
	case QuoteKind:
		return v.quote.Source()
	case DateKind:
		return v.date.Format()
	case TimeKind:
		return v.time.Format()
	case MonthKind:
		return v.month.String()
	case WeekdayKind:
		return v.weekday.String()
	default:
		return ""
	}
}

// ToSource is the round-trippable form: strings are escape-quoted,
// vectors use [ … ], records use { "k": v, … }, quotes use ( … ), dates
// and times use their ISO forms.
func (v Value) ToSource() string {
	switch v.kind {
	case StringKind:
		return quoteString(v.text)
	case VectorKind:
		parts := make([]string, len(v.vector))
		for i, e := range v.vector {
			parts[i] = e.ToSource()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case RecordKind:
		parts := make([]string, 0, v.record.Len())
		v.record.ForEach(func(k string, val Value) error {
			parts = append(parts, fmt.Sprintf("%s: %s", quoteString(k), val.ToSource()))
			return nil
		})
		return "{" + strings.Join(parts, ", ") + "}"
	case QuoteKind:
		return v.quote.Source()
	default:
		return v.ToString()
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
